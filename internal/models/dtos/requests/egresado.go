package requests

import "upc-extension/vinculacion/internal/models/entities"

type EgresadoCreate struct {
	NombreCompleto string         `json:"nombre_completo" validate:"required"`
	AnioGraduacion entities.Fecha `json:"año_graduacion" validate:"required"`
	Empleabilidad  string         `json:"empleabilidad" validate:"required,oneof=Empleado Desempleado Emprendedor"`
	Email          string         `json:"email" validate:"required,email"`
}

func (r EgresadoCreate) Model() entities.Egresado {
	return entities.Egresado{
		NombreCompleto: r.NombreCompleto,
		AnioGraduacion: r.AnioGraduacion,
		Empleabilidad:  r.Empleabilidad,
		Email:          r.Email,
	}
}

func (r EgresadoCreate) KeyValues() map[string]any {
	return map[string]any{
		"nombre_completo": r.NombreCompleto,
		"email":           r.Email,
	}
}

type EgresadoUpdate struct {
	NombreCompleto *string         `json:"nombre_completo"`
	AnioGraduacion *entities.Fecha `json:"año_graduacion"`
	Empleabilidad  *string         `json:"empleabilidad"`
	Email          *string         `json:"email"`
}

func (r EgresadoUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.NombreCompleto != nil {
		c["nombre_completo"] = *r.NombreCompleto
	}
	if r.AnioGraduacion != nil {
		c["anio_graduacion"] = *r.AnioGraduacion
	}
	if r.Empleabilidad != nil {
		c["empleabilidad"] = *r.Empleabilidad
	}
	if r.Email != nil {
		c["email"] = *r.Email
	}
	return c
}
