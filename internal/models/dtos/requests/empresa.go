package requests

import "upc-extension/vinculacion/internal/models/entities"

type EmpresaCreate struct {
	NombreEmpresa string         `json:"nombre_empresa" validate:"required"`
	NIT           string         `json:"nit" validate:"required"`
	Sector        string         `json:"sector" validate:"required"`
	FechaConvenio entities.Fecha `json:"fecha_convenio" validate:"required"`
}

func (r EmpresaCreate) Model() entities.Empresa {
	return entities.Empresa{
		NombreEmpresa: r.NombreEmpresa,
		NIT:           r.NIT,
		Sector:        r.Sector,
		FechaConvenio: r.FechaConvenio,
	}
}

func (r EmpresaCreate) KeyValues() map[string]any {
	return map[string]any{
		"nit":            r.NIT,
		"nombre_empresa": r.NombreEmpresa,
	}
}

type EmpresaUpdate struct {
	NombreEmpresa *string         `json:"nombre_empresa"`
	NIT           *string         `json:"nit"`
	Sector        *string         `json:"sector"`
	FechaConvenio *entities.Fecha `json:"fecha_convenio"`
}

func (r EmpresaUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.NombreEmpresa != nil {
		c["nombre_empresa"] = *r.NombreEmpresa
	}
	if r.NIT != nil {
		c["nit"] = *r.NIT
	}
	if r.Sector != nil {
		c["sector"] = *r.Sector
	}
	if r.FechaConvenio != nil {
		c["fecha_convenio"] = *r.FechaConvenio
	}
	return c
}
