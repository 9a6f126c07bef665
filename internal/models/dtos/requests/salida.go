package requests

import "upc-extension/vinculacion/internal/models/entities"

type SalidaCreate struct {
	FechaSalida         entities.Fecha `json:"fecha_salida" validate:"required"`
	LugarDestino        string         `json:"lugar_destino" validate:"required"`
	Responsable         string         `json:"responsable" validate:"required"`
	CantidadEstudiantes int64          `json:"cantidad_estudiantes" validate:"gt=0"`
	HoraSalida          entities.Hora  `json:"hora_salida" validate:"required"`
	HoraRegreso         entities.Hora  `json:"hora_regreso" validate:"required"`
	Observaciones       string         `json:"observaciones"`
}

func (r SalidaCreate) Model() entities.SalidaPractica {
	return entities.SalidaPractica{
		FechaSalida:         r.FechaSalida,
		LugarDestino:        r.LugarDestino,
		Responsable:         r.Responsable,
		CantidadEstudiantes: r.CantidadEstudiantes,
		HoraSalida:          r.HoraSalida,
		HoraRegreso:         r.HoraRegreso,
		Observaciones:       r.Observaciones,
	}
}

func (r SalidaCreate) KeyValues() map[string]any {
	return map[string]any{
		"fecha_salida":  r.FechaSalida,
		"lugar_destino": r.LugarDestino,
		"hora_salida":   r.HoraSalida,
	}
}

type SalidaUpdate struct {
	FechaSalida         *entities.Fecha `json:"fecha_salida"`
	LugarDestino        *string         `json:"lugar_destino"`
	Responsable         *string         `json:"responsable"`
	CantidadEstudiantes *int64          `json:"cantidad_estudiantes"`
	HoraSalida          *entities.Hora  `json:"hora_salida"`
	HoraRegreso         *entities.Hora  `json:"hora_regreso"`
	Observaciones       *string         `json:"observaciones"`
}

func (r SalidaUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.FechaSalida != nil {
		c["fecha_salida"] = *r.FechaSalida
	}
	if r.LugarDestino != nil {
		c["lugar_destino"] = *r.LugarDestino
	}
	if r.Responsable != nil {
		c["responsable"] = *r.Responsable
	}
	if r.CantidadEstudiantes != nil {
		c["cantidad_estudiantes"] = *r.CantidadEstudiantes
	}
	if r.HoraSalida != nil {
		c["hora_salida"] = *r.HoraSalida
	}
	if r.HoraRegreso != nil {
		c["hora_regreso"] = *r.HoraRegreso
	}
	if r.Observaciones != nil {
		c["observaciones"] = *r.Observaciones
	}
	return c
}
