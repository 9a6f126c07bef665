package requests

import "upc-extension/vinculacion/internal/models/entities"

type EventoCreate struct {
	Tipo        string         `json:"tipo" validate:"required"`
	Fecha       entities.Fecha `json:"fecha" validate:"required"`
	Asistentes  int64          `json:"asistentes" validate:"gte=0"`
	Multimedia  string         `json:"multimedia" validate:"required"`
	Descripcion string         `json:"descripcion" validate:"required"`
}

func (r EventoCreate) Model() entities.Evento {
	return entities.Evento{
		Tipo:        r.Tipo,
		Fecha:       r.Fecha,
		Asistentes:  r.Asistentes,
		Multimedia:  r.Multimedia,
		Descripcion: r.Descripcion,
	}
}

func (r EventoCreate) KeyValues() map[string]any {
	return map[string]any{
		"tipo":        r.Tipo,
		"fecha":       r.Fecha,
		"descripcion": r.Descripcion,
	}
}

type EventoUpdate struct {
	Tipo        *string         `json:"tipo"`
	Fecha       *entities.Fecha `json:"fecha"`
	Asistentes  *int64          `json:"asistentes"`
	Multimedia  *string         `json:"multimedia"`
	Descripcion *string         `json:"descripcion"`
}

func (r EventoUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.Tipo != nil {
		c["tipo"] = *r.Tipo
	}
	if r.Fecha != nil {
		c["fecha"] = *r.Fecha
	}
	if r.Asistentes != nil {
		c["asistentes"] = *r.Asistentes
	}
	if r.Multimedia != nil {
		c["multimedia"] = *r.Multimedia
	}
	if r.Descripcion != nil {
		c["descripcion"] = *r.Descripcion
	}
	return c
}
