package requests

import "upc-extension/vinculacion/internal/models/entities"

type ProyectoCreate struct {
	Titulo       string         `json:"titulo" validate:"required"`
	AreaTematica string         `json:"area_tematica" validate:"required"`
	FechaInicio  entities.Fecha `json:"fecha_inicio" validate:"required"`
}

func (r ProyectoCreate) Model() entities.Proyecto {
	return entities.Proyecto{
		Titulo:       r.Titulo,
		AreaTematica: r.AreaTematica,
		FechaInicio:  r.FechaInicio,
	}
}

func (r ProyectoCreate) KeyValues() map[string]any {
	return map[string]any{
		"titulo":        r.Titulo,
		"area_tematica": r.AreaTematica,
	}
}

type ProyectoUpdate struct {
	Titulo       *string         `json:"titulo"`
	AreaTematica *string         `json:"area_tematica"`
	FechaInicio  *entities.Fecha `json:"fecha_inicio"`
}

func (r ProyectoUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.Titulo != nil {
		c["titulo"] = *r.Titulo
	}
	if r.AreaTematica != nil {
		c["area_tematica"] = *r.AreaTematica
	}
	if r.FechaInicio != nil {
		c["fecha_inicio"] = *r.FechaInicio
	}
	return c
}
