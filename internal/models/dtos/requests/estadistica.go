package requests

import "upc-extension/vinculacion/internal/models/entities"

type EstadisticaCreate struct {
	Categoria   string `json:"categoria" validate:"required"`
	Value       string `json:"value" validate:"required"`
	Descripcion string `json:"descripcion" validate:"required"`
}

func (r EstadisticaCreate) Model() entities.Estadistica {
	return entities.Estadistica{
		Categoria:   r.Categoria,
		Value:       r.Value,
		Descripcion: r.Descripcion,
	}
}

func (r EstadisticaCreate) KeyValues() map[string]any {
	return map[string]any{
		"categoria":   r.Categoria,
		"descripcion": r.Descripcion,
	}
}

type EstadisticaUpdate struct {
	Categoria   *string `json:"categoria"`
	Value       *string `json:"value"`
	Descripcion *string `json:"descripcion"`
}

func (r EstadisticaUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.Categoria != nil {
		c["categoria"] = *r.Categoria
	}
	if r.Value != nil {
		c["value"] = *r.Value
	}
	if r.Descripcion != nil {
		c["descripcion"] = *r.Descripcion
	}
	return c
}
