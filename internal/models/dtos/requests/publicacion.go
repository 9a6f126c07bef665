package requests

import "upc-extension/vinculacion/internal/models/entities"

type PublicacionCreate struct {
	Titulo  string         `json:"titulo" validate:"required"`
	Autores string         `json:"autores" validate:"required"`
	Area    string         `json:"area" validate:"required"`
	Fecha   entities.Fecha `json:"fecha" validate:"required"`
	Enlace  string         `json:"enlace" validate:"required"`
	Tipo    string         `json:"tipo" validate:"required"`
}

func (r PublicacionCreate) Model() entities.Publicacion {
	return entities.Publicacion{
		Titulo:  r.Titulo,
		Autores: r.Autores,
		Area:    r.Area,
		Fecha:   r.Fecha,
		Enlace:  r.Enlace,
		Tipo:    r.Tipo,
	}
}

func (r PublicacionCreate) KeyValues() map[string]any {
	return map[string]any{
		"titulo":  r.Titulo,
		"autores": r.Autores,
	}
}

type PublicacionUpdate struct {
	Titulo  *string         `json:"titulo"`
	Autores *string         `json:"autores"`
	Area    *string         `json:"area"`
	Fecha   *entities.Fecha `json:"fecha"`
	Enlace  *string         `json:"enlace"`
	Tipo    *string         `json:"tipo"`
}

func (r PublicacionUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.Titulo != nil {
		c["titulo"] = *r.Titulo
	}
	if r.Autores != nil {
		c["autores"] = *r.Autores
	}
	if r.Area != nil {
		c["area"] = *r.Area
	}
	if r.Fecha != nil {
		c["fecha"] = *r.Fecha
	}
	if r.Enlace != nil {
		c["enlace"] = *r.Enlace
	}
	if r.Tipo != nil {
		c["tipo"] = *r.Tipo
	}
	return c
}
