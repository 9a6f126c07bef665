package requests

import "upc-extension/vinculacion/internal/models/entities"

type RelacionCreate struct {
	Nombre            string         `json:"nombre" validate:"required"`
	Pais              string         `json:"pais" validate:"required"`
	Institucion       string         `json:"institucion" validate:"required"`
	Tipo              string         `json:"tipo" validate:"required,oneof=mobility agreement project network"`
	FechaInicio       entities.Fecha `json:"fecha_inicio" validate:"required"`
	FechaFinalizacion entities.Fecha `json:"fecha_finalizacion" validate:"required"`
	Descripcion       string         `json:"descripcion" validate:"required"`
	Participantes     string         `json:"participantes" validate:"required"`
	Resultados        string         `json:"resultados" validate:"required"`
	Estado            string         `json:"estado" validate:"omitempty,oneof=active expired pending"`
}

func (r RelacionCreate) Model() entities.RelacionInternacional {
	estado := r.Estado
	if estado == "" {
		estado = entities.EstadoRelacionPendiente
	}
	return entities.RelacionInternacional{
		Nombre:            r.Nombre,
		Pais:              r.Pais,
		Institucion:       r.Institucion,
		Tipo:              r.Tipo,
		FechaInicio:       r.FechaInicio,
		FechaFinalizacion: r.FechaFinalizacion,
		Descripcion:       r.Descripcion,
		Participantes:     r.Participantes,
		Resultados:        r.Resultados,
		Estado:            estado,
	}
}

func (r RelacionCreate) KeyValues() map[string]any {
	return map[string]any{
		"nombre":      r.Nombre,
		"institucion": r.Institucion,
	}
}

type RelacionUpdate struct {
	Nombre            *string         `json:"nombre"`
	Pais              *string         `json:"pais"`
	Institucion       *string         `json:"institucion"`
	Tipo              *string         `json:"tipo"`
	FechaInicio       *entities.Fecha `json:"fecha_inicio"`
	FechaFinalizacion *entities.Fecha `json:"fecha_finalizacion"`
	Descripcion       *string         `json:"descripcion"`
	Participantes     *string         `json:"participantes"`
	Resultados        *string         `json:"resultados"`
	Estado            *string         `json:"estado"`
}

func (r RelacionUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.Nombre != nil {
		c["nombre"] = *r.Nombre
	}
	if r.Pais != nil {
		c["pais"] = *r.Pais
	}
	if r.Institucion != nil {
		c["institucion"] = *r.Institucion
	}
	if r.Tipo != nil {
		c["tipo"] = *r.Tipo
	}
	if r.FechaInicio != nil {
		c["fecha_inicio"] = *r.FechaInicio
	}
	if r.FechaFinalizacion != nil {
		c["fecha_finalizacion"] = *r.FechaFinalizacion
	}
	if r.Descripcion != nil {
		c["descripcion"] = *r.Descripcion
	}
	if r.Participantes != nil {
		c["participantes"] = *r.Participantes
	}
	if r.Resultados != nil {
		c["resultados"] = *r.Resultados
	}
	if r.Estado != nil {
		c["estado"] = *r.Estado
	}
	return c
}
