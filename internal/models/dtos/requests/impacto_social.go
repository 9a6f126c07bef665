package requests

import "upc-extension/vinculacion/internal/models/entities"

type ImpactoSocialCreate struct {
	Titulo        string         `json:"titulo" validate:"required"`
	Beneficiarios string         `json:"beneficiarios" validate:"required"`
	Ubicacion     string         `json:"ubicacion" validate:"required"`
	FechaInicio   entities.Fecha `json:"fecha_inicio" validate:"required"`
	FechaFinal    entities.Fecha `json:"fecha_final" validate:"required"`
	Descripcion   string         `json:"descripcion" validate:"required"`
	Objetivos     string         `json:"objetivos" validate:"required"`
	Resultados    string         `json:"resultados" validate:"required"`
	Participantes string         `json:"participantes" validate:"required"`
	Estado        string         `json:"estado" validate:"omitempty,oneof=activo finalizado pendiente"`
}

func (r ImpactoSocialCreate) Model() entities.ImpactoSocial {
	estado := r.Estado
	if estado == "" {
		estado = entities.EstadoImpactoPendiente
	}
	return entities.ImpactoSocial{
		Titulo:        r.Titulo,
		Beneficiarios: r.Beneficiarios,
		Ubicacion:     r.Ubicacion,
		FechaInicio:   r.FechaInicio,
		FechaFinal:    r.FechaFinal,
		Descripcion:   r.Descripcion,
		Objetivos:     r.Objetivos,
		Resultados:    r.Resultados,
		Participantes: r.Participantes,
		Estado:        estado,
	}
}

func (r ImpactoSocialCreate) KeyValues() map[string]any {
	return map[string]any{
		"titulo":    r.Titulo,
		"ubicacion": r.Ubicacion,
	}
}

type ImpactoSocialUpdate struct {
	Titulo        *string         `json:"titulo"`
	Beneficiarios *string         `json:"beneficiarios"`
	Ubicacion     *string         `json:"ubicacion"`
	FechaInicio   *entities.Fecha `json:"fecha_inicio"`
	FechaFinal    *entities.Fecha `json:"fecha_final"`
	Descripcion   *string         `json:"descripcion"`
	Objetivos     *string         `json:"objetivos"`
	Resultados    *string         `json:"resultados"`
	Participantes *string         `json:"participantes"`
	Estado        *string         `json:"estado"`
}

func (r ImpactoSocialUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.Titulo != nil {
		c["titulo"] = *r.Titulo
	}
	if r.Beneficiarios != nil {
		c["beneficiarios"] = *r.Beneficiarios
	}
	if r.Ubicacion != nil {
		c["ubicacion"] = *r.Ubicacion
	}
	if r.FechaInicio != nil {
		c["fecha_inicio"] = *r.FechaInicio
	}
	if r.FechaFinal != nil {
		c["fecha_final"] = *r.FechaFinal
	}
	if r.Descripcion != nil {
		c["descripcion"] = *r.Descripcion
	}
	if r.Objetivos != nil {
		c["objetivos"] = *r.Objetivos
	}
	if r.Resultados != nil {
		c["resultados"] = *r.Resultados
	}
	if r.Participantes != nil {
		c["participantes"] = *r.Participantes
	}
	if r.Estado != nil {
		c["estado"] = *r.Estado
	}
	return c
}
