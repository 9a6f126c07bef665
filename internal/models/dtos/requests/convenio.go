package requests

import "upc-extension/vinculacion/internal/models/entities"

type ConvenioCreate struct {
	CompaniaID       int64          `json:"compania_id" validate:"required,gt=0"`
	TituloCompania   string         `json:"titulo_compania" validate:"required"`
	TipoDeConvenio   string         `json:"tipo_de_convenio" validate:"required"`
	Descripcion      string         `json:"descripcion" validate:"required"`
	Beneficios       string         `json:"beneficios" validate:"required"`
	FechaFirma       entities.Fecha `json:"fecha_firma" validate:"required"`
	FechaVencimiento entities.Fecha `json:"fecha_vencimiento" validate:"required"`
	Estatus          string         `json:"estatus" validate:"omitempty,oneof=active expired pending"`
}

func (r ConvenioCreate) Model() entities.Convenio {
	estatus := r.Estatus
	if estatus == "" {
		estatus = entities.EstatusConvenioPendiente
	}
	return entities.Convenio{
		CompaniaID:       r.CompaniaID,
		TituloCompania:   r.TituloCompania,
		TipoDeConvenio:   r.TipoDeConvenio,
		Descripcion:      r.Descripcion,
		Beneficios:       r.Beneficios,
		FechaFirma:       r.FechaFirma,
		FechaVencimiento: r.FechaVencimiento,
		Estatus:          estatus,
	}
}

func (r ConvenioCreate) KeyValues() map[string]any {
	return map[string]any{
		"compania_id":     r.CompaniaID,
		"titulo_compania": r.TituloCompania,
	}
}

type ConvenioUpdate struct {
	CompaniaID       *int64          `json:"compania_id"`
	TituloCompania   *string         `json:"titulo_compania"`
	TipoDeConvenio   *string         `json:"tipo_de_convenio"`
	Descripcion      *string         `json:"descripcion"`
	Beneficios       *string         `json:"beneficios"`
	FechaFirma       *entities.Fecha `json:"fecha_firma"`
	FechaVencimiento *entities.Fecha `json:"fecha_vencimiento"`
	Estatus          *string         `json:"estatus"`
}

func (r ConvenioUpdate) Changes() map[string]any {
	c := map[string]any{}
	if r.CompaniaID != nil {
		c["compania_id"] = *r.CompaniaID
	}
	if r.TituloCompania != nil {
		c["titulo_compania"] = *r.TituloCompania
	}
	if r.TipoDeConvenio != nil {
		c["tipo_de_convenio"] = *r.TipoDeConvenio
	}
	if r.Descripcion != nil {
		c["descripcion"] = *r.Descripcion
	}
	if r.Beneficios != nil {
		c["beneficios"] = *r.Beneficios
	}
	if r.FechaFirma != nil {
		c["fecha_firma"] = *r.FechaFirma
	}
	if r.FechaVencimiento != nil {
		c["fecha_vencimiento"] = *r.FechaVencimiento
	}
	if r.Estatus != nil {
		c["estatus"] = *r.Estatus
	}
	return c
}
