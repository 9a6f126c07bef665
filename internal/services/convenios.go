package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescConvenios configures agreements. compania_id references empresas; a
// broken reference surfaces as a storage error that rolls back the whole
// upload.
var DescConvenios = &ingest.Descriptor{
	Entity: "convenios",
	Fields: []ingest.FieldSpec{
		{Name: "compania_id", Kind: ingest.KindInt, Required: true},
		{Name: "titulo_compania", Kind: ingest.KindString, Required: true},
		{Name: "tipo_de_convenio", Kind: ingest.KindString, Required: true},
		{Name: "descripcion", Kind: ingest.KindString, Required: true},
		{Name: "beneficios", Kind: ingest.KindString, Required: true},
		{Name: "fecha_firma", Kind: ingest.KindDate, Required: true},
		{Name: "fecha_vencimiento", Kind: ingest.KindDate, Required: true},
		{
			Name:         "estatus",
			Kind:         ingest.KindEnum,
			Required:     true,
			Enum:         entities.EstatusConvenioValores,
			EnumFallback: entities.EstatusConvenioPendiente,
		},
	},
	Key:          ingest.KeySpec{Fields: []string{"compania_id", "titulo_compania"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"compania_id", "titulo_compania"}},
	Ident:        []string{"compania_id", "titulo_compania"},
	MensajeExito: "%d convenios subidos correctamente",
}

func buildConvenio(rec ingest.Record) entities.Convenio {
	return entities.Convenio{
		CompaniaID:       recInt(rec, "compania_id"),
		TituloCompania:   recStr(rec, "titulo_compania"),
		TipoDeConvenio:   recStr(rec, "tipo_de_convenio"),
		Descripcion:      recStr(rec, "descripcion"),
		Beneficios:       recStr(rec, "beneficios"),
		FechaFirma:       recFecha(rec, "fecha_firma"),
		FechaVencimiento: recFecha(rec, "fecha_vencimiento"),
		Estatus:          recStr(rec, "estatus"),
	}
}

// NewConvenioService builds the service for agreements.
func NewConvenioService(db *gorm.DB) *EntityService[entities.Convenio] {
	return NewEntityService(db, DescConvenios, "convenio_id", buildConvenio, Mensajes{
		Conflicto:    "Ya existe un convenio con este título para esta compañía",
		NoEncontrado: "Convenio no encontrado",
		Eliminado:    "Convenio eliminado",
	})
}
