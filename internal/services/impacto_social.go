package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescImpactoSocial configures social impact programs.
var DescImpactoSocial = &ingest.Descriptor{
	Entity: "impacto_social",
	Fields: []ingest.FieldSpec{
		{Name: "titulo", Kind: ingest.KindString, Required: true},
		{Name: "beneficiarios", Kind: ingest.KindString, Required: true},
		{Name: "ubicacion", Kind: ingest.KindString, Required: true},
		{Name: "fecha_inicio", Kind: ingest.KindDate, Required: true},
		{Name: "fecha_final", Kind: ingest.KindDate, Required: true},
		{Name: "descripcion", Kind: ingest.KindString, Required: true},
		{Name: "objetivos", Kind: ingest.KindString, Required: true},
		{Name: "resultados", Kind: ingest.KindString, Required: true},
		{Name: "participantes", Kind: ingest.KindString, Required: true},
		{
			Name:         "estado",
			Kind:         ingest.KindEnum,
			Required:     true,
			Enum:         entities.EstadoImpactoValores,
			EnumFallback: entities.EstadoImpactoPendiente,
		},
	},
	Key:          ingest.KeySpec{Fields: []string{"titulo", "ubicacion"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"titulo", "ubicacion"}},
	Ident:        []string{"titulo", "ubicacion"},
	MensajeExito: "%d registros de impacto social subidos correctamente",
}

func buildImpactoSocial(rec ingest.Record) entities.ImpactoSocial {
	return entities.ImpactoSocial{
		Titulo:        recStr(rec, "titulo"),
		Beneficiarios: recStr(rec, "beneficiarios"),
		Ubicacion:     recStr(rec, "ubicacion"),
		FechaInicio:   recFecha(rec, "fecha_inicio"),
		FechaFinal:    recFecha(rec, "fecha_final"),
		Descripcion:   recStr(rec, "descripcion"),
		Objetivos:     recStr(rec, "objetivos"),
		Resultados:    recStr(rec, "resultados"),
		Participantes: recStr(rec, "participantes"),
		Estado:        recStr(rec, "estado"),
	}
}

// NewImpactoSocialService builds the service for social impact programs.
func NewImpactoSocialService(db *gorm.DB) *EntityService[entities.ImpactoSocial] {
	return NewEntityService(db, DescImpactoSocial, "impacto_id", buildImpactoSocial, Mensajes{
		Conflicto:    "Ya existe un registro de impacto social con este título y ubicación",
		NoEncontrado: "Registro de impacto social no encontrado",
		Eliminado:    "Registro de impacto social eliminado",
	})
}
