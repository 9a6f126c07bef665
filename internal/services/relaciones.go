package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescRelaciones configures international relations. tipo is a strict enum
// (an unknown kind fails the row); estado falls back to pending.
var DescRelaciones = &ingest.Descriptor{
	Entity: "relaciones_internacionales",
	Fields: []ingest.FieldSpec{
		{Name: "nombre", Kind: ingest.KindString, Required: true},
		{Name: "pais", Kind: ingest.KindString, Required: true},
		{Name: "institucion", Kind: ingest.KindString, Required: true},
		{
			Name:     "tipo",
			Kind:     ingest.KindEnum,
			Required: true,
			Enum:     entities.TipoRelacionValores,
		},
		{Name: "fecha_inicio", Kind: ingest.KindDate, Required: true},
		{Name: "fecha_finalizacion", Kind: ingest.KindDate, Required: true},
		{Name: "descripcion", Kind: ingest.KindString, Required: true},
		{Name: "participantes", Kind: ingest.KindString, Required: true},
		{Name: "resultados", Kind: ingest.KindString, Required: true},
		{
			Name:         "estado",
			Kind:         ingest.KindEnum,
			Required:     true,
			Enum:         entities.EstadoRelacionValores,
			EnumFallback: entities.EstadoRelacionPendiente,
		},
	},
	Key:          ingest.KeySpec{Fields: []string{"nombre", "institucion"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"nombre", "institucion"}},
	Ident:        []string{"nombre", "institucion"},
	MensajeExito: "%d relaciones internacionales subidas correctamente",
}

func buildRelacion(rec ingest.Record) entities.RelacionInternacional {
	return entities.RelacionInternacional{
		Nombre:            recStr(rec, "nombre"),
		Pais:              recStr(rec, "pais"),
		Institucion:       recStr(rec, "institucion"),
		Tipo:              recStr(rec, "tipo"),
		FechaInicio:       recFecha(rec, "fecha_inicio"),
		FechaFinalizacion: recFecha(rec, "fecha_finalizacion"),
		Descripcion:       recStr(rec, "descripcion"),
		Participantes:     recStr(rec, "participantes"),
		Resultados:        recStr(rec, "resultados"),
		Estado:            recStr(rec, "estado"),
	}
}

// NewRelacionService builds the service for international relations.
func NewRelacionService(db *gorm.DB) *EntityService[entities.RelacionInternacional] {
	return NewEntityService(db, DescRelaciones, "relacion_id", buildRelacion, Mensajes{
		Conflicto:    "Ya existe una relación internacional con este nombre e institución",
		NoEncontrado: "Relación internacional no encontrada",
		Eliminado:    "Relación internacional eliminada",
	})
}
