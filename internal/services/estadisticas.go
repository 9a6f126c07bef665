package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescEstadisticas configures institutional indicators.
var DescEstadisticas = &ingest.Descriptor{
	Entity: "estadisticas",
	Fields: []ingest.FieldSpec{
		{Name: "categoria", Kind: ingest.KindString, Required: true},
		{Name: "value", Kind: ingest.KindString, Required: true},
		{Name: "descripcion", Kind: ingest.KindString, Required: true},
	},
	Key:          ingest.KeySpec{Fields: []string{"categoria", "descripcion"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"categoria", "descripcion"}},
	Ident:        []string{"categoria", "descripcion"},
	MensajeExito: "%d estadísticas subidas correctamente",
}

func buildEstadistica(rec ingest.Record) entities.Estadistica {
	return entities.Estadistica{
		Categoria:   recStr(rec, "categoria"),
		Value:       recStr(rec, "value"),
		Descripcion: recStr(rec, "descripcion"),
	}
}

// NewEstadisticaService builds the service for indicators.
func NewEstadisticaService(db *gorm.DB) *EntityService[entities.Estadistica] {
	return NewEntityService(db, DescEstadisticas, "estadistica_id", buildEstadistica, Mensajes{
		Conflicto:    "Ya existe una estadística con esta categoría y descripción",
		NoEncontrado: "Estadística no encontrada",
		Eliminado:    "Estadística eliminada",
	})
}
