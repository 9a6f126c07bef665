package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescEventos configures outreach events.
var DescEventos = &ingest.Descriptor{
	Entity: "eventos",
	Fields: []ingest.FieldSpec{
		{Name: "tipo", Kind: ingest.KindString, Required: true},
		{Name: "fecha", Kind: ingest.KindDate, Required: true},
		{Name: "asistentes", Kind: ingest.KindInt, Required: true},
		{Name: "multimedia", Kind: ingest.KindString, Required: true},
		{Name: "descripcion", Kind: ingest.KindString, Required: true},
	},
	Key:          ingest.KeySpec{Fields: []string{"tipo", "fecha", "descripcion"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"tipo", "fecha", "descripcion"}},
	Ident:        []string{"tipo", "fecha"},
	MensajeExito: "%d eventos subidos correctamente",
}

func buildEvento(rec ingest.Record) entities.Evento {
	return entities.Evento{
		Tipo:        recStr(rec, "tipo"),
		Fecha:       recFecha(rec, "fecha"),
		Asistentes:  recInt(rec, "asistentes"),
		Multimedia:  recStr(rec, "multimedia"),
		Descripcion: recStr(rec, "descripcion"),
	}
}

// NewEventoService builds the service for events.
func NewEventoService(db *gorm.DB) *EntityService[entities.Evento] {
	return NewEntityService(db, DescEventos, "evento_id", buildEvento, Mensajes{
		Conflicto:    "Ya existe un evento con este tipo, fecha y descripción",
		NoEncontrado: "Evento no encontrado",
		Eliminado:    "Evento eliminado",
	})
}
