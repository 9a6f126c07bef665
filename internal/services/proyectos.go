package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescProyectos configures outreach projects.
var DescProyectos = &ingest.Descriptor{
	Entity: "proyectos",
	Fields: []ingest.FieldSpec{
		{Name: "titulo", Kind: ingest.KindString, Required: true},
		{Name: "area_tematica", Kind: ingest.KindString, Required: true},
		{Name: "fecha_inicio", Kind: ingest.KindDate, Required: true},
	},
	Key:          ingest.KeySpec{Fields: []string{"titulo", "area_tematica"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"titulo", "area_tematica"}},
	Ident:        []string{"titulo", "area_tematica"},
	MensajeExito: "%d proyectos subidos correctamente",
}

func buildProyecto(rec ingest.Record) entities.Proyecto {
	return entities.Proyecto{
		Titulo:       recStr(rec, "titulo"),
		AreaTematica: recStr(rec, "area_tematica"),
		FechaInicio:  recFecha(rec, "fecha_inicio"),
	}
}

// NewProyectoService builds the service for projects.
func NewProyectoService(db *gorm.DB) *EntityService[entities.Proyecto] {
	return NewEntityService(db, DescProyectos, "proyecto_id", buildProyecto, Mensajes{
		Conflicto:    "Ya existe un proyecto con este título en esta área temática",
		NoEncontrado: "Proyecto no encontrado",
		Eliminado:    "Proyecto eliminado",
	})
}
