package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescPublicaciones configures academic publications.
var DescPublicaciones = &ingest.Descriptor{
	Entity: "publicaciones",
	Fields: []ingest.FieldSpec{
		{Name: "titulo", Kind: ingest.KindString, Required: true},
		{Name: "autores", Kind: ingest.KindString, Required: true},
		{Name: "area", Kind: ingest.KindString, Required: true},
		{Name: "fecha", Kind: ingest.KindDate, Required: true},
		{Name: "enlace", Kind: ingest.KindString, Required: true},
		{Name: "tipo", Kind: ingest.KindString, Required: true},
	},
	Key:          ingest.KeySpec{Fields: []string{"titulo", "autores"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"titulo", "autores"}},
	Ident:        []string{"titulo", "autores"},
	MensajeExito: "%d publicaciones subidas correctamente",
}

func buildPublicacion(rec ingest.Record) entities.Publicacion {
	return entities.Publicacion{
		Titulo:  recStr(rec, "titulo"),
		Autores: recStr(rec, "autores"),
		Area:    recStr(rec, "area"),
		Fecha:   recFecha(rec, "fecha"),
		Enlace:  recStr(rec, "enlace"),
		Tipo:    recStr(rec, "tipo"),
	}
}

// NewPublicacionService builds the service for publications.
func NewPublicacionService(db *gorm.DB) *EntityService[entities.Publicacion] {
	return NewEntityService(db, DescPublicaciones, "publicacion_id", buildPublicacion, Mensajes{
		Conflicto:    "Ya existe una publicación con este título y autores",
		NoEncontrado: "Publicación no encontrada",
		Eliminado:    "Publicación eliminada",
	})
}
