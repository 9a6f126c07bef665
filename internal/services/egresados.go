package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescEgresados configures graduates. This is the one entity whose CSV
// headers are matched fuzzily against alias lists, since employability
// spreadsheets arrive from many hands. A graduate already known by name OR
// email counts as a duplicate.
var DescEgresados = &ingest.Descriptor{
	Entity: "egresados",
	Fuzzy:  true,
	Fields: []ingest.FieldSpec{
		{
			Name:     "nombre_completo",
			Kind:     ingest.KindString,
			Required: true,
			Aliases:  []string{"nombre_completo", "nombre completo", "nombre"},
		},
		{
			Name:     "año_graduacion",
			Kind:     ingest.KindDate,
			Required: true,
			Aliases: []string{
				"año_graduacion", "ano_graduacion",
				"año de graduacion", "ano de graduacion",
				"año", "ano",
			},
		},
		{
			Name:         "empleabilidad",
			Kind:         ingest.KindEnum,
			Required:     true,
			Aliases:      []string{"empleabilidad", "empleo", "estado_empleo"},
			Enum:         entities.EmpleabilidadValores,
			EnumFallback: entities.EmpleabilidadDesempleado,
		},
		{
			Name:     "email",
			Kind:     ingest.KindString,
			Required: true,
			Aliases:  []string{"email", "correo", "correo_electronico", "e-mail"},
		},
	},
	Key:       ingest.KeySpec{Fields: []string{"nombre_completo", "email"}, Mode: ingest.MatchAny},
	CreateKey: ingest.KeySpec{Fields: []string{"email"}},
	Ident:     []string{"nombre_completo", "email"},
	Columns:   map[string]string{"año_graduacion": "anio_graduacion"},

	MensajeExito: "%d egresados subidos correctamente",
}

func buildEgresado(rec ingest.Record) entities.Egresado {
	return entities.Egresado{
		NombreCompleto: recStr(rec, "nombre_completo"),
		AnioGraduacion: recFecha(rec, "año_graduacion"),
		Empleabilidad:  recStr(rec, "empleabilidad"),
		Email:          recStr(rec, "email"),
	}
}

// NewEgresadoService builds the service for graduates.
func NewEgresadoService(db *gorm.DB) *EntityService[entities.Egresado] {
	return NewEntityService(db, DescEgresados, "egresado_id", buildEgresado, Mensajes{
		Conflicto:    "Ya existe un egresado con este email",
		NoEncontrado: "Egresado no encontrado",
		Eliminado:    "Egresado eliminado",
	})
}
