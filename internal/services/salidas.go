package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescSalidas configures student field trips. observaciones is the one
// optional field across the catalog.
var DescSalidas = &ingest.Descriptor{
	Entity: "salidas_practicas",
	Fields: []ingest.FieldSpec{
		{Name: "fecha_salida", Kind: ingest.KindDate, Required: true},
		{Name: "lugar_destino", Kind: ingest.KindString, Required: true},
		{Name: "responsable", Kind: ingest.KindString, Required: true},
		{Name: "cantidad_estudiantes", Kind: ingest.KindInt, Required: true},
		{Name: "hora_salida", Kind: ingest.KindTime, Required: true},
		{Name: "hora_regreso", Kind: ingest.KindTime, Required: true},
		{Name: "observaciones", Kind: ingest.KindString},
	},
	Key:          ingest.KeySpec{Fields: []string{"fecha_salida", "lugar_destino", "hora_salida"}},
	CreateKey:    ingest.KeySpec{Fields: []string{"fecha_salida", "lugar_destino", "hora_salida"}},
	Ident:        []string{"fecha_salida", "lugar_destino"},
	MensajeExito: "%d salidas prácticas subidas correctamente",
}

func buildSalida(rec ingest.Record) entities.SalidaPractica {
	return entities.SalidaPractica{
		FechaSalida:         recFecha(rec, "fecha_salida"),
		LugarDestino:        recStr(rec, "lugar_destino"),
		Responsable:         recStr(rec, "responsable"),
		CantidadEstudiantes: recInt(rec, "cantidad_estudiantes"),
		HoraSalida:          recHora(rec, "hora_salida"),
		HoraRegreso:         recHora(rec, "hora_regreso"),
		Observaciones:       recStr(rec, "observaciones"),
	}
}

// NewSalidaService builds the service for field trips.
func NewSalidaService(db *gorm.DB) *EntityService[entities.SalidaPractica] {
	return NewEntityService(db, DescSalidas, "salida_practica_id", buildSalida, Mensajes{
		Conflicto:    "Ya existe una salida práctica con esta fecha, destino y hora",
		NoEncontrado: "Salida práctica no encontrada",
		Eliminado:    "Salida práctica eliminada",
	})
}
