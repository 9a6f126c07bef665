package services

import (
	"gorm.io/gorm"

	"upc-extension/vinculacion/internal/ingest"
	"upc-extension/vinculacion/internal/models/entities"
)

// DescEmpresas configures partner companies. Storage dedup matches on nit OR
// nombre_empresa; single-record create only rejects an existing nit.
var DescEmpresas = &ingest.Descriptor{
	Entity: "empresas",
	Fields: []ingest.FieldSpec{
		{Name: "nombre_empresa", Kind: ingest.KindString, Required: true},
		{Name: "nit", Kind: ingest.KindString, Required: true},
		{Name: "sector", Kind: ingest.KindString, Required: true},
		{Name: "fecha_convenio", Kind: ingest.KindDate, Required: true},
	},
	Key:          ingest.KeySpec{Fields: []string{"nit", "nombre_empresa"}, Mode: ingest.MatchAny},
	CreateKey:    ingest.KeySpec{Fields: []string{"nit"}},
	Ident:        []string{"nombre_empresa", "nit"},
	MensajeExito: "%d empresas subidas correctamente",
}

func buildEmpresa(rec ingest.Record) entities.Empresa {
	return entities.Empresa{
		NombreEmpresa: recStr(rec, "nombre_empresa"),
		NIT:           recStr(rec, "nit"),
		Sector:        recStr(rec, "sector"),
		FechaConvenio: recFecha(rec, "fecha_convenio"),
	}
}

// NewEmpresaService builds the service for partner companies.
func NewEmpresaService(db *gorm.DB) *EntityService[entities.Empresa] {
	return NewEntityService(db, DescEmpresas, "empresa_id", buildEmpresa, Mensajes{
		Conflicto:    "Ya existe una empresa con este NIT",
		NoEncontrado: "Empresa no encontrada",
		Eliminado:    "Empresa eliminada",
	})
}
