package ingest

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSink keeps records in a slice and matches natural keys the way the GORM
// repository does.
type memSink struct {
	rows      []Record
	insertErr error
}

func (s *memSink) FindByKey(_ context.Context, rec Record, key KeySpec) (uint, bool, error) {
	for i, row := range s.rows {
		if key.Mode == MatchAny {
			for _, f := range key.Fields {
				if valueString(row[f]) == valueString(rec[f]) {
					return uint(i + 1), true, nil
				}
			}
			continue
		}
		all := true
		for _, f := range key.Fields {
			if valueString(row[f]) != valueString(rec[f]) {
				all = false
				break
			}
		}
		if all {
			return uint(i + 1), true, nil
		}
	}
	return 0, false, nil
}

func (s *memSink) InsertBatch(_ context.Context, recs []Record) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	s.rows = append(s.rows, recs...)
	return nil
}

func empresasDesc() *Descriptor {
	return &Descriptor{
		Entity: "empresas",
		Fields: []FieldSpec{
			{Name: "nombre_empresa", Kind: KindString, Required: true},
			{Name: "nit", Kind: KindString, Required: true},
			{Name: "sector", Kind: KindString, Required: true},
			{Name: "fecha_convenio", Kind: KindDate, Required: true},
		},
		Key:          KeySpec{Fields: []string{"nit", "nombre_empresa"}, Mode: MatchAny},
		CreateKey:    KeySpec{Fields: []string{"nit"}},
		Ident:        []string{"nombre_empresa", "nit"},
		MensajeExito: "%d empresas subidas correctamente",
	}
}

const empresasCSV = "nombre_empresa,nit,sector,fecha_convenio\n" +
	"Acme,900.1,Tecnología,2024-01-15\n" +
	"Beta,900.2,Salud,2024-02-01\n" +
	"Acme,900.1,Tecnología,2024-01-15\n" + // in-file duplicate
	"Gamma,900.3,Educación,15-01-2024\n" + // bad date
	"Previa,900.9,Energía,2024-03-01\n" // already stored

func TestEngineIngest(t *testing.T) {
	sink := &memSink{rows: []Record{
		{"nombre_empresa": "Previa", "nit": "900.9"},
	}}
	engine := NewEngine(empresasDesc(), sink)

	resumen, err := engine.Ingest(context.Background(), "empresas.csv", []byte(empresasCSV))
	require.NoError(t, err)

	assert.Equal(t, "2 empresas subidas correctamente", resumen.Mensaje)
	assert.Equal(t, 5, resumen.TotalRegistros)
	assert.Equal(t, 2, resumen.RegistrosValidos)
	assert.Equal(t, 1, resumen.DuplicadosCSV)
	assert.Equal(t, 1, resumen.DuplicadosBD)
	assert.Equal(t, 1, resumen.ErroresFormato)
	assert.Equal(t, 3, resumen.TotalProblemas)
	require.Len(t, resumen.DetalleProblemas, 3)

	// Problem order: in-file dups, then stored dups, then format errors.
	assert.Equal(t, "Registro duplicado dentro del archivo CSV", resumen.DetalleProblemas[0]["error"])
	assert.Equal(t, "Ya existe en la base de datos (ID: 1)", resumen.DetalleProblemas[1]["error"])
	assert.Contains(t, resumen.DetalleProblemas[2]["error"], "Error de formato")
	assert.Equal(t, "Gamma", resumen.DetalleProblemas[2]["nombre_empresa"])

	// Only the two fresh rows were committed.
	assert.Len(t, sink.rows, 3)
}

func TestEngineIngestIdempotentReupload(t *testing.T) {
	sink := &memSink{}
	engine := NewEngine(empresasDesc(), sink)

	csv := "nombre_empresa,nit,sector,fecha_convenio\nAcme,900.1,Tecnología,2024-01-15\n"

	first, err := engine.Ingest(context.Background(), "empresas.csv", []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 1, first.RegistrosValidos)

	second, err := engine.Ingest(context.Background(), "empresas.csv", []byte(csv))
	require.NoError(t, err)
	assert.Equal(t, 0, second.RegistrosValidos)
	assert.Equal(t, 1, second.DuplicadosBD)
	assert.Len(t, sink.rows, 1)
}

func TestEngineIngestRejectsWrongExtension(t *testing.T) {
	engine := NewEngine(empresasDesc(), &memSink{})

	_, err := engine.Ingest(context.Background(), "empresas.txt", []byte("x"))
	var archivo *ErrorArchivo
	require.ErrorAs(t, err, &archivo)
	assert.Equal(t, "Solo se permiten archivos CSV", archivo.Motivo)
}

func TestEngineIngestMissingColumns(t *testing.T) {
	engine := NewEngine(empresasDesc(), &memSink{})

	_, err := engine.Ingest(context.Background(), "empresas.csv",
		[]byte("nombre_empresa,sector\nAcme,Tec\n"))
	var archivo *ErrorArchivo
	require.ErrorAs(t, err, &archivo)
	assert.Contains(t, archivo.Motivo, "nit")
	assert.Contains(t, archivo.Motivo, "fecha_convenio")
}

func TestEngineIngestStorageFailure(t *testing.T) {
	sink := &memSink{insertErr: errors.New("fk violation")}
	engine := NewEngine(empresasDesc(), sink)

	_, err := engine.Ingest(context.Background(), "empresas.csv",
		[]byte("nombre_empresa,nit,sector,fecha_convenio\nAcme,900.1,Tec,2024-01-15\n"))
	var almacen *ErrorAlmacen
	require.ErrorAs(t, err, &almacen)
	assert.Empty(t, sink.rows)
}

func TestEngineIngestBOMAndEmptyRows(t *testing.T) {
	sink := &memSink{}
	engine := NewEngine(empresasDesc(), sink)

	payload := append([]byte{0xEF, 0xBB, 0xBF},
		[]byte("nombre_empresa,nit,sector,fecha_convenio\n\nAcme,900.1,Tec,2024-01-15\n,,,\n")...)

	resumen, err := engine.Ingest(context.Background(), "empresas.csv", payload)
	require.NoError(t, err)
	assert.Equal(t, 1, resumen.TotalRegistros)
	assert.Equal(t, 1, resumen.RegistrosValidos)
}
