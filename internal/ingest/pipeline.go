package ingest

import (
	"context"
	"errors"
	"fmt"

	"github.com/zoobzio/pipz"
)

// Sink is the storage side of the pipeline: natural-key lookups against
// existing records and the transactional bulk insert. Implemented by the
// generic GORM repository.
type Sink interface {
	// FindByKey returns the id of an existing record matching the natural
	// key values of rec under the key's mode, if any.
	FindByKey(ctx context.Context, rec Record, key KeySpec) (uint, bool, error)

	// InsertBatch persists all records in a single transaction. On error
	// nothing is committed.
	InsertBatch(ctx context.Context, recs []Record) error
}

// Resumen is the outcome of one bulk upload, serialized as the API response.
// Invariant: TotalRegistros = RegistrosValidos + DuplicadosCSV +
// DuplicadosBD + ErroresFormato.
type Resumen struct {
	Mensaje          string    `json:"mensaje"`
	TotalRegistros   int       `json:"total_registros"`
	RegistrosValidos int       `json:"registros_validos"`
	DuplicadosCSV    int       `json:"registros_duplicados_csv"`
	DuplicadosBD     int       `json:"registros_duplicados_bd"`
	ErroresFormato   int       `json:"registros_con_errores_formato"`
	TotalProblemas   int       `json:"total_problemas"`
	DetalleProblemas []Problem `json:"detalle_problemas"`
}

// lote carries one upload through the pipeline stages.
type lote struct {
	table   *Table
	mapping map[string]string

	registros      []Record
	erroresFormato []Problem

	frescos       []Record
	duplicadosCSV []Problem

	insertables  []Record
	duplicadosBD []Problem
}

// Engine runs the four-stage ingestion pipeline for one entity type. Stages
// execute strictly in sequence; the only suspension point is the storage
// transaction at the end.
type Engine struct {
	desc *Descriptor
	sink Sink
	seq  *pipz.Sequence[*lote]
}

// NewEngine wires the pipeline for a descriptor and its storage sink.
func NewEngine(desc *Descriptor, sink Sink) *Engine {
	e := &Engine{desc: desc, sink: sink}
	e.seq = pipz.NewSequence[*lote]("ingesta_"+desc.Entity,
		pipz.Apply("resolver_columnas", e.resolverColumnas),
		pipz.Apply("normalizar_filas", e.normalizarFilas),
		pipz.Apply("dedupe_archivo", e.dedupeArchivo),
		pipz.Apply("dedupe_almacen", e.dedupeAlmacen),
		pipz.Apply("insertar", e.insertar),
	)
	return e
}

// Ingest processes one uploaded file and builds the unified outcome. The
// error, when non-nil, is either an *ErrorArchivo (whole-file rejection) or
// an *ErrorAlmacen (transaction failure, nothing committed).
func (e *Engine) Ingest(ctx context.Context, filename string, payload []byte) (*Resumen, error) {
	table, err := ReadTable(filename, payload)
	if err != nil {
		return nil, err
	}

	out, err := e.seq.Process(ctx, &lote{table: table})
	if err != nil {
		var archivo *ErrorArchivo
		if errors.As(err, &archivo) {
			return nil, archivo
		}
		var almacen *ErrorAlmacen
		if errors.As(err, &almacen) {
			return nil, almacen
		}
		return nil, err
	}
	return e.resumen(out), nil
}

func (e *Engine) resolverColumnas(_ context.Context, l *lote) (*lote, error) {
	mapping, err := ResolveColumns(e.desc, l.table.Headers)
	if err != nil {
		return nil, err
	}
	l.mapping = mapping
	return l, nil
}

func (e *Engine) normalizarFilas(_ context.Context, l *lote) (*lote, error) {
	for _, raw := range l.table.Rows {
		rec, err := NormalizeRow(e.desc, l.mapping, raw)
		if err != nil {
			ident := rawIdentValues(e.desc, l.mapping, raw)
			l.erroresFormato = append(l.erroresFormato,
				e.desc.problemFor(ident, fmt.Sprintf("Error de formato: %v", err)))
			continue
		}
		l.registros = append(l.registros, rec)
	}
	return l, nil
}

func (e *Engine) dedupeArchivo(_ context.Context, l *lote) (*lote, error) {
	l.frescos, l.duplicadosCSV = DedupeBatch(e.desc, l.registros)
	return l, nil
}

func (e *Engine) dedupeAlmacen(ctx context.Context, l *lote) (*lote, error) {
	for _, rec := range l.frescos {
		id, found, err := e.sink.FindByKey(ctx, rec, e.desc.Key)
		if err != nil {
			return nil, &ErrorAlmacen{Err: err}
		}
		if found {
			l.duplicadosBD = append(l.duplicadosBD, e.desc.problemFor(
				e.desc.identValues(rec),
				fmt.Sprintf("Ya existe en la base de datos (ID: %d)", id)))
			continue
		}
		l.insertables = append(l.insertables, rec)
	}
	return l, nil
}

func (e *Engine) insertar(ctx context.Context, l *lote) (*lote, error) {
	if len(l.insertables) == 0 {
		return l, nil
	}
	if err := e.sink.InsertBatch(ctx, l.insertables); err != nil {
		return nil, &ErrorAlmacen{Err: err}
	}
	return l, nil
}

// resumen assembles the outcome. Problem order matches the pipeline:
// in-file duplicates, then in-storage duplicates, then format errors.
func (e *Engine) resumen(l *lote) *Resumen {
	detalle := make([]Problem, 0, len(l.duplicadosCSV)+len(l.duplicadosBD)+len(l.erroresFormato))
	detalle = append(detalle, l.duplicadosCSV...)
	detalle = append(detalle, l.duplicadosBD...)
	detalle = append(detalle, l.erroresFormato...)

	return &Resumen{
		Mensaje:          fmt.Sprintf(e.desc.MensajeExito, len(l.insertables)),
		TotalRegistros:   len(l.insertables) + len(detalle),
		RegistrosValidos: len(l.insertables),
		DuplicadosCSV:    len(l.duplicadosCSV),
		DuplicadosBD:     len(l.duplicadosBD),
		ErroresFormato:   len(l.erroresFormato),
		TotalProblemas:   len(detalle),
		DetalleProblemas: detalle,
	}
}
