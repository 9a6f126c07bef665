package ingest

import "fmt"

// ErrorArchivo rejects a whole upload before any row is persisted: wrong
// extension, unparseable file structure, or missing required columns.
type ErrorArchivo struct {
	Motivo string
}

func (e *ErrorArchivo) Error() string { return e.Motivo }

// ErrorAlmacen wraps a bulk-insert transaction failure. Nothing from the
// batch was committed.
type ErrorAlmacen struct {
	Err error
}

func (e *ErrorAlmacen) Error() string {
	return fmt.Sprintf("error al guardar en BD: %v", e.Err)
}

func (e *ErrorAlmacen) Unwrap() error { return e.Err }
