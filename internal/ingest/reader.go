package ingest

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// Table is the raw tabular content of an upload: the header row plus every
// data row keyed by actual header string, in file order.
type Table struct {
	Headers []string
	Rows    []map[string]string
}

// ReadTable decodes an uploaded file into headers and raw rows. CSV files
// may start with a UTF-8 byte order mark; .xlsx files are read from their
// first sheet. Anything else is a whole-file rejection.
func ReadTable(filename string, payload []byte) (*Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return readCSV(payload)
	case ".xlsx":
		return readExcel(payload)
	default:
		return nil, &ErrorArchivo{Motivo: "Solo se permiten archivos CSV"}
	}
}

func readCSV(payload []byte) (*Table, error) {
	reader := bufio.NewReader(bytes.NewReader(payload))
	if prefix, err := reader.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = reader.Discard(len(byteOrderMark))
	}

	csvReader := csv.NewReader(reader)
	csvReader.TrimLeadingSpace = true
	csvReader.FieldsPerRecord = -1

	records, err := csvReader.ReadAll()
	if err != nil {
		return nil, &ErrorArchivo{Motivo: fmt.Sprintf("no se pudo leer el archivo CSV: %v", err)}
	}
	return buildTable(records)
}

func readExcel(payload []byte) (*Table, error) {
	f, err := excelize.OpenReader(bytes.NewReader(payload))
	if err != nil {
		return nil, &ErrorArchivo{Motivo: fmt.Sprintf("no se pudo abrir el archivo xlsx: %v", err)}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &ErrorArchivo{Motivo: "el archivo xlsx no tiene hojas"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &ErrorArchivo{Motivo: fmt.Sprintf("no se pudo leer el archivo xlsx: %v", err)}
	}
	return buildTable(rows)
}

func buildTable(records [][]string) (*Table, error) {
	var headers []string
	var rows []map[string]string

	for _, record := range records {
		if emptyRow(record) {
			continue
		}
		if headers == nil {
			headers = make([]string, len(record))
			for i, h := range record {
				headers[i] = strings.TrimSpace(h)
			}
			continue
		}
		row := make(map[string]string, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}

	if headers == nil {
		return nil, &ErrorArchivo{Motivo: "el archivo no contiene una fila de encabezados"}
	}
	return &Table{Headers: headers, Rows: rows}, nil
}

func emptyRow(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
