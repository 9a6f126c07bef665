package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"upc-extension/vinculacion/internal/models/entities"
)

// absent reports whether a raw cell should be treated as missing. Spreadsheet
// exports frequently hand back "nan" for empty cells.
func absent(s string) bool {
	return s == "" || strings.EqualFold(s, "nan")
}

// NormalizeRow converts one raw row into a typed Record using the column
// mapping. A conversion failure fails only this row; the returned error
// carries the human-readable reason for the problem list.
func NormalizeRow(d *Descriptor, mapping map[string]string, raw map[string]string) (Record, error) {
	rec := make(Record, len(d.Fields))

	for _, f := range d.Fields {
		header, mapped := mapping[f.Name]
		value := ""
		if mapped {
			value = strings.TrimSpace(raw[header])
		}

		if absent(value) {
			if !f.Required {
				continue
			}
			if f.Kind == KindString {
				// Required plain strings keep their literal form, empty
				// included. No type failure is possible here.
				rec[f.Name] = value
				continue
			}
			if f.Kind == KindEnum && f.EnumFallback != "" {
				rec[f.Name] = f.EnumFallback
				continue
			}
			return nil, fmt.Errorf("valor requerido ausente para '%s'", f.Name)
		}

		typed, err := coerce(&f, value)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = typed
	}
	return rec, nil
}

func coerce(f *FieldSpec, value string) (any, error) {
	switch f.Kind {
	case KindString:
		return value, nil

	case KindInt:
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("el valor de '%s' debe ser un entero: %s", f.Name, value)
		}
		return n, nil

	case KindDate:
		fecha, err := entities.ParseFecha(value)
		if err != nil {
			return nil, fmt.Errorf("fecha inválida en '%s': %s", f.Name, value)
		}
		return fecha, nil

	case KindTime:
		hora, err := entities.ParseHora(value)
		if err != nil {
			return nil, fmt.Errorf("hora inválida en '%s': %s", f.Name, value)
		}
		return hora, nil

	case KindEnum:
		for _, member := range f.Enum {
			if value == member {
				return value, nil
			}
		}
		if f.EnumFallback != "" {
			return f.EnumFallback, nil
		}
		return nil, fmt.Errorf("valor no permitido para '%s': %s", f.Name, value)

	default:
		return value, nil
	}
}

// rawIdentValues pulls the identifying fields straight from the raw row, for
// problem entries describing rows that never normalized.
func rawIdentValues(d *Descriptor, mapping map[string]string, raw map[string]string) map[string]string {
	out := make(map[string]string, len(d.Ident))
	for _, f := range d.Ident {
		if header, ok := mapping[f]; ok {
			out[f] = strings.TrimSpace(raw[header])
		}
	}
	return out
}
