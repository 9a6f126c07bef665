package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"upc-extension/vinculacion/internal/models/entities"
)

// Record is one normalized row: canonical field name -> typed value
// (string, int64, entities.Fecha or entities.Hora). Absent optional fields
// are simply missing from the map.
type Record map[string]any

// Problem is one rejected row as reported in detalle_problemas: the entity's
// identifying fields plus an "error" reason string.
type Problem map[string]any

// FieldKind selects the conversion applied to a raw CSV cell.
type FieldKind int

const (
	KindString FieldKind = iota
	KindInt
	KindDate
	KindTime
	KindEnum
)

// FieldSpec describes one canonical field of an entity type.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool

	// Aliases are the accepted header spellings in priority order; when
	// empty only the canonical name matches. Consulted in fuzzy mode only.
	Aliases []string

	// Enum members, compared case-sensitively. EnumFallback, when non-empty,
	// replaces unrecognized values instead of failing the row.
	Enum         []string
	EnumFallback string
}

// KeyMode selects how a multi-field natural key matches.
type KeyMode int

const (
	// MatchAll requires every key field to be equal (conjunction).
	MatchAll KeyMode = iota
	// MatchAny treats equality on any single key field as a match
	// (disjunction, e.g. empresas by nit OR nombre_empresa).
	MatchAny
)

// KeySpec is a natural key definition.
type KeySpec struct {
	Fields []string
	Mode   KeyMode
}

// Descriptor configures the ingestion engine and CRUD services for one
// entity type. The ten entity descriptors live in internal/services.
type Descriptor struct {
	// Entity is the route segment and table label, e.g. "empresas".
	Entity string

	Fields []FieldSpec

	// Fuzzy enables alias-based header matching with accent/space folding.
	// When false, required headers must match field names exactly after
	// trimming and lowercasing.
	Fuzzy bool

	// Key is the natural key used for both in-file and in-storage dedup.
	Key KeySpec

	// CreateKey is the conflict check run by single-record create. It may be
	// narrower than Key (empresas create only checks nit).
	CreateKey KeySpec

	// Ident lists the fields echoed into problem entries.
	Ident []string

	// Columns maps canonical field names to database columns when they
	// differ (año_graduacion -> anio_graduacion).
	Columns map[string]string

	// MensajeExito formats the success message, e.g.
	// "%d empresas subidas correctamente".
	MensajeExito string
}

// Field returns the spec for a canonical field name, or nil.
func (d *Descriptor) Field(name string) *FieldSpec {
	for i := range d.Fields {
		if d.Fields[i].Name == name {
			return &d.Fields[i]
		}
	}
	return nil
}

// Column returns the database column backing a canonical field.
func (d *Descriptor) Column(field string) string {
	if d.Columns != nil {
		if col, ok := d.Columns[field]; ok {
			return col
		}
	}
	return field
}

// valueString renders a typed value canonically for key comparison and
// problem reporting.
func valueString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case int64:
		return strconv.FormatInt(t, 10)
	case entities.Fecha:
		return t.String()
	case entities.Hora:
		return string(t)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", t))
	}
}

// problemFor builds a problem entry carrying the descriptor's identifying
// fields out of whatever values are available.
func (d *Descriptor) problemFor(values map[string]string, reason string) Problem {
	p := Problem{}
	for _, f := range d.Ident {
		p[f] = values[f]
	}
	p["error"] = reason
	return p
}

// identValues extracts the identifying fields of a normalized record as
// strings.
func (d *Descriptor) identValues(rec Record) map[string]string {
	out := make(map[string]string, len(d.Ident))
	for _, f := range d.Ident {
		if v, ok := rec[f]; ok {
			out[f] = valueString(v)
		}
	}
	return out
}
