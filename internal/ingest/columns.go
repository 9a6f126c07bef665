package ingest

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes and drops combining marks so "año" folds to "ano".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizeHeader folds a header for fuzzy comparison: trim, drop accents,
// lowercase, remove spaces and underscores.
func normalizeHeader(s string) string {
	s = strings.TrimSpace(s)
	if folded, _, err := transform.String(stripAccents, s); err == nil {
		s = folded
	}
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// ResolveColumns maps every canonical field of the descriptor to the actual
// header found in the file. Required fields with no matching header reject
// the whole upload.
func ResolveColumns(d *Descriptor, headers []string) (map[string]string, error) {
	if d.Fuzzy {
		return resolveFuzzy(d, headers)
	}
	return resolveExact(d, headers)
}

// resolveFuzzy tries each field's aliases in priority order against the
// folded headers. The first alias with a matching header wins; among headers
// matching the same alias the earliest in file order wins, so iteration
// order never changes the result.
func resolveFuzzy(d *Descriptor, headers []string) (map[string]string, error) {
	folded := make([]string, len(headers))
	for i, h := range headers {
		folded[i] = normalizeHeader(h)
	}

	mapping := make(map[string]string, len(d.Fields))
	for _, f := range d.Fields {
		candidates := f.Aliases
		if len(candidates) == 0 {
			candidates = []string{f.Name}
		}

		var match string
		for _, alias := range candidates {
			want := normalizeHeader(alias)
			for i, got := range folded {
				if got == want {
					match = headers[i]
					break
				}
			}
			if match != "" {
				break
			}
		}

		if match == "" {
			if f.Required {
				return nil, &ErrorArchivo{Motivo: fmt.Sprintf(
					"Falta la columna para '%s'. Encabezados recibidos: %v", f.Name, headers)}
			}
			continue
		}
		mapping[f.Name] = match
	}
	return mapping, nil
}

// resolveExact requires header names to equal field names after trimming and
// lowercasing, the behavior of the fixed-column entity types.
func resolveExact(d *Descriptor, headers []string) (map[string]string, error) {
	byName := make(map[string]string, len(headers))
	for _, h := range headers {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := byName[key]; !dup {
			byName[key] = h
		}
	}

	mapping := make(map[string]string, len(d.Fields))
	var missing []string
	for _, f := range d.Fields {
		h, ok := byName[f.Name]
		if !ok {
			if f.Required {
				missing = append(missing, f.Name)
			}
			continue
		}
		mapping[f.Name] = h
	}

	if len(missing) > 0 {
		return nil, &ErrorArchivo{Motivo: fmt.Sprintf(
			"El CSV debe contener las columnas: %s. Encabezados recibidos: %v",
			strings.Join(missing, ", "), headers)}
	}
	return mapping, nil
}
