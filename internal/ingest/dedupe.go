package ingest

import "strings"

const mensajeDuplicadoCSV = "Registro duplicado dentro del archivo CSV"

// compositeKey joins the key field values of a record with an unprintable
// separator. Values are compared after normalization, never fuzzily.
func compositeKey(rec Record, fields []string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = valueString(rec[f])
	}
	return strings.Join(parts, "\x1f")
}

// DedupeBatch partitions normalized rows, in file order, into first
// occurrences and in-file duplicates. The earliest row holding a natural key
// value is kept; later rows sharing it are reported, never merged.
func DedupeBatch(d *Descriptor, recs []Record) (fresh []Record, dups []Problem) {
	switch d.Key.Mode {
	case MatchAny:
		// A row collides when any single key field value was already seen.
		seen := make(map[string]map[string]struct{}, len(d.Key.Fields))
		for _, f := range d.Key.Fields {
			seen[f] = make(map[string]struct{})
		}
		for _, rec := range recs {
			dup := false
			for _, f := range d.Key.Fields {
				if _, ok := seen[f][valueString(rec[f])]; ok {
					dup = true
					break
				}
			}
			if dup {
				dups = append(dups, d.problemFor(d.identValues(rec), mensajeDuplicadoCSV))
				continue
			}
			for _, f := range d.Key.Fields {
				seen[f][valueString(rec[f])] = struct{}{}
			}
			fresh = append(fresh, rec)
		}

	default: // MatchAll
		seen := make(map[string]struct{}, len(recs))
		for _, rec := range recs {
			key := compositeKey(rec, d.Key.Fields)
			if _, ok := seen[key]; ok {
				dups = append(dups, d.problemFor(d.identValues(rec), mensajeDuplicadoCSV))
				continue
			}
			seen[key] = struct{}{}
			fresh = append(fresh, rec)
		}
	}
	return fresh, dups
}
