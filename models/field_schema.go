package models

import (
	"strconv"
	"strings"
	"time"
)

// Cell value formats. Short dates are used for human-entered date columns,
// the timestamp format only for the machine-written "last updated" column.
// The two must never be mixed.
const (
	ShortDateFormat = "2006-01-02"
	TimestampFormat = time.RFC3339
)

// Field binds one record field to one spreadsheet column: a human label,
// symmetric encode/decode between the native type and the string cell, and
// native equality so diffs don't fire on encoding quirks.
type Field[T any] struct {
	Label    string
	Required bool
	Encode   func(r *T) string
	Decode   func(r *T, cell string) error
	Equal    func(a, b *T) bool
}

// Schema is the ordered field list defining how a record type maps to a row.
// Column position is the index in the slice.
type Schema[T any] []Field[T]

// Labels returns the column labels in order, for header rows.
func (s Schema[T]) Labels() []string {
	labels := make([]string, len(s))
	for i, f := range s {
		labels[i] = f.Label
	}
	return labels
}

// DecodeRow decodes an ordered string row into a record. Missing trailing
// cells are treated as empty strings and extra cells are ignored. The row
// is rejected (nil, false) when a decoder fails or a required field is
// empty after decoding; rejection is absence, not an error.
func (s Schema[T]) DecodeRow(row []string) (*T, bool) {
	r := new(T)
	for i, f := range s {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if err := f.Decode(r, cell); err != nil {
			return nil, false
		}
	}
	for _, f := range s {
		if f.Required && strings.TrimSpace(f.Encode(r)) == "" {
			return nil, false
		}
	}
	return r, true
}

// EncodeRecord encodes a record into an ordered string row, the exact
// inverse of DecodeRow for valid records.
func (s Schema[T]) EncodeRecord(r *T) []string {
	row := make([]string, len(s))
	for i, f := range s {
		row[i] = f.Encode(r)
	}
	return row
}

// FieldChange is one field-level change event for the audit history.
// Old and New carry encoded cell values.
type FieldChange struct {
	Field string
	Old   string
	New   string
	By    string
	Date  time.Time
}

// DiffFields compares two records field by field using native equality and
// emits one change event per differing field. Identical records yield nil.
func (s Schema[T]) DiffFields(oldRec, newRec *T, actor string, at time.Time) []FieldChange {
	var changes []FieldChange
	for _, f := range s {
		if f.Equal(oldRec, newRec) {
			continue
		}
		changes = append(changes, FieldChange{
			Field: f.Label,
			Old:   f.Encode(oldRec),
			New:   f.Encode(newRec),
			By:    actor,
			Date:  at,
		})
	}
	return changes
}

// TextField binds a plain string field. Empty string means absent.
func TextField[T any](label string, get func(*T) *string) Field[T] {
	return Field[T]{
		Label:  label,
		Encode: func(r *T) string { return *get(r) },
		Decode: func(r *T, cell string) error {
			*get(r) = cell
			return nil
		},
		Equal: func(a, b *T) bool { return *get(a) == *get(b) },
	}
}

// RequiredTextField binds a string field that must be non-empty after
// decode, like record identifiers.
func RequiredTextField[T any](label string, get func(*T) *string) Field[T] {
	f := TextField(label, get)
	f.Required = true
	return f
}

// IntField binds an integer field rendered as plain decimal. Empty or
// unparseable cells decode to the fallback value.
func IntField[T any](label string, get func(*T) *int, fallback int) Field[T] {
	return Field[T]{
		Label:  label,
		Encode: func(r *T) string { return strconv.Itoa(*get(r)) },
		Decode: func(r *T, cell string) error {
			n, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				n = fallback
			}
			*get(r) = n
			return nil
		},
		Equal: func(a, b *T) bool { return *get(a) == *get(b) },
	}
}

// OptionalNumberField binds an optional non-negative number. Absent values
// render as empty string; equality is on the numeric value, so "1.50" and
// "1.5" never produce a false diff.
func OptionalNumberField[T any](label string, get func(*T) **float64) Field[T] {
	return Field[T]{
		Label: label,
		Encode: func(r *T) string {
			v := *get(r)
			if v == nil {
				return ""
			}
			return strconv.FormatFloat(*v, 'f', -1, 64)
		},
		Decode: func(r *T, cell string) error {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				*get(r) = nil
				return nil
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				*get(r) = nil
				return nil
			}
			*get(r) = &v
			return nil
		},
		Equal: func(a, b *T) bool {
			va, vb := *get(a), *get(b)
			if va == nil || vb == nil {
				return va == nil && vb == nil
			}
			return *va == *vb
		},
	}
}

// DateField binds a short-format date. Zero times encode to empty string.
// When required, an empty or unparseable cell rejects the row.
func DateField[T any](label string, required bool, get func(*T) *time.Time) Field[T] {
	return Field[T]{
		Label:    label,
		Required: required,
		Encode: func(r *T) string {
			v := *get(r)
			if v.IsZero() {
				return ""
			}
			return v.Format(ShortDateFormat)
		},
		Decode: func(r *T, cell string) error {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				*get(r) = time.Time{}
				return nil
			}
			v, err := time.Parse(ShortDateFormat, cell)
			if err != nil {
				*get(r) = time.Time{}
				return nil
			}
			*get(r) = v
			return nil
		},
		Equal: func(a, b *T) bool { return (*get(a)).Equal(*get(b)) },
	}
}

// OptionalTimestampField binds the machine-sortable "last updated" column.
func OptionalTimestampField[T any](label string, get func(*T) **time.Time) Field[T] {
	return Field[T]{
		Label: label,
		Encode: func(r *T) string {
			v := *get(r)
			if v == nil {
				return ""
			}
			return v.Format(TimestampFormat)
		},
		Decode: func(r *T, cell string) error {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				*get(r) = nil
				return nil
			}
			v, err := time.Parse(TimestampFormat, cell)
			if err != nil {
				*get(r) = nil
				return nil
			}
			*get(r) = &v
			return nil
		},
		Equal: func(a, b *T) bool {
			va, vb := *get(a), *get(b)
			if va == nil || vb == nil {
				return va == nil && vb == nil
			}
			return va.Equal(*vb)
		},
	}
}

// TagField binds an optional property tag. Empty cells decode to nil,
// never to a sentinel tag instance; invalid cell values are dropped.
func TagField[T any](label string, get func(*T) **PropertyTag) Field[T] {
	return Field[T]{
		Label: label,
		Encode: func(r *T) string {
			v := *get(r)
			if v == nil {
				return ""
			}
			return v.String()
		},
		Decode: func(r *T, cell string) error {
			tag, err := ParsePropertyTag(cell)
			if err != nil {
				*get(r) = nil
				return nil
			}
			*get(r) = &tag
			return nil
		},
		Equal: func(a, b *T) bool {
			va, vb := *get(a), *get(b)
			if va == nil || vb == nil {
				return va == nil && vb == nil
			}
			return *va == *vb
		},
	}
}

// RoomField binds a room reference stored by name.
func RoomField[T any](label string, get func(*T) *Room) Field[T] {
	return Field[T]{
		Label:  label,
		Encode: func(r *T) string { return (*get(r)).Name },
		Decode: func(r *T, cell string) error {
			*get(r) = NewRoom(cell)
			return nil
		},
		Equal: func(a, b *T) bool { return (*get(a)).Equal(*get(b)) },
	}
}

// EnumField binds a string-backed enum with a lenient parser that supplies
// the enum's documented default.
func EnumField[T any, E ~string](label string, get func(*T) *E, parse func(string) E) Field[T] {
	return Field[T]{
		Label:  label,
		Encode: func(r *T) string { return string(*get(r)) },
		Decode: func(r *T, cell string) error {
			*get(r) = parse(cell)
			return nil
		},
		Equal: func(a, b *T) bool { return *get(a) == *get(b) },
	}
}
