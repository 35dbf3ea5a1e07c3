// Package catalog holds the static descriptors of the manageable entity types.
package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FieldKind selects the form input used for a field.
type FieldKind string

const (
	KindText  FieldKind = "text"
	KindEmail FieldKind = "email"
)

// Field is one user-editable column of a descriptor's table.
type Field struct {
	Name     string `validate:"required"`
	Label    string `validate:"required"`
	Required bool
	Kind     FieldKind `validate:"oneof=text email"`
}

// Descriptor describes one entity type: where it lives and which fields it exposes.
type Descriptor struct {
	Key     string `validate:"required"`
	Label   string `validate:"required"`
	Icon    string
	Color   string  `validate:"required"`
	Table   string  `validate:"required"`
	OrderBy string  `validate:"required"`
	Fields  []Field `validate:"required,min=1,dive"`
}

// Field returns the field named name.
func (d Descriptor) Field(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ListID is the DOM id of the descriptor's record list.
func (d Descriptor) ListID() string {
	return d.Key + "-list"
}

var titleCaser = cases.Title(language.English)

// LabelFor derives a display label from a column name.
func LabelFor(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

func field(name string, required bool, kind FieldKind) Field {
	return Field{Name: name, Label: LabelFor(name), Required: required, Kind: kind}
}
