package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/qualitydesk/qualitydesk/internal/shared"
)

// Registry is an ordered, read-only set of descriptors.
type Registry struct {
	ordered []Descriptor
	byKey   map[string]Descriptor
}

// Defaults returns the five built-in descriptors in navigation order.
func Defaults() []Descriptor {
	return []Descriptor{
		{
			Key: "employees", Label: "Employee", Icon: "👤", Color: "blue",
			Table: "employees", OrderBy: "name",
			Fields: []Field{field("name", true, KindText), field("email", false, KindEmail)},
		},
		{
			Key: "workcenters", Label: "Workcenter", Icon: "🏢", Color: "green",
			Table: "workcenters", OrderBy: "name",
			Fields: []Field{field("name", true, KindText), field("code", false, KindText)},
		},
		{
			Key: "part_numbers", Label: "Part Number", Icon: "🔧", Color: "orange",
			Table: "part_numbers", OrderBy: "part_number",
			Fields: []Field{field("part_number", true, KindText), field("description", false, KindText)},
		},
		{
			Key: "customers", Label: "Customer", Icon: "🏪", Color: "red",
			Table: "customers", OrderBy: "name",
			Fields: []Field{field("name", true, KindText), field("code", false, KindText)},
		},
		{
			Key: "inspection_items", Label: "Inspection Item", Icon: "🔍", Color: "teal",
			Table: "inspection_items", OrderBy: "name",
			Fields: []Field{field("name", true, KindText), field("description", false, KindText)},
		},
	}
}

// NewRegistry validates descriptors and indexes them by key.
func NewRegistry(descriptors []Descriptor) (*Registry, error) {
	validate := validator.New()
	reg := &Registry{byKey: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		if err := validate.Struct(d); err != nil {
			return nil, fmt.Errorf("catalog: descriptor %q: %w", d.Key, err)
		}
		if _, dup := reg.byKey[d.Key]; dup {
			return nil, fmt.Errorf("catalog: duplicate descriptor %q", d.Key)
		}
		reg.byKey[d.Key] = d
		reg.ordered = append(reg.ordered, d)
	}
	return reg, nil
}

// MustDefault builds the registry of built-in descriptors.
func MustDefault() *Registry {
	reg, err := NewRegistry(Defaults())
	if err != nil {
		panic(err)
	}
	return reg
}

// Lookup returns the descriptor for key or a *shared.NotFoundError.
func (r *Registry) Lookup(key string) (Descriptor, error) {
	d, ok := r.byKey[key]
	if !ok {
		return Descriptor{}, &shared.NotFoundError{Kind: "entity", Key: key}
	}
	return d, nil
}

// All returns the descriptors in navigation order.
func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, len(r.ordered))
	copy(out, r.ordered)
	return out
}
