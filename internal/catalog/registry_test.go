package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qualitydesk/qualitydesk/internal/shared"
)

func TestDefaultRegistry(t *testing.T) {
	reg := MustDefault()

	keys := make([]string, 0, 5)
	for _, d := range reg.All() {
		keys = append(keys, d.Key)
	}
	assert.Equal(t, []string{"employees", "workcenters", "part_numbers", "customers", "inspection_items"}, keys)

	parts, err := reg.Lookup("part_numbers")
	require.NoError(t, err)
	f, ok := parts.Field("part_number")
	require.True(t, ok)
	assert.True(t, f.Required)
	assert.Equal(t, "Part Number", f.Label)
	assert.Equal(t, "part_numbers-list", parts.ListID())

	emp, err := reg.Lookup("employees")
	require.NoError(t, err)
	email, ok := emp.Field("email")
	require.True(t, ok)
	assert.False(t, email.Required)
	assert.Equal(t, KindEmail, email.Kind)
}

func TestLookupUnknownKey(t *testing.T) {
	_, err := MustDefault().Lookup("suppliers")
	require.Error(t, err)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestNewRegistryRejectsInvalidDescriptors(t *testing.T) {
	_, err := NewRegistry([]Descriptor{{Key: "x", Label: "X", Color: "blue", Table: "x", OrderBy: "name"}})
	assert.Error(t, err, "descriptor without fields")

	d := Defaults()[0]
	_, err = NewRegistry([]Descriptor{d, d})
	assert.Error(t, err, "duplicate key")

	bad := Defaults()[1]
	bad.Fields = []Field{{Name: "name", Label: "Name", Kind: "number"}}
	_, err = NewRegistry([]Descriptor{bad})
	assert.Error(t, err, "unknown field kind")
}

func TestLabelFor(t *testing.T) {
	assert.Equal(t, "Inspection Item", LabelFor("inspection_item"))
	assert.Equal(t, "Email", LabelFor("email"))
}
