package schema_test

import (
	"strings"
	"testing"

	"github.com/syssam/cardorm"
	"github.com/syssam/cardorm/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contracts string

const (
	contractsID     contracts = "ID"
	contractsNumber contracts = "Number"
	contractsAmount contracts = "Amount"
)

func (contracts) DomainName() string { return "MntContracts" }

func (contracts) AllKeys() []contracts {
	return []contracts{contractsID, contractsNumber, contractsAmount}
}

func TestDescribe(t *testing.T) {
	t.Parallel()
	d := schema.Describe[contracts]()
	assert.Equal(t, "MntContracts", d.Name)
	assert.Equal(t, []string{"ID", "Number", "Amount"}, d.Keys)
	assert.Equal(t, "MntContracts", schema.NameOf[contracts]())
	assert.True(t, d.Contains(string(contractsAmount)))
	assert.False(t, d.Contains("Missing"))
	assert.NoError(t, d.Validate())

	var dom schema.Domain = contractsNumber
	assert.Equal(t, "MntContracts", dom.DomainName())
}

func TestDescriptorValidate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		d    schema.Descriptor
		msg  string
	}{
		{"bad_name", schema.Descriptor{Name: "1x", Keys: []string{"A"}}, `invalid section name "1x"`},
		{"empty_domain", schema.Descriptor{Name: "T"}, "empty key domain"},
		{"bad_key", schema.Descriptor{Name: "T", Keys: []string{"A;DROP"}}, `invalid key "A;DROP"`},
		{"duplicate_key", schema.Descriptor{Name: "T", Keys: []string{"A", "A"}}, `duplicate key "A"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			require.Error(t, err)
			assert.True(t, cardorm.IsValidationError(err))
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestIsValidIdentifier(t *testing.T) {
	t.Parallel()
	assert.True(t, schema.IsValidIdentifier("Files"))
	assert.True(t, schema.IsValidIdentifier("dbo.Files"))
	assert.True(t, schema.IsValidIdentifier("_x1"))
	assert.False(t, schema.IsValidIdentifier(""))
	assert.False(t, schema.IsValidIdentifier("a b"))
	assert.False(t, schema.IsValidIdentifier("x'"))
	assert.False(t, schema.IsValidIdentifier(strings.Repeat("a", 129)))
}

func TestRegistry(t *testing.T) {
	t.Parallel()
	r, err := schema.NewRegistry(schema.Describe[contracts](), schema.Descriptor{Name: "Files", Keys: []string{"ID"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Files", "MntContracts"}, r.Names())

	d, err := r.Lookup("MntContracts")
	require.NoError(t, err)
	assert.Len(t, d.Keys, 3)

	_, err = r.Lookup("Nope")
	assert.True(t, cardorm.IsNotFound(err))

	_, err = r.LookupKey("MntContracts", "Number")
	assert.NoError(t, err)
	_, err = r.LookupKey("MntContracts", "Nope")
	assert.ErrorIs(t, err, cardorm.ErrNotFound)

	err = r.Register(schema.Descriptor{Name: "Files", Keys: []string{"ID"}})
	assert.True(t, cardorm.IsValidationError(err))
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("valid", func(t *testing.T) {
		r, err := schema.LoadYAML(strings.NewReader(`
sections:
  - name: MntContracts
    keys: [ID, Number, Amount]
  - name: MntContractRows
    keys:
      - RowID
      - Sum
`))
		require.NoError(t, err)
		d, err := r.Lookup("MntContractRows")
		require.NoError(t, err)
		assert.Equal(t, []string{"RowID", "Sum"}, d.Keys)
	})

	t.Run("empty", func(t *testing.T) {
		r, err := schema.LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, r.Names())
	})

	t.Run("unknown_field", func(t *testing.T) {
		_, err := schema.LoadYAML(strings.NewReader("tables: []\n"))
		assert.Error(t, err)
	})

	t.Run("invalid_descriptor", func(t *testing.T) {
		_, err := schema.LoadYAML(strings.NewReader("sections:\n  - name: X\n    keys: [A, A]\n"))
		assert.True(t, cardorm.IsValidationError(err))
	})

	t.Run("missing_file", func(t *testing.T) {
		_, err := schema.LoadFile("does/not/exist.yaml")
		assert.Error(t, err)
	})
}
