package card_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cardorm/card"
	"github.com/syssam/cardorm/value"
)

func dirty(t *testing.T, r card.Record, name string) bool {
	t.Helper()
	s, ok := r.Section(name)
	require.True(t, ok, "section %s", name)
	return s.Dirty()
}

func TestFill(t *testing.T) {
	t.Parallel()

	t.Run("silently", func(t *testing.T) {
		c := card.New(uuid.New())
		card.FillSilently(c, contractsNumber, value.Text("N-1"))
		assert.False(t, dirty(t, c, "MntContracts"))
		assert.True(t, value.Text("N-1").Equal(card.GetValueOrNull(c, contractsNumber)))
	})

	t.Run("dirty", func(t *testing.T) {
		c := card.New(uuid.New())
		card.Fill(c, contractsNumber, value.Text("N-1"))
		assert.True(t, dirty(t, c, "MntContracts"))
	})

	t.Run("silently_clears_earlier_changes", func(t *testing.T) {
		c := card.New(uuid.New())
		card.Fill(c, contractsAmount, value.Real(1))
		card.FillSilently(c, contractsNumber, value.Text("N-1"))
		assert.False(t, dirty(t, c, "MntContracts"))
	})

	t.Run("many", func(t *testing.T) {
		c := card.New(uuid.New())
		card.FillMany(c, map[contracts]value.Value{
			contractsNumber: value.Text("N-2"),
			contractsAmount: value.Real(10.5),
		})
		assert.True(t, dirty(t, c, "MntContracts"))
		assert.True(t, value.Real(10.5).Equal(card.GetValueOrNull(c, contractsAmount)))

		d := card.New(uuid.New())
		card.FillManySilently(d, map[contracts]value.Value{contractsNumber: value.Text("N-3")})
		assert.False(t, dirty(t, d, "MntContracts"))
		assert.True(t, value.Text("N-3").Equal(card.GetValueOrNull(d, contractsNumber)))
	})
}

func TestGetValueOrNull(t *testing.T) {
	t.Parallel()
	c := card.New(uuid.New())
	assert.True(t, card.GetValueOrNull(c, contractsNumber).IsNull(), "missing section")

	s := c.FieldSection("MntContracts")
	assert.True(t, card.GetValueOrNull(c, contractsNumber).IsNull(), "missing key")

	s.SetDefault(string(contractsAmount), value.Real(0))
	assert.True(t, value.Real(0).Equal(card.GetValueOrNull(c, contractsAmount)), "default is effective")
}

func TestCopyFieldsFrom(t *testing.T) {
	t.Parallel()
	src := card.New(uuid.New())
	card.FillMany(src, map[contracts]value.Value{
		contractsNumber:  value.Text("N"),
		contractsPartner: value.Identifier(uuid.Nil),
	})

	dst := card.New(uuid.New())
	card.Fill(dst, contractsAmount, value.Real(5))
	card.CopyFieldsFrom(dst, src, []contracts{contractsNumber, contractsPartner, contractsID})

	assert.True(t, value.Text("N").Equal(card.GetValueOrNull(dst, contractsNumber)))
	assert.True(t, value.IsEmptyIdentifier(card.GetValueOrNull(dst, contractsPartner)))
	s, _ := dst.Section("MntContracts")
	v, ok := s.Raw(string(contractsID))
	require.True(t, ok, "missing source value is written as null")
	assert.True(t, v.IsNull())
	assert.True(t, value.Real(5).Equal(card.GetValueOrNull(dst, contractsAmount)), "unlisted key untouched")

	dst2 := card.New(uuid.New())
	card.CopyFieldsFrom(dst2, src, []contracts{contractsPartner}, card.NullForEmptyIdentifier())
	assert.True(t, card.GetValueOrNull(dst2, contractsPartner).IsNull())
}

func TestCopySection(t *testing.T) {
	t.Parallel()
	src := card.New(uuid.New())
	card.FillMany(src, map[contracts]value.Value{
		contractsNumber: value.Text("SRC"),
		contractsAmount: value.Real(1.5),
	})

	dst := card.New(uuid.New())
	card.FillManySilently(dst, map[contracts]value.Value{
		contractsID:      value.Identifier(dst.ID()),
		contractsNumber:  value.Text("DST"),
		contractsPartner: value.Text("P"),
	})

	card.CopySection(src, dst, contractsID)

	assert.True(t, value.Identifier(dst.ID()).Equal(card.GetValueOrNull(dst, contractsID)), "excluded key unchanged")
	assert.True(t, value.Text("SRC").Equal(card.GetValueOrNull(dst, contractsNumber)))
	assert.True(t, value.Real(1.5).Equal(card.GetValueOrNull(dst, contractsAmount)))
	s, _ := dst.Section("MntContracts")
	v, ok := s.Raw(string(contractsPartner))
	require.True(t, ok)
	assert.True(t, v.IsNull(), "key absent in source becomes explicit null")
	assert.True(t, s.Dirty())
}
