package part_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/cardorm"
	"github.com/syssam/cardorm/dialect/sql/part"
	"github.com/syssam/cardorm/value"
)

type contracts string

const (
	contractsID     contracts = "ID"
	contractsNumber contracts = "Number"
	contractsState  contracts = "State"
)

func (contracts) DomainName() string { return "MntContracts" }

func (contracts) AllKeys() []contracts {
	return []contracts{contractsID, contractsNumber, contractsState}
}

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("star_without_top", func(t *testing.T) {
		var s part.Select
		assert.Equal(t, "SELECT  * ", s.String())
	})

	t.Run("star_with_top", func(t *testing.T) {
		var s part.Select
		s.Top(5)
		assert.Equal(t, "SELECT TOP 5 * ", s.String())
	})

	t.Run("fields_deduplicated", func(t *testing.T) {
		var s part.Select
		s.Add("ID", "Number").Add("ID")
		assert.Equal(t, "SELECT  ID,Number ", s.String())
		s.Top(1)
		assert.Equal(t, "SELECT TOP 1 ID,Number ", s.String())
		s.Top(0)
		assert.Equal(t, "SELECT  ID,Number ", s.String())
	})
}

func TestTables(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		var tb part.Tables
		_, err := tb.From()
		assert.ErrorIs(t, err, cardorm.ErrNoTable)
		_, err = tb.Update()
		assert.ErrorIs(t, err, cardorm.ErrNoTable)
	})

	t.Run("by_name", func(t *testing.T) {
		var tb part.Tables
		tb.Add("Files")
		from, err := tb.From()
		require.NoError(t, err)
		assert.Equal(t, "FROM Files ", from)
		upd, err := tb.Update()
		require.NoError(t, err)
		assert.Equal(t, "UPDATE Files ", upd)
	})

	t.Run("by_domain", func(t *testing.T) {
		var tb part.Tables
		tb.AddDomain(contracts("Number"))
		from, err := tb.From()
		require.NoError(t, err)
		assert.Equal(t, "FROM MntContracts ", from)
	})

	t.Run("by_type", func(t *testing.T) {
		var tb part.Tables
		tb.AddType(&ContractsClass{})
		from, err := tb.From()
		require.NoError(t, err)
		assert.Equal(t, "FROM Contracts ", from)
	})
}

func TestWhere(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		var w part.Where
		assert.Equal(t, "", w.String())
	})

	t.Run("eq", func(t *testing.T) {
		var w part.Where
		w.Eq("State", value.Int(2)).Eq("Deleted", value.Null()).Eq("State", value.Int(2))
		assert.Equal(t, 2, w.Len())
		assert.Equal(t, "WHERE State=2 AND Deleted IS NULL", w.String())
	})

	t.Run("in", func(t *testing.T) {
		var w part.Where
		w.In("Kind", []value.Value{value.Int(1), value.Null(), value.Int(3)})
		assert.Equal(t, "WHERE Kind IN (1,3)", w.String())
	})

	t.Run("in_empty_adds_nothing", func(t *testing.T) {
		var w part.Where
		w.Eq("A", value.Text("x"))
		before := w.String()
		w.In("Kind", nil)
		w.In("Kind", []value.Value{})
		assert.Equal(t, before, w.String())
		assert.NotContains(t, w.String(), "IN ()")
	})

	t.Run("escaping", func(t *testing.T) {
		w := part.NewWhere(part.WithEscaping())
		w.Eq("Name", value.Text("O'Brien")).In("Tag", []value.Value{value.Text("a'b")})
		assert.Equal(t, "WHERE Name='O''Brien' AND Tag IN ('a''b')", w.String())

		var raw part.Where
		raw.Eq("Name", value.Text("O'Brien"))
		assert.Equal(t, "WHERE Name='O'Brien'", raw.String())
	})
}

func TestValues(t *testing.T) {
	t.Parallel()

	t.Run("insertion_order", func(t *testing.T) {
		var v part.Values
		require.NoError(t, v.Add("Number", value.Text("N-1")))
		require.NoError(t, v.Add("Amount", value.Real(10.5)))
		require.NoError(t, v.Add("Comment", value.Null()))
		assert.Equal(t, 3, v.Len())
		assert.Equal(t, "SET Number='N-1', Amount=10.5, Comment=NULL ", v.String())
	})

	t.Run("duplicate", func(t *testing.T) {
		var v part.Values
		require.NoError(t, v.Add("Number", value.Int(1)))
		err := v.Add("Number", value.Int(2))
		require.Error(t, err)
		assert.True(t, cardorm.IsDuplicateField(err))
		assert.Equal(t, "SET Number=1 ", v.String())
	})

	t.Run("empty", func(t *testing.T) {
		var v part.Values
		assert.Equal(t, "SET  ", v.String())
	})

	t.Run("escaping", func(t *testing.T) {
		v := part.NewValues(part.WithEscaping())
		require.NoError(t, v.Add("Name", value.Text("it's")))
		assert.Equal(t, "SET Name='it''s' ", v.String())
	})
}

func TestOrderBy(t *testing.T) {
	t.Parallel()
	var o part.OrderBy
	assert.Equal(t, ";", o.String())
	o.Asc("Number").Desc("Created").Asc("Number")
	assert.Equal(t, "ORDER BY Number, Created DESC;", o.String())
}

func TestComposeStatement(t *testing.T) {
	t.Parallel()
	var (
		sel   part.Select
		from  part.Tables
		where part.Where
		order part.OrderBy
	)
	sel.Add("ID", "Number").Top(10)
	from.AddType(ContractsClass{})
	where.Eq("State", value.Int(2)).In("Kind", []value.Value{value.Int(1), value.Int(3)})
	order.Desc("Created")

	f, err := from.From()
	require.NoError(t, err)
	got := sel.String() + f + where.String() + " " + order.String()
	assert.Equal(t, "SELECT TOP 10 ID,Number FROM Contracts WHERE State=2 AND Kind IN (1,3) ORDER BY Created DESC;", got)

	var (
		upd  part.Tables
		set  part.Values
		cond part.Where
	)
	upd.Add("Contracts")
	require.NoError(t, set.Add("State", value.Int(3)))
	cond.Eq("ID", value.Text("x"))
	u, err := upd.Update()
	require.NoError(t, err)
	assert.Equal(t, "UPDATE Contracts SET State=3 WHERE ID='x'", u+set.String()+cond.String())
}

func TestTypedKeys(t *testing.T) {
	t.Parallel()
	var sel part.Select
	part.AddKeys(&sel, contractsID, contractsNumber, contractsID)
	assert.Equal(t, "SELECT  ID,Number ", sel.String())

	var where part.Where
	part.EqKey(&where, contractsState, value.Int(2))
	part.InKey(&where, contractsNumber, []value.Value{value.Text("a"), value.Null()})
	assert.Equal(t, "WHERE State=2 AND Number IN ('a')", where.String())

	var set part.Values
	require.NoError(t, part.AddKey(&set, contractsState, value.Int(3)))
	err := part.AddKey(&set, contractsState, value.Int(4))
	assert.True(t, cardorm.IsDuplicateField(err))
	assert.Equal(t, "SET State=3 ", set.String())
}
