package part_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/syssam/cardorm/dialect/sql/part"
	"github.com/syssam/cardorm/value"
)

func TestLiteral(t *testing.T) {
	t.Parallel()
	id := uuid.MustParse("0f8fad5b-d9cb-469f-a165-70867728950e")
	tests := []struct {
		name string
		v    value.Value
		want string
	}{
		{"null", value.Null(), "NULL"},
		{"text", value.Text("abc"), "'abc'"},
		{"empty_text", value.Text(""), "''"},
		{"text_with_quote_is_verbatim", value.Text("a'b"), "'a'b'"},
		{"identifier", value.Identifier(id), "'0f8fad5b-d9cb-469f-a165-70867728950e'"},
		{"datetime", value.Time(time.Date(2021, 7, 4, 9, 5, 3, 999, time.FixedZone("X", 7200))), "'2021-07-04 09:05:03'"},
		{"int", value.Int(-17), "-17"},
		{"real", value.Real(3.75), "3.75"},
		{"bool", value.Bool(true), "true"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, part.Literal(tt.v))
		})
	}
}

func TestSafeLiteral(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "'a''b'", part.SafeLiteral(value.Text("a'b")))
	assert.Equal(t, "'plain'", part.SafeLiteral(value.Text("plain")))
	assert.Equal(t, "NULL", part.SafeLiteral(value.Null()))
	assert.Equal(t, "5", part.SafeLiteral(value.Int(5)))
}

func TestLiteralList(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", part.LiteralList(nil, true))
	assert.Equal(t, "", part.LiteralList([]value.Value{}, true))
	assert.Equal(t, "1,2", part.LiteralList([]value.Value{value.Int(1), value.Null(), value.Int(2)}, true))
	assert.Equal(t, "1,NULL,2", part.LiteralList([]value.Value{value.Int(1), value.Null(), value.Int(2)}, false))
	assert.Equal(t, "", part.LiteralList([]value.Value{value.Null(), value.Null()}, true))
	assert.Equal(t, "'a',''", part.LiteralList([]value.Value{value.Text("a"), value.Text("")}, false))
}

type ContractsClass struct{}

type Files struct{}

func TestTableNameForType(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "Contracts", part.TableNameForType("ContractsClass"))
	assert.Equal(t, "Files", part.TableNameForType("Files"))
	assert.Equal(t, "", part.TableNameForType("Class"))
	assert.Equal(t, "ClassRoom", part.TableNameForType("ClassRoom"))

	assert.Equal(t, "ContractsClass", part.TypeName(ContractsClass{}))
	assert.Equal(t, "ContractsClass", part.TypeName(&ContractsClass{}))
	assert.Equal(t, "", part.TypeName(nil))
}
