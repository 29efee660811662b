package lifecycle_test

import (
	"testing"

	"governance/internal/core/domain/model/lifecycle"

	"github.com/stretchr/testify/assert"
)

type light int

const (
	unknownLight light = iota
	red
	green
	yellow
	off
)

func newLightTable() lifecycle.Table[light] {
	return lifecycle.NewTable(map[light][]light{
		red:    {green, off},
		green:  {yellow, off},
		yellow: {red, off},
		off:    {},
	})
}

func TestTable_IsValidTransition(t *testing.T) {
	table := newLightTable()

	t.Run("declared successors are valid", func(t *testing.T) {
		assert.True(t, table.IsValidTransition(red, green))
		assert.True(t, table.IsValidTransition(yellow, red))
	})

	t.Run("undeclared targets are invalid", func(t *testing.T) {
		assert.False(t, table.IsValidTransition(red, yellow))
		assert.False(t, table.IsValidTransition(off, red))
	})

	t.Run("self transition is always valid", func(t *testing.T) {
		for _, s := range []light{red, green, yellow, off, unknownLight, light(42)} {
			assert.True(t, table.IsValidTransition(s, s))
		}
	})

	t.Run("unknown source has no successors", func(t *testing.T) {
		assert.False(t, table.IsValidTransition(unknownLight, red))
		assert.False(t, table.IsValidTransition(light(42), off))
	})

	t.Run("zero table allows only self transitions", func(t *testing.T) {
		var empty lifecycle.Table[light]
		assert.True(t, empty.IsValidTransition(red, red))
		assert.False(t, empty.IsValidTransition(red, green))
	})
}

func TestTable_Introspection(t *testing.T) {
	table := newLightTable()

	assert.Equal(t, []light{red, green, yellow, off}, table.States())
	assert.Equal(t, []light{green, off}, table.Successors(red))
	assert.Empty(t, table.Successors(off))
	assert.Empty(t, table.Successors(unknownLight))

	assert.True(t, table.IsTerminal(off))
	assert.False(t, table.IsTerminal(red))
	assert.False(t, table.IsTerminal(unknownLight))
}

func TestNames(t *testing.T) {
	names := lifecycle.Names[light]{red: "red", green: "green"}

	s, ok := names.Parse("green")
	assert.True(t, ok)
	assert.Equal(t, green, s)

	_, ok = names.Parse("blue")
	assert.False(t, ok)

	assert.Equal(t, "red", names.Code(red, "unknown"))
	assert.Equal(t, "unknown", names.Code(off, "unknown"))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "order", lifecycle.KindOrder.String())
	assert.Equal(t, "work_order", lifecycle.KindWorkOrder.String())
	assert.Equal(t, "unknown", lifecycle.Kind(99).String())
	assert.Len(t, lifecycle.Kinds(), 6)
}
