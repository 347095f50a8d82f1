package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValue(t *testing.T) {
	n := Number(12.5)
	v, ok := n.Float()
	require.True(t, ok)
	require.Equal(t, 12.5, v)
	_, ok = n.Label()
	require.False(t, ok)
	require.Equal(t, "12.5", n.String())
	require.Equal(t, KindNumber, n.Kind())

	c := Category("Machine A")
	l, ok := c.Label()
	require.True(t, ok)
	require.Equal(t, "Machine A", l)
	_, ok = c.Float()
	require.False(t, ok)
	require.Equal(t, "category", c.Kind().String())

	var zero Value
	require.True(t, zero.IsMissing())
	require.Equal(t, Missing(), zero)
	require.Empty(t, zero.String())
}
