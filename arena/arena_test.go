package arena_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticejson/ajson/arena"
)

func TestPoolPointerStability(t *testing.T) {
	var p arena.Pool[int]
	var ptrs []*int
	for i := 0; i < 1000; i++ {
		v := p.New()
		*v = i
		ptrs = append(ptrs, v)
	}
	for i, ptr := range ptrs {
		assert.Equal(t, i, *ptr, "pointer %d must still observe its original value after further allocations", i)
	}
	assert.Equal(t, 1000, p.Len())
}

func TestAllocBytesZeroed(t *testing.T) {
	a := arena.New(0)
	b := a.AllocBytes(16)
	require.Len(t, b, 16)
	for _, c := range b {
		assert.Zero(t, c)
	}
}

func TestDupCopiesNotAliases(t *testing.T) {
	a := arena.New(0)
	src := []byte("hello")
	dst := a.Dup(src)
	require.Equal(t, src, dst)
	src[0] = 'H'
	assert.Equal(t, byte('h'), dst[0], "Dup must copy, not alias, the source bytes")
}

func TestMaxBytesExhaustion(t *testing.T) {
	a := arena.New(8)
	require.NotPanics(t, func() { a.AllocBytes(8) })
	assert.PanicsWithValue(t, arena.ErrExhausted, func() { a.AllocBytes(1) })
}

func TestSplitEscaped(t *testing.T) {
	a := arena.New(0)
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain", "users.0.name", []string{"users", "0", "name"}},
		{"escaped_dot", `a\.b.c`, []string{"a.b", "c"}},
		{"trailing_empty", "a.", []string{"a", ""}},
		{"single", "key", []string{"key"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := a.SplitEscaped([]byte(tc.in), '.')
			require.Len(t, got, len(tc.want))
			for i, w := range tc.want {
				assert.Equal(t, w, string(got[i]))
			}
		})
	}
}
