package ajson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticejson/ajson/ajson"
)

func buildObject(t *testing.T, pairs ...string) (*ajson.Arena, *ajson.Node) {
	t.Helper()
	require.Equal(t, 0, len(pairs)%2, "pairs must be even")
	a := ajson.NewArena(0)
	obj := ajson.Object(a)
	for i := 0; i < len(pairs); i += 2 {
		obj.AppendEntry(a, []byte(pairs[i]), ajson.Number(a, []byte(pairs[i+1])), true)
	}
	return a, obj
}

func TestGetAndFindAgreeOnFreshObject(t *testing.T) {
	a, obj := buildObject(t, "b", "2", "a", "1", "c", "3")

	assert.Equal(t, []byte("1"), obj.Get([]byte("a")).View())
	assert.Equal(t, []byte("1"), obj.Find(a, []byte("a")).View())
	assert.Nil(t, obj.Get([]byte("missing")))
	assert.Nil(t, obj.Find(a, []byte("missing")))
}

// TestFindThenGetCrossover is the regression scenario spec.md §4.4
// calls out by name: a find (building the tree) must not leave get
// looking at a stale or absent snapshot.
func TestFindThenGetCrossover(t *testing.T) {
	a, obj := buildObject(t, "x", "10", "y", "20")

	require.NotNil(t, obj.Find(a, []byte("x"))) // builds tree, drops snapshot
	assert.Equal(t, []byte("20"), obj.Get([]byte("y")).View())

	require.NotNil(t, obj.Get([]byte("y"))) // builds snapshot, drops tree
	assert.Equal(t, []byte("10"), obj.Find(a, []byte("x")).View())
}

func TestGetFirstOccurrenceOnDuplicateKeys(t *testing.T) {
	a := ajson.NewArena(0)
	obj := ajson.Object(a)
	obj.AppendEntry(a, []byte("k"), ajson.Number(a, []byte("1")), true)
	obj.AppendEntry(a, []byte("k"), ajson.Number(a, []byte("2")), true)

	assert.Equal(t, []byte("1"), obj.Get([]byte("k")).View())
	assert.Equal(t, []byte("1"), obj.Scan([]byte("k")).View())
	assert.Equal(t, []byte("2"), obj.ScanReverse([]byte("k")).View())
}

func TestSetReplacesExistingEntryInPlace(t *testing.T) {
	a, obj := buildObject(t, "a", "1", "b", "2")
	obj.Set(a, []byte("a"), ajson.Number(a, []byte("99")), false)

	assert.Equal(t, 2, obj.ObjectCount())
	assert.Equal(t, []byte("99"), obj.Get([]byte("a")).View())
}

func TestSetAppendsNewKey(t *testing.T) {
	a, obj := buildObject(t, "a", "1")
	obj.Set(a, []byte("b"), ajson.Number(a, []byte("2")), true)

	assert.Equal(t, 2, obj.ObjectCount())
	assert.Equal(t, []byte("2"), obj.Get([]byte("b")).View())
}

func TestInsertDoesNotOverwriteExistingKey(t *testing.T) {
	a, obj := buildObject(t, "a", "1")
	obj.Insert(a, []byte("a"), ajson.Number(a, []byte("99")), false)

	assert.Equal(t, []byte("1"), obj.Get([]byte("a")).View())
}

func TestEraseRemovesEntryAndUpdatesBothAccessPaths(t *testing.T) {
	a, obj := buildObject(t, "a", "1", "b", "2", "c", "3")

	require.NotNil(t, obj.Find(a, []byte("a"))) // force tree active
	ok := obj.EraseKey(a, []byte("b"))
	require.True(t, ok)

	assert.Equal(t, 2, obj.ObjectCount())
	assert.Nil(t, obj.Get([]byte("b")))
	assert.Nil(t, obj.Find(a, []byte("b")))
	assert.Equal(t, []byte("1"), obj.Get([]byte("a")).View())
	assert.Equal(t, []byte("3"), obj.Find(a, []byte("c")).View())
}

func TestEraseMissingKeyReportsFalse(t *testing.T) {
	a, obj := buildObject(t, "a", "1")
	assert.False(t, obj.EraseKey(a, []byte("nope")))
}

func TestObjectEntryIterationPreservesInsertionOrder(t *testing.T) {
	_, obj := buildObject(t, "z", "1", "a", "2", "m", "3")

	var keys []string
	for e := obj.FirstEntry(); e != nil; e = e.Next() {
		keys = append(keys, string(e.Key()))
	}
	assert.Equal(t, []string{"z", "a", "m"}, keys)
}
