package ajson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/latticejson/ajson/ajson"
)

func TestParseScalarClassification(t *testing.T) {
	cases := []struct {
		name string
		text string
		tag  ajson.Tag
	}{
		{"zero", `0`, ajson.TagZero},
		{"negative_zero_is_number", `-0`, ajson.TagNumber},
		{"integer", `42`, ajson.TagNumber},
		{"negative_integer", `-7`, ajson.TagNumber},
		{"decimal_fraction", `3.14`, ajson.TagDecimal},
		{"decimal_exponent", `1e10`, ajson.TagDecimal},
		{"decimal_both", `-2.5e-3`, ajson.TagDecimal},
		{"true", `true`, ajson.TagTrue},
		{"false", `false`, ajson.TagFalse},
		{"null", `null`, ajson.TagNull},
		{"string", `"hi"`, ajson.TagString},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := ajson.NewArena(0)
			n := ajson.Parse(a, []byte(tc.text))
			require.False(t, n.IsError(), n.ErrorMessage())
			assert.Equal(t, tc.tag, n.Tag())
		})
	}
}

func TestParseRejectsLeadingZero(t *testing.T) {
	a := ajson.NewArena(0)
	n := ajson.Parse(a, []byte(`01`))
	assert.True(t, n.IsError())
}

func TestParseRejectsTrailingComma(t *testing.T) {
	a := ajson.NewArena(0)
	assert.True(t, ajson.Parse(a, []byte(`[1,2,]`)).IsError())
	assert.True(t, ajson.Parse(a, []byte(`{"a":1,}`)).IsError())
}

func TestParseRejectsByteOrderMark(t *testing.T) {
	a := ajson.NewArena(0)
	n := ajson.Parse(a, []byte("\xEF\xBB\xBF{}"))
	assert.True(t, n.IsError())
}

func TestParseEmptyDocumentIsError(t *testing.T) {
	a := ajson.NewArena(0)
	assert.True(t, ajson.Parse(a, []byte("   ")).IsError())
}

func TestParseToleratesTrailingGarbage(t *testing.T) {
	a := ajson.NewArena(0)
	n := ajson.Parse(a, []byte(`{"a":1} garbage`))
	require.False(t, n.IsError(), n.ErrorMessage())
	assert.Equal(t, 1, n.ObjectCount())
}

func TestParseRetainsDuplicateKeys(t *testing.T) {
	a := ajson.NewArena(0)
	root := ajson.Parse(a, []byte(`{"k":1,"k":2}`))
	require.False(t, root.IsError(), root.ErrorMessage())
	assert.Equal(t, 2, root.ObjectCount())
	assert.Equal(t, []byte("1"), root.Scan([]byte("k")).View())
	assert.Equal(t, []byte("2"), root.ScanReverse([]byte("k")).View())
}

func TestParseObjectAndArrayNesting(t *testing.T) {
	a := ajson.NewArena(0)
	root := ajson.Parse(a, []byte(`{"a":[1,2,{"b":true}],"c":null}`))
	require.False(t, root.IsError(), root.ErrorMessage())

	arr := root.Scan([]byte("a"))
	require.True(t, arr.IsArray())
	assert.Equal(t, 3, arr.Count())
	assert.Equal(t, []byte("1"), arr.ScanNth(0).View())

	nested := arr.ScanNth(2)
	require.True(t, nested.IsObject())
	assert.True(t, nested.Scan([]byte("b")).IsBool())

	assert.True(t, root.Scan([]byte("c")).IsNull())
}

func TestParseStringRetainsEncodedForm(t *testing.T) {
	a := ajson.NewArena(0)
	root := ajson.Parse(a, []byte(`"a\nb"`))
	require.False(t, root.IsError(), root.ErrorMessage())
	assert.Equal(t, []byte(`a\nb`), root.View())
	assert.Equal(t, []byte("a\nb"), ajson.Decode(a, root.View()))
}

func TestParseEmptyContainers(t *testing.T) {
	a := ajson.NewArena(0)
	obj := ajson.Parse(a, []byte(`{}`))
	require.False(t, obj.IsError())
	assert.Equal(t, 0, obj.ObjectCount())

	arr := ajson.Parse(a, []byte(`[]`))
	require.False(t, arr.IsError())
	assert.Equal(t, 0, arr.Count())
}

func TestDumpErrorReportsPosition(t *testing.T) {
	a := ajson.NewArena(0)
	n := ajson.Parse(a, []byte("{\n  \"a\": ,\n}"))
	require.True(t, n.IsError())

	var sb stringWriter
	require.NoError(t, ajson.DumpError(&sb, n))
	assert.Contains(t, sb.String(), "2:")
}

type stringWriter struct{ buf []byte }

func (w *stringWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)
	return len(p), nil
}

func (w *stringWriter) String() string { return string(w.buf) }
