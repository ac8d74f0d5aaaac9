package ajson

import (
	"io"

	"github.com/latticejson/ajson/internal/bufx"
)

// defaultIndentStep is used by the pretty estimator/writer whenever the
// caller passes a non-positive indentStep (spec.md §4.5 "step =
// indent_step if >0 else 2").
const defaultIndentStep = 2

// EstimateCompact returns an upper bound, in bytes, on the compact-form
// serialization of n, assuming no string requires escaping (spec.md
// §4.5 "Estimate"). The real output is never longer than this.
func EstimateCompact(n *Node) int {
	return estimate(n, false, 0, 0)
}

// EstimatePretty is EstimateCompact for the pretty (indented) form.
func EstimatePretty(n *Node, indentStep int) int {
	if indentStep <= 0 {
		indentStep = defaultIndentStep
	}
	return estimate(n, true, indentStep, 0)
}

func estimate(n *Node, pretty bool, step, depth int) int {
	if n == nil {
		return len("null")
	}
	switch n.Tag() {
	case TagString:
		return len(n.raw) + 2
	case TagNull, TagTrue, TagFalse, TagZero, TagNumber, TagDecimal:
		return len(n.raw)
	case TagError:
		return len("null") // writeValue emits "null" for an error node
	case TagArray:
		return estimateContainer(n.arr.count, func(yield func(key []byte, v *Node)) {
			for c := n.arr.head; c != nil; c = c.next {
				yield(nil, c.value)
			}
		}, pretty, step, depth, '[', ']')
	case TagObject:
		return estimateContainer(n.obj.count, func(yield func(key []byte, v *Node)) {
			for e := n.obj.head; e != nil; e = e.next {
				yield(e.key, e.value)
			}
		}, pretty, step, depth, '{', '}')
	default:
		return len("null")
	}
}

// estimateContainer sums the estimate for an object or array's entries,
// given an iterator, open/close punctuation, and pretty-printing layout.
func estimateContainer(count int, each func(func(key []byte, v *Node)), pretty bool, step, depth int, open, close byte) int {
	n := 0
	seen := 0
	each(func(key []byte, v *Node) {
		if v == nil {
			return
		}
		if seen > 0 {
			n++ // comma
		}
		if pretty {
			n += 1 + (depth+1)*step // newline + indent
		}
		if key != nil {
			n += len(key) + 2 + 1 // quoted key + ':'
		}
		n += estimate(v, pretty, step, depth+1)
		seen++
	})
	if seen == 0 {
		return 2 // "{}" / "[]"
	}
	n += 2 // open + close
	if pretty {
		n += 1 + depth*step // trailing newline + closing indent
	}
	return n
}

// AppendCompact serializes n in compact form, appending to buf (spec.md
// §4.5 "Fill"). String value bytes pass through the UTF-8 filter; object
// keys are copied verbatim.
func AppendCompact(buf *bufx.Buffer, n *Node) {
	writeValue(buf, n, false, 0, 0)
}

// AppendPretty is AppendCompact for the pretty (indented) form.
func AppendPretty(buf *bufx.Buffer, n *Node, indentStep int) {
	if indentStep <= 0 {
		indentStep = defaultIndentStep
	}
	writeValue(buf, n, true, indentStep, 0)
}

func writeValue(buf *bufx.Buffer, n *Node, pretty bool, step, depth int) {
	if n == nil {
		buf.AppendString("null")
		return
	}
	switch n.Tag() {
	case TagNull, TagTrue, TagFalse, TagZero, TagNumber, TagDecimal:
		buf.AppendBytes(n.raw)
	case TagString:
		buf.AppendByte('"')
		writeUTF8Filtered(buf, n.raw)
		buf.AppendByte('"')
	case TagArray:
		writeContainer(buf, n.arr.count, func(yield func(key []byte, v *Node)) {
			for c := n.arr.head; c != nil; c = c.next {
				yield(nil, c.value)
			}
		}, pretty, step, depth, '[', ']')
	case TagObject:
		writeContainer(buf, n.obj.count, func(yield func(key []byte, v *Node)) {
			for e := n.obj.head; e != nil; e = e.next {
				yield(e.key, e.value)
			}
		}, pretty, step, depth, '{', '}')
	default:
		buf.AppendString("null")
	}
}

func writeContainer(buf *bufx.Buffer, count int, each func(func(key []byte, v *Node)), pretty bool, step, depth int, open, close byte) {
	buf.AppendByte(open)
	seen := 0
	each(func(key []byte, v *Node) {
		if v == nil {
			return
		}
		if seen > 0 {
			buf.AppendByte(',')
		}
		if pretty {
			buf.AppendByte('\n')
			writeIndent(buf, step, depth+1)
		}
		if key != nil {
			buf.AppendByte('"')
			buf.AppendBytes(key)
			buf.AppendString("\":")
		}
		writeValue(buf, v, pretty, step, depth+1)
		seen++
	})
	if seen > 0 {
		if pretty {
			buf.AppendByte('\n')
			writeIndent(buf, step, depth)
		}
	}
	buf.AppendByte(close)
}

func writeIndent(buf *bufx.Buffer, step, depth int) {
	for i := 0; i < step*depth; i++ {
		buf.AppendByte(' ')
	}
}

// writeUTF8Filtered appends only the well-formed UTF-8 runs of src to
// buf, matching ValidUTF8Copy's semantics without an intermediate
// allocation.
func writeUTF8Filtered(buf *bufx.Buffer, src []byte) {
	i := 0
	for i < len(src) {
		n := utf8SeqLen(src[i:])
		if n == 0 {
			i++
			continue
		}
		buf.AppendBytes(src[i : i+n])
		i += n
	}
}

// DumpCompact writes n's compact-form serialization to w.
func DumpCompact(w io.Writer, n *Node) error {
	buf := bufx.New(EstimateCompact(n))
	AppendCompact(buf, n)
	_, err := w.Write(buf.Bytes())
	return err
}

// DumpPretty writes n's pretty-form serialization to w.
func DumpPretty(w io.Writer, n *Node, indentStep int) error {
	buf := bufx.New(EstimatePretty(n, indentStep))
	AppendPretty(buf, n, indentStep)
	_, err := w.Write(buf.Bytes())
	return err
}

// StringifyCompact returns n's compact-form serialization as an
// arena-owned byte slice (spec.md §6 "arena-owned string").
func StringifyCompact(a *Arena, n *Node) []byte {
	buf := bufx.New(EstimateCompact(n))
	AppendCompact(buf, n)
	return a.Bytes.Dup(buf.Bytes())
}

// StringifyPretty is StringifyCompact for the pretty form.
func StringifyPretty(a *Arena, n *Node, indentStep int) []byte {
	buf := bufx.New(EstimatePretty(n, indentStep))
	AppendPretty(buf, n, indentStep)
	return a.Bytes.Dup(buf.Bytes())
}
