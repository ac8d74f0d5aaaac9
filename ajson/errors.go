package ajson

import (
	"fmt"
	"io"
)

// ErrorMessage returns the diagnostic message carried by an error node,
// or "" for any other tag.
func (n *Node) ErrorMessage() string {
	if n == nil || n.tag != TagError {
		return ""
	}
	return n.errMsg
}

// DumpError writes a one-line human-readable diagnostic for an
// ERROR-tagged node to w, in the form "parse error at line:col: message"
// (spec.md §9 "dump_error writing a one-line human message including
// row and column"), grounded on the original library's
// `ajson_dump_error` row/column counting. Row/column are 1-based bytes;
// an escape sequence `\x` advances the column by two without bumping
// the row, matching the spec's exact counting rule — this function
// counts raw source bytes rather than re-parsing escapes, so it only
// needs to special-case the backslash itself.
func DumpError(w io.Writer, n *Node) error {
	if n == nil || n.tag != TagError {
		return fmt.Errorf("ajson: DumpError called on a non-error node")
	}
	row, col := errorPosition(n.errSource, n.errAt)
	_, err := fmt.Fprintf(w, "parse error at %d:%d: %s\n", row, col, n.errMsg)
	return err
}

// errorPosition computes the 1-based (row, col) of offset at within
// source, counting newlines for rows and resetting the column at each
// one. A backslash is treated as introducing a two-byte unit for column
// counting purposes (spec.md §9), so `\n` inside a string literal does
// not itself count as a line break for diagnostic purposes.
func errorPosition(source []byte, at int) (row, col int) {
	row, col = 1, 1
	if at > len(source) {
		at = len(source)
	}
	for i := 0; i < at; i++ {
		if source[i] == '\\' && i+1 < at {
			col += 2
			i++
			continue
		}
		if source[i] == '\n' {
			row++
			col = 1
			continue
		}
		col++
	}
	return row, col
}
