package ajson

import "bytes"

// Path evaluates a dotted path against root (spec.md §4.6), e.g.
// "users.1.name" or "users.id=2.name". A literal dot inside a segment
// is written as "\." and survives as a plain '.' in that segment (via
// arena.SplitEscaped). Any miss along the way yields a null node rather
// than an error, matching the original library's `ajsono_path`.
func Path(a *Arena, root *Node, path []byte) *Node {
	segments := a.Bytes.SplitEscaped(path, '.')
	cur := root
	for _, seg := range segments {
		cur = evalSegment(a, cur, seg)
		if cur == nil {
			return Null(a)
		}
	}
	return cur
}

// PathV is Path taking the path as a Go string for caller convenience.
func PathV(a *Arena, root *Node, path string) *Node {
	return Path(a, root, []byte(path))
}

// PathD evaluates path and returns the decoded view of the final node: a
// string node is unescaped, any other node with a byte view (number,
// decimal, zero, bool) is returned as its raw text verbatim, and a miss
// or a node with no byte view (object, array, null) returns def. This
// mirrors the original library's `ajsond`, which decodes AJSON_STRING
// but passes every tag above it through as raw text rather than failing.
func PathD(a *Arena, root *Node, path string, def string) string {
	n := PathV(a, root, path)
	if n == nil {
		return def
	}
	if n.IsString() {
		return string(Decode(a, n.View()))
	}
	if !n.Tag().HasByteView() {
		return def
	}
	return string(n.View())
}

// evalSegment applies one path segment to cur (spec.md §4.6):
//   - cur is an array and seg contains an unescaped '=': filter
//     key=value over the array's object children.
//   - cur is an array and seg has no '=': numeric zero-based index.
//   - otherwise (object, or scalar treated as a miss): key lookup via
//     linear scan.
func evalSegment(a *Arena, cur *Node, seg []byte) *Node {
	if cur == nil {
		return nil
	}
	if cur.IsArray() {
		if key, value, ok := splitFilter(seg); ok {
			return findArrayFilterMatch(cur, key, value)
		}
		idx, ok := parseUintSegment(seg)
		if !ok {
			return nil
		}
		return cur.ScanNth(idx)
	}
	if cur.IsObject() {
		return cur.Scan(seg)
	}
	return nil
}

// splitFilter splits seg on the first unescaped '=' into (key, value),
// reporting ok=false if seg has none.
func splitFilter(seg []byte) (key, value []byte, ok bool) {
	for i := 0; i < len(seg); i++ {
		if seg[i] == '\\' {
			i++
			continue
		}
		if seg[i] == '=' {
			return seg[:i], seg[i+1:], true
		}
	}
	return nil, nil, false
}

// findArrayFilterMatch returns the first array child that is an object
// whose linear-scan lookup of key yields a value whose byte view equals
// value byte-for-byte.
func findArrayFilterMatch(arr *Node, key, value []byte) *Node {
	for c := arr.FirstChild(); c != nil; c = c.Next() {
		child := c.Value()
		if !child.IsObject() {
			continue
		}
		v := child.Scan(key)
		if v != nil && bytes.Equal(v.View(), value) {
			return child
		}
	}
	return nil
}

// parseUintSegment parses seg as an unsigned decimal integer. A segment
// containing any non-digit byte, or an empty segment, is a miss.
func parseUintSegment(seg []byte) (int, bool) {
	if len(seg) == 0 {
		return 0, false
	}
	n := 0
	for _, c := range seg {
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + int(c-'0')
	}
	return n, true
}
