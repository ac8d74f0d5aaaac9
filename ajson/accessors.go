package ajson

import "github.com/latticejson/ajson/internal/numconv"

// Numeric lists the concrete numeric types the generic accessors
// support. Per spec.md §9 Design Notes ("accessor proliferation ... a
// target-language generic parameterized over the target numeric type is
// appropriate"), this single generic pair replaces the original C
// library's `ajsono_{scan,get,find}_{int,int32,uint,uint32,int64,
// uint64,double}` families — the original_source header documents those
// as "mechanical combinations" of lookup strategy × numeric width.
type Numeric interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64 | ~float32 | ~float64
}

// TryTo attempts to parse n's byte view as T, writing through out only
// on success. Non-scalar nodes (OBJECT, ARRAY, ERROR), and a nil node,
// always fail (spec.md §4.3 "Non-scalar nodes always yield the
// default").
func TryTo[T Numeric](n *Node, out *T) bool {
	raw := n.View()
	if raw == nil {
		return false
	}
	switch p := any(out).(type) {
	case *int:
		v, ok := numconv.TryInt64(raw)
		if ok {
			*p = int(v)
		}
		return ok
	case *int32:
		v, ok := numconv.TryInt32(raw)
		if ok {
			*p = v
		}
		return ok
	case *int64:
		v, ok := numconv.TryInt64(raw)
		if ok {
			*p = v
		}
		return ok
	case *uint:
		v, ok := numconv.TryUint64(raw)
		if ok {
			*p = uint(v)
		}
		return ok
	case *uint32:
		v, ok := numconv.TryUint32(raw)
		if ok {
			*p = v
		}
		return ok
	case *uint64:
		v, ok := numconv.TryUint64(raw)
		if ok {
			*p = v
		}
		return ok
	case *float32:
		v, ok := numconv.TryFloat64(raw)
		if ok {
			*p = float32(v)
		}
		return ok
	case *float64:
		v, ok := numconv.TryFloat64(raw)
		if ok {
			*p = v
		}
		return ok
	default:
		return false
	}
}

// ToInt (named for parity with the original library's int-flavored
// accessors, but generic over every supported numeric width) returns
// n's byte view parsed as T, or def if n is absent or unparsable
// (spec.md §4.3's uniform "default on miss or parse failure" contract).
func ToInt[T Numeric](n *Node, def T) T {
	var v T
	if TryTo(n, &v) {
		return v
	}
	return def
}

// ToBool returns n's byte view parsed as a boolean, or def if n is
// absent or unparsable. Recognizes exact "true"/"false" and, per
// spec.md §4.3, also treats the literal "0" as false.
func ToBool(n *Node, def bool) bool {
	var v bool
	if TryBool(n, &v) {
		return v
	}
	return def
}

// TryBool is the try-form of ToBool.
func TryBool(n *Node, out *bool) bool {
	raw := n.View()
	if raw == nil {
		return false
	}
	if len(raw) == 1 && raw[0] == '0' {
		*out = false
		return true
	}
	v, ok := numconv.TryBool(raw)
	if !ok {
		return false
	}
	*out = v
	return true
}

// ToRawString returns n's encoded byte view as a string without
// unescaping, or def if n is not a string node. Use DecodeString when
// the unescaped value is needed.
func ToRawString(n *Node, def string) string {
	if n == nil || !n.IsString() {
		return def
	}
	return string(n.raw)
}

// DecodeString returns n's string value fully unescaped, or def if n is
// not a string node.
func DecodeString(a *Arena, n *Node, def string) string {
	if n == nil || !n.IsString() {
		return def
	}
	return string(Decode(a, n.raw))
}
