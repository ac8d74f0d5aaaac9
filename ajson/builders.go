package ajson

// newScalarNode allocates a node of the given scalar tag with raw as its
// byte view.
func newScalarNode(a *Arena, tag Tag, raw []byte) *Node {
	n := a.nodes.New()
	n.tag = tag
	n.raw = raw
	return n
}

// Object returns a new, empty object node owned by a.
func Object(a *Arena) *Node { return newObjectNode(a) }

// Array returns a new, empty array node owned by a.
func Array(a *Arena) *Node { return newArrayNode(a) }

// Null returns a new null node. Its raw bytes are "null" itself (not nil)
// so the serializer, which writes TagNull straight from the node's raw
// bytes, emits the literal rather than nothing. View still returns nil
// for it, since TagNull sorts below TagString.
func Null(a *Arena) *Node { return newScalarNode(a, TagNull, []byte("null")) }

// True returns a new boolean-true node.
func True(a *Arena) *Node { return newScalarNode(a, TagTrue, []byte("true")) }

// False returns a new boolean-false node.
func False(a *Arena) *Node { return newScalarNode(a, TagFalse, []byte("false")) }

// Bool returns a new boolean node for the given Go value.
func Bool(a *Arena, v bool) *Node {
	if v {
		return True(a)
	}
	return False(a)
}

// Zero returns a new node tagged ZERO with byte view "0" (spec.md §4.2
// classification: the literal "0" is its own tag, distinct from NUMBER
// and DECIMAL).
func Zero(a *Arena) *Node { return newScalarNode(a, TagZero, []byte("0")) }

// Number returns a new node tagged NUMBER (an integer literal, no `.` or
// exponent) holding the given decimal-ASCII text verbatim. The caller is
// responsible for passing a textual form that matches spec.md §4.2's
// number grammar; Number does not itself validate.
func Number(a *Arena, text []byte) *Node {
	return newScalarNode(a, TagNumber, a.Bytes.Dup(text))
}

// NumberNoCopy is Number but retains text as given instead of duplicating
// it into the arena (caller owns the lifetime of text).
func NumberNoCopy(a *Arena, text []byte) *Node {
	return newScalarNode(a, TagNumber, text)
}

// DecimalString returns a new node tagged DECIMAL (a literal containing
// `.` and/or an exponent) holding the given text verbatim.
func DecimalString(a *Arena, text []byte) *Node {
	return newScalarNode(a, TagDecimal, a.Bytes.Dup(text))
}

// Uint64 formats v in decimal and stores it as a NUMBER node (a ZERO
// node when v is 0), mirroring the original library's `ajson_uint64`
// convenience builder.
func Uint64(a *Arena, v uint64) *Node {
	if v == 0 {
		return Zero(a)
	}
	return newScalarNode(a, TagNumber, a.Bytes.Sprintf("%d", v))
}

// NumberString is an alias for Number, named to mirror the original
// library's `ajson_number_string` entry point (an already-formatted
// integer literal, copied into the arena).
func NumberString(a *Arena, text []byte) *Node { return Number(a, text) }

// String builds a string node from an already-JSON-encoded byte slice,
// duplicating it into the arena (spec.md §4.3 "copy duplicates the
// input into the arena").
func String(a *Arena, encoded []byte) *Node {
	return newScalarNode(a, TagString, a.Bytes.Dup(encoded))
}

// StringNoCopy is String but retains encoded as given instead of
// duplicating it (spec.md §4.3 "no-copy retains the caller's slice;
// caller is responsible for lifetime").
func StringNoCopy(a *Arena, encoded []byte) *Node {
	return newScalarNode(a, TagString, encoded)
}

// EncodeString JSON-encodes raw and builds a string node from the
// result, always duplicating (spec.md §4.3 "Encode builders ... always
// duplicate (copy variant)").
func EncodeString(a *Arena, raw []byte) *Node {
	encoded := Encode(a, raw)
	return newScalarNode(a, TagString, a.Bytes.Dup(encoded))
}

// EncodeStringNoCopy JSON-encodes raw and builds a string node, aliasing
// raw directly when no escaping was needed (spec.md §4.3 "Encode
// builders may alias when no escaping is needed (no-copy variant)").
func EncodeStringNoCopy(a *Arena, raw []byte) *Node {
	// Encode itself already allocates fresh arena bytes when it has to
	// escape, so the non-aliased branch needs no further duplication.
	encoded, _ := EncodeNoCopy(a, raw)
	return newScalarNode(a, TagString, encoded)
}

// newErrorNode builds an ERROR-tagged node carrying the diagnostic
// fields DumpError renders (spec.md §4.2 "Error representation").
func newErrorNode(a *Arena, source []byte, at int, msg string) *Node {
	n := a.nodes.New()
	n.tag = TagError
	n.errSource = source
	n.errAt = at
	n.errMsg = msg
	return n
}
