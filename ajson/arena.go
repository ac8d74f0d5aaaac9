package ajson

import "github.com/latticejson/ajson/arena"

// Arena is the document-lifetime allocator every Node, container, entry,
// and byte view in a parsed/built tree comes from. It wraps the generic
// byte-and-struct bump allocator in package arena with typed pools for
// each record kind the node model needs, so the whole document — node
// headers, array/object container records, intrusive list links, and
// string/number byte storage alike — is carved from one arena and freed
// in one shot (spec.md §3 "Ownership and lifetime").
type Arena struct {
	// Bytes is the underlying byte/string allocator, exposed for callers
	// that want to duplicate or format extra bytes (e.g. path segments).
	Bytes *arena.Arena

	nodes    arena.Pool[Node]
	arrays   arena.Pool[arrayData]
	objects  arena.Pool[objectData]
	entries  arena.Pool[objectEntry]
	children arena.Pool[arrayChild]
}

// NewArena returns a ready-to-use Arena. maxBytes of 0 means unbounded
// byte allocation (the arena's struct pools are never bounded; only the
// underlying byte storage can be capped, since only it is proportional to
// attacker-controlled input size).
func NewArena(maxBytes int) *Arena {
	return &Arena{Bytes: arena.New(maxBytes)}
}
