package ajson

// Node is a tagged JSON value: a scalar with a byte view, or a container
// (object/array), or a parse error. Every Node is owned by the Arena that
// allocated it and is never individually freed (spec.md §3 "Ownership and
// lifetime").
type Node struct {
	tag    Tag
	raw    []byte // byte view for scalar-ish nodes; nil for object/array/error
	parent *Node

	// error-node fields, set only when tag == TagError.
	errSource []byte
	errAt     int
	errMsg    string

	// container state, set only when tag == TagArray / TagObject respectively.
	arr *arrayData
	obj *objectData
}

// arrayData holds the intrusive child list and optional random-access
// snapshot for an array node.
type arrayData struct {
	count      int
	head, tail *arrayChild
	snapshot   []*Node // built lazily by Nth; nil when stale/unbuilt
}

// arrayChild is one intrusive list link holding an array element.
type arrayChild struct {
	next, prev *arrayChild
	value      *Node
}

// objectData holds the intrusive entry list and the two mutually
// exclusive lookup indexes described in spec.md §4.4.
type objectData struct {
	count      int
	head, tail *objectEntry
	index      indexState
}

// objectEntry is one intrusive list link holding a (key, value) pair, plus
// the extra pointers used only when the tree index is built.
type objectEntry struct {
	next, prev *objectEntry
	key        []byte
	value      *Node

	// treap tree-link fields, meaningful only while the tree index is active.
	treeLeft, treeRight *objectEntry
	priority            uint64
}

// Tag returns the node's type tag. A nil Node is treated as TagNull by
// every predicate and reader in this package (spec.md §7.2: "absent keys
// ... surface as the caller's default value").
func (n *Node) Tag() Tag {
	if n == nil {
		return TagNull
	}
	return n.tag
}

// Parent returns the container that holds n, or nil for a root node.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// IsError reports whether n is a parse-error node.
func (n *Node) IsError() bool { return n.Tag() == TagError }

// IsObject reports whether n is an object.
func (n *Node) IsObject() bool { return n.Tag() == TagObject }

// IsArray reports whether n is an array.
func (n *Node) IsArray() bool { return n.Tag() == TagArray }

// IsNull reports whether n is a JSON null (or nil).
func (n *Node) IsNull() bool { return n.Tag() == TagNull }

// IsBool reports whether n is a JSON true or false.
func (n *Node) IsBool() bool { return n.Tag().IsBoolLike() }

// IsString reports whether n is a JSON string.
func (n *Node) IsString() bool { return n.Tag() == TagString }

// IsNumber reports whether n is ZERO, NUMBER, or DECIMAL.
func (n *Node) IsNumber() bool { return n.Tag().IsNumericLike() }

// View returns the node's raw byte view (encoded form for strings; the
// literal digits/characters for numbers and bools). Returns nil for
// null, object, array, error, or a nil node.
func (n *Node) View() []byte {
	if n == nil || !n.tag.HasByteView() {
		return nil
	}
	return n.raw
}

// ---- Array navigation & mutation ----

// newArrayNode allocates an empty array node owned by a.
func newArrayNode(a *Arena) *Node {
	n := a.nodes.New()
	n.tag = TagArray
	n.arr = a.arrays.New()
	return n
}

// Count returns the number of elements in an array (O(1)); 0 for any
// other tag.
func (n *Node) Count() int {
	if n == nil || n.tag != TagArray || n.arr == nil {
		return 0
	}
	return n.arr.count
}

// FirstChild returns the first intrusive array-child link, or nil.
func (n *Node) FirstChild() *ArrayChild {
	if n == nil || n.tag != TagArray || n.arr == nil {
		return nil
	}
	return (*ArrayChild)(n.arr.head)
}

// LastChild returns the last intrusive array-child link, or nil.
func (n *Node) LastChild() *ArrayChild {
	if n == nil || n.tag != TagArray || n.arr == nil {
		return nil
	}
	return (*ArrayChild)(n.arr.tail)
}

// ArrayChild is the public view of one array element's intrusive list
// link, supporting restartable forward/backward iteration (spec.md §9
// Design Notes: "idiomatic, restartable iterators").
type ArrayChild arrayChild

// Next returns the next sibling, or nil.
func (c *ArrayChild) Next() *ArrayChild { return (*ArrayChild)((*arrayChild)(c).next) }

// Prev returns the previous sibling, or nil.
func (c *ArrayChild) Prev() *ArrayChild { return (*ArrayChild)((*arrayChild)(c).prev) }

// Value returns the child's value node.
func (c *ArrayChild) Value() *Node { return (*arrayChild)(c).value }

// Append adds item as the new last element of array n, setting item's
// parent. Invalidates any existing direct-access snapshot.
func (n *Node) Append(a *Arena, item *Node) {
	if n == nil || n.tag != TagArray {
		return
	}
	item.parent = n
	link := a.children.New()
	link.value = item
	if n.arr.tail == nil {
		n.arr.head = link
		n.arr.tail = link
	} else {
		link.prev = n.arr.tail
		n.arr.tail.next = link
		n.arr.tail = link
	}
	n.arr.count++
	n.arr.snapshot = nil
}

// ScanNth linearly walks to the nth (0-based) element. O(n).
func (n *Node) ScanNth(nth int) *Node {
	if n == nil || n.tag != TagArray || nth < 0 {
		return nil
	}
	c := n.arr.head
	for i := 0; c != nil; i++ {
		if i == nth {
			return c.value
		}
		c = c.next
	}
	return nil
}

// Nth builds (or reuses) a random-access snapshot and returns the nth
// (0-based) element in O(1) amortized.
func (n *Node) Nth(nth int) *Node {
	if n == nil || n.tag != TagArray || nth < 0 {
		return nil
	}
	if n.arr.snapshot == nil {
		n.arr.snapshot = make([]*Node, 0, n.arr.count)
		for c := n.arr.head; c != nil; c = c.next {
			n.arr.snapshot = append(n.arr.snapshot, c.value)
		}
	}
	if nth >= len(n.arr.snapshot) {
		return nil
	}
	return n.arr.snapshot[nth]
}

// Erase unlinks c from its array, fixing neighbor links, decrementing the
// count, and invalidating the direct-access snapshot. Memory is not
// freed (spec.md §3: "deletion unlinks but never frees").
func (n *Node) Erase(c *ArrayChild) {
	if n == nil || n.tag != TagArray || c == nil {
		return
	}
	link := (*arrayChild)(c)
	if link.prev != nil {
		link.prev.next = link.next
	} else {
		n.arr.head = link.next
	}
	if link.next != nil {
		link.next.prev = link.prev
	} else {
		n.arr.tail = link.prev
	}
	n.arr.count--
	n.arr.snapshot = nil
}

// Clear unlinks all elements of array n, keeping arena allocations.
func (n *Node) Clear() {
	if n == nil || n.tag != TagArray {
		return
	}
	n.arr.head = nil
	n.arr.tail = nil
	n.arr.count = 0
	n.arr.snapshot = nil
}

// ---- Object navigation (list-level; index-aware ops live in objindex.go) ----

// ObjectEntry is the public view of one object entry's intrusive list
// link.
type ObjectEntry objectEntry

// Key returns the entry's key bytes (encoded form, as stored — spec.md §9:
// "Keys are stored and compared in their encoded form").
func (e *ObjectEntry) Key() []byte { return (*objectEntry)(e).key }

// Value returns the entry's value node.
func (e *ObjectEntry) Value() *Node { return (*objectEntry)(e).value }

// Next returns the next entry in insertion order, or nil.
func (e *ObjectEntry) Next() *ObjectEntry { return (*ObjectEntry)((*objectEntry)(e).next) }

// Prev returns the previous entry in insertion order, or nil.
func (e *ObjectEntry) Prev() *ObjectEntry { return (*ObjectEntry)((*objectEntry)(e).prev) }

// ObjectCount returns the number of entries in an object (O(1)); 0 for
// any other tag.
func (n *Node) ObjectCount() int {
	if n == nil || n.tag != TagObject || n.obj == nil {
		return 0
	}
	return n.obj.count
}

// FirstEntry returns the first entry in insertion order, or nil.
func (n *Node) FirstEntry() *ObjectEntry {
	if n == nil || n.tag != TagObject || n.obj == nil {
		return nil
	}
	return (*ObjectEntry)(n.obj.head)
}

// LastEntry returns the last entry in insertion order, or nil.
func (n *Node) LastEntry() *ObjectEntry {
	if n == nil || n.tag != TagObject || n.obj == nil {
		return nil
	}
	return (*ObjectEntry)(n.obj.tail)
}
