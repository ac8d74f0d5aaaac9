package ajson

import (
	"bytes"
	"hash/maphash"
	"sort"
)

// indexState is the explicit sum type spec.md §9 Design Notes recommends
// in place of the original C library's single word-sized "root" slot
// overloaded to mean either a sorted-array base pointer or a tree root,
// distinguished by a side counter. None means neither index is built;
// exactly one of sorted/tree is non-nil otherwise (spec.md §3 invariant:
// "Never both simultaneously").
type indexState struct {
	sorted []*objectEntry // non-nil: Get-backing sorted-array snapshot
	tree   *objectEntry   // non-nil: Find-backing treap root
}

func newObjectNode(a *Arena) *Node {
	n := a.nodes.New()
	n.tag = TagObject
	n.obj = a.objects.New()
	return n
}

// AppendEntry adds a (key, value) entry to object n without touching
// either index (spec.md §4.4 "append (bulk insert without index
// maintenance): no index touched"). If copyKey, key is duplicated into
// a's byte storage; otherwise the caller's slice is retained as-is.
func (n *Node) AppendEntry(a *Arena, key []byte, item *Node, copyKey bool) {
	if n == nil || n.tag != TagObject {
		return
	}
	if item != nil {
		item.parent = n
	}
	e := a.entries.New()
	if copyKey {
		e.key = a.Bytes.Dup(key)
	} else {
		e.key = key
	}
	e.value = item
	if n.obj.tail == nil {
		n.obj.head = e
		n.obj.tail = e
	} else {
		e.prev = n.obj.tail
		n.obj.tail.next = e
		n.obj.tail = e
	}
	n.obj.count++
}

// Scan linearly walks the object's entries in insertion order and
// returns the value of the first entry whose key equals key.
func (n *Node) Scan(key []byte) *Node {
	if n == nil || n.tag != TagObject {
		return nil
	}
	for e := n.obj.head; e != nil; e = e.next {
		if bytes.Equal(e.key, key) {
			return e.value
		}
	}
	return nil
}

// ScanReverse is like Scan but returns the value of the last matching
// entry in insertion order (spec.md §8 "scan_reverse returns the last").
func (n *Node) ScanReverse(key []byte) *Node {
	if n == nil || n.tag != TagObject {
		return nil
	}
	for e := n.obj.tail; e != nil; e = e.prev {
		if bytes.Equal(e.key, key) {
			return e.value
		}
	}
	return nil
}

// invalidateSorted drops the sorted-array snapshot, if any.
func (o *objectData) invalidateSorted() {
	o.index.sorted = nil
}

// invalidateTree drops the treap index, if any (tree links become
// meaningless; they're overwritten wholesale on the next rebuild).
func (o *objectData) invalidateTree() {
	o.index.tree = nil
}

// rebuildSorted builds the sorted-array snapshot from the insertion-order
// list, sorted by raw key-byte compare, first occurrence wins for
// duplicate keys (stable sort preserves insertion order among equal
// keys, which is exactly "earliest sorted position" for ties).
func (o *objectData) rebuildSorted() {
	entries := make([]*objectEntry, 0, o.count)
	for e := o.head; e != nil; e = e.next {
		entries = append(entries, e)
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return bytes.Compare(entries[i].key, entries[j].key) < 0
	})
	o.index.sorted = entries
	o.index.tree = nil
}

// rebuildTree builds the treap from the insertion-order list. Priorities
// are derived from a per-arena hash seed so the tree shape is independent
// of Go's map iteration order while still being perfectly deterministic
// for a given arena and key set.
func (o *objectData) rebuildTree(a *Arena) {
	o.index.tree = nil
	for e := o.head; e != nil; e = e.next {
		e.treeLeft, e.treeRight = nil, nil
		e.priority = keyPriority(a, e.key)
		o.index.tree = treapInsert(o.index.tree, e)
	}
	o.index.sorted = nil
}

func keyPriority(a *Arena, key []byte) uint64 {
	var h maphash.Hash
	h.SetSeed(a.Bytes.Seed())
	_, _ = h.Write(key)
	return h.Sum64()
}

// treapInsert inserts e into the treap rooted at root, keyed by raw byte
// compare on e.key and heap-ordered (max-heap) by e.priority, and returns
// the (possibly new) root. Duplicate keys are inserted as distinct nodes;
// ties break toward the existing node's position so earlier inserts stay
// closer to the root-ward side for Find's "first occurrence" semantics.
func treapInsert(root, e *objectEntry) *objectEntry {
	if root == nil {
		return e
	}
	c := bytes.Compare(e.key, root.key)
	if c < 0 {
		root.treeLeft = treapInsert(root.treeLeft, e)
		if root.treeLeft.priority > root.priority {
			root = rotateRight(root)
		}
	} else {
		root.treeRight = treapInsert(root.treeRight, e)
		if root.treeRight.priority > root.priority {
			root = rotateLeft(root)
		}
	}
	return root
}

func rotateRight(root *objectEntry) *objectEntry {
	l := root.treeLeft
	root.treeLeft = l.treeRight
	l.treeRight = root
	return l
}

func rotateLeft(root *objectEntry) *objectEntry {
	r := root.treeRight
	root.treeRight = r.treeLeft
	r.treeLeft = root
	return r
}

// treapFind returns the first (left-most, i.e. earliest-inserted-leaning)
// entry in the treap with the given key, or nil.
func treapFind(root *objectEntry, key []byte) *objectEntry {
	for root != nil {
		c := bytes.Compare(key, root.key)
		switch {
		case c < 0:
			root = root.treeLeft
		case c > 0:
			root = root.treeRight
		default:
			// Prefer the left subtree's match, if any, to approximate
			// first-occurrence-by-insertion-order semantics, mirroring
			// Get's documented tie-break (spec.md §4.4).
			if left := treapFind(root.treeLeft, key); left != nil {
				return left
			}
			return root
		}
	}
	return nil
}

func treapRemove(root *objectEntry, e *objectEntry) *objectEntry {
	if root == nil {
		return nil
	}
	if root == e {
		return treapMerge(root.treeLeft, root.treeRight)
	}
	c := bytes.Compare(e.key, root.key)
	if c < 0 {
		root.treeLeft = treapRemove(root.treeLeft, e)
	} else {
		root.treeRight = treapRemove(root.treeRight, e)
	}
	return root
}

func treapMerge(l, r *objectEntry) *objectEntry {
	if l == nil {
		return r
	}
	if r == nil {
		return l
	}
	if l.priority > r.priority {
		l.treeRight = treapMerge(l.treeRight, r)
		return l
	}
	r.treeLeft = treapMerge(l, r.treeLeft)
	return r
}

// Get performs a snapshot-based lookup (spec.md §4.4 "used by get"): on
// first call after an invalidation it builds a sorted-array index over
// the current contents (dropping any active tree), then binary-searches
// it. Appends made after the snapshot was built are invisible until the
// next rebuild.
func (n *Node) Get(key []byte) *Node {
	e := n.GetEntry(key)
	if e == nil {
		return nil
	}
	return e.Value()
}

// GetEntry is like Get but returns the matching ObjectEntry, or nil.
func (n *Node) GetEntry(key []byte) *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	if n.obj.index.sorted == nil {
		// Crossover: a tree currently active must be dropped and the
		// snapshot rebuilt (spec.md §4.4 crossover rule).
		n.obj.rebuildSorted()
	}
	entries := n.obj.index.sorted
	i := sort.Search(len(entries), func(i int) bool {
		return bytes.Compare(entries[i].key, key) >= 0
	})
	if i < len(entries) && bytes.Equal(entries[i].key, key) {
		// First occurrence: walk left over any exact ties to honor
		// spec.md §4.4 "earliest sorted position" for duplicate keys.
		for i > 0 && bytes.Equal(entries[i-1].key, key) {
			i--
		}
		return (*ObjectEntry)(entries[i])
	}
	return nil
}

// Find performs a tree-based lookup (spec.md §4.4 "used by find"): on
// first call after an invalidation it builds the treap over the current
// contents (dropping any active sorted snapshot), then walks it.
func (n *Node) Find(a *Arena, key []byte) *Node {
	e := n.FindEntry(a, key)
	if e == nil {
		return nil
	}
	return e.Value()
}

// FindEntry is like Find but returns the matching ObjectEntry, or nil.
func (n *Node) FindEntry(a *Arena, key []byte) *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	if n.obj.index.tree == nil && n.obj.count > 0 {
		// Crossover: a sorted snapshot currently active must be dropped
		// and the tree rebuilt (spec.md §4.4 crossover rule; this is the
		// fix for the find-then-get staleness bug spec.md §8 calls out).
		n.obj.rebuildTree(a)
	}
	return (*ObjectEntry)(treapFind(n.obj.index.tree, key))
}

// Set upserts: replaces the first entry matching key if present, else
// appends. If a sorted snapshot is active it is dropped; if a tree is
// active, a newly appended key is inserted into it.
func (n *Node) Set(a *Arena, key []byte, item *Node, copyKey bool) *ObjectEntry {
	if n == nil || n.tag != TagObject {
		return nil
	}
	for e := n.obj.head; e != nil; e = e.next {
		if bytes.Equal(e.key, key) {
			item.parent = n
			e.value = item
			n.obj.invalidateSorted()
			return (*ObjectEntry)(e)
		}
	}
	n.AppendEntry(a, key, item, copyKey)
	e := n.obj.tail
	n.obj.invalidateSorted()
	if n.obj.index.tree != nil {
		e.priority = keyPriority(a, e.key)
		n.obj.index.tree = treapInsert(n.obj.index.tree, e)
	}
	return (*ObjectEntry)(e)
}

// Insert is find-then-upsert: if key is not already present, it appends
// and (when a tree index is active) inserts the tree link, matching
// spec.md §4.4's distinct "insert" mutator.
func (n *Node) Insert(a *Arena, key []byte, item *Node, copyKey bool) *ObjectEntry {
	if existing := n.FindEntry(a, key); existing != nil {
		return existing
	}
	n.AppendEntry(a, key, item, copyKey)
	e := n.obj.tail
	if n.obj.index.tree != nil {
		e.priority = keyPriority(a, e.key)
		n.obj.index.tree = treapInsert(n.obj.index.tree, e)
	}
	return (*ObjectEntry)(e)
}

// EraseEntry unlinks e from object n's insertion list and updates
// whichever index is active (spec.md §4.4 "erase: if sorted snapshot
// active, drop it entirely; if tree active, remove the entry's
// tree-link").
func (n *Node) EraseEntry(e *ObjectEntry) {
	if n == nil || n.tag != TagObject || e == nil {
		return
	}
	link := (*objectEntry)(e)
	if link.prev != nil {
		link.prev.next = link.next
	} else {
		n.obj.head = link.next
	}
	if link.next != nil {
		link.next.prev = link.prev
	} else {
		n.obj.tail = link.prev
	}
	n.obj.count--

	if n.obj.index.sorted != nil {
		n.obj.invalidateSorted()
	}
	if n.obj.index.tree != nil {
		n.obj.index.tree = treapRemove(n.obj.index.tree, link)
	}
}

// EraseKey removes the first entry matching key, if any, and reports
// whether a match was found (spec.md §6 "object.erase").
func (n *Node) EraseKey(a *Arena, key []byte) bool {
	var match *objectEntry
	for e := n.obj.head; e != nil; e = e.next {
		if bytes.Equal(e.key, key) {
			match = e
			break
		}
	}
	if match == nil {
		return false
	}
	n.EraseEntry((*ObjectEntry)(match))
	return true
}
