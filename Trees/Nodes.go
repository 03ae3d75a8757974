package Trees

import (
	"slices"

	"golang.org/x/exp/constraints"
)

// A node in the tree. The zero value at index 0 is the shared empty
// sentinel: no children, height 0, size 0.
type info[S constraints.Unsigned] struct {
	l, r, h, sz S
}

// base is the arena shared by AVLTree and CustomAVLTree. Nodes live in
// ifs and are addressed by index, 0 meaning "no node"; vs[i-1]
// corresponds to ifs[i]. free is the beginning of the linked list that
// contains all the reclaimed indexes; info.l represents next.
// Everything comparator-independent lives here; the descent by
// ordering is in the two tree types.
type base[T any, S constraints.Unsigned] struct {
	root, free S
	ifs        []info[S]
	vs         []T
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	return base[T, S]{ifs: make([]info[S], 1, hint+1), vs: make([]T, 0, hint)}
}

// pull recomputes the cached height and size of node i from its
// children. The children are the ground truth for both fields; they
// are never adjusted incrementally.
func (u *base[T, S]) pull(i S) {
	n := &u.ifs[i]
	n.h = max(u.ifs[n.l].h, u.ifs[n.r].h) + 1
	n.sz = u.ifs[n.l].sz + u.ifs[n.r].sz + 1
}

// bf is the balance factor of node i: height(right)-height(left).
func (u *base[T, S]) bf(i S) int {
	return int(u.ifs[u.ifs[i].r].h) - int(u.ifs[u.ifs[i].l].h)
}

// rotateLeft promotes the right child of node *ni into its place. ni
// is passed by reference in order to modify the parent's link.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateLeft(ni *S) {
	n := &u.ifs[*ni]
	rci := n.r
	n.r = u.ifs[rci].l
	u.ifs[rci].l = *ni
	u.pull(*ni)
	u.pull(rci)
	*ni = rci
}

// rotateRight promotes the left child of node *ni into its place. ni
// is passed by reference in order to modify the parent's link.
// Time: O(1); Space: O(1)
func (u *base[T, S]) rotateRight(ni *S) {
	n := &u.ifs[*ni]
	lci := n.l
	n.l = u.ifs[lci].r
	u.ifs[lci].r = *ni
	u.pull(*ni)
	u.pull(lci)
	*ni = lci
}

// rebalance restores the balance factor of node *ni to [-1,1] after a
// structural change in one of its subtrees, refreshing the cached
// fields first. Performs at most one single or one double rotation;
// callers invoke it at every level of the unwind, which bounds the
// total work of a mutation by O(height).
func (u *base[T, S]) rebalance(ni *S) {
	u.pull(*ni)
	if b := u.bf(*ni); b < -1 {
		if n := &u.ifs[*ni]; u.bf(n.l) > 0 {
			u.rotateLeft(&n.l)
		}
		u.rotateRight(ni)
	} else if b > 1 {
		if n := &u.ifs[*ni]; u.bf(n.r) < 0 {
			u.rotateRight(&n.r)
		}
		u.rotateLeft(ni)
	}
}

// addFree reclaims index a, zeroing its value slot so the arena drops
// whatever the value referenced.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a-1] = *new(T)
	u.free = a
}

// alloc takes a reclaimed index or grows the arrays, storing v as a
// fresh leaf. Mutating operations allocate before descending so that
// no index held across the descent is invalidated by growth.
func (u *base[T, S]) alloc(v T) S {
	if i := u.free; i != 0 {
		u.free = u.ifs[i].l
		u.ifs[i] = info[S]{h: 1, sz: 1}
		u.vs[i-1] = v
		return i
	}
	u.ifs = append(u.ifs, info[S]{h: 1, sz: 1})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// popMax removes the maximum of the subtree rooted at curI, returning
// the new subtree root (0 when it became empty) and the removed value.
// When the rightmost node has a left child its value is pulled up from
// that subtree recursively. Rebalances on unwind. Recursive.
func (u *base[T, S]) popMax(curI S) (S, T) {
	cur := &u.ifs[curI]
	if cur.r == 0 {
		v := u.vs[curI-1]
		if cur.l == 0 {
			u.addFree(curI)
			return 0, v
		}
		var lv T
		cur.l, lv = u.popMax(cur.l)
		u.vs[curI-1] = lv
		u.rebalance(&curI)
		return curI, v
	}
	var v T
	cur.r, v = u.popMax(cur.r)
	u.rebalance(&curI)
	return curI, v
}

// popMin is the mirror image of popMax.
func (u *base[T, S]) popMin(curI S) (S, T) {
	cur := &u.ifs[curI]
	if cur.l == 0 {
		v := u.vs[curI-1]
		if cur.r == 0 {
			u.addFree(curI)
			return 0, v
		}
		var rv T
		cur.r, rv = u.popMin(cur.r)
		u.vs[curI-1] = rv
		u.rebalance(&curI)
		return curI, v
	}
	var v T
	cur.l, v = u.popMin(cur.l)
	u.rebalance(&curI)
	return curI, v
}

// Pop [Tree.Pop]. Recursive.
// Time: O(Height)
func (u *base[T, S]) Pop() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyTreeError{}
	}
	var v T
	u.root, v = u.popMax(u.root)
	return v, nil
}

// PopLeft [Tree.PopLeft]. Recursive.
// Time: O(Height)
func (u *base[T, S]) PopLeft() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyTreeError{}
	}
	var v T
	u.root, v = u.popMin(u.root)
	return v, nil
}

// Minimum [Tree.Minimum]
// Time: O(Height); Space: O(1)
func (u *base[T, S]) Minimum() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyTreeError{}
	}
	i := u.root
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return u.vs[i-1], nil
}

// Maximum [Tree.Maximum]
// Time: O(Height); Space: O(1)
func (u *base[T, S]) Maximum() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyTreeError{}
	}
	i := u.root
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return u.vs[i-1], nil
}

// Size [Tree.Size]
// Time: O(1); Space: O(1)
func (u *base[T, S]) Size() uint {
	return uint(u.ifs[u.root].sz)
}

// Height [Tree.Height]
// Time: O(1); Space: O(1)
func (u *base[T, S]) Height() uint {
	return uint(u.ifs[u.root].h)
}

// IsEmpty [Tree.IsEmpty]
func (u *base[T, S]) IsEmpty() bool {
	return u.root == 0
}

// IsLeaf [Tree.IsLeaf]
func (u *base[T, S]) IsLeaf() bool {
	return u.root != 0 && u.ifs[u.root].l == 0 && u.ifs[u.root].r == 0
}

// Clear [Tree.Clear]. O(1); doesn't release or reset the underlying
// arrays.
func (u *base[T, S]) Clear() {
	u.ifs = u.ifs[:1]
	u.vs = u.vs[:0]
	u.root, u.free = 0, 0
}

// clone copies the arena wholesale; the copy shares nothing with u.
func (u *base[T, S]) clone() base[T, S] {
	return base[T, S]{root: u.root, free: u.free, ifs: slices.Clone(u.ifs), vs: slices.Clone(u.vs)}
}

// corrupt walks the tree in order, checking the cached fields against
// the children, the balance factor, and that values strictly ascend
// under less.
func (u *base[T, S]) corrupt(less func(a, b T) bool) bool {
	var prev *T
	var walk func(S) bool
	walk = func(i S) bool {
		if i == 0 {
			return false
		}
		n := u.ifs[i]
		if n.h != max(u.ifs[n.l].h, u.ifs[n.r].h)+1 || n.sz != u.ifs[n.l].sz+u.ifs[n.r].sz+1 {
			return true
		}
		if b := u.bf(i); b < -1 || b > 1 {
			return true
		}
		if walk(n.l) {
			return true
		}
		if prev != nil && !less(*prev, u.vs[i-1]) {
			return true
		}
		prev = &u.vs[i-1]
		return walk(n.r)
	}
	return walk(u.root)
}

// from builds the arena for a sorted slice; node i+1 holds sli[i].
// Recursive.
// Time: O(n)
func from[T any, S constraints.Unsigned](sli []T) base[T, S] {
	ifs := make([]info[S], len(sli)+1)
	var build func(lo, hi S) S
	build = func(lo, hi S) S {
		mid := lo + (hi-lo)>>1
		n := &ifs[mid]
		if mid > lo {
			n.l = build(lo, mid-1)
		}
		if mid < hi {
			n.r = build(mid+1, hi)
		}
		n.h = max(ifs[n.l].h, ifs[n.r].h) + 1
		n.sz = ifs[n.l].sz + ifs[n.r].sz + 1
		return mid
	}
	var root S
	if len(sli) > 0 {
		root = build(1, S(len(sli)))
	}
	return base[T, S]{root: root, ifs: ifs, vs: slices.Clone(sli)}
}
