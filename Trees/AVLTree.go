package Trees

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// AVLTree is a binary search tree with no repeated values. It
// maintains balance through rotations by checking the cached heights
// of subtrees, keeping |height(right)-height(left)|<=1 at every node,
// so Height() is always <=1.45*log2(Size()+2).
// T is the type of values it will hold, S is the type of the variables
// used for storing the indexes, heights, and sizes of subtrees. Nodes
// live in a flat arena addressed by S; a mutation may therefore move
// no node in memory but any *T obtained from Get is invalidated by the
// next mutating call.
// Note that due to the way uint works in Go, and that the Tree
// interface defines the return value of some functions to be uint, S
// shouldn't be any type that will cause overflow when converted to
// uint. Generally, you should let S be a wide upperbound for the size
// of the tree.
type AVLTree[T cmp.Ordered, S constraints.Unsigned] struct {
	base[T, S]
}

// New returns an empty AVLTree with capacity for hint values before
// its arrays grow.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *AVLTree[T, S] {
	return &AVLTree[T, S]{makeBase[T, S](hint)}
}

// From builds an AVLTree from the given slice, which must be sorted in
// strict ascending order. This is faster than repeatedly calling
// Insert. If safe==true, this function will check the condition and
// panic with InvalidSliceError if it is broken; otherwise it is up to
// the user to ensure it (the tree will be corrupt if not).
// Time: O(n)
func From[T cmp.Ordered, S constraints.Unsigned](sli []T, safe bool) *AVLTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if sli[i-1] >= sli[i] {
				panic(InvalidSliceError{sli[i-1], sli[i]})
			}
		}
	}
	return &AVLTree[T, S]{from[T, S](sli)}
}

// insert the leaf ni into the subtree rooted at curI recursively,
// returning the new subtree root. The tree is untouched when a value
// equal to ni's is found anywhere on the path.
func (u *AVLTree[T, S]) insert(curI, ni S) (S, error) {
	if curI == 0 {
		return ni, nil
	}
	cur := &u.ifs[curI]
	if v := u.vs[ni-1]; v < u.vs[curI-1] {
		l, err := u.insert(cur.l, ni)
		if err != nil {
			return curI, err
		}
		cur.l = l
	} else if v == u.vs[curI-1] {
		return curI, &DuplicateKeyError{}
	} else {
		r, err := u.insert(cur.r, ni)
		if err != nil {
			return curI, err
		}
		cur.r = r
	}
	u.rebalance(&curI)
	return curI, nil
}

// Insert [Tree.Insert]. Recursive.
// Time: O(Height)
func (u *AVLTree[T, S]) Insert(v T) error {
	ni := u.alloc(v)
	r, err := u.insert(u.root, ni)
	if err != nil {
		u.addFree(ni)
		return err
	}
	u.root = r
	return nil
}

// update is insert except an equal value is overwritten in place, the
// pre-allocated leaf ni going back to the free list.
func (u *AVLTree[T, S]) update(curI, ni S) (S, bool) {
	if curI == 0 {
		return ni, false
	}
	cur := &u.ifs[curI]
	var replaced bool
	if v := u.vs[ni-1]; v < u.vs[curI-1] {
		cur.l, replaced = u.update(cur.l, ni)
	} else if v == u.vs[curI-1] {
		u.vs[curI-1] = u.vs[ni-1]
		u.addFree(ni)
		return curI, true
	} else {
		cur.r, replaced = u.update(cur.r, ni)
	}
	u.rebalance(&curI)
	return curI, replaced
}

// Update [Tree.Update]. Recursive.
// Time: O(Height)
func (u *AVLTree[T, S]) Update(v T) bool {
	ni := u.alloc(v)
	var replaced bool
	u.root, replaced = u.update(u.root, ni)
	return replaced
}

// remove the value v from the subtree rooted at curI recursively,
// returning the new subtree root. A node with a left child takes its
// predecessor (the left subtree's maximum) in place of the removed
// value, one with only a right child its successor, and a leaf node
// collapses to the empty sentinel so the parent's link is pruned
// immediately.
func (u *AVLTree[T, S]) remove(curI S, v T) (S, error) {
	if curI == 0 {
		return 0, &NotFoundError{}
	}
	cur := &u.ifs[curI]
	if v < u.vs[curI-1] {
		l, err := u.remove(cur.l, v)
		if err != nil {
			return curI, err
		}
		cur.l = l
	} else if v == u.vs[curI-1] {
		if cur.l != 0 {
			var pv T
			cur.l, pv = u.popMax(cur.l)
			u.vs[curI-1] = pv
		} else if cur.r != 0 {
			var pv T
			cur.r, pv = u.popMin(cur.r)
			u.vs[curI-1] = pv
		} else {
			u.addFree(curI)
			return 0, nil
		}
	} else {
		r, err := u.remove(cur.r, v)
		if err != nil {
			return curI, err
		}
		cur.r = r
	}
	u.rebalance(&curI)
	return curI, nil
}

// Remove [Tree.Remove]. Recursive.
// Time: O(Height)
func (u *AVLTree[T, S]) Remove(v T) error {
	r, err := u.remove(u.root, v)
	if err != nil {
		return err
	}
	u.root = r
	return nil
}

// Get returns a pointer to the stored value equal to v, nil if there
// is none. The stored value can differ from v in whatever parts the
// ordering ignores. The pointer is invalidated by the next mutating
// call.
// Time: O(Height); Space: O(1)
func (u *AVLTree[T, S]) Get(v T) *T {
	for curI := u.root; curI != 0; {
		if v < u.vs[curI-1] {
			curI = u.ifs[curI].l
		} else if v == u.vs[curI-1] {
			return &u.vs[curI-1]
		} else {
			curI = u.ifs[curI].r
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(Height); Space: O(1)
func (u *AVLTree[T, S]) Has(v T) bool {
	return u.Get(v) != nil
}

// Clone returns a deep copy sharing no nodes with u.
// Time: O(n)
func (u *AVLTree[T, S]) Clone() *AVLTree[T, S] {
	return &AVLTree[T, S]{u.base.clone()}
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *AVLTree[T, S]) Corrupt() bool {
	return u.corrupt(func(a, b T) bool { return a < b })
}
