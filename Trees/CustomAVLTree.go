package Trees

import (
	"golang.org/x/exp/constraints"
)

// CustomAVLTree is the version of AVLTree for user-defined types
// satisfying the Ordered interface. All methods are implemented
// exactly as AVLTree except for using Ordered.LessThan and
// Ordered.Equals for comparisons.
type CustomAVLTree[T Ordered[T], S constraints.Unsigned] struct {
	base[T, S]
}

// NewCustom is the CustomAVLTree equivalence of New.
func NewCustom[T Ordered[T], S constraints.Unsigned](hint S) *CustomAVLTree[T, S] {
	return &CustomAVLTree[T, S]{makeBase[T, S](hint)}
}

// FromCustom is the CustomAVLTree equivalence of From.
func FromCustom[T Ordered[T], S constraints.Unsigned](sli []T, safe bool) *CustomAVLTree[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if !sli[i-1].LessThan(sli[i]) {
				panic(InvalidSliceError{sli[i-1], sli[i]})
			}
		}
	}
	return &CustomAVLTree[T, S]{from[T, S](sli)}
}

func (u *CustomAVLTree[T, S]) insert(curI, ni S) (S, error) {
	if curI == 0 {
		return ni, nil
	}
	cur := &u.ifs[curI]
	if v := u.vs[ni-1]; v.LessThan(u.vs[curI-1]) {
		l, err := u.insert(cur.l, ni)
		if err != nil {
			return curI, err
		}
		cur.l = l
	} else if v.Equals(u.vs[curI-1]) {
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
func (u *CustomAVLTree[T, S]) Insert(v T) error {
	ni := u.alloc(v)
	r, err := u.insert(u.root, ni)
	if err != nil {
		u.addFree(ni)
		return err
	}
	u.root = r
	return nil
}

func (u *CustomAVLTree[T, S]) update(curI, ni S) (S, bool) {
	if curI == 0 {
		return ni, false
	}
	cur := &u.ifs[curI]
	var replaced bool
	if v := u.vs[ni-1]; v.LessThan(u.vs[curI-1]) {
		cur.l, replaced = u.update(cur.l, ni)
	} else if v.Equals(u.vs[curI-1]) {
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
func (u *CustomAVLTree[T, S]) Update(v T) bool {
	ni := u.alloc(v)
	var replaced bool
	u.root, replaced = u.update(u.root, ni)
	return replaced
}

func (u *CustomAVLTree[T, S]) remove(curI S, v T) (S, error) {
	if curI == 0 {
		return 0, &NotFoundError{}
	}
	cur := &u.ifs[curI]
	if v.LessThan(u.vs[curI-1]) {
		l, err := u.remove(cur.l, v)
		if err != nil {
			return curI, err
		}
		cur.l = l
	} else if v.Equals(u.vs[curI-1]) {
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
func (u *CustomAVLTree[T, S]) Remove(v T) error {
	r, err := u.remove(u.root, v)
	if err != nil {
		return err
	}
	u.root = r
	return nil
}

// Get is [AVLTree.Get] under Ordered comparisons; the usual use is
// looking up by the key part of T and reading the payload part of the
// stored value.
// Time: O(Height); Space: O(1)
func (u *CustomAVLTree[T, S]) Get(v T) *T {
	for curI := u.root; curI != 0; {
		if v.LessThan(u.vs[curI-1]) {
			curI = u.ifs[curI].l
		} else if v.Equals(u.vs[curI-1]) {
			return &u.vs[curI-1]
		} else {
			curI = u.ifs[curI].r
		}
	}
	return nil
}

// Has [Tree.Has]
// Time: O(Height); Space: O(1)
func (u *CustomAVLTree[T, S]) Has(v T) bool {
	return u.Get(v) != nil
}

// Clone returns a deep copy sharing no nodes with u.
// Time: O(n)
func (u *CustomAVLTree[T, S]) Clone() *CustomAVLTree[T, S] {
	return &CustomAVLTree[T, S]{u.base.clone()}
}

// Corrupt [Tree.Corrupt]. Recursive.
// Time: O(n)
func (u *CustomAVLTree[T, S]) Corrupt() bool {
	return u.corrupt(func(a, b T) bool { return a.LessThan(b) })
}
