package Trees

import (
	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-avl/Queues"
)

// InOrderIterator is a forward-only cursor over a tree in ascending
// order, holding the stack of ancestors whose value and right subtree
// are still pending. It borrows the tree: advancing it after any
// mutating call on the source tree is undefined behavior, and it can't
// be restarted; obtain a fresh one instead.
type InOrderIterator[T any, S constraints.Unsigned] struct {
	t  *base[T, S]
	st []S
}

// InOrderIter returns an iterator positioned at the minimum value.
func (u *base[T, S]) InOrderIter() *InOrderIterator[T, S] {
	it := &InOrderIterator[T, S]{t: u, st: make([]S, 0, u.ifs[u.root].h)}
	it.descend(u.root)
	return it
}

// descend pushes the leftmost spine starting at i.
func (it *InOrderIterator[T, S]) descend(i S) {
	for ; i != 0; i = it.t.ifs[i].l {
		it.st = append(it.st, i)
	}
}

// HasNext reports whether Next will yield a value.
func (it *InOrderIterator[T, S]) HasNext() bool {
	return len(it.st) > 0
}

// Next yields the next value in ascending order, or
// *IteratorExhaustedError past the last one.
func (it *InOrderIterator[T, S]) Next() (T, error) {
	if len(it.st) == 0 {
		return *new(T), &IteratorExhaustedError{}
	}
	i := it.st[len(it.st)-1]
	it.st = it.st[:len(it.st)-1]
	it.descend(it.t.ifs[i].r)
	return it.t.vs[i-1], nil
}

// Equals reports whether both iterators are exhausted or both point at
// the same node of the same tree. Identity is by node, never by value:
// iterators over different trees aren't equal even at structurally
// identical positions.
func (it *InOrderIterator[T, S]) Equals(o *InOrderIterator[T, S]) bool {
	if len(it.st) == 0 || len(o.st) == 0 {
		return len(it.st) == len(o.st)
	}
	return it.t == o.t && it.st[len(it.st)-1] == o.st[len(o.st)-1]
}

// LevelOrderIterator is a forward-only cursor over a tree in
// breadth-first order, holding a FIFO of the discovered but unvisited
// nodes along with their depths. The same borrowing and restart rules
// as InOrderIterator apply.
type LevelOrderIterator[T any, S constraints.Unsigned] struct {
	t *base[T, S]
	q Queues.ArrayQueue[lpos[S]]
	d uint
}

type lpos[S constraints.Unsigned] struct {
	i S
	d uint
}

// LevelOrderIter returns an iterator positioned at the root.
func (u *base[T, S]) LevelOrderIter() *LevelOrderIterator[T, S] {
	it := &LevelOrderIterator[T, S]{t: u, q: Queues.MakeArrayQueue[lpos[S]](uint(u.ifs[u.root].sz)/2 + 1)}
	if u.root != 0 {
		it.q.Push(lpos[S]{u.root, 0})
	}
	return it
}

// HasNext reports whether Next will yield a value.
func (it *LevelOrderIterator[T, S]) HasNext() bool {
	return !it.q.Empty()
}

// Next yields the next value in breadth-first order, or
// *IteratorExhaustedError past the last one.
func (it *LevelOrderIterator[T, S]) Next() (T, error) {
	p, err := it.q.Pop()
	if err != nil {
		return *new(T), &IteratorExhaustedError{}
	}
	if l := it.t.ifs[p.i].l; l != 0 {
		it.q.Push(lpos[S]{l, p.d + 1})
	}
	if r := it.t.ifs[p.i].r; r != 0 {
		it.q.Push(lpos[S]{r, p.d + 1})
	}
	it.d = p.d
	return it.t.vs[p.i-1], nil
}

// Level is the depth of the value Next last yielded, the root's being
// 0.
func (it *LevelOrderIterator[T, S]) Level() uint {
	return it.d
}

// Equals follows the same node-identity rule as
// [InOrderIterator.Equals].
func (it *LevelOrderIterator[T, S]) Equals(o *LevelOrderIterator[T, S]) bool {
	if it.q.Empty() || o.q.Empty() {
		return it.q.Empty() == o.q.Empty()
	}
	return it.t == o.t && it.q.Peek().i == o.q.Peek().i
}

// InOrder [Tree.InOrder]
func (u *base[T, S]) InOrder() func() (T, bool) {
	it := u.InOrderIter()
	return func() (T, bool) {
		v, err := it.Next()
		return v, err == nil
	}
}

// LevelOrder [Tree.LevelOrder]
func (u *base[T, S]) LevelOrder() func() (T, uint, bool) {
	it := u.LevelOrderIter()
	return func() (T, uint, bool) {
		v, err := it.Next()
		return v, it.Level(), err == nil
	}
}
