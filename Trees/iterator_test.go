package Trees

import (
	"slices"
	"testing"
)

func TestInOrderIterator(t *testing.T) {
	a := rg.Perm(tAddValRange)[:2000]
	tree := New[int](uint16(0))
	for _, v := range a {
		tree.Insert(v)
	}
	slices.Sort(a)
	it := tree.InOrderIter()
	for i := 0; it.HasNext(); i++ {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("failed to advance: %v", err)
		}
		if v != a[i] {
			t.Errorf("visited %v, want %v", v, a[i])
		}
	}
	if _, err := it.Next(); err == nil {
		t.Errorf("advanced an exhausted iterator")
	} else if _, ok := err.(*IteratorExhaustedError); !ok {
		t.Errorf("advancing an exhausted iterator: got %v, want IteratorExhaustedError", err)
	}
}
func TestInOrderIterator_Equals(t *testing.T) {
	tree := From[int, uint8]([]int{1, 2, 3, 4, 5}, true)
	a, b := tree.InOrderIter(), tree.InOrderIter()
	if !a.Equals(b) {
		t.Errorf("fresh iterators over the same tree are not equal")
	}
	a.Next()
	if a.Equals(b) {
		t.Errorf("iterators at different positions are equal")
	}
	b.Next()
	if !a.Equals(b) {
		t.Errorf("iterators at the same node are not equal")
	}
	other := From[int, uint8]([]int{1, 2, 3, 4, 5}, true)
	if tree.InOrderIter().Equals(other.InOrderIter()) {
		t.Errorf("iterators over distinct trees are equal")
	}
	for a.HasNext() {
		a.Next()
	}
	c := other.InOrderIter()
	for c.HasNext() {
		c.Next()
	}
	if !a.Equals(c) {
		t.Errorf("exhausted iterators are not equal")
	}
}
func TestLevelOrderIterator(t *testing.T) {
	tree := From[int, uint8]([]int{1, 2, 3, 4, 5, 6, 7}, true)
	wantV := []int{4, 2, 6, 1, 3, 5, 7}
	wantD := []uint{0, 1, 1, 2, 2, 2, 2}
	it := tree.LevelOrderIter()
	for i := 0; it.HasNext(); i++ {
		v, err := it.Next()
		if err != nil {
			t.Fatalf("failed to advance: %v", err)
		}
		if v != wantV[i] {
			t.Errorf("visited %v at step %d, want %v", v, i, wantV[i])
		}
		if it.Level() != wantD[i] {
			t.Errorf("level %d at step %d, want %d", it.Level(), i, wantD[i])
		}
	}
	if _, err := it.Next(); err == nil {
		t.Errorf("advanced an exhausted iterator")
	}
}
func TestLevelOrderIterator_Equals(t *testing.T) {
	tree := From[int, uint8]([]int{1, 2, 3}, true)
	a, b := tree.LevelOrderIter(), tree.LevelOrderIter()
	if !a.Equals(b) {
		t.Errorf("fresh iterators over the same tree are not equal")
	}
	a.Next()
	if a.Equals(b) {
		t.Errorf("iterators at different positions are equal")
	}
	b.Next()
	if !a.Equals(b) {
		t.Errorf("iterators at the same node are not equal")
	}
}
func TestInOrder(t *testing.T) {
	a := rg.Perm(tAddValRange)[:1000]
	tree := New[int](uint16(0))
	for _, v := range a {
		tree.Insert(v)
	}
	slices.Sort(a)
	if got := tree.all(); !slices.Equal(got, a) {
		t.Errorf("in order traversal differs from the sorted input")
	}
}
func TestLevelOrder(t *testing.T) {
	tree := From[int, uint8]([]int{1, 2, 3, 4, 5, 6, 7}, true)
	var got []int
	var lvls []uint
	for next := tree.LevelOrder(); ; {
		v, d, ok := next()
		if !ok {
			break
		}
		got = append(got, v)
		lvls = append(lvls, d)
	}
	if !slices.Equal(got, []int{4, 2, 6, 1, 3, 5, 7}) {
		t.Errorf("level order traversal is %v", got)
	}
	if !slices.Equal(lvls, []uint{0, 1, 1, 2, 2, 2, 2}) {
		t.Errorf("levels are %v", lvls)
	}
}
func TestIterator_Empty(t *testing.T) {
	tree := New[int](uint8(0))
	if it := tree.InOrderIter(); it.HasNext() {
		t.Errorf("iterator over an empty tree has a next value")
	} else if _, err := it.Next(); err == nil {
		t.Errorf("advanced an iterator over an empty tree")
	}
	if it := tree.LevelOrderIter(); it.HasNext() {
		t.Errorf("iterator over an empty tree has a next value")
	}
	if _, ok := tree.InOrder()(); ok {
		t.Errorf("traversal of an empty tree yielded a value")
	}
}
