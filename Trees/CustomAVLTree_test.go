package Trees

import (
	"slices"
	"testing"
)

// entry orders by key only, so distinct payloads compare equal.
type entry struct {
	key     int
	payload string
}

func (e entry) LessThan(o entry) bool {
	return e.key < o.key
}
func (e entry) Equals(o entry) bool {
	return e.key == o.key
}

var _ Tree[entry] = (*CustomAVLTree[entry, uint8])(nil)

func TestCustomAVLTree_Insert(t *testing.T) {
	tree := NewCustom[entry](uint16(1))
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if err := tree.Insert(entry{key: b}); in != (err != nil) {
			t.Errorf("wrong insert result for key %v: %v", b, err)
		}
		content[b] = struct{}{}
	}
	if int(tree.Size()) != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	for k := range content {
		if !tree.Has(entry{key: k}) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}
func TestCustomAVLTree_UpdateOverwrites(t *testing.T) {
	tree := NewCustom[entry](uint8(2))
	if tree.Update(entry{1, "a"}) {
		t.Errorf("updated key %v in an empty tree", 1)
	}
	if !tree.Update(entry{1, "b"}) {
		t.Errorf("failed to overwrite key %v", 1)
	}
	if tree.Size() != 1 {
		t.Errorf("overwriting changed size to %d", tree.Size())
	}
	if got := tree.Get(entry{key: 1}); got == nil {
		t.Fatalf("tree does not have key %v", 1)
	} else if got.payload != "b" {
		t.Errorf("payload is %q, want %q", got.payload, "b")
	}
}
func TestCustomAVLTree_Get(t *testing.T) {
	tree := NewCustom[entry](uint8(4))
	for _, e := range []entry{{2, "two"}, {1, "one"}, {3, "three"}} {
		if err := tree.Insert(e); err != nil {
			t.Fatalf("failed to insert key %v: %v", e.key, err)
		}
	}
	// the query carries a different payload, equality is by key.
	if got := tree.Get(entry{2, "other"}); got == nil || got.payload != "two" {
		t.Errorf("got %v, want the stored payload", got)
	}
	if got := tree.Get(entry{key: 9}); got != nil {
		t.Errorf("got %v for an absent key", got)
	}
}
func TestCustomAVLTree_Remove(t *testing.T) {
	tree := NewCustom[entry](uint8(8))
	for v := 1; v <= 7; v++ {
		tree.Insert(entry{key: v})
	}
	if err := tree.Remove(entry{key: 8}); err == nil {
		t.Errorf("removed an absent key")
	}
	for _, v := range []int{4, 1, 7} {
		if err := tree.Remove(entry{key: v}); err != nil {
			t.Errorf("failed to remove key %v: %v", v, err)
		}
	}
	if tree.Size() != 4 {
		t.Errorf("tree size is %d, want 4", tree.Size())
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}
func TestCustomAVLTree_FromCustom(t *testing.T) {
	a := make([]entry, 100)
	for i := range a {
		a[i] = entry{key: i * 2}
	}
	tree := FromCustom[entry, uint8](a, true)
	if int(tree.Size()) != len(a) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(a))
	}
	got := make([]int, 0, len(a))
	for next := tree.InOrder(); ; {
		e, ok := next()
		if !ok {
			break
		}
		got = append(got, e.key)
	}
	if !slices.IsSorted(got) {
		t.Errorf("keys are not in ascending order")
	}
	if tree.Corrupt() {
		t.Fatal("tree is corrupt")
	}
}
