package Trees

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/g-m-twostay/go-avl/Queues"
)

// ErrBadDump reports a dump whose header indexes don't describe a
// breadth-first tree layout.
var ErrBadDump = errors.New("Trees: malformed dump header")

// Dump writes the tree to w in its flat breadth-first form: the node
// count, then for every node in breadth-first order a (left, right)
// pair of 1-based breadth-first indexes with 0 meaning "no child",
// then the values in the same order. The count and indexes are written
// at the width of S and the values as their raw in-memory bytes, so
// the output is specific to the platform and to the instantiation of
// T and S that produced it, and only T without pointers survives the
// round trip. Load is the symmetric reader.
func (u *base[T, S]) Dump(w io.Writer) error {
	n := u.ifs[u.root].sz
	hdr := make([]S, 0, 2*uint(n))
	vals := make([]T, 0, n)
	q := Queues.MakeArrayQueue[S](uint(n)/2 + 1)
	var assigned S
	if u.root != 0 {
		q.Push(u.root)
		assigned = 1
	}
	for !q.Empty() {
		i, _ := q.Pop()
		vals = append(vals, u.vs[i-1])
		var li, ri S
		if l := u.ifs[i].l; l != 0 {
			q.Push(l)
			assigned++
			li = assigned
		}
		if r := u.ifs[i].r; r != 0 {
			q.Push(r)
			assigned++
			ri = assigned
		}
		hdr = append(hdr, li, ri)
	}
	if _, err := w.Write(unsafe.Slice((*byte)(unsafe.Pointer(&n)), unsafe.Sizeof(n))); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	if _, err := w.Write(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(hdr))), uintptr(len(hdr))*unsafe.Sizeof(n))); err != nil {
		return err
	}
	_, err := w.Write(unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vals))), uintptr(len(vals))*unsafe.Sizeof(*new(T))))
	return err
}

// load reads what Dump wrote, rejecting with ErrBadDump any header
// index that is outside the node count, refers backwards (a child must
// come after its parent in breadth-first order), is referred to twice,
// or is never referred to at all. Heights and sizes aren't part of the
// format; they are recomputed from the children.
func load[T any, S constraints.Unsigned](r io.Reader) (base[T, S], error) {
	var n S
	if _, err := io.ReadFull(r, unsafe.Slice((*byte)(unsafe.Pointer(&n)), unsafe.Sizeof(n))); err != nil {
		return base[T, S]{}, err
	}
	ifs := make([]info[S], uint(n)+1)
	vs := make([]T, n)
	if n == 0 {
		return base[T, S]{ifs: ifs, vs: vs}, nil
	}
	hdr := make([]S, 2*uint(n))
	if _, err := io.ReadFull(r, unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(hdr))), uintptr(len(hdr))*unsafe.Sizeof(n))); err != nil {
		return base[T, S]{}, err
	}
	if _, err := io.ReadFull(r, unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(vs))), uintptr(len(vs))*unsafe.Sizeof(*new(T)))); err != nil {
		return base[T, S]{}, err
	}
	used := make([]bool, uint(n)+1)
	// the counters are uint so that n at the top of S's range can't
	// wrap them around.
	for i := uint(1); i <= uint(n); i++ {
		for _, c := range [2]S{hdr[2*(i-1)], hdr[2*i-1]} {
			if c == 0 {
				continue
			}
			if c > n || uint(c) <= i || used[c] {
				return base[T, S]{}, fmt.Errorf("%w: node %d refers to %d", ErrBadDump, i, c)
			}
			used[c] = true
		}
		ifs[i].l, ifs[i].r = hdr[2*(i-1)], hdr[2*i-1]
	}
	for i := uint(2); i <= uint(n); i++ {
		if !used[i] {
			return base[T, S]{}, fmt.Errorf("%w: node %d is unreachable", ErrBadDump, i)
		}
	}
	for i := n; i >= 1; i-- {
		ifs[i].h = max(ifs[ifs[i].l].h, ifs[ifs[i].r].h) + 1
		ifs[i].sz = ifs[ifs[i].l].sz + ifs[ifs[i].r].sz + 1
	}
	return base[T, S]{root: 1, ifs: ifs, vs: vs}, nil
}

// Load reads an AVLTree from a Dump written by the same instantiation
// on the same platform. Only the header layout is validated; Corrupt
// tells whether the values actually respect the ordering and balance.
func Load[T cmp.Ordered, S constraints.Unsigned](r io.Reader) (*AVLTree[T, S], error) {
	b, err := load[T, S](r)
	if err != nil {
		return nil, err
	}
	return &AVLTree[T, S]{b}, nil
}

// LoadCustom is the CustomAVLTree equivalence of Load.
func LoadCustom[T Ordered[T], S constraints.Unsigned](r io.Reader) (*CustomAVLTree[T, S], error) {
	b, err := load[T, S](r)
	if err != nil {
		return nil, err
	}
	return &CustomAVLTree[T, S]{b}, nil
}
