package Trees

import (
	"bufio"
	"fmt"
	"io"

	"github.com/xlab/treeprint"
)

// Dot writes an undirected Graphviz rendering of the tree to w: one
// rectangular node per value, ids assigned sequentially in pre-order
// (parent before children), one edge per parent-child pair. Purely
// diagnostic; nothing reads it back.
func (u *base[T, S]) Dot(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "graph {")
	fmt.Fprintln(bw, "node [shape=rect]")
	id := 0
	var walk func(i S, parent int)
	walk = func(i S, parent int) {
		nid := id
		id++
		fmt.Fprintf(bw, "%d [label=%q];\n", nid, fmt.Sprint(u.vs[i-1]))
		if parent >= 0 {
			fmt.Fprintf(bw, "%d -- %d;\n", parent, nid)
		}
		if l := u.ifs[i].l; l != 0 {
			walk(l, nid)
		}
		if r := u.ifs[i].r; r != 0 {
			walk(r, nid)
		}
	}
	if u.root != 0 {
		walk(u.root, -1)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// String renders the tree as ASCII art, one line per node, children
// indented under their parent with the left one first.
func (u *base[T, S]) String() string {
	if u.root == 0 {
		return treeprint.New().String()
	}
	tr := treeprint.NewWithRoot(fmt.Sprint(u.vs[u.root-1]))
	if n := u.ifs[u.root]; n.l != 0 {
		u.str(tr, n.l)
	}
	if n := u.ifs[u.root]; n.r != 0 {
		u.str(tr, n.r)
	}
	return tr.String()
}

func (u *base[T, S]) str(parent treeprint.Tree, i S) {
	n := u.ifs[i]
	if n.l == 0 && n.r == 0 {
		parent.AddNode(fmt.Sprint(u.vs[i-1]))
		return
	}
	br := parent.AddBranch(fmt.Sprint(u.vs[i-1]))
	if n.l != 0 {
		u.str(br, n.l)
	}
	if n.r != 0 {
		u.str(br, n.r)
	}
}
