package Trees

// Tree represents an ordered set implemented using nodes. Values are
// unique under the ordering: inserting A value that is already present
// is an error, as is removing one that isn't. Operations returning
// (T, error) leave the first return value undefined whenever the error
// is non-nil; depending on specific implementations the value of it
// might have A meaning, but it's advised that it not to be used.
// Methods implemented recursively should be noted, otherwise functions
// are implemented iteratively.
// A Tree isn't safe for concurrent use; A caller that shares one
// across goroutines must serialize all mutating calls externally.
type Tree[T any] interface {
	//Insert v into the Tree. Returns *DuplicateKeyError if an equal
	//value is already present, in which case the Tree is unchanged.
	Insert(v T) error
	//Update inserts v, overwriting the stored value in place if an
	//equal one is already present. Returns true if it overwrote.
	Update(v T) bool
	//Remove v from the Tree. Returns *NotFoundError if no equal value
	//is present, in which case the Tree is unchanged.
	Remove(v T) error
	//Pop removes and returns the maximum value. Returns
	//*EmptyTreeError on an empty Tree.
	Pop() (T, error)
	//PopLeft removes and returns the minimum value. Returns
	//*EmptyTreeError on an empty Tree.
	PopLeft() (T, error)
	//Minimum value of the tree. Returns *EmptyTreeError on an empty Tree.
	Minimum() (T, error)
	//Maximum value of the tree. Returns *EmptyTreeError on an empty Tree.
	Maximum() (T, error)
	//Has an element equal to v. Note that even though by utilizing the
	//second return value of other methods achieves the same
	//functionality as Has, it is encouraged to use Has for the
	//purposes of checking if some value exists, as Has should be
	//optimized for this purpose in implementations.
	Has(v T) bool
	//Size of the tree.
	Size() uint
	//Height of the tree. 0 for an empty tree, 1 for a single value.
	Height() uint
	//IsEmpty is equivalent to Size()==0.
	IsEmpty() bool
	//IsLeaf is true when the tree holds exactly one value.
	IsLeaf() bool
	//Clear all values from the tree without releasing its arrays.
	Clear()
	//InOrder returns A closure function f acting like an iterator. f
	//gives values in the in-order (ascending) traversal of the tree.
	//Calling f is like calling "Next()" of iterators: val, valid=f()
	//val is meaningful only if valid is true. When valid==false,
	//then f is exhausted. valid can't turn true after it first became
	//false. The tree must not be modified during the iteration of f,
	//otherwise it could corrupt the tree. There will be no panic if
	//such cases happens so design the algorithm with this in mind.
	InOrder() func() (T, bool)
	//LevelOrder is InOrder for the breadth-first traversal of the
	//tree; the second return value is the depth of the yielded value,
	//0 being the root's.
	LevelOrder() func() (T, uint, bool)
	//Corrupt returns whether the tree has corrupt structures: the
	//value at some node violating the ordering, a balance factor
	//outside [-1,1], or a cached height/size disagreeing with the
	//node's children.
	Corrupt() bool
}

// Ordered is the constraint for user-defined types that order
// themselves through methods instead of the builtin operators.
// LessThan must be a strict weak ordering and Equals must be
// consistent with it: a.Equals(b) holds iff neither a.LessThan(b) nor
// b.LessThan(a) holds. Corrupt reports trees whose element type breaks
// this contract.
type Ordered[T any] interface {
	LessThan(T) bool
	Equals(T) bool
}

// EmptyTreeError signals Pop, PopLeft, Minimum, or Maximum on an empty
// tree.
type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "Tree is empty: no value to take."
}

// DuplicateKeyError signals Insert of a value equal to one already
// present.
type DuplicateKeyError struct {
}

func (e *DuplicateKeyError) Error() string {
	return "equal value already in the Tree: cannot Insert."
}

// NotFoundError signals Remove of a value with no equal one present.
type NotFoundError struct {
}

func (e *NotFoundError) Error() string {
	return "no equal value in the Tree: cannot Remove."
}

// IteratorExhaustedError signals advancing an iterator past its last
// value.
type IteratorExhaustedError struct {
}

func (e *IteratorExhaustedError) Error() string {
	return "Iterator is exhausted: cannot advance."
}

// InvalidSliceError is panicked by the From constructors when safe
// checking finds the given slice out of order or repeating.
type InvalidSliceError struct {
	Prev, Next any
}

func (e InvalidSliceError) Error() string {
	return "slice isn't sorted in strict ascending order"
}
