package mounting

import (
	"sync"

	"go.uber.org/zap"

	rendercore "github.com/wippyai/render-core"
	"github.com/wippyai/render-core/shadow"
)

// CommitStatus reports the outcome of a Tree.Commit call.
type CommitStatus uint8

const (
	CommitSucceeded CommitStatus = iota
	CommitCancelled
)

// Delegate receives the mutation stream produced by a committed tree.
// ShadowTreeDidCommit is called on the committing goroutine while the
// commit lock is held; implementations must not reenter the tree.
type Delegate interface {
	ShadowTreeDidCommit(tree *Tree, mutations []Mutation)
}

// DelegateFunc adapts a function to the Delegate interface.
type DelegateFunc func(tree *Tree, mutations []Mutation)

func (f DelegateFunc) ShadowTreeDidCommit(tree *Tree, mutations []Mutation) {
	f(tree, mutations)
}

// Tree owns the current root of one surface and serializes commits against
// it. Between commits the root is immutable and freely shareable.
type Tree struct {
	surfaceID rendercore.SurfaceID
	delegate  Delegate

	commitMu sync.Mutex
	root     *shadow.Node
}

// NewTree creates a tree seeded with the given root. The delegate may be
// nil, in which case mutation streams are discarded.
func NewTree(surfaceID rendercore.SurfaceID, root *shadow.Node, delegate Delegate) *Tree {
	if root == nil {
		panic("mounting: tree requires a root")
	}
	return &Tree{
		surfaceID: surfaceID,
		delegate:  delegate,
		root:      root,
	}
}

// SurfaceID returns the owning surface.
func (t *Tree) SurfaceID() rendercore.SurfaceID {
	return t.surfaceID
}

// Root returns the current root. The returned node is an immutable
// snapshot; it stays valid after subsequent commits.
func (t *Tree) Root() *shadow.Node {
	t.commitMu.Lock()
	defer t.commitMu.Unlock()
	return t.root
}

// Commit runs the transaction against the current root, diffs the result
// against it, swaps the root, and hands the mutation list to the delegate.
// A transaction returning nil cancels the commit.
func (t *Tree) Commit(transaction func(oldRoot *shadow.Node) *shadow.Node) CommitStatus {
	t.commitMu.Lock()
	defer t.commitMu.Unlock()

	oldRoot := t.root
	newRoot := transaction(oldRoot)
	if newRoot == nil {
		return CommitCancelled
	}

	mutations := CalculateMutations(oldRoot, newRoot)
	t.root = newRoot

	Logger().Debug("shadow tree committed",
		zap.Int32("surfaceId", int32(t.surfaceID)),
		zap.Int("mutations", len(mutations)))

	if t.delegate != nil {
		t.delegate.ShadowTreeDidCommit(t, mutations)
	}

	return CommitSucceeded
}

// CommitEmptyTree commits a root with no children, unmounting everything
// below the root. Used when a surface switches to the hidden display mode.
func (t *Tree) CommitEmptyTree() CommitStatus {
	return t.Commit(func(oldRoot *shadow.Node) *shadow.Node {
		return oldRoot.Clone(shadow.PartialSpec{ReplaceChildren: true})
	})
}
