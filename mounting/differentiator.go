package mounting

import (
	"fmt"
	"sort"

	"github.com/wippyai/render-core/shadow"
)

// Mode selects the diffing strategy.
type Mode uint8

const (
	// ModeClassic is the four-stage per-parent algorithm. It is the only
	// strategy currently implemented.
	ModeClassic Mode = iota

	// ModeOptimizedMoves reserves a future strategy with cheaper handling
	// of large reorderings. It currently resolves to the classic path and
	// keeps the same external contract.
	ModeOptimizedMoves
)

// Options tune a diff run.
type Options struct {
	Mode Mode

	// EnableReparentingDetection reserves cross-parent move detection.
	// The classic algorithm ignores it: a reparented node appears as a
	// delete in the old parent plus a create in the new parent.
	EnableReparentingDetection bool
}

// CalculateMutations compares two generations of a shadow tree and returns
// the ordered mutation list that converges a host tree from the old shape
// to the new shape. The two roots must belong to the same family; passing
// roots of different families is a contract violation and panics.
//
// The call is pure and synchronous. Concurrent calls are safe as long as
// each has its own pair of roots.
func CalculateMutations(oldRoot, newRoot *shadow.Node) []Mutation {
	return CalculateMutationsWithOptions(oldRoot, newRoot, Options{})
}

// CalculateMutationsWithOptions is CalculateMutations with explicit options.
func CalculateMutationsWithOptions(oldRoot, newRoot *shadow.Node, opts Options) []Mutation {
	if !shadow.SameFamily(oldRoot, newRoot) {
		panic(fmt.Sprintf("mounting: diffing roots of different families (%v vs %v)", oldRoot, newRoot))
	}

	if opts.Mode == ModeOptimizedMoves {
		debugf("optimized-moves mode requested; running classic algorithm")
	}

	mutations := make([]Mutation, 0, 256)

	oldRootView := shadow.ViewOf(oldRoot)
	newRootView := shadow.ViewOf(newRoot)

	if !oldRootView.Equal(newRootView) {
		mutations = append(mutations, UpdateMutation(shadow.View{}, oldRootView, newRootView, -1))
	}

	return calculateMutations(
		mutations,
		oldRootView,
		sliceChildViewPairs(oldRoot),
		sliceChildViewPairs(newRoot),
	)
}

// reorderInPlaceIfNeeded stable-sorts pairs by order index, but only when
// at least one element carries a non-zero index. The common all-zero case
// keeps source order untouched.
func reorderInPlaceIfNeeded(pairs []shadow.ViewNodePair) {
	if len(pairs) < 2 {
		return
	}

	reorderNeeded := false
	for _, pair := range pairs {
		if pair.Node.OrderIndex() != 0 {
			reorderNeeded = true
			break
		}
	}

	if !reorderNeeded {
		return
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Node.OrderIndex() < pairs[j].Node.OrderIndex()
	})
}

// calculateMutations is the recursive driver. It consumes the two sibling
// pair lists, appends the resulting mutations to the passed slice, and
// returns it. The current algorithm is optimized for simplicity, not for
// performance or an optimal result.
func calculateMutations(
	mutations []Mutation,
	parentView shadow.View,
	oldChildPairs []shadow.ViewNodePair,
	newChildPairs []shadow.ViewNodePair,
) []Mutation {
	if len(oldChildPairs) == 0 && len(newChildPairs) == 0 {
		return mutations
	}

	reorderInPlaceIfNeeded(oldChildPairs)
	reorderInPlaceIfNeeded(newChildPairs)

	// Maps inserted node tags to their pairs in newChildPairs.
	insertedPairs := newTinyMap[*shadow.ViewNodePair]()

	var (
		createMutations              []Mutation
		deleteMutations              []Mutation
		insertMutations              []Mutation
		removeMutations              []Mutation
		updateMutations              []Mutation
		downwardMutations            []Mutation
		destructiveDownwardMutations []Mutation
	)

	// recurse diffs one matched pair of subtrees. Purely-removing subtree
	// work lands in the destructive list so it is flushed ahead of the
	// deletes of its ancestors.
	recurse := func(parent shadow.View, oldNode, newNode *shadow.Node) {
		oldGrandChildPairs := sliceChildViewPairs(oldNode)
		newGrandChildPairs := sliceChildViewPairs(newNode)
		if len(newGrandChildPairs) > 0 {
			downwardMutations = calculateMutations(downwardMutations, parent, oldGrandChildPairs, newGrandChildPairs)
		} else {
			destructiveDownwardMutations = calculateMutations(destructiveDownwardMutations, parent, oldGrandChildPairs, newGrandChildPairs)
		}
	}

	// Stage 1: aligned prefix; collect Update mutations.
	index := 0
	for ; index < len(oldChildPairs) && index < len(newChildPairs); index++ {
		oldChildPair := &oldChildPairs[index]
		newChildPair := &newChildPairs[index]

		if oldChildPair.View.Tag != newChildPair.View.Tag {
			// Totally different nodes, updating is impossible.
			break
		}

		if !oldChildPair.View.Equal(newChildPair.View) {
			updateMutations = append(updateMutations,
				UpdateMutation(parentView, oldChildPair.View, newChildPair.View, index))
		}

		recurse(oldChildPair.View, oldChildPair.Node, newChildPair.Node)
	}

	lastIndexAfterFirstStage := index

	// Stage 2: collect Insert mutations for the new tail.
	for ; index < len(newChildPairs); index++ {
		newChildPair := &newChildPairs[index]

		insertMutations = append(insertMutations,
			InsertMutation(parentView, newChildPair.View, index))

		insertedPairs.insert(newChildPair.View.Tag, newChildPair)
	}

	// Stage 3: collect Remove and Delete mutations for the old tail.
	for index = lastIndexAfterFirstStage; index < len(oldChildPairs); index++ {
		oldChildPair := &oldChildPairs[index]

		// Even a view that is about to be reinserted must be removed from
		// its old position first.
		removeMutations = append(removeMutations,
			RemoveMutation(parentView, oldChildPair.View, index))

		it := insertedPairs.find(oldChildPair.View.Tag)

		if it < 0 {
			// The old view was not reinserted: it is truly gone. Delete it
			// and clean up its entire subtree.
			deleteMutations = append(deleteMutations, DeleteMutation(oldChildPair.View))

			destructiveDownwardMutations = calculateMutations(
				destructiveDownwardMutations,
				oldChildPair.View,
				sliceChildViewPairs(oldChildPair.Node),
				nil,
			)
			continue
		}

		// The old view was reinserted elsewhere (a reorder). Recurse only
		// when the pair actually changed.
		newChildPair := insertedPairs.at(it)
		if !newChildPair.Equal(*oldChildPair) {
			recurse(newChildPair.View, oldChildPair.Node, newChildPair.Node)
		}

		// Tombstone the entry: the view existed before, so stage 4 must
		// not emit a Create for it.
		insertedPairs.erase(it)
	}

	// Stage 4: collect Create mutations for genuinely new views.
	for index = lastIndexAfterFirstStage; index < len(newChildPairs); index++ {
		newChildPair := &newChildPairs[index]

		if insertedPairs.find(newChildPair.View.Tag) < 0 {
			// Reinserted; the host view already exists.
			continue
		}

		createMutations = append(createMutations, CreateMutation(newChildPair.View))

		downwardMutations = calculateMutations(
			downwardMutations,
			newChildPair.View,
			nil,
			sliceChildViewPairs(newChildPair.Node),
		)
	}

	// Flush all lists in the one order that keeps every intermediate host
	// tree state well-formed.
	mutations = append(mutations, destructiveDownwardMutations...)
	mutations = append(mutations, updateMutations...)
	for i := len(removeMutations) - 1; i >= 0; i-- {
		mutations = append(mutations, removeMutations[i])
	}
	mutations = append(mutations, deleteMutations...)
	mutations = append(mutations, createMutations...)
	mutations = append(mutations, downwardMutations...)
	mutations = append(mutations, insertMutations...)

	return mutations
}
