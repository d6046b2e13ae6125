package mounting

import (
	"fmt"

	"github.com/wippyai/render-core/shadow"
)

// MutationType discriminates the five primitive host-tree operations.
type MutationType uint8

const (
	MutationCreate MutationType = iota
	MutationDelete
	MutationInsert
	MutationRemove
	MutationUpdate
)

func (t MutationType) String() string {
	switch t {
	case MutationCreate:
		return "Create"
	case MutationDelete:
		return "Delete"
	case MutationInsert:
		return "Insert"
	case MutationRemove:
		return "Remove"
	case MutationUpdate:
		return "Update"
	}
	return fmt.Sprintf("MutationType(%d)", uint8(t))
}

// Mutation describes one primitive operation on the host tree. Which fields
// are meaningful depends on Type; the constructor functions set exactly the
// legal ones.
type Mutation struct {
	Type         MutationType
	ParentView   shadow.View
	OldChildView shadow.View
	NewChildView shadow.View
	Index        int
}

// CreateMutation allocates a host view for the given identity.
func CreateMutation(view shadow.View) Mutation {
	return Mutation{
		Type:         MutationCreate,
		NewChildView: view,
		Index:        -1,
	}
}

// DeleteMutation releases the host view of the given identity.
func DeleteMutation(view shadow.View) Mutation {
	return Mutation{
		Type:         MutationDelete,
		OldChildView: view,
		Index:        -1,
	}
}

// InsertMutation attaches child at index under parent.
func InsertMutation(parent, child shadow.View, index int) Mutation {
	return Mutation{
		Type:         MutationInsert,
		ParentView:   parent,
		NewChildView: child,
		Index:        index,
	}
}

// RemoveMutation detaches child at index from parent.
func RemoveMutation(parent, child shadow.View, index int) Mutation {
	return Mutation{
		Type:         MutationRemove,
		ParentView:   parent,
		OldChildView: child,
		Index:        index,
	}
}

// UpdateMutation mutates the host view in place. Root updates carry a zero
// parent view and index -1.
func UpdateMutation(parent, oldChild, newChild shadow.View, index int) Mutation {
	return Mutation{
		Type:         MutationUpdate,
		ParentView:   parent,
		OldChildView: oldChild,
		NewChildView: newChild,
		Index:        index,
	}
}

func (m Mutation) String() string {
	switch m.Type {
	case MutationCreate:
		return fmt.Sprintf("Create %s", m.NewChildView)
	case MutationDelete:
		return fmt.Sprintf("Delete %s", m.OldChildView)
	case MutationInsert:
		return fmt.Sprintf("Insert %s into %s @ %d", m.NewChildView, m.ParentView, m.Index)
	case MutationRemove:
		return fmt.Sprintf("Remove %s from %s @ %d", m.OldChildView, m.ParentView, m.Index)
	case MutationUpdate:
		return fmt.Sprintf("Update %s in %s @ %d", m.NewChildView, m.ParentView, m.Index)
	}
	return fmt.Sprintf("Mutation(%d)", uint8(m.Type))
}
