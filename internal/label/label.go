package label

import "context"

// Label is a label as it exists in the remote repository.
// Identity fields beyond the name (ID, NodeID, URL) are assigned by the
// remote store and are never used for reconciliation decisions.
type Label struct {
	Name        string `json:"name"`
	Color       string `json:"color"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty"`
	ID          int64  `json:"id,omitempty"`
	NodeID      string `json:"node_id,omitempty"`
	Default     bool   `json:"default,omitempty"`
}

// CreateRequest describes a label to be created.
type CreateRequest struct {
	Name        string
	Color       string
	Description *string
}

// UpdateRequest describes an in-place change to an existing label.
// Zero-value fields are omitted from the remote call, so a request with
// only NewName set renames the label without touching color or description.
type UpdateRequest struct {
	NewName     string
	Color       string
	Description *string
}

// Store is the remote label store capability.
//
// Implementations must classify remote conflicts themselves: Create returns
// an error matching ErrAlreadyExists when the name is taken, and Get, Update
// and Delete return errors matching ErrNotFound when the name is absent.
// Callers use errors.Is and never inspect error text.
type Store interface {
	List(ctx context.Context) ([]Label, error)
	Get(ctx context.Context, name string) (*Label, error)
	Create(ctx context.Context, req CreateRequest) (*Label, error)
	Update(ctx context.Context, name string, req UpdateRequest) (*Label, error)
	Delete(ctx context.Context, name string) error
}
