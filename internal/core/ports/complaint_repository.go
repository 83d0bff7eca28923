package ports

import (
	"context"
	"time"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
)

// ComplaintFilter is the fully resolved query handed to the repository.
// StudentID is only ever set by a query scope, never from request input.
type ComplaintFilter struct {
	StudentID         string // empty = every student
	Status            domain.ComplaintStatus
	Category          domain.Category
	RoomSearch        string // case-insensitive substring of room_number
	DescriptionSearch string // case-insensitive substring of description
	Skip              int64
	Limit             int64
}

// ComplaintRepository defines persistence operations for complaints.
type ComplaintRepository interface {
	// Create inserts c and sets c.ID.
	Create(ctx context.Context, c *domain.Complaint) error
	FindByID(ctx context.Context, id string) (*domain.Complaint, error)
	// UpdateStatus atomically sets status and updated_at and returns the
	// updated document. Unknown or malformed ids yield domain.ErrComplaintNotFound.
	UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus, at time.Time) (*domain.Complaint, error)
	// List returns one page of matching complaints, newest first, with the
	// owning student populated, and the total number of matches.
	List(ctx context.Context, filter ComplaintFilter) ([]*domain.Complaint, int64, error)
}
