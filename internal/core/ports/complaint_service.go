package ports

import (
	"context"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
)

// CreateComplaintInput is what a student submits. The room number is never
// taken from input.
type CreateComplaintInput struct {
	Category    string
	Description string
}

// ComplaintService owns complaint creation and status changes.
type ComplaintService interface {
	Create(ctx context.Context, requester *domain.User, input CreateComplaintInput) (*domain.Complaint, error)
	UpdateStatus(ctx context.Context, requester *domain.User, id, status string) (*domain.Complaint, error)
}

// ListComplaintsInput carries the raw list parameters.
type ListComplaintsInput struct {
	Page     int
	Limit    int
	Status   string
	Category string
	Search   string
}

// ListComplaintsResult is one page of a role-scoped complaint listing.
type ListComplaintsResult struct {
	Items      []*domain.Complaint
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

// ComplaintQueryService builds role-scoped, filtered, paginated views.
type ComplaintQueryService interface {
	List(ctx context.Context, requester *domain.User, input ListComplaintsInput) (*ListComplaintsResult, error)
}
