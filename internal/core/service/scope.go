package service

import (
	"strings"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

// QueryScope is the role-specific part of a complaint listing: which
// complaints the requester may see at all, and which field free-text search
// applies to.
type QueryScope interface {
	ApplyOwnershipFilter(f *ports.ComplaintFilter)
	ApplySearchField(f *ports.ComplaintFilter, search string)
}

// ScopeFor resolves the query scope for requester once per request.
func ScopeFor(requester *domain.User) (QueryScope, error) {
	if requester == nil {
		return nil, domain.ErrUnauthenticated
	}
	switch requester.Role {
	case domain.RoleStudent:
		return studentScope{studentID: requester.ID}, nil
	case domain.RoleCaretaker:
		return caretakerScope{}, nil
	default:
		return nil, domain.ErrForbidden
	}
}

// studentScope restricts results to the student's own complaints and searches
// their issue text.
type studentScope struct {
	studentID string
}

func (s studentScope) ApplyOwnershipFilter(f *ports.ComplaintFilter) {
	f.StudentID = s.studentID
}

func (studentScope) ApplySearchField(f *ports.ComplaintFilter, search string) {
	if search = strings.TrimSpace(search); search != "" {
		f.DescriptionSearch = search
	}
}

// caretakerScope sees every complaint and searches by room.
type caretakerScope struct{}

func (caretakerScope) ApplyOwnershipFilter(f *ports.ComplaintFilter) {
	f.StudentID = ""
}

func (caretakerScope) ApplySearchField(f *ports.ComplaintFilter, search string) {
	if search = strings.TrimSpace(search); search != "" {
		f.RoomSearch = search
	}
}
