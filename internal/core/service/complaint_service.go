package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

// ComplaintService creates complaints and applies status changes.
type ComplaintService struct {
	repo  ports.ComplaintRepository
	users ports.UserRepository
	log   zerolog.Logger
	now   func() time.Time
}

func NewComplaintService(repo ports.ComplaintRepository, users ports.UserRepository, log zerolog.Logger) *ComplaintService {
	return &ComplaintService{repo: repo, users: users, log: log, now: time.Now}
}

// Create files a new open complaint for requester's registered room.
func (s *ComplaintService) Create(ctx context.Context, requester *domain.User, in ports.CreateComplaintInput) (*domain.Complaint, error) {
	if !requester.IsStudent() {
		return nil, domain.ErrForbidden
	}

	complaint, err := domain.NewComplaint(requester, in.Category, in.Description, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, complaint); err != nil {
		s.log.Error().Err(err).Str("user_id", requester.ID).Msg("failed to create complaint")
		return nil, err
	}

	s.log.Info().
		Str("complaint_id", complaint.ID).
		Str("user_id", requester.ID).
		Str("room", complaint.RoomNumber).
		Str("category", string(complaint.Category)).
		Msg("complaint created")

	return complaint, nil
}

// UpdateStatus overwrites the complaint status. Any of the three statuses may
// replace any other, including moving back from resolved; repeating the same
// status is a no-op apart from updatedAt. Concurrent updates are last-write-wins.
func (s *ComplaintService) UpdateStatus(ctx context.Context, requester *domain.User, id, status string) (*domain.Complaint, error) {
	if requester == nil || requester.Role != domain.RoleCaretaker {
		return nil, domain.ErrForbidden
	}

	st, err := domain.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	complaint, err := s.repo.UpdateStatus(ctx, id, st, s.now().UTC())
	if err != nil {
		return nil, err
	}

	if complaint.Student == nil {
		owner, err := s.users.FindByID(ctx, complaint.StudentID)
		switch {
		case err == nil:
			complaint.Student = owner.Ref()
		case errors.Is(err, domain.ErrUserNotFound):
			s.log.Warn().Str("complaint_id", complaint.ID).Msg("complaint owner not found")
		default:
			return nil, err
		}
	}

	s.log.Info().
		Str("complaint_id", complaint.ID).
		Str("user_id", requester.ID).
		Str("status", string(st)).
		Msg("complaint status updated")

	return complaint, nil
}
