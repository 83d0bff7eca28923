package service

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

// MaxPageLimit is the largest page size a caller may request.
const MaxPageLimit = 50

// ComplaintQueryService builds role-scoped listings over the complaint store.
type ComplaintQueryService struct {
	repo ports.ComplaintRepository
	log  zerolog.Logger
}

func NewComplaintQueryService(repo ports.ComplaintRepository, log zerolog.Logger) *ComplaintQueryService {
	return &ComplaintQueryService{repo: repo, log: log}
}

// List validates the parameters, applies the requester's scope and returns
// the requested page. A page past the end is empty, not an error.
func (s *ComplaintQueryService) List(ctx context.Context, requester *domain.User, in ports.ListComplaintsInput) (*ports.ListComplaintsResult, error) {
	scope, err := ScopeFor(requester)
	if err != nil {
		return nil, err
	}

	if in.Page < 1 {
		return nil, domain.NewValidationError("page must be at least 1")
	}
	if in.Limit < 1 || in.Limit > MaxPageLimit {
		return nil, domain.NewValidationError("limit must be between 1 and %d", MaxPageLimit)
	}

	var filter ports.ComplaintFilter
	scope.ApplyOwnershipFilter(&filter)

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = st
	}
	if in.Category != "" {
		cat, err := domain.ParseCategory(in.Category)
		if err != nil {
			return nil, err
		}
		filter.Category = cat
	}
	scope.ApplySearchField(&filter, in.Search)

	filter.Skip = skipFor(in.Page, in.Limit)
	filter.Limit = int64(in.Limit)

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list complaints: %w", err)
	}
	if items == nil {
		items = []*domain.Complaint{}
	}

	s.log.Debug().
		Str("user_id", requester.ID).
		Str("role", string(requester.Role)).
		Int("page", in.Page).
		Int64("total", total).
		Msg("complaints listed")

	return &ports.ListComplaintsResult{
		Items:      items,
		Page:       in.Page,
		Limit:      in.Limit,
		Total:      total,
		TotalPages: totalPages(total, in.Limit),
	}, nil
}

// skipFor returns the offset of page. Offsets past math.MaxInt64 are clamped;
// no store holds that many complaints, so the page is empty either way.
func skipFor(page, limit int) int64 {
	p, l := int64(page-1), int64(limit)
	if p > math.MaxInt64/l {
		return math.MaxInt64
	}
	return p * l
}

func totalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
