// Package memory is an in-process implementation of the repositories, used
// for local development without MongoDB and as the backing store in tests.
// It mirrors the query semantics of the Mongo repositories.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

// Store holds users and complaints behind a single lock.
type Store struct {
	mu         sync.RWMutex
	users      []*domain.User
	complaints []*domain.Complaint
}

func NewStore() *Store {
	return &Store{}
}

// Users returns the user repository view of the store.
func (s *Store) Users() *UserRepository { return &UserRepository{s: s} }

// Complaints returns the complaint repository view of the store.
func (s *Store) Complaints() *ComplaintRepository { return &ComplaintRepository{s: s} }

// UserRepository implements ports.UserRepository.
type UserRepository struct {
	s *Store
}

var _ ports.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.userByEmail(user.Email) != nil {
		return nil, domain.ErrUserExists
	}
	u := *user
	u.ID = uuid.NewString()
	r.s.users = append(r.s.users, &u)
	return cloneUser(&u), nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if u := r.s.userByEmail(email); u != nil {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByID(_ context.Context, id string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	if u := r.s.userByID(id); u != nil {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Upsert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	u := *user
	if existing := r.s.userByEmail(user.Email); existing != nil {
		u.ID = existing.ID
		u.CreatedAt = existing.CreatedAt
		*existing = u
		return cloneUser(existing), nil
	}
	u.ID = uuid.NewString()
	r.s.users = append(r.s.users, &u)
	return cloneUser(&u), nil
}

// ComplaintRepository implements ports.ComplaintRepository.
type ComplaintRepository struct {
	s *Store
}

var _ ports.ComplaintRepository = (*ComplaintRepository)(nil)

func (r *ComplaintRepository) Create(_ context.Context, c *domain.Complaint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c.ID = uuid.NewString()
	stored := *c
	stored.Student = nil
	r.s.complaints = append(r.s.complaints, &stored)
	return nil
}

func (r *ComplaintRepository) FindByID(_ context.Context, id string) (*domain.Complaint, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c := r.s.complaintByID(id)
	if c == nil {
		return nil, domain.ErrComplaintNotFound
	}
	return r.s.populate(c), nil
}

func (r *ComplaintRepository) UpdateStatus(_ context.Context, id string, status domain.ComplaintStatus, at time.Time) (*domain.Complaint, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c := r.s.complaintByID(id)
	if c == nil {
		return nil, domain.ErrComplaintNotFound
	}
	c.Status = status
	c.UpdatedAt = at
	return r.s.populate(c), nil
}

func (r *ComplaintRepository) List(_ context.Context, f ports.ComplaintFilter) ([]*domain.Complaint, int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	// complaints is in insertion order, so a stable sort keeps ties in it.
	matched := make([]*domain.Complaint, 0, len(r.s.complaints))
	for _, c := range r.s.complaints {
		if matches(c, f) {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	if f.Skip < 0 || f.Skip >= total {
		return []*domain.Complaint{}, total, nil
	}
	end := total
	if f.Limit > 0 && f.Limit < total-f.Skip {
		end = f.Skip + f.Limit
	}

	page := make([]*domain.Complaint, 0, end-f.Skip)
	for _, c := range matched[f.Skip:end] {
		page = append(page, r.s.populate(c))
	}
	return page, total, nil
}

func matches(c *domain.Complaint, f ports.ComplaintFilter) bool {
	if f.StudentID != "" && c.StudentID != f.StudentID {
		return false
	}
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Category != "" && c.Category != f.Category {
		return false
	}
	if f.RoomSearch != "" && !containsFold(c.RoomNumber, f.RoomSearch) {
		return false
	}
	if f.DescriptionSearch != "" && !containsFold(c.Description, f.DescriptionSearch) {
		return false
	}
	return true
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// populate copies c and attaches its owner's projection. Callers hold the lock.
func (s *Store) populate(c *domain.Complaint) *domain.Complaint {
	out := *c
	if u := s.userByID(c.StudentID); u != nil {
		out.Student = u.Ref()
	}
	return &out
}

func (s *Store) userByEmail(email string) *domain.User {
	for _, u := range s.users {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (s *Store) userByID(id string) *domain.User {
	for _, u := range s.users {
		if u.ID == id {
			return u
		}
	}
	return nil
}

func (s *Store) complaintByID(id string) *domain.Complaint {
	for _, c := range s.complaints {
		if c.ID == id {
			return c
		}
	}
	return nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}
