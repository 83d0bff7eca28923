package memory

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	s := NewStore()
	users := s.Users()
	ctx := context.Background()

	u, err := users.Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com", Role: domain.RoleStudent})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.ID == "" {
		t.Fatalf("expected an id")
	}
	if _, err := users.Create(ctx, &domain.User{Email: "alice@example.com"}); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}

	byEmail, err := users.FindByEmail(ctx, "alice@example.com")
	if err != nil || byEmail.ID != u.ID {
		t.Fatalf("find by email: %v %+v", err, byEmail)
	}
	byEmail.Name = "mutated"
	again, _ := users.FindByID(ctx, u.ID)
	if again.Name != "Alice" {
		t.Fatalf("returned users must be copies")
	}

	if _, err := users.FindByID(ctx, "missing"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserRepository_Upsert(t *testing.T) {
	users := NewStore().Users()
	ctx := context.Background()

	first, err := users.Upsert(ctx, &domain.User{Name: "Warden", Email: "w@hostel.org", Role: domain.RoleCaretaker, PasswordHash: "a"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	second, err := users.Upsert(ctx, &domain.User{Name: "Warden 2", Email: "w@hostel.org", Role: domain.RoleCaretaker, PasswordHash: "b"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if first.ID != second.ID || second.PasswordHash != "b" || second.Name != "Warden 2" {
		t.Fatalf("expected in-place replacement: %+v", second)
	}
}

func TestComplaintRepository_ListOrderingAndPaging(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	alice, _ := s.Users().Create(ctx, &domain.User{Name: "Alice", Email: "alice@example.com", RoomNumber: "A-101"})

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var ids []string
	for i := 0; i < 5; i++ {
		c := &domain.Complaint{
			StudentID:   alice.ID,
			RoomNumber:  "A-101",
			Category:    domain.CategoryOther,
			Description: fmt.Sprintf("complaint %d", i),
			Status:      domain.StatusOpen,
			// Two complaints share each timestamp to exercise tie ordering.
			CreatedAt: base.Add(time.Duration(i/2) * time.Hour),
		}
		if err := s.Complaints().Create(ctx, c); err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, c.ID)
	}

	page, total, err := s.Complaints().List(ctx, ports.ComplaintFilter{Skip: 0, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 5 || len(page) != 5 {
		t.Fatalf("total=%d len=%d", total, len(page))
	}
	want := []string{ids[4], ids[2], ids[3], ids[0], ids[1]}
	for i, c := range page {
		if c.ID != want[i] {
			t.Fatalf("position %d: got %s (%s), want %s", i, c.ID, c.Description, want[i])
		}
		if c.Student == nil || c.Student.ID != alice.ID {
			t.Fatalf("student not populated")
		}
	}

	page, total, _ = s.Complaints().List(ctx, ports.ComplaintFilter{Skip: 4, Limit: 2})
	if total != 5 || len(page) != 1 {
		t.Fatalf("last page: total=%d len=%d", total, len(page))
	}
	page, _, _ = s.Complaints().List(ctx, ports.ComplaintFilter{Skip: 10, Limit: 2})
	if page == nil || len(page) != 0 {
		t.Fatalf("page past the end should be empty, got %v", page)
	}
}

func TestComplaintRepository_UpdateStatus(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	c := &domain.Complaint{StudentID: "s1", Status: domain.StatusOpen}
	_ = s.Complaints().Create(ctx, c)

	at := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	got, err := s.Complaints().UpdateStatus(ctx, c.ID, domain.StatusResolved, at)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Status != domain.StatusResolved || !got.UpdatedAt.Equal(at) {
		t.Fatalf("unexpected complaint: %+v", got)
	}
	if _, err := s.Complaints().UpdateStatus(ctx, "missing", domain.StatusOpen, at); !errors.Is(err, domain.ErrComplaintNotFound) {
		t.Fatalf("expected ErrComplaintNotFound, got %v", err)
	}
}

func TestComplaintRepository_ListOutOfRangeSkip(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	_ = s.Complaints().Create(ctx, &domain.Complaint{StudentID: "s1", Status: domain.StatusOpen})
	_ = s.Complaints().Create(ctx, &domain.Complaint{StudentID: "s1", Status: domain.StatusOpen})

	for _, f := range []ports.ComplaintFilter{
		{Skip: -50, Limit: 50},
		{Skip: math.MaxInt64, Limit: 50},
		{Skip: 1, Limit: math.MaxInt64},
	} {
		page, total, err := s.Complaints().List(ctx, f)
		if err != nil {
			t.Fatalf("%+v: %v", f, err)
		}
		if total != 2 {
			t.Fatalf("%+v: total = %d, want 2", f, total)
		}
		want := 0
		if f.Skip == 1 {
			want = 1
		}
		if len(page) != want {
			t.Fatalf("%+v: got %d items, want %d", f, len(page), want)
		}
	}
}
