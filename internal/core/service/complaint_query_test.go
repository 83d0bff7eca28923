package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

func TestComplaintQuery_Pagination(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "Alice", domain.RoleStudent, "A-101")
	warden := f.user(t, "Warden", domain.RoleCaretaker, "")

	for i := 0; i < 23; i++ {
		f.file(t, alice, "other", fmt.Sprintf("Complaint number %02d", i))
	}

	wantSizes := map[int]int{1: 10, 2: 10, 3: 3, 4: 0}
	for page, size := range wantSizes {
		res, err := f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: page, Limit: 10})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if len(res.Items) != size {
			t.Fatalf("page %d has %d items, want %d", page, len(res.Items), size)
		}
		if res.Total != 23 || res.TotalPages != 3 || res.Page != page {
			t.Fatalf("page %d: total=%d pages=%d page=%d", page, res.Total, res.TotalPages, res.Page)
		}
		if res.Items == nil {
			t.Fatalf("page %d: expected an empty slice, not nil", page)
		}
	}

	first, _ := f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: 1, Limit: 10})
	if first.Items[0].Description != "Complaint number 22" {
		t.Fatalf("expected newest first, got %q", first.Items[0].Description)
	}
	for i := 1; i < len(first.Items); i++ {
		if first.Items[i].CreatedAt.After(first.Items[i-1].CreatedAt) {
			t.Fatalf("items out of order at %d", i)
		}
	}
}

func TestComplaintQuery_EmptyStore(t *testing.T) {
	f := newFixture()
	warden := f.user(t, "Warden", domain.RoleCaretaker, "")

	res, err := f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 0 || res.TotalPages != 0 || len(res.Items) != 0 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestComplaintQuery_StudentIsolation(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "Alice", domain.RoleStudent, "A-101")
	bob := f.user(t, "Bob", domain.RoleStudent, "A-101")

	f.file(t, alice, "water", "Alice: tap is leaking")
	f.file(t, bob, "water", "Bob: shower is cold")
	f.file(t, bob, "furniture", "Bob: chair is broken")

	res, err := f.queries.List(context.Background(), alice, ports.ListComplaintsInput{Page: 1, Limit: 50})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if res.Total != 1 || res.Items[0].StudentID != alice.ID {
		t.Fatalf("student saw complaints of others: %+v", res.Items)
	}

	// Searching for a room shared with another student still only yields own items.
	res, _ = f.queries.List(context.Background(), alice, ports.ListComplaintsInput{Page: 1, Limit: 50, Search: "Bob"})
	if res.Total != 0 {
		t.Fatalf("search escaped the student scope: %+v", res.Items)
	}
}

func TestComplaintQuery_SearchFieldDependsOnRole(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "Alice", domain.RoleStudent, "B-204")
	warden := f.user(t, "Warden", domain.RoleCaretaker, "")
	f.file(t, alice, "water", "Leak near the window of room")

	// Students search descriptions: "b-20" is a room fragment, not text.
	res, _ := f.queries.List(context.Background(), alice, ports.ListComplaintsInput{Page: 1, Limit: 10, Search: "b-20"})
	if res.Total != 0 {
		t.Fatalf("student search matched the room number")
	}
	res, _ = f.queries.List(context.Background(), alice, ports.ListComplaintsInput{Page: 1, Limit: 10, Search: "WINDOW"})
	if res.Total != 1 {
		t.Fatalf("student search should match description case-insensitively")
	}

	// Caretakers search rooms.
	res, _ = f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: 1, Limit: 10, Search: "b-20"})
	if res.Total != 1 {
		t.Fatalf("caretaker search should match room case-insensitively")
	}
	res, _ = f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: 1, Limit: 10, Search: "window"})
	if res.Total != 0 {
		t.Fatalf("caretaker search matched the description")
	}

	// Regex metacharacters are literal.
	res, _ = f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: 1, Limit: 10, Search: ".*"})
	if res.Total != 0 {
		t.Fatalf("search text was interpreted as a pattern")
	}
}

func TestComplaintQuery_CaretakerIdentityIndependent(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "Alice", domain.RoleStudent, "A-101")
	bob := f.user(t, "Bob", domain.RoleStudent, "C-303")
	w1 := f.user(t, "Warden1", domain.RoleCaretaker, "")
	w2 := f.user(t, "Warden2", domain.RoleCaretaker, "")
	f.file(t, alice, "water", "Tap is leaking all night")
	f.file(t, bob, "cleaning", "Corridor has not been swept")

	in := ports.ListComplaintsInput{Page: 1, Limit: 10}
	r1, _ := f.queries.List(context.Background(), w1, in)
	r2, _ := f.queries.List(context.Background(), w2, in)
	if r1.Total != 2 || r2.Total != 2 {
		t.Fatalf("caretakers should see all complaints: %d vs %d", r1.Total, r2.Total)
	}
	for i := range r1.Items {
		if r1.Items[i].ID != r2.Items[i].ID {
			t.Fatalf("caretaker results differ at %d", i)
		}
	}
}

func TestComplaintQuery_Filters(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "Alice", domain.RoleStudent, "A-101")
	warden := f.user(t, "Warden", domain.RoleCaretaker, "")
	water := f.file(t, alice, "water", "Tap is leaking all night")
	f.file(t, alice, "internet", "Wifi drops every evening")
	if _, err := f.complaints.UpdateStatus(context.Background(), warden, water.ID, "resolved"); err != nil {
		t.Fatalf("update: %v", err)
	}

	res, _ := f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: 1, Limit: 10, Status: "resolved"})
	if res.Total != 1 || res.Items[0].ID != water.ID {
		t.Fatalf("status filter: %+v", res.Items)
	}
	res, _ = f.queries.List(context.Background(), alice, ports.ListComplaintsInput{Page: 1, Limit: 10, Category: "internet"})
	if res.Total != 1 || res.Items[0].Category != domain.CategoryInternet {
		t.Fatalf("category filter: %+v", res.Items)
	}
	res, _ = f.queries.List(context.Background(), alice, ports.ListComplaintsInput{Page: 1, Limit: 10, Status: "open", Category: "water"})
	if res.Total != 0 {
		t.Fatalf("combined filters should intersect")
	}
}

func TestComplaintQuery_Validation(t *testing.T) {
	f := newFixture()
	warden := f.user(t, "Warden", domain.RoleCaretaker, "")

	cases := map[string]ports.ListComplaintsInput{
		"page zero":        {Page: 0, Limit: 10},
		"limit zero":       {Page: 1, Limit: 0},
		"limit too large":  {Page: 1, Limit: MaxPageLimit + 1},
		"unknown status":   {Page: 1, Limit: 10, Status: "closed"},
		"unknown category": {Page: 1, Limit: 10, Category: "noise"},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := f.queries.List(context.Background(), warden, in); !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}

	if _, err := f.queries.List(context.Background(), warden, ports.ListComplaintsInput{Page: 1, Limit: MaxPageLimit}); err != nil {
		t.Fatalf("limit %d should be accepted: %v", MaxPageLimit, err)
	}
}

func TestComplaintQuery_RequiresKnownRequester(t *testing.T) {
	f := newFixture()

	if _, err := f.queries.List(context.Background(), nil, ports.ListComplaintsInput{Page: 1, Limit: 10}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
	stranger := &domain.User{ID: "x", Role: "janitor"}
	if _, err := f.queries.List(context.Background(), stranger, ports.ListComplaintsInput{Page: 1, Limit: 10}); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
}

func TestTotalPages(t *testing.T) {
	cases := []struct {
		total int64
		limit int
		want  int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
		{50, 50, 1},
	}
	for _, tc := range cases {
		if got := totalPages(tc.total, tc.limit); got != tc.want {
			t.Fatalf("totalPages(%d, %d) = %d, want %d", tc.total, tc.limit, got, tc.want)
		}
	}
}

func TestSkipFor(t *testing.T) {
	cases := []struct {
		page, limit int
		want        int64
	}{
		{1, 10, 0},
		{3, 10, 20},
		{math.MaxInt64, 50, math.MaxInt64},
		{math.MaxInt64/50 + 2, 50, math.MaxInt64},
	}
	for _, tc := range cases {
		if got := skipFor(tc.page, tc.limit); got != tc.want {
			t.Fatalf("skipFor(%d, %d) = %d, want %d", tc.page, tc.limit, got, tc.want)
		}
	}
}

func TestComplaintQuery_HugePageIsEmpty(t *testing.T) {
	f := newFixture()
	alice := f.user(t, "Alice", domain.RoleStudent, "A-101")
	f.file(t, alice, "water", "Tap is leaking all night")

	for _, page := range []int{math.MaxInt64, 184467440737095517} {
		res, err := f.queries.List(context.Background(), alice, ports.ListComplaintsInput{Page: page, Limit: MaxPageLimit})
		if err != nil {
			t.Fatalf("page %d: %v", page, err)
		}
		if len(res.Items) != 0 || res.Total != 1 || res.TotalPages != 1 {
			t.Fatalf("page %d: unexpected result %+v", page, res)
		}
	}
}
