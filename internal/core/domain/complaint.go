package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

// ComplaintStatus represents the lifecycle state of a complaint.
type ComplaintStatus string

const (
	StatusOpen       ComplaintStatus = "open"
	StatusInProgress ComplaintStatus = "in_progress"
	StatusResolved   ComplaintStatus = "resolved"
)

// Statuses lists every valid status in lifecycle order.
var Statuses = []ComplaintStatus{StatusOpen, StatusInProgress, StatusResolved}

// Category classifies what a complaint is about.
type Category string

const (
	CategoryWater       Category = "water"
	CategoryElectricity Category = "electricity"
	CategoryInternet    Category = "internet"
	CategoryCleaning    Category = "cleaning"
	CategoryFurniture   Category = "furniture"
	CategoryOther       Category = "other"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryWater,
	CategoryElectricity,
	CategoryInternet,
	CategoryCleaning,
	CategoryFurniture,
	CategoryOther,
}

const (
	DescriptionMinLength = 10
	DescriptionMaxLength = 500
)

// ParseStatus returns the status named by s or a ValidationError.
// Any of the three statuses may follow any other; there is no transition graph.
func ParseStatus(s string) (ComplaintStatus, error) {
	for _, st := range Statuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", NewValidationError("status must be one of: %s", joinStatuses())
}

// ParseCategory returns the category named by s or a ValidationError.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", NewValidationError("category must be one of: %s", joinCategories())
}

// Complaint is one issue reported by a student against their room.
// RoomNumber is a snapshot taken at creation and never edited afterwards.
type Complaint struct {
	ID          string          `json:"id"`
	StudentID   string          `json:"studentId"`
	Student     *StudentRef     `json:"student,omitempty"`
	RoomNumber  string          `json:"roomNumber"`
	Category    Category        `json:"category"`
	Description string          `json:"description"`
	Status      ComplaintStatus `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// NewComplaint validates the input and builds an open complaint owned by
// student, copying the student's room number.
func NewComplaint(student *User, category, description string, now time.Time) (*Complaint, error) {
	cat, err := ParseCategory(category)
	if err != nil {
		return nil, err
	}

	desc := strings.TrimSpace(description)
	if n := utf8.RuneCountInString(desc); n < DescriptionMinLength || n > DescriptionMaxLength {
		return nil, NewValidationError("description must be between %d and %d characters",
			DescriptionMinLength, DescriptionMaxLength)
	}

	if strings.TrimSpace(student.RoomNumber) == "" {
		return nil, ErrMissingRoomNumber
	}

	return &Complaint{
		StudentID:   student.ID,
		Student:     student.Ref(),
		RoomNumber:  student.RoomNumber,
		Category:    cat,
		Description: desc,
		Status:      StatusOpen,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func joinStatuses() string {
	out := make([]string, len(Statuses))
	for i, s := range Statuses {
		out[i] = string(s)
	}
	return strings.Join(out, ", ")
}

func joinCategories() string {
	out := make([]string, len(Categories))
	for i, c := range Categories {
		out[i] = string(c)
	}
	return strings.Join(out, ", ")
}
