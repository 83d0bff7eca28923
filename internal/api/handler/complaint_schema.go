package handler

import "time"

// messageResponse is the envelope for plain messages and every error body.
type messageResponse struct {
	Message string `json:"message"`
}

// userResponse is the public projection of a user. The password hash never
// leaves the service.
type userResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	RoomNumber string `json:"roomNumber,omitempty"`
}

// --- Request types ---

type createComplaintRequest struct {
	Category    string `json:"category"    validate:"required"`
	Description string `json:"description" validate:"required"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// listComplaintsRequest binds the list query string. Absent parameters keep
// the defaults set by the handler.
type listComplaintsRequest struct {
	Page     int    `query:"page"`
	Limit    int    `query:"limit"`
	Status   string `query:"status"`
	Category string `query:"category"`
	Search   string `query:"search"`
}

const (
	defaultPage  = 1
	defaultLimit = 10
)

// --- Response types ---

type studentResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type complaintResponse struct {
	ID          string           `json:"id"`
	Student     *studentResponse `json:"student"`
	RoomNumber  string           `json:"roomNumber"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type listComplaintsResponse struct {
	Complaints []complaintResponse `json:"complaints"`
	Page       int                 `json:"page"`
	Pages      int                 `json:"pages"`
	Total      int64               `json:"total"`
}
