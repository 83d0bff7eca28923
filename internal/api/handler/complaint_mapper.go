package handler

import (
	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       string(u.Role),
		RoomNumber: u.RoomNumber,
	}
}

func toComplaintResponse(c *domain.Complaint) complaintResponse {
	resp := complaintResponse{
		ID:          c.ID,
		RoomNumber:  c.RoomNumber,
		Category:    string(c.Category),
		Description: c.Description,
		Status:      string(c.Status),
		CreatedAt:   c.CreatedAt.UTC(),
		UpdatedAt:   c.UpdatedAt.UTC(),
	}
	if c.Student != nil {
		resp.Student = &studentResponse{
			ID:    c.Student.ID,
			Name:  c.Student.Name,
			Email: c.Student.Email,
		}
	} else {
		resp.Student = &studentResponse{ID: c.StudentID}
	}
	return resp
}

func toListResponse(r *ports.ListComplaintsResult) listComplaintsResponse {
	items := make([]complaintResponse, len(r.Items))
	for i, c := range r.Items {
		items[i] = toComplaintResponse(c)
	}
	return listComplaintsResponse{
		Complaints: items,
		Page:       r.Page,
		Pages:      r.TotalPages,
		Total:      r.Total,
	}
}
