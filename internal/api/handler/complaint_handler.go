package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mindslate/hostel-complaints/internal/api/metrics"
	"github.com/mindslate/hostel-complaints/internal/core/domain"
	"github.com/mindslate/hostel-complaints/internal/core/ports"
)

// ComplaintHandler handles HTTP requests for complaint operations.
type ComplaintHandler struct {
	service ports.ComplaintService
	query   ports.ComplaintQueryService
}

func NewComplaintHandler(service ports.ComplaintService, query ports.ComplaintQueryService) *ComplaintHandler {
	return &ComplaintHandler{service: service, query: query}
}

// Create handles POST /api/complaints.
//
// @Summary      File a complaint for the caller's room
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      createComplaintRequest  true  "Complaint details"
// @Success      201   {object}  complaintResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Router       /complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req createComplaintRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.service.Create(c.Request().Context(), user, ports.CreateComplaintInput{
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	metrics.ComplaintsCreatedTotal.WithLabelValues(string(complaint.Category)).Inc()
	return c.JSON(http.StatusCreated, toComplaintResponse(complaint))
}

// List handles GET /api/complaints. Students only ever see their own complaints.
//
// @Summary      List complaints visible to the caller
// @Tags         complaints
// @Produce      json
// @Security     CookieAuth
// @Param        page      query     int     false  "Page number (>= 1)"       default(1)
// @Param        limit     query     int     false  "Page size (1-50)"         default(10)
// @Param        status    query     string  false  "open, in_progress or resolved"
// @Param        category  query     string  false  "water, electricity, internet, cleaning, furniture or other"
// @Param        search    query     string  false  "Description (students) or room number (caretakers) substring"
// @Success      200       {object}  listComplaintsResponse
// @Failure      400       {object}  messageResponse
// @Failure      401       {object}  messageResponse
// @Router       /complaints [get]
func (h *ComplaintHandler) List(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	req := listComplaintsRequest{Page: defaultPage, Limit: defaultLimit}
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return domain.NewValidationError("page and limit must be integers")
	}

	start := time.Now()
	result, err := h.query.List(c.Request().Context(), user, ports.ListComplaintsInput{
		Page:     req.Page,
		Limit:    req.Limit,
		Status:   req.Status,
		Category: req.Category,
		Search:   req.Search,
	})
	if err != nil {
		return err
	}
	metrics.ComplaintListDuration.WithLabelValues(string(user.Role)).Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, toListResponse(result))
}

// UpdateStatus handles PATCH /api/complaints/:id/status.
//
// @Summary      Set a complaint's status
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      string               true  "Complaint ID"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  complaintResponse
// @Failure      400   {object}  messageResponse
// @Failure      401   {object}  messageResponse
// @Failure      403   {object}  messageResponse
// @Failure      404   {object}  messageResponse
// @Router       /complaints/{id}/status [patch]
func (h *ComplaintHandler) UpdateStatus(c echo.Context) error {
	user, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return domain.NewValidationError("invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.service.UpdateStatus(c.Request().Context(), user, c.Param("id"), req.Status)
	if err != nil {
		return err
	}

	metrics.ComplaintStatusUpdatesTotal.WithLabelValues(string(complaint.Status)).Inc()
	return c.JSON(http.StatusOK, toComplaintResponse(complaint))
}
