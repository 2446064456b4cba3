package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/land-marketplace/internal/model"
	"github.com/iliyamo/land-marketplace/internal/queue"
	"github.com/iliyamo/land-marketplace/internal/repository"
	"github.com/iliyamo/land-marketplace/internal/validator"
)

const publishTimeout = 3 * time.Second

// InquiryHandler accepts visit requests and contact messages and forwards
// them as events.  Nothing is stored; a failed publish is logged by the
// publisher and the request still succeeds.
type InquiryHandler struct {
	Store  ListingReader
	Events EventPublisher
	now    func() time.Time
}

// NewInquiryHandler constructs an InquiryHandler and panics if a
// dependency is nil.
func NewInquiryHandler(store ListingReader, events EventPublisher) *InquiryHandler {
	if store == nil || events == nil {
		panic("nil dependency passed to NewInquiryHandler")
	}
	return &InquiryHandler{Store: store, Events: events, now: time.Now}
}

// ScheduleVisit forwards a site visit request to the listing owner.
func (h *InquiryHandler) ScheduleVisit(c echo.Context) error {
	var req model.VisitRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validator.FirstError(err)})
	}
	l, err := h.Store.GetByID(c.Request().Context(), c.Param("id"))
	if errors.Is(err, repository.ErrListingNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "listing not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load listing failed"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), publishTimeout)
	defer cancel()
	_ = h.Events.PublishVisitRequested(ctx, queue.VisitRequestedEvent{
		ListingID:     l.ID,
		ListingTitle:  l.Title,
		Location:      l.Location,
		OwnerID:       l.OwnerID,
		OwnerName:     l.OwnerName,
		OwnerPhone:    l.OwnerPhone,
		OwnerEmail:    l.OwnerEmail,
		VisitorName:   strings.TrimSpace(req.VisitorName),
		VisitorPhone:  strings.TrimSpace(req.VisitorPhone),
		VisitorEmail:  strings.TrimSpace(req.VisitorEmail),
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
		RequestedAt:   h.now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusAccepted, echo.Map{
		"message":    "Your visit request has been sent to " + l.OwnerName + ". They will contact you shortly to confirm the appointment details.",
		"listing_id": l.ID,
	})
}

// Contact forwards a general enquiry to the marketplace team.
func (h *InquiryHandler) Contact(c echo.Context) error {
	var req model.ContactMessage
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validator.FirstError(err)})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), publishTimeout)
	defer cancel()
	_ = h.Events.PublishContactSubmitted(ctx, queue.ContactSubmittedEvent{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.Phone),
		Subject:     req.Subject,
		Message:     req.Message,
		SubmittedAt: h.now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusAccepted, echo.Map{
		"message": "Thank you for contacting us. We'll get back to you within 24 hours.",
	})
}
