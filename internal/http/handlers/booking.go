// Package handlers wires the booking request flow: rate limiting first, so
// abusive clients are rejected cheaply, then CSRF verification, then the
// validation pipeline, and only for a fully sanitized booking the two
// notification mails and the booking event.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/seeeye/area710-booking/internal/domain"
	"github.com/seeeye/area710-booking/internal/events"
	"github.com/seeeye/area710-booking/internal/guard"
	"github.com/seeeye/area710-booking/internal/http/middleware"
	"github.com/seeeye/area710-booking/internal/http/response"
	"github.com/seeeye/area710-booking/internal/validate"
	"github.com/seeeye/area710-booking/pkg/logger"
)

const maxBodyBytes = 64 << 10

// Notifier sends the booking mails; satisfied by mail.Notifier.
type Notifier interface {
	NotifyBooking(ctx context.Context, b *domain.Booking) error
}

type BookingHandler struct {
	pipeline  *validate.Pipeline
	limiter   *guard.RateLimiter
	csrf      *guard.CSRFGuard
	notifier  Notifier
	publisher events.Publisher
}

func New(pipeline *validate.Pipeline, limiter *guard.RateLimiter, csrf *guard.CSRFGuard, notifier Notifier, publisher events.Publisher) *BookingHandler {
	return &BookingHandler{
		pipeline:  pipeline,
		limiter:   limiter,
		csrf:      csrf,
		notifier:  notifier,
		publisher: publisher,
	}
}

func (h *BookingHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.MethodNotAllowed(w)
	})
	r.Post("/bookings", h.createBooking)
	r.Options("/bookings", preflight)
	r.Get("/csrf-token", h.csrfToken)
	return r
}

// preflight answers OPTIONS with an empty success; the CORS middleware has
// already attached the response headers by the time this runs.
func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

var successMessages = map[string]string{
	domain.LangDE: "Buchungsanfrage erfolgreich versendet",
	domain.LangEN: "Booking request sent successfully",
}

var sendFailureMessages = map[string]string{
	domain.LangDE: "Fehler beim Versenden der E-Mails",
	domain.LangEN: "Failed to send the emails",
}

func (h *BookingHandler) createBooking(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := middleware.SessionID(r)

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	// The payload must be a JSON object; arrays, scalars and null decode
	// into the input struct without error, so they are ruled out up front.
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	var in validate.Input
	if err := json.Unmarshal(trimmed, &in); err != nil {
		response.BadRequest(w, "Invalid JSON")
		return
	}

	allowed, err := h.limiter.Allow(ctx, sessionID)
	if err != nil {
		// Fail open: a broken session store must not take bookings down.
		logger.ErrorContext(ctx, "Rate limiter unavailable", "error", err)
		allowed = true
	}
	if !allowed {
		response.TooManyRequests(w)
		return
	}

	ok, err := h.csrf.Verify(ctx, sessionID, in.CSRFToken)
	if err != nil {
		// Fail closed: without the stored token there is no way to prove
		// the request came from the booking page.
		logger.ErrorContext(ctx, "CSRF verification unavailable", "error", err)
		ok = false
	}
	if !ok {
		response.Forbidden(w, "Invalid CSRF token")
		return
	}

	result := h.pipeline.Run(&in)
	if result.Missing != nil {
		response.BadRequest(w, fmt.Sprintf("Field '%s' is required", result.Missing.Field))
		return
	}
	if len(result.Errors) > 0 {
		messages := make([]string, 0, len(result.Errors))
		for i := range result.Errors {
			messages = append(messages, result.Errors[i].Error())
		}
		response.ValidationErrors(w, messages)
		return
	}

	booking := result.Booking
	if err := h.notifier.NotifyBooking(ctx, booking); err != nil {
		response.InternalError(w, sendFailureMessages[booking.Lang])
		return
	}

	if err := h.publisher.Publish(ctx, events.BookingRequested, events.BookingRequestedEvent{
		Email:       booking.Email,
		EventType:   booking.EventType,
		EventDate:   booking.EventDate,
		EventTime:   booking.EventTime,
		Guests:      booking.Guests,
		Rooms:       booking.Rooms,
		Lang:        booking.Lang,
		RequestedAt: time.Now(),
	}); err != nil {
		logger.ErrorContext(ctx, "Failed to publish booking event", "error", err)
	}

	response.Success(w, successMessages[booking.Lang])
}

// csrfToken issues the session's token, generating it on first request. The
// same token comes back on every call for the session's lifetime.
func (h *BookingHandler) csrfToken(w http.ResponseWriter, r *http.Request) {
	token, err := h.csrf.Token(r.Context(), middleware.SessionID(r))
	if err != nil {
		logger.ErrorContext(r.Context(), "Failed to issue CSRF token", "error", err)
		response.InternalError(w, "Failed to issue token")
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]string{"csrf_token": token})
}
