package handler

import (
	"net/http"

	"github.com/forgo/datematch/api/internal/model"
	"github.com/forgo/datematch/api/internal/service"
)

// EventHandler handles event and stats endpoints
type EventHandler struct {
	eventService *service.EventService
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *service.EventService) *EventHandler {
	return &EventHandler{
		eventService: eventService,
	}
}

// RegisterRoutes attaches all event routes to the mux
func (h *EventHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/events", h.CreateEvent)
	mux.HandleFunc("GET /v1/events/{eventId}", h.GetEvent)
	mux.HandleFunc("POST /v1/events/{eventId}/dates", h.UpsertDates)
	mux.HandleFunc("PUT /v1/events/{eventId}/name", h.RenameParticipant)
	mux.HandleFunc("PUT /v1/events/{eventId}/title", h.RenameEvent)
	mux.HandleFunc("DELETE /v1/events/{eventId}/participant", h.RemoveParticipant)
	mux.HandleFunc("POST /v1/events/{eventId}/invite", h.Invite)
	mux.HandleFunc("GET /v1/stats", h.GetStats)
}

// CreateEvent handles POST /v1/events - create an event with the requester as creator
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req model.CreateEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.eventService.Create(r.Context(), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, event)
}

// GetEvent handles GET /v1/events/{eventId} - fetch an event with its matching dates
func (h *EventHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	event, err := h.eventService.Get(r.Context(), eventID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, event)
}

// UpsertDates handles POST /v1/events/{eventId}/dates - save a participant's
// name and date selection, joining the event on first contact
func (h *EventHandler) UpsertDates(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.UpsertDatesRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.eventService.UpsertDates(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, event)
}

// RenameParticipant handles PUT /v1/events/{eventId}/name - change a
// participant's display name
func (h *EventHandler) RenameParticipant(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.RenameParticipantRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.eventService.RenameParticipant(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, event)
}

// RenameEvent handles PUT /v1/events/{eventId}/title - change the event title
// on behalf of the creator
func (h *EventHandler) RenameEvent(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.RenameEventRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.eventService.RenameEvent(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, event)
}

// RemoveParticipant handles DELETE /v1/events/{eventId}/participant - remove
// a participant under the removal policy
func (h *EventHandler) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.RemoveParticipantRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	event, err := h.eventService.RemoveParticipant(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, event)
}

// Invite handles POST /v1/events/{eventId}/invite - record an invited email
// and return the share link
func (h *EventHandler) Invite(w http.ResponseWriter, r *http.Request) {
	eventID := r.PathValue("eventId")
	if eventID == "" {
		WriteError(w, model.NewBadRequestError("event ID required"))
		return
	}

	var req model.InviteRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}
	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	resp, err := h.eventService.Invite(r.Context(), eventID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, resp)
}

// GetStats handles GET /v1/stats - approximate count of live events
func (h *EventHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, model.StatsResponse{
		Count: h.eventService.Count(r.Context()),
	})
}
