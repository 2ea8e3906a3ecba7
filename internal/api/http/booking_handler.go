package http

import (
	"encoding/json"
	"net/http"

	"seatsafe-backend/internal/domain"
)

type bookingRequest struct {
	ServiceID int32  `json:"service_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	Note      string `json:"note"`
}

type slotsResponse struct {
	Date  string            `json:"date"`
	Slots []domain.TimeSlot `json:"slots"`
}

func (h *Handler) handleAvailableSlots(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	date, err := parseDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "date query parameter must be yyyy-mm-dd")
		return
	}

	slots, err := h.bookings.AvailableSlots(r.Context(), id, date)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, slotsResponse{Date: date.Format("2006-01-02"), Slots: slots})
}

func (h *Handler) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "date must be yyyy-mm-dd")
		return
	}

	claims := claimsFrom(r.Context())
	b, err := h.bookings.CreateBooking(r.Context(), claims.UserID, req.ServiceID, date, req.StartTime, req.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleCancelBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	claims := claimsFrom(r.Context())
	b, err := h.bookings.CancelBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleCompleteBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	claims := claimsFrom(r.Context())
	b, err := h.bookings.CompleteBooking(r.Context(), *claims.ProviderID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleGetBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	claims := claimsFrom(r.Context())
	b, err := h.bookings.GetBooking(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleListMyBookings(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	page, pageSize := pagination(r)
	items, total, err := h.bookings.ListByCustomer(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Booking]{Items: items, Total: total})
}
