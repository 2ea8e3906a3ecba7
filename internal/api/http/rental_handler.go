package http

import (
	"encoding/json"
	"net/http"

	"seatsafe-backend/internal/domain"
)

type quoteRequest struct {
	EquipmentID int32  `json:"equipment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

type rentalRequest struct {
	EquipmentID int32  `json:"equipment_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	Note        string `json:"note"`
}

type changeDatesRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type quoteResponse struct {
	// Quote is null while the range is incomplete; clients hide the total.
	Quote *domain.RentalQuote `json:"quote"`
}

func (h *Handler) handlePreviewQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Unparseable or absent dates preview as "no quote yet" rather than 400;
	// the date picker fires this on every change.
	start, _ := parseDate(req.StartDate)
	end, _ := parseDate(req.EndDate)

	quote, err := h.rentals.PreviewQuote(r.Context(), req.EquipmentID, start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteResponse{Quote: quote})
}

func (h *Handler) handleRequestRental(w http.ResponseWriter, r *http.Request) {
	var req rentalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be yyyy-mm-dd")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_date must be yyyy-mm-dd")
		return
	}

	claims := claimsFrom(r.Context())
	rt, err := h.rentals.RequestRental(r.Context(), claims.UserID, req.EquipmentID, start, end, req.Note)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

func (h *Handler) handleChangeDates(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	var req changeDatesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_date must be yyyy-mm-dd")
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "end_date must be yyyy-mm-dd")
		return
	}

	claims := claimsFrom(r.Context())
	rt, err := h.rentals.ChangeDates(r.Context(), claims.UserID, id, start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handler) handleApproveRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	var req struct {
		PickupNote string `json:"pickup_note"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	claims := claimsFrom(r.Context())
	rt, err := h.rentals.ApproveRental(r.Context(), *claims.ProviderID, id, req.PickupNote)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handler) handleRejectRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	_ = json.NewDecoder(r.Body).Decode(&req)

	claims := claimsFrom(r.Context())
	rt, err := h.rentals.RejectRental(r.Context(), *claims.ProviderID, id, req.Reason)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handler) handleCancelRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	claims := claimsFrom(r.Context())
	rt, err := h.rentals.CancelRental(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handler) handleCompleteRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	claims := claimsFrom(r.Context())
	rt, err := h.rentals.CompleteRental(r.Context(), *claims.ProviderID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handler) handleGetRental(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid reservation id")
		return
	}
	claims := claimsFrom(r.Context())
	rt, err := h.rentals.GetRental(r.Context(), claims.UserID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handler) handleListMyRentals(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	page, pageSize := pagination(r)
	items, total, err := h.rentals.ListByRenter(r.Context(), claims.UserID, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Reservation]{Items: items, Total: total})
}

func (h *Handler) handleListProviderRentals(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	claims := claimsFrom(r.Context())
	if *claims.ProviderID != id {
		writeError(w, http.StatusForbidden, "not your provider")
		return
	}
	page, pageSize := pagination(r)
	items, total, err := h.rentals.ListByProvider(r.Context(), id, r.URL.Query().Get("status"), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Reservation]{Items: items, Total: total})
}
