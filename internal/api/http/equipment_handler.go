package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"seatsafe-backend/internal/domain"
)

func (h *Handler) handleAddEquipment(w http.ResponseWriter, r *http.Request) {
	var eq domain.Equipment
	if err := json.NewDecoder(r.Body).Decode(&eq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	eq.ProviderID = *claimsFrom(r.Context()).ProviderID
	if err := h.equipment.AddEquipment(r.Context(), &eq); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, eq)
}

func (h *Handler) handleGetEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}
	eq, err := h.equipment.GetEquipment(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *Handler) handleUpdateEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}
	var eq domain.Equipment
	if err := json.NewDecoder(r.Body).Decode(&eq); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	eq.ID = id
	eq.ProviderID = *claimsFrom(r.Context()).ProviderID
	if err := h.equipment.UpdateEquipment(r.Context(), &eq); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, eq)
}

func (h *Handler) handleRemoveEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid equipment id")
		return
	}
	if err := h.equipment.RemoveEquipment(r.Context(), *claimsFrom(r.Context()).ProviderID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *Handler) handleListProviderEquipment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	page, pageSize := pagination(r)
	items, total, err := h.equipment.ListByProvider(r.Context(), id, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Equipment]{Items: items, Total: total})
}

func (h *Handler) handleSearchEquipment(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	maxRate := 0.0
	if v := q.Get("max_daily_rate"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "max_daily_rate must be a non-negative number")
			return
		}
		maxRate = parsed
	}
	page, pageSize := pagination(r)
	items, total, err := h.equipment.Search(r.Context(), q.Get("q"), q.Get("category"), maxRate, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Equipment]{Items: items, Total: total})
}
