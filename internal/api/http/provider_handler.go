package http

import (
	"encoding/json"
	"net/http"

	"seatsafe-backend/internal/domain"
)

func (h *Handler) handleCreateProvider(w http.ResponseWriter, r *http.Request) {
	var p domain.Provider
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if p.Name == "" || p.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}

	claims := claimsFrom(r.Context())
	if err := h.providers.CreateProvider(r.Context(), claims.UserID, &p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (h *Handler) handleGetProvider(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	p, err := h.providers.GetProvider(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleListProviders(w http.ResponseWriter, r *http.Request) {
	page, pageSize := pagination(r)
	items, total, err := h.providers.ListProviders(r.Context(), page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Provider]{Items: items, Total: total})
}

func (h *Handler) handleSearchProviders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	items, err := h.providers.SearchProviders(r.Context(), q.Get("name"), q.Get("metro"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Provider]{Items: items, Total: int32(len(items))})
}

func (h *Handler) handleUpdateProvider(w http.ResponseWriter, r *http.Request) {
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

	var p domain.Provider
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	p.ID = id
	if err := h.providers.UpdateProvider(r.Context(), &p); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handler) handleUpdateHours(w http.ResponseWriter, r *http.Request) {
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

	var hours domain.WeekSchedule
	if err := json.NewDecoder(r.Body).Decode(&hours); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.providers.UpdateHours(r.Context(), id, hours); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hours)
}

func (h *Handler) handleUpdateTier(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Tier string `json:"tier"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	tier := domain.ParseTier(req.Tier)
	if err := h.providers.UpdateTier(r.Context(), id, tier); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"tier": string(tier)})
}

func (h *Handler) handleListServices(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid provider id")
		return
	}
	items, err := h.providers.ListServices(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Service]{Items: items, Total: int32(len(items))})
}

func (h *Handler) handleCreateService(w http.ResponseWriter, r *http.Request) {
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

	var svc domain.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	svc.ProviderID = id
	if err := h.providers.CreateService(r.Context(), &svc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, svc)
}

func (h *Handler) handleUpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	var svc domain.Service
	if err := json.NewDecoder(r.Body).Decode(&svc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	svc.ID = id
	svc.ProviderID = *claimsFrom(r.Context()).ProviderID
	if err := h.providers.UpdateService(r.Context(), &svc); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, svc)
}
