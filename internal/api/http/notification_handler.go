package http

import (
	"net/http"

	"seatsafe-backend/internal/domain"
)

func (h *Handler) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	page, pageSize := pagination(r)
	items, total, err := h.notifications.GetNotifications(r.Context(), claims.UserID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Notification]{Items: items, Total: total})
}

func (h *Handler) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	claims := claimsFrom(r.Context())
	if err := h.notifications.MarkAsRead(r.Context(), claims.UserID, id); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
