package http

import (
	"net/http"

	"seatsafe-backend/internal/domain"
)

func (h *Handler) handleListLedger(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	page, pageSize := pagination(r)
	items, total, err := h.ledger.ListEntries(r.Context(), *claims.ProviderID, page, pageSize)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.LedgerEntry]{Items: items, Total: total})
}

func (h *Handler) handleLedgerSummary(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r.Context())
	summary, err := h.ledger.GetSummary(r.Context(), *claims.ProviderID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}
