package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"seatsafe-backend/internal/security"
	"seatsafe-backend/internal/service"
)

// Handler bundles the services exposed over HTTP.
type Handler struct {
	auth          service.AuthService
	rentals       service.RentalService
	bookings      service.BookingService
	providers     service.ProviderService
	equipment     service.EquipmentService
	ledger        service.LedgerService
	notifications service.NotificationService
	tokens        security.TokenManager
}

func NewHandler(
	auth service.AuthService,
	rentals service.RentalService,
	bookings service.BookingService,
	providers service.ProviderService,
	equipment service.EquipmentService,
	ledger service.LedgerService,
	notifications service.NotificationService,
	tokens security.TokenManager,
) *Handler {
	return &Handler{
		auth:          auth,
		rentals:       rentals,
		bookings:      bookings,
		providers:     providers,
		equipment:     equipment,
		ledger:        ledger,
		notifications: notifications,
		tokens:        tokens,
	}
}

// NewRouter wires all routes. Public routes cover auth, browsing and quote
// previews; everything that acts on behalf of a user sits behind the bearer
// token middleware.
func (h *Handler) NewRouter() *mux.Router {
	r := mux.NewRouter()
	r.Use(logRequests)

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/signup", h.handleSignup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.handleLogin).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.handleRefresh).Methods(http.MethodPost)

	api.HandleFunc("/providers", h.handleListProviders).Methods(http.MethodGet)
	api.HandleFunc("/providers/search", h.handleSearchProviders).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id:[0-9]+}", h.handleGetProvider).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id:[0-9]+}/services", h.handleListServices).Methods(http.MethodGet)
	api.HandleFunc("/providers/{id:[0-9]+}/equipment", h.handleListProviderEquipment).Methods(http.MethodGet)

	api.HandleFunc("/equipment/search", h.handleSearchEquipment).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}", h.handleGetEquipment).Methods(http.MethodGet)

	api.HandleFunc("/rentals/quote", h.handlePreviewQuote).Methods(http.MethodPost)
	api.HandleFunc("/services/{id:[0-9]+}/slots", h.handleAvailableSlots).Methods(http.MethodGet)

	auth := api.NewRoute().Subrouter()
	auth.Use(requireAuth(h.tokens))

	auth.HandleFunc("/providers", h.handleCreateProvider).Methods(http.MethodPost)
	auth.HandleFunc("/providers/{id:[0-9]+}", requireProvider(h.handleUpdateProvider)).Methods(http.MethodPut)
	auth.HandleFunc("/providers/{id:[0-9]+}/hours", requireProvider(h.handleUpdateHours)).Methods(http.MethodPut)
	auth.HandleFunc("/providers/{id:[0-9]+}/tier", requireProvider(h.handleUpdateTier)).Methods(http.MethodPut)
	auth.HandleFunc("/providers/{id:[0-9]+}/services", requireProvider(h.handleCreateService)).Methods(http.MethodPost)
	auth.HandleFunc("/services/{id:[0-9]+}", requireProvider(h.handleUpdateService)).Methods(http.MethodPut)

	auth.HandleFunc("/equipment", requireProvider(h.handleAddEquipment)).Methods(http.MethodPost)
	auth.HandleFunc("/equipment/{id:[0-9]+}", requireProvider(h.handleUpdateEquipment)).Methods(http.MethodPut)
	auth.HandleFunc("/equipment/{id:[0-9]+}", requireProvider(h.handleRemoveEquipment)).Methods(http.MethodDelete)

	auth.HandleFunc("/rentals", h.handleRequestRental).Methods(http.MethodPost)
	auth.HandleFunc("/rentals", h.handleListMyRentals).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}", h.handleGetRental).Methods(http.MethodGet)
	auth.HandleFunc("/rentals/{id:[0-9]+}/dates", h.handleChangeDates).Methods(http.MethodPatch)
	auth.HandleFunc("/rentals/{id:[0-9]+}/approve", requireProvider(h.handleApproveRental)).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/reject", requireProvider(h.handleRejectRental)).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/cancel", h.handleCancelRental).Methods(http.MethodPost)
	auth.HandleFunc("/rentals/{id:[0-9]+}/complete", requireProvider(h.handleCompleteRental)).Methods(http.MethodPost)
	auth.HandleFunc("/providers/{id:[0-9]+}/rentals", requireProvider(h.handleListProviderRentals)).Methods(http.MethodGet)

	auth.HandleFunc("/bookings", h.handleCreateBooking).Methods(http.MethodPost)
	auth.HandleFunc("/bookings", h.handleListMyBookings).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}", h.handleGetBooking).Methods(http.MethodGet)
	auth.HandleFunc("/bookings/{id:[0-9]+}/cancel", h.handleCancelBooking).Methods(http.MethodPost)
	auth.HandleFunc("/bookings/{id:[0-9]+}/complete", requireProvider(h.handleCompleteBooking)).Methods(http.MethodPost)

	auth.HandleFunc("/ledger", requireProvider(h.handleListLedger)).Methods(http.MethodGet)
	auth.HandleFunc("/ledger/summary", requireProvider(h.handleLedgerSummary)).Methods(http.MethodGet)

	auth.HandleFunc("/notifications", h.handleListNotifications).Methods(http.MethodGet)
	auth.HandleFunc("/notifications/{id:[0-9]+}/read", h.handleMarkNotificationRead).Methods(http.MethodPost)

	return r
}

func pathID(r *http.Request) (int32, error) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	return int32(id), err
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}

func parseDate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}

type listResponse[T any] struct {
	Items []T   `json:"items"`
	Total int32 `json:"total"`
}
