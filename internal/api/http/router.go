package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires the module's routes. Everything except the login entry point
// sits behind the auth middleware.
func NewRouter(
	auth *AuthMiddleware,
	dashboard *DashboardHandler,
	items *ItemHandler,
	rentals *RentalHandler,
	blackouts *BlackoutHandler,
	tools *AssistantHandler,
) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/login", Login).Methods(http.MethodGet)

	s := r.PathPrefix("/").Subrouter()
	s.Use(auth.Middleware)

	s.HandleFunc("/", dashboard.Summary).Methods(http.MethodGet)

	s.HandleFunc("/rental_items/", items.List).Methods(http.MethodGet)
	s.HandleFunc("/rental_items/add/", items.Add).Methods(http.MethodPost)
	s.HandleFunc("/rental_items/{id}/edit/", items.Edit).Methods(http.MethodPost)
	s.HandleFunc("/rental_items/{id}/delete/", items.Delete).Methods(http.MethodPost)
	s.HandleFunc("/rental_items/{id}/toggle/", items.Toggle).Methods(http.MethodPost)
	s.HandleFunc("/rental_items/bulk/", items.Bulk).Methods(http.MethodPost)

	s.HandleFunc("/items/{id}/", items.Detail).Methods(http.MethodGet)
	s.HandleFunc("/items/{id}/blackouts/add/", blackouts.Add).Methods(http.MethodPost)
	s.HandleFunc("/items/{id}/blackouts/{bid}/delete/", blackouts.Delete).Methods(http.MethodPost)

	s.HandleFunc("/rentals/", rentals.List).Methods(http.MethodGet)
	s.HandleFunc("/rentals/add/", rentals.Add).Methods(http.MethodPost)
	s.HandleFunc("/rentals/{id}/edit/", rentals.Edit).Methods(http.MethodPost)
	s.HandleFunc("/rentals/{id}/delete/", rentals.Delete).Methods(http.MethodPost)
	s.HandleFunc("/rentals/bulk/", rentals.Bulk).Methods(http.MethodPost)

	s.HandleFunc("/assistant/tools/", tools.ListTools).Methods(http.MethodGet)
	s.HandleFunc("/assistant/tools/{name}/invoke/", tools.Invoke).Methods(http.MethodPost)

	s.HandleFunc("/settings/", Settings).Methods(http.MethodGet)

	return r
}
