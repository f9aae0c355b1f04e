package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/AlvaroRaul7/wpz-test/internal/user"
)

type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.handleRoot)
	router.Get("/users/missing-email", h.handleMissingEmailUsers)
	router.Post("/users/update-emails", h.handleUpdateEmails)
}

func (h *UserHandler) handleRoot(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{
		"message": "User email service is up.",
	})
}

func (h *UserHandler) handleMissingEmailUsers(w http.ResponseWriter, r *http.Request) {
	missing, err := h.service.MissingEmailUsers(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch users with missing emails")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to fetch users from the external API")
		return
	}

	respondWithJSON(w, http.StatusOK, missing)
}

func (h *UserHandler) handleUpdateEmails(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.AssignMissingEmails(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("Failed to run the email update workflow")
		respondWithError(w, mapErrorToStatusCode(err), "Failed to fetch users from the external API")
		return
	}

	// Per-user failures are part of the payload, not an HTTP error.
	respondWithJSON(w, http.StatusOK, result)
}
