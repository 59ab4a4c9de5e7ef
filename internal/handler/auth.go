// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/middleware"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/service"
)

type AuthHandler struct {
	auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !decodeBody(w, r, &in) {
		return
	}
	if err := validate.Struct(in); err != nil {
		respondWithError(w, http.StatusBadRequest, "Please provide username and password")
		return
	}

	out, err := h.auth.Login(r.Context(), in)
	if err != nil {
		respondWithDomainError(w, err)
		return
	}
	respondWithData(w, http.StatusOK, out)
}

// Me echoes the authenticated user resolved by the auth middleware.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "Not authorized to access this route")
		return
	}
	respondWithData(w, http.StatusOK, user)
}
