package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/hirefusion/hirefusion-go/internal/middleware"
	"github.com/hirefusion/hirefusion-go/internal/model"
	"github.com/hirefusion/hirefusion-go/internal/service"
)

// AuthHandler handles HTTP requests for session tokens.
type AuthHandler struct {
	service *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// HandleLogin handles POST /api/v1/jwt requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	claims, ok := decodeDocument(w, r)
	if !ok {
		return
	}

	token, err := h.service.StartSession(claims)
	if err != nil {
		slog.Error("sign session token", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	http.SetCookie(w, sessionCookie(token))
	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: true})
}

// HandleLogout handles POST /api/v1/logout requests. The token itself stays
// valid until it expires; only the client cookie is cleared.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	c := sessionCookie("")
	c.MaxAge = -1
	c.Expires = time.Unix(0, 0)
	http.SetCookie(w, c)

	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: true})
}

func sessionCookie(value string) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.TokenCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
