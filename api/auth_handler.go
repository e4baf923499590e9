package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/wbenmachich/portfolio-site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	auth      authConfig
}

func newAuthHandler(auth authConfig) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()
	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		auth:      auth,
	}
}

type loginRequest struct {
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// login checks the admin password against the configured bcrypt hash and
// issues the session JWT, both in the response body and as the session
// cookie the access gate accepts.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}
		if req.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if h.auth.adminPasswordHash == "" {
			h.responder.WriteError(w, errs.NewInternalError("admin password is not configured"))
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(h.auth.adminPasswordHash), []byte(req.Password)); err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		expiresAt := time.Now().Add(h.auth.tokenDuration)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"role": "admin",
			"exp":  expiresAt.Unix(),
		})
		tokenStr, err := token.SignedString([]byte(h.auth.jwtSecret))
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("error signing token", err))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     sessionCookieName,
			Value:    tokenStr,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, loginResponse{Token: tokenStr})
	}
}
