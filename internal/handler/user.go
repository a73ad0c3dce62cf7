package handler

import (
	"net/http"

	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/user"
)

// CredentialsRequest carries a username and password for registration or login
type CredentialsRequest struct {
	Username string `json:"username" validate:"required,max=50,printable"`
	Password string `json:"password" validate:"required,max=72"`
}

// LogoutRequest names the user whose session ends
type LogoutRequest struct {
	Username string `json:"username" validate:"required,max=50"`
}

// HandleRegisterUser creates a user with an empty balance
// @Summary Register a user
// @Tags users
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} domain.UserProfile
// @Failure 400 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		profile, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		logger.FromContext(r.Context()).Info("User registered", "username", profile.Username, "user_id", profile.ID)
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleLogin exchanges credentials for a bearer token.
// Accepts an urlencoded form or a JSON body.
// @Summary Log in
// @Tags users
// @Accept x-www-form-urlencoded,json
// @Produce json
// @Param request body CredentialsRequest true "Credentials"
// @Success 200 {object} domain.Token
// @Failure 401 {object} ErrorResponse
// @Router /login [post]
func HandleLogin(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CredentialsRequest
		fill := func(get func(string) string) {
			req.Username = get("username")
			req.Password = get("password")
		}
		if err := DecodeFormOrJSON(r, w, &req, fill, "Login"); err != nil {
			return
		}

		token, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			respondServiceError(w, r, "Login", err)
			return
		}

		respondJSON(w, http.StatusOK, token)
	}
}

// HandleLogout records the end of a session
// @Summary Log out
// @Tags users
// @Accept json
// @Produce json
// @Param request body LogoutRequest true "User"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /logout [post]
func HandleLogout(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LogoutRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Logout"); err != nil {
			return
		}

		if err := svc.Logout(r.Context(), req.Username); err != nil {
			respondServiceError(w, r, "Logout", err)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgLogoutSuccess})
	}
}

// HandleGetHistory lists the caller's recent logins and logouts
// @Summary Session history
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries"
// @Success 200 {array} domain.UserHistory
// @Failure 401 {object} ErrorResponse
// @Router /history [get]
func HandleGetHistory(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireUser(w, r)
		if !ok {
			return
		}
		limit, ok := GetLimitParam(r, w)
		if !ok {
			return
		}

		history, err := svc.GetHistory(r.Context(), u.Username, limit)
		if err != nil {
			respondServiceError(w, r, "Get history", err)
			return
		}

		respondJSON(w, http.StatusOK, history)
	}
}

// HandleGetCacheStats returns token cache statistics
// @Summary Token cache stats
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} user.CacheStats
// @Router /admin/cache/stats [get]
func HandleGetCacheStats(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, svc.GetCacheStats())
	}
}
