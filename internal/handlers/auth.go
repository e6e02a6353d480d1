package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"StockYard/internal/service"

	"go.uber.org/zap"
)

type authHandler struct {
	auth   Authenticator
	logger *zap.SugaredLogger
}

func newAuthHandler(auth Authenticator, logger *zap.SugaredLogger) *authHandler {
	return &authHandler{auth: auth, logger: logger}
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// obtainToken implements POST /api/token-auth/. Bad credentials get the
// upstream 400 body, never a 401.
func (h *authHandler) obtainToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "Malformed request body.")
		return
	}

	token, err := h.auth.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusBadRequest, map[string][]string{
				"non_field_errors": {"Unable to log in with provided credentials."},
			})
			return
		}
		h.logger.Errorw("authenticate", "error", err)
		writeDetail(w, http.StatusInternalServerError, "Internal server error.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
