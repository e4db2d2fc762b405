package httpapi

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/walletgate/walletgate/internal/identity"
	"github.com/walletgate/walletgate/internal/server/auth"
)

type loginRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type userInfo struct {
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	WalletAddress string `json:"walletAddress"`
}

type loginResponse struct {
	Success bool     `json:"success"`
	User    userInfo `json:"user"`
}

type sessionResponse struct {
	User    userInfo `json:"user"`
	IsValid bool     `json:"isValid"`
}

type logoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newUserInfo(p auth.SessionPayload) userInfo {
	u := userInfo{WalletAddress: p.WalletAddress}
	if p.Flow == identity.FlowPhone {
		u.Phone = p.Identity
	} else {
		u.Email = p.Identity
	}
	return u
}

func (s *Server) writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(ctx, "failed to encode response", "error", err.Error())
	}
}

// loginEmail derives a wallet for a Gmail address and opens a session.
func (s *Server) loginEmail(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if !identity.ValidateEmail(req.Email) {
		s.writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "A valid Gmail address is required"})
		return
	}

	s.login(w, r, identity.NormalizeEmail(req.Email), identity.FlowEmail)
}

// loginPhone derives a wallet for a phone number and opens a session.
func (s *Server) loginPhone(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "Invalid request body"})
		return
	}

	if !identity.ValidatePhone(req.Phone) {
		s.writeJSON(r.Context(), w, http.StatusBadRequest, errorResponse{Error: "A valid phone number is required"})
		return
	}

	s.login(w, r, identity.NormalizePhone(req.Phone), identity.FlowPhone)
}

// login runs the common tail of both flows: derive the wallet, issue the
// session token, set the cookies. The identifier must already be validated
// and normalized. Identifiers are never logged; the wallet address is.
func (s *Server) login(w http.ResponseWriter, r *http.Request, id string, flow identity.Flow) {
	ctx := r.Context()

	wlt, err := s.deriver.Derive(id, flow)
	if err != nil {
		s.logger.Error(ctx, "wallet derivation failed", "flow", string(flow), "error", err.Error())
		s.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	payload := auth.SessionPayload{Identity: id, Flow: flow, WalletAddress: wlt.Address}

	token, err := s.sessions.Issue(payload)
	if err != nil {
		s.logger.Error(ctx, "session token issue failed", "error", err.Error())
		s.writeJSON(ctx, w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
		return
	}

	setSessionCookies(w, token, wlt.Address, s.sessions.TTL())

	s.logger.Info(ctx, "session issued", "flow", string(flow), "address", wlt.Address)
	s.writeJSON(ctx, w, http.StatusOK, loginResponse{Success: true, User: newUserInfo(payload)})
}

// session reports who is logged in. A missing cookie is the normal
// unauthenticated case; a failed verification additionally clears the
// cookies so the client does not keep presenting a dead token.
func (s *Server) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		s.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "No session found"})
		return
	}

	payload, err := s.sessions.Verify(cookie.Value)
	if err != nil {
		s.logger.Info(ctx, "session verification failed", "error", err.Error())
		clearSessionCookies(w)
		s.writeJSON(ctx, w, http.StatusUnauthorized, errorResponse{Error: "Invalid or expired session"})
		return
	}

	s.writeJSON(ctx, w, http.StatusOK, sessionResponse{User: newUserInfo(*payload), IsValid: true})
}

// logout clears every session-related cookie. It succeeds even when no
// session exists, so repeated calls are harmless.
func (s *Server) logout(w http.ResponseWriter, r *http.Request) {
	clearSessionCookies(w)
	s.writeJSON(r.Context(), w, http.StatusOK, logoutResponse{Success: true, Message: "Logged out successfully"})
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "OK"})
}

func (s *Server) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(r.Context(), w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}
