package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/refurnish/authcore/internal/common"
	"github.com/refurnish/authcore/internal/server/users"
)

// Canonical request bodies for the credential endpoints. The documented
// contract uses these exact field names.
type registerRequest struct {
	Email       string `json:"Email"`
	Password    string `json:"Password"`
	FullName    string `json:"FullName"`
	PhoneNumber string `json:"PhoneNumber"`
	Role        string `json:"Role"`
}

type loginRequest struct {
	Email    string `json:"Email"`
	Password string `json:"Password"`
}

type userPayload struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type authResponse struct {
	Message string      `json:"message"`
	User    userPayload `json:"user"`
	Token   string      `json:"token"`
}

func toUserPayload(u *users.User) userPayload {
	return userPayload{ID: u.ID, Email: u.Email, FullName: u.FullName, Role: u.Role}
}

func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: malformed request body", common.ErrValidation)
	}
	return nil
}

// handleRegister serves POST /auth/register.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	ip, ua := clientMeta(r)
	user, token, err := s.users.Register(r.Context(), users.RegisterParams{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Role:        req.Role,
	}, users.ClientMeta{IPAddress: ip, UserAgent: ua})
	if err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	s.collector.RecordRegistration()
	s.logger.Info(r.Context(), "user registered", "user_id", user.ID, "role", user.Role)

	writeJSON(w, http.StatusCreated, authResponse{
		Message: "registration successful",
		User:    toUserPayload(user),
		Token:   token,
	})
}

// handleLogin serves POST /auth/login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		s.writeError(r.Context(), w, err)
		return
	}

	ip, ua := clientMeta(r)
	user, token, err := s.users.Login(r.Context(), req.Email, req.Password,
		users.ClientMeta{IPAddress: ip, UserAgent: ua})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidCredentials):
			s.collector.RecordLoginAttempt("invalid_credentials")
		case errors.Is(err, common.ErrValidation):
			// malformed input is not an attempt against an account
		default:
			s.collector.RecordLoginAttempt("error")
		}
		s.writeError(r.Context(), w, err)
		return
	}

	s.collector.RecordLoginAttempt("success")
	s.logger.Info(r.Context(), "user logged in", "user_id", user.ID)

	writeJSON(w, http.StatusOK, authResponse{
		Message: "login successful",
		User:    toUserPayload(user),
		Token:   token,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
