package v1handler

import (
	"chargemap/pkg/domain"
	"chargemap/pkg/serrors"
	"net/http"
)

type RegisterRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

type RegisterResponse struct {
	Message string        `json:"message"`
	UserID  domain.UserID `json:"user_id"`
}

// LoginRequest accepts a username or an email in Username.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type UsersResponse struct {
	Users []domain.User `json:"users"`
}

func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}

	id, err := h.deps.Accounts.Register(r.Context(), domain.UserParams{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusCreated, RegisterResponse{
		Message: "User registered successfully.",
		UserID:  id,
	})
}

func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)

		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, r, serrors.With(serrors.ErrInvalidArgument, "Both 'username' and 'password' are required."))

		return
	}

	tkn, err := h.deps.Accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, LoginResponse{AccessToken: tkn})
}

func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.Accounts.Users(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, UsersResponse{Users: nonNil(users)})
}
