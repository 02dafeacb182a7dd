// Package v1handler implements the JSON endpoints of the charging station
// API on top of the station and account services.
package v1handler

import (
	"chargemap/internal/account"
	"chargemap/internal/station"
	"chargemap/pkg/domain"
	"chargemap/pkg/logger"
	"chargemap/pkg/serrors"
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Deps are the services the handlers delegate to.
type Deps struct {
	Stations station.Service
	Accounts account.Service
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// Routes registers every v1 endpoint on r. Endpoints listing users require
// a bearer token checked by sec.
func (h *Handler) Routes(r chi.Router, sec *SecHandler) {
	r.Get("/", h.Welcome)

	r.Route("/api", func(r chi.Router) {
		r.Route("/charging_stations", func(r chi.Router) {
			r.Get("/", h.ListStations)
			r.Get("/postal_code/{postal_code}", h.SearchStations)
			r.Post("/change_status", h.ChangeStatus)
		})
		r.Get("/postal_codes/", h.PostalCodes)
		r.Post("/register_user/", h.RegisterUser)
		r.Post("/login_user/", h.LoginUser)
		r.With(sec.RequireBearer).Get("/users/", h.Users)
	})
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"error"`
}

// ErrorStatusCode pairs an ErrorResponse with its HTTP status.
type ErrorStatusCode struct {
	StatusCode int
	Response   ErrorResponse
}

var defaultMessages = map[serrors.Kind]string{ //nolint: gochecknoglobals
	serrors.ErrValidation:      "validation failed",
	serrors.ErrInvalidArgument: "invalid argument",
	serrors.ErrNotFound:        "resource not found",
	serrors.ErrAlreadyExists:   "resource already exists",
	serrors.ErrUnauthorized:    "unauthorized",
}

func statusOf(k serrors.Kind) int {
	switch k {
	case serrors.ErrValidation, serrors.ErrInvalidArgument:
		return http.StatusBadRequest
	case serrors.ErrNotFound:
		return http.StatusNotFound
	case serrors.ErrAlreadyExists:
		return http.StatusConflict
	case serrors.ErrUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// NewError maps err onto the status code and body returned to the client.
// Errors without a known kind are logged and reported as internal errors
// without leaking their message.
func (h Handler) NewError(ctx context.Context, err error) *ErrorStatusCode {
	return newError(ctx, err)
}

func newError(ctx context.Context, err error) *ErrorStatusCode {
	k := serrors.KindOf(err)
	status := statusOf(k)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, "request failed", zap.Error(err))

		return &ErrorStatusCode{
			StatusCode: status,
			Response: ErrorResponse{
				Code:    serrors.ErrInternal.Error(),
				Message: "internal error",
			},
		}
	}

	msg := defaultMessages[k]
	var se *serrors.Error
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &se) && se.Message() != "":
		msg = se.Message()
	case errors.As(err, &verr):
		msg = verr.Message
	}
	logger.Debug(ctx, "request rejected", zap.Int("status_code", status), zap.Error(err))

	return &ErrorStatusCode{
		StatusCode: status,
		Response: ErrorResponse{
			Code:    k.Error(),
			Message: msg,
		},
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := newError(r.Context(), err)
	writeJSON(w, r, res.StatusCode, res.Response)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn(r.Context(), "could not write response", zap.Error(err))
	}
}

// decodeJSON reads the request body into dst.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrInvalidArgument, err, "Request data is missing or malformed.")
	}

	return nil
}
