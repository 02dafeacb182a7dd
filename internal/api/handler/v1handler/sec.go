package v1handler

import (
	"chargemap/pkg/logger"
	"chargemap/pkg/serrors"
	"chargemap/pkg/token"
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// CtxKey is a string-based type used for values stored by the security handler.
type CtxKey string

// UsernameKey is the context key under which the authenticated username is stored.
const UsernameKey CtxKey = "Username"

// SecHandlerOptions configures bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA public key tokens are verified with.
	PublicKey string
}

// SecHandler authenticates requests carrying an RS256 bearer token.
type SecHandler struct {
	verifier *token.Verifier
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	verifier, err := token.NewVerifierFromPEM(opts.PublicKey)
	if err != nil {
		return nil, fmt.Errorf("could not create token verifier: %w", err)
	}

	return &SecHandler{verifier: verifier}, nil
}

// HandleBearerAuth verifies raw and returns ctx carrying the token subject.
func (s SecHandler) HandleBearerAuth(ctx context.Context, raw string) (context.Context, error) {
	username, err := s.verifier.Verify(raw)
	if err != nil {
		return ctx, err //nolint: wrapcheck
	}

	ctx = context.WithValue(ctx, UsernameKey, username)

	return logger.WithFields(ctx, zap.String(string(UsernameKey), username)), nil
}

// RequireBearer is a middleware rejecting requests without a valid
// "Authorization: Bearer <token>" header.
func (s SecHandler) RequireBearer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || raw == "" {
			writeError(w, r, serrors.With(serrors.ErrUnauthorized, "Missing Authorization Header"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), raw)
		if err != nil {
			writeError(w, r, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Username returns the authenticated username stored in ctx, if any.
func Username(ctx context.Context) string {
	username, _ := ctx.Value(UsernameKey).(string)

	return username
}
