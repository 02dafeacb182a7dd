package v1handler_test

import (
	"chargemap/internal/api/handler/v1handler"
	"chargemap/pkg/domain"
	"chargemap/pkg/logger"
	"chargemap/pkg/serrors"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Initialize logger to avoid nil pointer deref during tests
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

func TestNewError_InternalOnPlainError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, errors.New("boom"))
	require.NotNil(t, res)
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}

func TestNewError_KindSentinelDirect_NotFound(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	// Pass the Kind sentinel directly
	res := h.NewError(ctx, serrors.ErrNotFound)
	require.Equal(t, 404, res.StatusCode)
	require.Equal(t, serrors.ErrNotFound.Error(), res.Response.Code)
	require.Equal(t, "resource not found", res.Response.Message)
}

func TestNewError_SemanticWithMessage_InvalidArgument(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	err := serrors.With(serrors.ErrInvalidArgument, "Invalid status. Must be one of: operational, used, malfunctioning.")
	res := h.NewError(ctx, err)
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrInvalidArgument.Error(), res.Response.Code)
	require.Equal(t, "Invalid status. Must be one of: operational, used, malfunctioning.", res.Response.Message)
}

func TestNewError_SemanticWrap_Unauthorized(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	cause := errors.New("bad token")
	err := serrors.Wrap(serrors.ErrUnauthorized, cause, "Invalid credentials")
	res := h.NewError(ctx, err)
	require.Equal(t, 401, res.StatusCode)
	require.Equal(t, serrors.ErrUnauthorized.Error(), res.Response.Code)
	// Should include provided message, not the cause
	require.Equal(t, "Invalid credentials", res.Response.Message)
}

func TestNewError_AlreadyExists(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	res := h.NewError(context.Background(), serrors.With(serrors.ErrAlreadyExists, "A user with this email already exists."))
	require.Equal(t, 409, res.StatusCode)
	require.Equal(t, "ALREADY_EXISTS", res.Response.Code)
	require.Equal(t, "A user with this email already exists.", res.Response.Message)
}

func TestNewError_ValidationError(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})

	_, verr := domain.NewPostalCode(10114, "POLYGON ((13.3 52.5))")
	require.Error(t, verr)

	res := h.NewError(context.Background(), fmt.Errorf("could not create: %w", verr))
	require.Equal(t, 400, res.StatusCode)
	require.Equal(t, serrors.ErrValidation.Error(), res.Response.Code)
	require.Equal(t, "Postal code must be between 10115 and 14199.", res.Response.Message)
}

func TestNewError_InternalKind_GeneratesInternal(t *testing.T) {
	h := v1handler.New(v1handler.Deps{})
	ctx := context.Background()

	res := h.NewError(ctx, serrors.Wrap(serrors.ErrInternal, errors.New("pq: down"), "could not list charging stations"))
	require.Equal(t, 500, res.StatusCode)
	require.Equal(t, serrors.ErrInternal.Error(), res.Response.Code)
	require.Equal(t, "internal error", res.Response.Message)
}
