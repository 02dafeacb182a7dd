package serrors_test

import (
	"chargemap/pkg/serrors"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrValidation,
		serrors.ErrInvalidArgument,
		serrors.ErrNotFound,
		serrors.ErrAlreadyExists,
		serrors.ErrUnauthorized,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrNotFound, "Charging station with ID %d not found.", 42)
	require.Equal(t, "Charging station with ID 42 not found.", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "could not list stations")
	require.Equal(t, "could not list stations: db down", e2.Error())

	e3 := serrors.KindOnly(serrors.ErrNotFound)
	require.Equal(t, "NOT_FOUND", e3.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	require.ErrorIs(t, e, serrors.ErrNotFound)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrUnauthorized)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrNotFound, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrNotFound, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnauthorized, base, "Invalid credentials")
	require.Equal(t, serrors.ErrUnauthorized, e.Kind())
	require.Equal(t, "Invalid credentials", e.Message())
	require.Equal(t, base, e.Cause())
}

func TestInternal(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		require.NoError(t, serrors.Internal(nil, "anything"))
	})

	t.Run("plain error is wrapped", func(t *testing.T) {
		base := errors.New("connection reset")
		err := serrors.Internal(base, "could not get station")
		require.ErrorIs(t, err, serrors.ErrInternal)
		require.ErrorIs(t, err, base)
		require.Equal(t, "could not get station: connection reset", err.Error())
	})

	t.Run("typed error passes through", func(t *testing.T) {
		typed := serrors.With(serrors.ErrNotFound, "missing")
		wrapped := fmt.Errorf("in session: %w", typed)
		err := serrors.Internal(wrapped, "could not get station")
		require.Same(t, wrapped, err)
		require.NotErrorIs(t, err, serrors.ErrInternal)
	})
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrAlreadyExists, serrors.KindOf(serrors.KindOnly(serrors.ErrAlreadyExists)))
	require.Equal(t, serrors.ErrValidation, serrors.KindOf(fmt.Errorf("x: %w", serrors.ErrValidation)))
}
