package controller_test

import (
	"chargemap/pkg/controller"
	"chargemap/pkg/logger"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name   string
		header map[string]string
		remote string
		want   string
	}{
		{name: "forwarded for", header: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"}, want: "1.2.3.4"},
		{name: "real ip", header: map[string]string{"X-Real-IP": "9.8.7.6"}, want: "9.8.7.6"},
		{name: "remote addr", remote: "10.0.0.1:12345", want: "10.0.0.1"},
		{name: "invalid remote addr", remote: "not-an-addr", want: "not-an-addr"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

// serveLogged runs req through WithLogger mounted on a chi router, with the
// request context carrying an observed logger.
func serveLogged(t *testing.T, req *http.Request, status int) (*httptest.ResponseRecorder, string, []observer.LoggedEntry) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)

	var seenID string
	r := chi.NewRouter()
	r.Use(controller.WithLogger)
	r.Get("/api/charging_stations/postal_code/{postal_code}", func(w http.ResponseWriter, r *http.Request) {
		seenID = controller.RequestID(r.Context())
		w.WriteHeader(status)
		_, _ = w.Write([]byte("{}"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req.WithContext(logger.WithLogger(context.Background(), zap.New(core))))

	return rec, seenID, logs.All()
}

func TestWithLogger_KeepsClientRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/charging_stations/postal_code/10115", nil)
	req.Header.Set("X-Request-Id", "abc-123")

	rec, seenID, entries := serveLogged(t, req, http.StatusCreated)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "abc-123", seenID)
	require.Equal(t, "abc-123", rec.Header().Get("X-Request-Id"))

	require.Len(t, entries, 1)
	entry := entries[0]
	require.Equal(t, "Access log", entry.Message)
	require.Equal(t, zapcore.InfoLevel, entry.Level)

	fields := entry.ContextMap()
	require.Equal(t, "abc-123", fields[string(controller.RequestIDKey)])
	require.Equal(t, "/api/charging_stations/postal_code/{postal_code}", fields["route"])
	require.Equal(t, int64(http.StatusCreated), fields["status_code"])
	require.Equal(t, int64(2), fields["bytes"])
}

func TestWithLogger_GeneratesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/charging_stations/postal_code/10115", nil)

	rec, seenID, _ := serveLogged(t, req, http.StatusOK)

	require.NotEmpty(t, seenID)
	require.Equal(t, seenID, rec.Header().Get("X-Request-Id"))
}

func TestWithLogger_LevelFollowsStatus(t *testing.T) {
	tests := []struct {
		status int
		want   zapcore.Level
	}{
		{status: http.StatusOK, want: zapcore.InfoLevel},
		{status: http.StatusNotFound, want: zapcore.WarnLevel},
		{status: http.StatusInternalServerError, want: zapcore.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/charging_stations/postal_code/10115", nil)
			_, _, entries := serveLogged(t, req, tt.status)

			require.Len(t, entries, 1)
			require.Equal(t, tt.want, entries[0].Level)
		})
	}
}

func TestRequestID_Missing(t *testing.T) {
	require.Empty(t, controller.RequestID(context.Background()))
}
