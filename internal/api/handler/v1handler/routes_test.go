package v1handler_test

import (
	"chargemap/internal/api/handler/v1handler"
	"chargemap/internal/station"
	"chargemap/pkg/domain"
	"chargemap/pkg/serrors"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	mockaccount "chargemap/internal/account/mock"
	mockstation "chargemap/internal/station/mock"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testAPI struct {
	router   chi.Router
	stations *mockstation.MockService
	accounts *mockaccount.MockService
	signJWT  func(sub string) string
}

func newTestAPI(t *testing.T) testAPI {
	t.Helper()

	ctrl := gomock.NewController(t)
	api := testAPI{
		router:   chi.NewRouter(),
		stations: mockstation.NewMockService(ctrl),
		accounts: mockaccount.NewMockService(ctrl),
	}

	priv, pubPEM := genRSAKeys(t)
	api.signJWT = func(sub string) string {
		now := time.Now()

		return signJWTRS256(t, priv, sub, now, now.Add(time.Hour))
	}

	h := v1handler.New(v1handler.Deps{Stations: api.stations, Accounts: api.accounts})
	h.Routes(api.router, newSecHandlerForTest(t, pubPEM))

	return api
}

func (a testAPI) do(t *testing.T, method, target, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestWelcome(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "Welcome to the Berlin charging station API.", decode[v1handler.MessageResponse](t, rec).Message)
}

func TestListStations(t *testing.T) {
	api := newTestAPI(t)
	op := "Allego"
	api.stations.EXPECT().List(gomock.Any()).Return([]domain.ChargingStation{
		{ID: 1, Status: domain.StatusUsed, PostalCodeID: 3, Street: "Invalidenstr.", Operator: &op,
			ChargingType: domain.ChargingTypeFast},
	}, nil)

	rec := api.do(t, http.MethodGet, "/api/charging_stations/", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[map[string]any](t, rec)
	require.Equal(t, "Successfully retrieved charging stations.", body["message"])
	stations := body["stations"].([]any)
	require.Len(t, stations, 1)
	first := stations[0].(map[string]any)
	require.Equal(t, "used", first["functional"])
	require.Equal(t, "Allego", first["operator"])
	require.Equal(t, "fast", first["charging_type"])
	require.Nil(t, first["nominal_power"])
}

func TestListStations_EmptyIsArray(t *testing.T) {
	api := newTestAPI(t)
	api.stations.EXPECT().List(gomock.Any()).Return(nil, nil)

	rec := api.do(t, http.MethodGet, "/api/charging_stations/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"stations":[]`)
}

func TestListStations_InternalError(t *testing.T) {
	api := newTestAPI(t)
	api.stations.EXPECT().List(gomock.Any()).
		Return(nil, serrors.Wrap(serrors.ErrInternal, errors.New("conn refused"), "could not list"))

	rec := api.do(t, http.MethodGet, "/api/charging_stations/", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, v1handler.ErrorResponse{Code: "INTERNAL", Message: "internal error"},
		decode[v1handler.ErrorResponse](t, rec))
}

func TestSearchStations(t *testing.T) {
	api := newTestAPI(t)
	api.stations.EXPECT().Search(gomock.Any(), "10115").
		Return([]domain.ChargingStation{{ID: 1, PostalCodeID: 3}, {ID: 2, PostalCodeID: 3}}, nil)

	rec := api.do(t, http.MethodGet, "/api/charging_stations/postal_code/10115", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode[v1handler.StationsResponse](t, rec)
	require.Equal(t, "Successfully found charging stations.", body.Message)
	require.Len(t, body.Stations, 2)
}

func TestSearchStations_NonNumeric(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/charging_stations/postal_code/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Invalid input data.", decode[v1handler.ErrorResponse](t, rec).Message)
}

func TestSearchStations_NotFound(t *testing.T) {
	api := newTestAPI(t)
	api.stations.EXPECT().Search(gomock.Any(), "99999").
		Return(nil, serrors.With(serrors.ErrNotFound, "given postal_code is not valid: 99999"))

	rec := api.do(t, http.MethodGet, "/api/charging_stations/postal_code/99999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, v1handler.ErrorResponse{Code: "NOT_FOUND", Message: "given postal_code is not valid: 99999"},
		decode[v1handler.ErrorResponse](t, rec))
}

func TestChangeStatus(t *testing.T) {
	api := newTestAPI(t)
	api.stations.EXPECT().ChangeStatus(gomock.Any(), domain.StationID(4), "malfunctioning").
		Return(&station.StatusChange{ID: 4, Status: domain.StatusMalfunctioning}, nil)

	rec := api.do(t, http.MethodPost, "/api/charging_stations/change_status?station_id=4&new_status=malfunctioning", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, v1handler.StatusChangeResponse{
		Message:   "Success: Charging station 4 updated to malfunctioning successfully.",
		StationID: 4,
		Status:    domain.StatusMalfunctioning,
	}, decode[v1handler.StatusChangeResponse](t, rec))
}

func TestChangeStatus_BadParameters(t *testing.T) {
	for name, query := range map[string]string{
		"missing id":     "?new_status=used",
		"non-integer id": "?station_id=four&new_status=used",
		"missing status": "?station_id=4",
	} {
		t.Run(name, func(t *testing.T) {
			api := newTestAPI(t)

			rec := api.do(t, http.MethodPost, "/api/charging_stations/change_status"+query, "")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "INVALID_ARGUMENT", decode[v1handler.ErrorResponse](t, rec).Code)
		})
	}
}

func TestChangeStatus_ServiceErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{
			name:   "bogus status",
			err:    serrors.With(serrors.ErrInvalidArgument, "Invalid status. Must be one of: operational, used, malfunctioning."),
			status: http.StatusBadRequest,
		},
		{
			name:   "unknown station",
			err:    serrors.With(serrors.ErrNotFound, "Charging station with ID 99999 not found."),
			status: http.StatusNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := newTestAPI(t)
			api.stations.EXPECT().ChangeStatus(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := api.do(t, http.MethodPost, "/api/charging_stations/change_status?station_id=99999&new_status=x", "")
			require.Equal(t, tt.status, rec.Code)
			require.Equal(t, tt.err.Error(), decode[v1handler.ErrorResponse](t, rec).Message)
		})
	}
}

func TestPostalCodes(t *testing.T) {
	api := newTestAPI(t)
	api.stations.EXPECT().PostalCodes(gomock.Any()).
		Return([]domain.PostalCode{{ID: 1, Number: 10115, Polygon: "POLYGON ((13.3 52.5))"}}, nil)

	rec := api.do(t, http.MethodGet, "/api/postal_codes/", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, 10115, decode[v1handler.PostalCodesResponse](t, rec).PostalCodes[0].Number)
}

func TestRegisterUser(t *testing.T) {
	api := newTestAPI(t)
	api.accounts.EXPECT().Register(gomock.Any(), domain.UserParams{
		Username:    "max",
		Email:       "max@abc.test",
		Password:    "Valid@1234",
		PhoneNumber: "+491701234567",
	}).Return(domain.UserID(7), nil)

	rec := api.do(t, http.MethodPost, "/api/register_user/",
		`{"username":"max","email":"max@abc.test","password":"Valid@1234","phone_number":"+491701234567"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, v1handler.RegisterResponse{Message: "User registered successfully.", UserID: 7},
		decode[v1handler.RegisterResponse](t, rec))
}

func TestRegisterUser_MalformedBody(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/register_user/", `{"username":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterUser_Conflict(t *testing.T) {
	api := newTestAPI(t)
	api.accounts.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(domain.UserID(0), serrors.With(serrors.ErrAlreadyExists, "A user with this email already exists."))

	rec := api.do(t, http.MethodPost, "/api/register_user/",
		`{"username":"max","email":"max@abc.test","password":"Valid@1234"}`)
	require.Equal(t, http.StatusConflict, rec.Code)
	require.Equal(t, "A user with this email already exists.", decode[v1handler.ErrorResponse](t, rec).Message)
}

func TestLoginUser(t *testing.T) {
	api := newTestAPI(t)
	api.accounts.EXPECT().Login(gomock.Any(), "max", "Valid@1234").Return("signed", nil)

	rec := api.do(t, http.MethodPost, "/api/login_user/", `{"username":"max","password":"Valid@1234"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "signed", decode[v1handler.LoginResponse](t, rec).AccessToken)
}

func TestLoginUser_MissingFields(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/api/login_user/", `{"username":"max"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "Both 'username' and 'password' are required.", decode[v1handler.ErrorResponse](t, rec).Message)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	api := newTestAPI(t)
	api.accounts.EXPECT().Login(gomock.Any(), "max", "valid@1234").
		Return("", serrors.With(serrors.ErrUnauthorized, "Invalid credentials"))

	rec := api.do(t, http.MethodPost, "/api/login_user/", `{"username":"max","password":"valid@1234"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Invalid credentials", decode[v1handler.ErrorResponse](t, rec).Message)
}

func TestUsers_RequiresBearer(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/users/", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUsers(t *testing.T) {
	api := newTestAPI(t)
	api.accounts.EXPECT().Users(gomock.Any()).Return([]domain.User{
		{ID: 1, Username: "max", Email: "max@abc.test", PasswordHash: "secret-hash"},
	}, nil)

	rec := api.do(t, http.MethodGet, "/api/users/", "", "Authorization", "Bearer "+api.signJWT("max"))
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotContains(t, rec.Body.String(), "secret-hash")
	require.Equal(t, "max", decode[v1handler.UsersResponse](t, rec).Users[0].Username)
}
