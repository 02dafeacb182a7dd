package station_test

import (
	"chargemap/internal/station"
	"chargemap/pkg/domain"
	"chargemap/pkg/logger"
	"chargemap/pkg/metrics"
	"chargemap/pkg/serrors"
	"chargemap/pkg/storage"
	"context"
	"errors"
	"testing"

	mockstation "chargemap/internal/station/mock"
	mockstorage "chargemap/pkg/storage/mock"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment, "")
	m.Run()
}

type testService struct {
	ctrl  *gomock.Controller
	st    *mockstorage.MockStorage
	cache *mockstation.MockPostalCodeCache
	svc   station.Service
}

func newTestService(t *testing.T) testService {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	cache := mockstation.NewMockPostalCodeCache(ctrl)

	return testService{ctrl: ctrl, st: st, cache: cache, svc: station.New(st, cache)}
}

// helper to wire Storage.WithSession to execute callback with a MockAllStorage.
func expectWithSession(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(s *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithSession(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			s := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(s)
			}

			return cb(s)
		},
	)
}

func ptr[T any](v T) *T { return &v }

func stationsIn(id domain.PostalCodeID) []domain.ChargingStation {
	return []domain.ChargingStation{
		{ID: 1, Status: domain.StatusOperational, PostalCodeID: id, Street: "Invalidenstr.", Latitude: 52.53, Longitude: 13.38},
		{ID: 2, Status: domain.StatusUsed, PostalCodeID: id, Street: "Chausseestr.", Latitude: 52.53, Longitude: 13.38,
			Operator: ptr("Allego")},
	}
}

func TestSearch_CacheMissLooksUpStore(t *testing.T) {
	ts := newTestService(t)
	ctx := context.Background()

	ts.cache.EXPECT().PostalCodeID(gomock.Any(), 10115).Return(domain.PostalCodeID(0), false, nil)
	ts.cache.EXPECT().RememberPostalCode(gomock.Any(), 10115, domain.PostalCodeID(3)).Return(nil)
	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().PostalCodeByNumber(gomock.Any(), 10115).
			Return(&domain.PostalCode{ID: 3, Number: 10115, Polygon: "POLYGON ((13.3 52.5, 13.4 52.6))"}, nil)
		s.EXPECT().StationsByPostalCode(gomock.Any(), domain.PostalCodeID(3)).Return(stationsIn(3), nil)
	})

	got, err := ts.svc.Search(ctx, "10115")
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, s := range got {
		require.Equal(t, domain.PostalCodeID(3), s.PostalCodeID)
	}
}

func TestSearch_CacheHitSkipsPostalCodeLookup(t *testing.T) {
	ts := newTestService(t)

	ts.cache.EXPECT().PostalCodeID(gomock.Any(), 10117).Return(domain.PostalCodeID(9), true, nil)
	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().StationsByPostalCode(gomock.Any(), domain.PostalCodeID(9)).Return(nil, nil)
	})

	got, err := ts.svc.Search(context.Background(), "10117")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestSearch_CacheFailureFallsBackToStore(t *testing.T) {
	ts := newTestService(t)

	ts.cache.EXPECT().PostalCodeID(gomock.Any(), 10115).Return(domain.PostalCodeID(0), false, errors.New("redis down"))
	ts.cache.EXPECT().RememberPostalCode(gomock.Any(), 10115, domain.PostalCodeID(3)).Return(errors.New("redis down"))
	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().PostalCodeByNumber(gomock.Any(), 10115).Return(&domain.PostalCode{ID: 3, Number: 10115}, nil)
		s.EXPECT().StationsByPostalCode(gomock.Any(), domain.PostalCodeID(3)).Return(stationsIn(3), nil)
	})

	got, err := ts.svc.Search(context.Background(), "10115")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestSearch_Idempotent(t *testing.T) {
	ts := newTestService(t)

	ts.cache.EXPECT().PostalCodeID(gomock.Any(), 10115).Return(domain.PostalCodeID(3), true, nil).Times(2)
	for range 2 {
		expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
			s.EXPECT().StationsByPostalCode(gomock.Any(), domain.PostalCodeID(3)).Return(stationsIn(3), nil)
		})
	}

	first, err := ts.svc.Search(context.Background(), "10115")
	require.NoError(t, err)
	second, err := ts.svc.Search(context.Background(), "10115")
	require.NoError(t, err)
	require.ElementsMatch(t, first, second)
}

func TestSearch_InvalidTokens(t *testing.T) {
	for _, token := range []string{"abc", "", "10114", "14200", "10115.5"} {
		t.Run(token, func(t *testing.T) {
			ts := newTestService(t)

			_, err := ts.svc.Search(context.Background(), token)
			require.ErrorIs(t, err, serrors.ErrNotFound)

			var se *serrors.Error
			require.ErrorAs(t, err, &se)
			require.Equal(t, "given postal_code is not valid: "+token, se.Message())
		})
	}
}

func TestSearch_UnknownPostalCode(t *testing.T) {
	ts := newTestService(t)

	ts.cache.EXPECT().PostalCodeID(gomock.Any(), 12000).Return(domain.PostalCodeID(0), false, nil)
	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().PostalCodeByNumber(gomock.Any(), 12000).Return(nil, nil)
	})

	_, err := ts.svc.Search(context.Background(), "12000")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.EqualError(t, err, "given postal_code is not valid: 12000")
}

func TestSearch_StoreFailureIsInternal(t *testing.T) {
	ts := newTestService(t)
	boom := errors.New("connection refused")

	ts.cache.EXPECT().PostalCodeID(gomock.Any(), 10115).Return(domain.PostalCodeID(3), true, nil)
	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().StationsByPostalCode(gomock.Any(), domain.PostalCodeID(3)).Return(nil, boom)
	})

	_, err := ts.svc.Search(context.Background(), "10115")
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, boom)
}

func TestSearch_WithoutCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	svc := station.New(st, nil)

	expectWithSession(t, ctrl, st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().PostalCodeByNumber(gomock.Any(), 10115).Return(&domain.PostalCode{ID: 3, Number: 10115}, nil)
		s.EXPECT().StationsByPostalCode(gomock.Any(), domain.PostalCodeID(3)).Return(stationsIn(3), nil)
	})

	got, err := svc.Search(context.Background(), "10115")
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestList(t *testing.T) {
	ts := newTestService(t)

	ts.st.EXPECT().Stations(gomock.Any()).Return(stationsIn(1), nil)

	got, err := ts.svc.List(context.Background())
	require.NoError(t, err)
	require.Equal(t, stationsIn(1), got)
}

func TestList_StoreFailure(t *testing.T) {
	ts := newTestService(t)

	ts.st.EXPECT().Stations(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := ts.svc.List(context.Background())
	require.ErrorIs(t, err, serrors.ErrInternal)
}

func TestChangeStatus_AllTransitions(t *testing.T) {
	for _, from := range domain.OperationStatuses() {
		for _, to := range domain.OperationStatuses() {
			t.Run(string(from)+"->"+string(to), func(t *testing.T) {
				ts := newTestService(t)
				before := testutil.ToFloat64(metrics.StationStatusChanges.WithLabelValues(string(to)))

				expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
					s.EXPECT().StationByID(gomock.Any(), domain.StationID(5)).
						Return(&domain.ChargingStation{ID: 5, Status: from}, nil)
					s.EXPECT().UpdateStationStatus(gomock.Any(), domain.StationID(5), to).Return(nil)
				})

				got, err := ts.svc.ChangeStatus(context.Background(), 5, string(to))
				require.NoError(t, err)
				require.Equal(t, &station.StatusChange{ID: 5, Status: to}, got)
				require.InDelta(t, before+1,
					testutil.ToFloat64(metrics.StationStatusChanges.WithLabelValues(string(to))), 0)
			})
		}
	}
}

func TestChangeStatus_CaseInsensitive(t *testing.T) {
	ts := newTestService(t)

	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().StationByID(gomock.Any(), domain.StationID(5)).
			Return(&domain.ChargingStation{ID: 5, Status: domain.StatusOperational}, nil)
		s.EXPECT().UpdateStationStatus(gomock.Any(), domain.StationID(5), domain.StatusMalfunctioning).Return(nil)
	})

	got, err := ts.svc.ChangeStatus(context.Background(), 5, "MALFUNCTIONING")
	require.NoError(t, err)
	require.Equal(t, domain.StatusMalfunctioning, got.Status)
}

func TestChangeStatus_BogusStatus(t *testing.T) {
	ts := newTestService(t)

	_, err := ts.svc.ChangeStatus(context.Background(), 5, "bogus")
	require.ErrorIs(t, err, serrors.ErrInvalidArgument)
	require.EqualError(t, err, "Invalid status. Must be one of: operational, used, malfunctioning.")
}

func TestChangeStatus_UnknownStation(t *testing.T) {
	ts := newTestService(t)

	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().StationByID(gomock.Any(), domain.StationID(99999)).Return(nil, nil)
	})

	_, err := ts.svc.ChangeStatus(context.Background(), 99999, "used")
	require.ErrorIs(t, err, serrors.ErrNotFound)
	require.EqualError(t, err, "Charging station with ID 99999 not found.")
}

func TestChangeStatus_DeletedConcurrently(t *testing.T) {
	ts := newTestService(t)

	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().StationByID(gomock.Any(), domain.StationID(5)).
			Return(&domain.ChargingStation{ID: 5, Status: domain.StatusUsed}, nil)
		s.EXPECT().UpdateStationStatus(gomock.Any(), domain.StationID(5), domain.StatusOperational).
			Return(storage.ErrNoRows)
	})

	_, err := ts.svc.ChangeStatus(context.Background(), 5, "operational")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}

func TestChangeStatus_UpdateFailure(t *testing.T) {
	ts := newTestService(t)
	boom := errors.New("boom")

	expectWithSession(t, ts.ctrl, ts.st, func(s *mockstorage.MockAllStorage) {
		s.EXPECT().StationByID(gomock.Any(), domain.StationID(5)).
			Return(&domain.ChargingStation{ID: 5, Status: domain.StatusUsed}, nil)
		s.EXPECT().UpdateStationStatus(gomock.Any(), domain.StationID(5), domain.StatusOperational).Return(boom)
	})

	_, err := ts.svc.ChangeStatus(context.Background(), 5, "operational")
	require.ErrorIs(t, err, serrors.ErrInternal)
	require.ErrorIs(t, err, boom)
}

func TestPostalCodes(t *testing.T) {
	ts := newTestService(t)
	codes := []domain.PostalCode{{ID: 1, Number: 10115, Polygon: "POLYGON ((13.3 52.5))"}}

	ts.st.EXPECT().PostalCodes(gomock.Any()).Return(codes, nil)

	got, err := ts.svc.PostalCodes(context.Background())
	require.NoError(t, err)
	require.Equal(t, codes, got)
}

func TestPostalCodes_StoreFailure(t *testing.T) {
	ts := newTestService(t)

	ts.st.EXPECT().PostalCodes(gomock.Any()).Return(nil, errors.New("boom"))

	_, err := ts.svc.PostalCodes(context.Background())
	require.ErrorIs(t, err, serrors.ErrInternal)
}
