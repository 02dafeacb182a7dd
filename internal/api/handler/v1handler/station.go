package v1handler

import (
	"chargemap/pkg/domain"
	"chargemap/pkg/serrors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
)

const welcomeMessage = "Welcome to the Berlin charging station API."

type MessageResponse struct {
	Message string `json:"message"`
}

type StationsResponse struct {
	Message  string                   `json:"message"`
	Stations []domain.ChargingStation `json:"stations"`
}

type StatusChangeResponse struct {
	Message   string                 `json:"message"`
	StationID domain.StationID       `json:"station_id"`
	Status    domain.OperationStatus `json:"status"`
}

type PostalCodesResponse struct {
	PostalCodes []domain.PostalCode `json:"postal_codes"`
}

func (h *Handler) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, MessageResponse{Message: welcomeMessage})
}

func (h *Handler) ListStations(w http.ResponseWriter, r *http.Request) {
	stations, err := h.deps.Stations.List(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, StationsResponse{
		Message:  "Successfully retrieved charging stations.",
		Stations: nonNil(stations),
	})
}

// SearchStations answers 400 for tokens that are not integers and leaves
// range and existence checks to the service.
func (h *Handler) SearchStations(w http.ResponseWriter, r *http.Request) {
	token := strings.TrimSpace(chi.URLParam(r, "postal_code"))
	if _, err := strconv.Atoi(token); err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrInvalidArgument, err, "Invalid input data."))

		return
	}

	stations, err := h.deps.Stations.Search(r.Context(), token)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, StationsResponse{
		Message:  "Successfully found charging stations.",
		Stations: nonNil(stations),
	})
}

func (h *Handler) ChangeStatus(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	id, err := strconv.ParseInt(query.Get("station_id"), 10, 64)
	if err != nil {
		writeError(w, r, serrors.Wrap(serrors.ErrInvalidArgument, err, "station_id must be an integer."))

		return
	}
	status := query.Get("new_status")
	if status == "" {
		writeError(w, r, serrors.With(serrors.ErrInvalidArgument, "new_status is required."))

		return
	}

	change, err := h.deps.Stations.ChangeStatus(r.Context(), domain.StationID(id), status)
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, StatusChangeResponse{
		Message: fmt.Sprintf("Success: Charging station %d updated to %s successfully.",
			change.ID, change.Status),
		StationID: change.ID,
		Status:    change.Status,
	})
}

func (h *Handler) PostalCodes(w http.ResponseWriter, r *http.Request) {
	codes, err := h.deps.Stations.PostalCodes(r.Context())
	if err != nil {
		writeError(w, r, err)

		return
	}

	writeJSON(w, r, http.StatusOK, PostalCodesResponse{PostalCodes: nonNil(codes)})
}

// nonNil keeps empty results encoded as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
