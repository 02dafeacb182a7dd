package domain

import (
	"math"
	"strings"
)

// StationID is the store-assigned identifier of a charging station.
type StationID int64

// OperationStatus is the operational state of a charging station.
type OperationStatus string

// Known operation statuses. A station may move between any two of them.
const (
	StatusOperational    OperationStatus = "operational"
	StatusUsed           OperationStatus = "used"
	StatusMalfunctioning OperationStatus = "malfunctioning"
)

// OperationStatuses lists every known status in display order.
func OperationStatuses() []OperationStatus {
	return []OperationStatus{StatusOperational, StatusUsed, StatusMalfunctioning}
}

// ParseOperationStatus maps a case-insensitive status name onto a known
// status.
func ParseOperationStatus(name string) (OperationStatus, bool) {
	s := OperationStatus(strings.ToLower(strings.TrimSpace(name)))
	switch s {
	case StatusOperational, StatusUsed, StatusMalfunctioning:
		return s, true
	default:
		return "", false
	}
}

// ChargingType is the kind of charging equipment at a station.
type ChargingType string

const (
	ChargingTypeFast        ChargingType = "fast"
	ChargingTypeNormal      ChargingType = "normal"
	ChargingTypeUnspecified ChargingType = "unspecified"
)

// ChargingTypeFromLabel maps a free-text label onto a ChargingType. It
// accepts the labels used by the Bundesnetzagentur feed as well as the
// English names; anything else is unspecified.
func ChargingTypeFromLabel(label string) ChargingType {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "schnellladeeinrichtung", string(ChargingTypeFast):
		return ChargingTypeFast
	case "normalladeeinrichtung", string(ChargingTypeNormal):
		return ChargingTypeNormal
	default:
		return ChargingTypeUnspecified
	}
}

// ChargingStation is a charging station located in one postal code area.
type ChargingStation struct {
	ID                StationID       `json:"id"`
	Status            OperationStatus `json:"functional"`
	PostalCodeID      PostalCodeID    `json:"postal_code_id"`
	Street            string          `json:"street"`
	HouseNumber       string          `json:"house_number"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	Operator          *string         `json:"operator"`
	AddressSuffix     string          `json:"address_suffix"`
	NominalPower      *float64        `json:"nominal_power"`
	ChargingType      ChargingType    `json:"charging_type"`
	NumChargingPoints *int            `json:"num_charging_points"`
}

// StationParams holds the raw attributes of a station to be constructed.
// Pointer fields are optional; nil means the value is unknown.
type StationParams struct {
	// Status defaults to operational when empty.
	Status            OperationStatus
	PostalCodeID      PostalCodeID
	Street            string
	HouseNumber       string
	Latitude          float64
	Longitude         float64
	Operator          *string
	AddressSuffix     string
	NominalPower      *float64
	ChargingType      ChargingType
	NumChargingPoints *int
}

// ValidLatitude reports whether lat lies in [-90, 90].
func ValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

// ValidLongitude reports whether long lies in [-180, 180].
func ValidLongitude(long float64) bool {
	return long >= -180 && long <= 180
}

// NewChargingStation validates p and returns a station that is not yet
// persisted. The first violated rule is reported.
func NewChargingStation(p StationParams) (*ChargingStation, error) {
	status := StatusOperational
	if p.Status != "" {
		parsed, ok := ParseOperationStatus(string(p.Status))
		if !ok {
			return nil, invalidStatusError()
		}
		status = parsed
	}
	if p.PostalCodeID <= 0 {
		return nil, stationError("postal_code_id", "required", "Postal code reference is required.")
	}
	if !ValidLatitude(p.Latitude) {
		return nil, stationError("latitude", "range", "Latitude must be between -90 and 90.")
	}
	if !ValidLongitude(p.Longitude) {
		return nil, stationError("longitude", "range", "Longitude must be between -180 and 180.")
	}
	if p.NominalPower != nil && !positiveFinite(*p.NominalPower) {
		return nil, stationError("nominal_power", "positive",
			"Nominal power must be a positive number greater than 0.")
	}
	if p.NumChargingPoints != nil && *p.NumChargingPoints <= 0 {
		return nil, stationError("num_charging_points", "positive",
			"Number of charging points must be a positive integer greater than 0.")
	}
	if p.Operator != nil && strings.TrimSpace(*p.Operator) == "" {
		return nil, stationError("operator", "non_blank", "Operator must be a non-empty string.")
	}

	return &ChargingStation{
		Status:            status,
		PostalCodeID:      p.PostalCodeID,
		Street:            p.Street,
		HouseNumber:       p.HouseNumber,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
		Operator:          p.Operator,
		AddressSuffix:     p.AddressSuffix,
		NominalPower:      p.NominalPower,
		ChargingType:      ChargingTypeFromLabel(string(p.ChargingType)),
		NumChargingPoints: p.NumChargingPoints,
	}, nil
}

// TransitionTo moves the station into status. Every status is reachable
// from every other one.
func (s *ChargingStation) TransitionTo(status OperationStatus) error {
	parsed, ok := ParseOperationStatus(string(status))
	if !ok {
		return invalidStatusError()
	}
	s.Status = parsed

	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func invalidStatusError() *ValidationError {
	return stationError("functional", "status",
		"Invalid functional status. Must be one of: operational, used, malfunctioning.")
}

func stationError(field, rule, msg string) *ValidationError {
	return newValidationError(EntityChargingStation, field, rule, msg)
}
