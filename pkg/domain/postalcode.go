package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Berlin postal codes are the only ones the service knows about.
const (
	MinPostalCode = 10115
	MaxPostalCode = 14199
)

// polygonPattern accepts the WKT shape POLYGON ((x1 y1, x2 y2, ...)) with at
// least one pair of decimal tokens. Ring closure is not checked.
var polygonPattern = regexp.MustCompile(
	`^POLYGON \(\((-?\d+\.\d+\s-?\d+\.\d+,\s)*-?\d+\.\d+\s-?\d+\.\d+\)\)$`)

// PostalCodeID is the store-assigned identifier of a postal code.
type PostalCodeID int64

// PostalCode is a city postal code together with its boundary polygon.
type PostalCode struct {
	ID      PostalCodeID `json:"id"`
	Number  int          `json:"number"`
	Polygon string       `json:"polygon"`
}

// ValidPostalCodeNumber reports whether n lies inside the city range.
func ValidPostalCodeNumber(n int) bool {
	return n >= MinPostalCode && n <= MaxPostalCode
}

// ValidPolygon reports whether p is a well-formed WKT polygon string.
func ValidPolygon(p string) bool {
	return polygonPattern.MatchString(p)
}

// ParsePostalCodeNumber coerces a raw token, for example a path parameter or a
// CSV cell, into a postal code number inside the city range.
func ParsePostalCodeNumber(token string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, newValidationError(EntityPostalCode, "number", "numeric",
			fmt.Sprintf("Postal code must be an integer, got %q.", token))
	}
	if !ValidPostalCodeNumber(n) {
		return 0, postalCodeRangeError()
	}

	return n, nil
}

// NewPostalCode validates number and polygon and returns a PostalCode that is
// not yet persisted.
func NewPostalCode(number int, polygon string) (*PostalCode, error) {
	if !ValidPostalCodeNumber(number) {
		return nil, postalCodeRangeError()
	}
	if !ValidPolygon(polygon) {
		return nil, newValidationError(EntityPostalCode, "polygon", "wkt_polygon",
			"Polygon must be a valid WKT format: 'Polygon ((x1 y1, x2 y2, ...))'.")
	}

	return &PostalCode{Number: number, Polygon: polygon}, nil
}

func postalCodeRangeError() *ValidationError {
	return newValidationError(EntityPostalCode, "number", "range",
		fmt.Sprintf("Postal code must be between %d and %d.", MinPostalCode, MaxPostalCode))
}
