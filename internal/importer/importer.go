// Package importer loads the Berlin postal-code geodata and the
// Bundesnetzagentur charging station register from semicolon separated CSV.
package importer

import (
	"bufio"
	"chargemap/pkg/domain"
	"chargemap/pkg/logger"
	"chargemap/pkg/metrics"
	"chargemap/pkg/storage"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const (
	datasetPostalCodes = "postal_codes"
	datasetStations    = "stations"

	// batchSize bounds the number of rows stored per INSERT statement.
	batchSize = 500
)

// Column names of the charging station register.
const (
	colOperator      = "Betreiber"
	colStreet        = "Straße"
	colHouseNumber   = "Hausnummer"
	colAddressSuffix = "Adresszusatz"
	colPostalCode    = "Postleitzahl"
	colLatitude      = "Breitengrad"
	colLongitude     = "Längengrad"
	colNominalPower  = "Nennleistung Ladeeinrichtung [kW]"
	colChargingType  = "Art der Ladeeinrichung"
	colPoints        = "Anzahl Ladepunkte"
)

var (
	// ErrEmptyFile is returned when the input has no header row.
	ErrEmptyFile = errors.New("csv file is empty")
	// ErrMissingColumn is returned when a required column is absent from the header.
	ErrMissingColumn = errors.New("required column is missing")
)

// Report summarizes one import run.
type Report struct {
	// Read is the number of data rows read, excluding the header.
	Read int `json:"read"`
	// Stored is the number of rows inserted.
	Stored int `json:"stored"`
	// Skipped is the number of rows left out, for any reason.
	Skipped int `json:"skipped"`
}

// Importer writes CSV rows through the storage layer. Each import runs in a
// single transaction.
type Importer struct {
	storage storage.Storage
}

func New(strg storage.Storage) *Importer {
	return &Importer{storage: strg}
}

func newReader(r io.Reader) *csv.Reader {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.Comma = ';'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return reader
}

// readHeader returns the header row with a leading UTF-8 BOM removed.
func readHeader(reader *csv.Reader) ([]string, error) {
	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	return header, nil
}

// ImportPostalCodes reads number;polygon rows. Invalid rows and numbers that
// are already stored are skipped.
func (i *Importer) ImportPostalCodes(ctx context.Context, r io.Reader) (Report, error) {
	reader := newReader(r)
	if _, err := readHeader(reader); err != nil {
		return Report{}, err
	}

	var (
		report Report
		codes  []domain.PostalCode
		seen   = map[int]struct{}{}
	)
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Report{}, fmt.Errorf("could not read postal code row: %w", err)
		}
		report.Read++

		code, err := parsePostalCode(row)
		if err != nil {
			logger.Warn(ctx, "skipping postal code row", zap.Int("row", report.Read), zap.Error(err))
			report.Skipped++

			continue
		}
		if _, dup := seen[code.Number]; dup {
			report.Skipped++

			continue
		}
		seen[code.Number] = struct{}{}
		codes = append(codes, *code)
	}

	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		fresh := make([]domain.PostalCode, 0, len(codes))
		for _, code := range codes {
			exists, err := tx.PostalCodeExists(ctx, code.Number)
			if err != nil {
				return fmt.Errorf("could not check postal code %d: %w", code.Number, err)
			}
			if exists {
				report.Skipped++

				continue
			}
			fresh = append(fresh, code)
		}

		for batch := range chunks(fresh, batchSize) {
			stored, err := tx.StorePostalCodes(ctx, batch...)
			if err != nil {
				return fmt.Errorf("could not store postal codes: %w", err)
			}
			report.Stored += len(stored)
		}

		return nil
	}); err != nil {
		return Report{}, fmt.Errorf("could not import postal codes: %w", err)
	}

	recordReport(datasetPostalCodes, report)
	logger.Info(ctx, "postal codes imported",
		zap.Int("read", report.Read), zap.Int("stored", report.Stored), zap.Int("skipped", report.Skipped))

	return report, nil
}

func parsePostalCode(row []string) (*domain.PostalCode, error) {
	if len(row) < 2 {
		return nil, fmt.Errorf("expected 2 columns, got %d", len(row))
	}

	number, err := strconv.Atoi(strings.TrimSpace(row[0]))
	if err != nil {
		return nil, fmt.Errorf("invalid postal code number %q: %w", row[0], err)
	}

	return domain.NewPostalCode(number, strings.TrimSpace(row[1])) //nolint: wrapcheck
}

// ImportStations reads the charging station register. Rows outside Berlin,
// rows whose postal code is not stored and rows failing validation are
// skipped. Accepted rows are stored in one transaction.
func (i *Importer) ImportStations(ctx context.Context, r io.Reader) (Report, error) {
	reader := newReader(r)
	header, err := readHeader(reader)
	if err != nil {
		return Report{}, err
	}
	cols, err := indexColumns(header, colPostalCode, colLatitude, colLongitude, colStreet)
	if err != nil {
		return Report{}, err
	}

	var report Report
	if err := i.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		postalCodes := map[int]domain.PostalCodeID{}
		var stations []domain.ChargingStation
		for {
			row, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return fmt.Errorf("could not read station row: %w", err)
			}
			report.Read++
			rec := newFields(cols, row)

			number, err := strconv.Atoi(rec.get(colPostalCode))
			if err != nil || !domain.ValidPostalCodeNumber(number) {
				report.Skipped++

				continue
			}

			id, ok := postalCodes[number]
			if !ok {
				code, err := tx.PostalCodeByNumber(ctx, number)
				if err != nil {
					return fmt.Errorf("could not get postal code %d: %w", number, err)
				}
				if code != nil {
					id = code.ID
				}
				postalCodes[number] = id
			}
			if id == 0 {
				logger.Warn(ctx, "postal code not found, skipping station",
					zap.Int("row", report.Read), zap.Int("postal_code", number))
				report.Skipped++

				continue
			}

			station, err := parseStation(rec, id)
			if err != nil {
				logger.Warn(ctx, "skipping station row", zap.Int("row", report.Read), zap.Error(err))
				report.Skipped++

				continue
			}
			stations = append(stations, *station)
		}

		for batch := range chunks(stations, batchSize) {
			stored, err := tx.StoreStations(ctx, batch...)
			if err != nil {
				return fmt.Errorf("could not store stations: %w", err)
			}
			report.Stored += len(stored)
		}

		return nil
	}); err != nil {
		return Report{}, fmt.Errorf("could not import stations: %w", err)
	}

	recordReport(datasetStations, report)
	logger.Info(ctx, "charging stations imported",
		zap.Int("read", report.Read), zap.Int("stored", report.Stored), zap.Int("skipped", report.Skipped))

	return report, nil
}

func parseStation(rec fields, postalCodeID domain.PostalCodeID) (*domain.ChargingStation, error) {
	lat, err := parseDecimal(rec.get(colLatitude))
	if err != nil {
		return nil, fmt.Errorf("invalid latitude: %w", err)
	}
	long, err := parseDecimal(rec.get(colLongitude))
	if err != nil {
		return nil, fmt.Errorf("invalid longitude: %w", err)
	}

	params := domain.StationParams{
		Status:        domain.StatusOperational,
		PostalCodeID:  postalCodeID,
		Street:        rec.get(colStreet),
		HouseNumber:   rec.get(colHouseNumber),
		Latitude:      lat,
		Longitude:     long,
		AddressSuffix: rec.get(colAddressSuffix),
		ChargingType:  domain.ChargingType(rec.get(colChargingType)),
	}
	if op := rec.get(colOperator); op != "" {
		params.Operator = &op
	}
	if raw := rec.get(colNominalPower); raw != "" {
		power, err := parseDecimal(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid nominal power: %w", err)
		}
		params.NominalPower = &power
	}
	if raw := rec.get(colPoints); raw != "" {
		points, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid number of charging points: %w", err)
		}
		params.NumChargingPoints = &points
	}

	return domain.NewChargingStation(params) //nolint: wrapcheck
}

// parseDecimal accepts both "52,5" and "52.5".
func parseDecimal(raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(raw), ",", "."), 64)
	if err != nil {
		return 0, fmt.Errorf("could not parse %q: %w", raw, err)
	}

	return v, nil
}

// indexColumns maps header names to positions and checks required ones exist.
func indexColumns(header []string, required ...string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for idx, name := range header {
		cols[strings.TrimSpace(name)] = idx
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	return cols, nil
}

// fields is one station row addressed by header name.
type fields struct {
	cols   map[string]int
	values []string
}

func newFields(cols map[string]int, values []string) fields {
	return fields{cols: cols, values: values}
}

// get returns the trimmed value of column name, or "" when absent.
func (r fields) get(name string) string {
	idx, ok := r.cols[name]
	if !ok || idx >= len(r.values) {
		return ""
	}

	return strings.TrimSpace(r.values[idx])
}

func recordReport(dataset string, report Report) {
	metrics.ImportedRows.WithLabelValues(dataset, "stored").Add(float64(report.Stored))
	metrics.ImportedRows.WithLabelValues(dataset, "skipped").Add(float64(report.Skipped))
}

// chunks yields consecutive slices of s holding at most size elements.
func chunks[T any](s []T, size int) func(yield func([]T) bool) {
	return func(yield func([]T) bool) {
		for start := 0; start < len(s); start += size {
			end := min(start+size, len(s))
			if !yield(s[start:end]) {
				return
			}
		}
	}
}
