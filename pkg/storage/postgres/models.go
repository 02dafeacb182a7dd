package postgres

import (
	"chargemap/pkg/domain"
	"database/sql"
	"time"
)

type PgPostalCode struct {
	ID      int64  `db:"id"      goqu:"skipinsert"`
	Number  int    `db:"number"`
	Polygon string `db:"polygon"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPostalCode) ToDomain() *domain.PostalCode {
	return &domain.PostalCode{
		ID:      domain.PostalCodeID(p.ID),
		Number:  p.Number,
		Polygon: p.Polygon,
	}
}

func (p *PgPostalCode) FromDomain(code domain.PostalCode) {
	*p = PgPostalCode{
		ID:      int64(code.ID),
		Number:  code.Number,
		Polygon: code.Polygon,
	}
}

type PgChargingStation struct {
	ID           int64  `db:"id"             goqu:"skipinsert"`
	Status       string `db:"status"`
	PostalCodeID int64  `db:"postal_code_id"`

	Street        string         `db:"street"`
	HouseNumber   sql.NullString `db:"house_number"`
	AddressSuffix sql.NullString `db:"address_suffix"`
	Latitude      float64        `db:"latitude"`
	Longitude     float64        `db:"longitude"`

	Operator          sql.NullString  `db:"operator"`
	NominalPower      sql.NullFloat64 `db:"nominal_power"`
	ChargingType      string          `db:"charging_type"`
	NumChargingPoints sql.NullInt64   `db:"num_charging_points"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgChargingStation) ToDomain() *domain.ChargingStation {
	s := &domain.ChargingStation{
		ID:            domain.StationID(p.ID),
		Status:        domain.OperationStatus(p.Status),
		PostalCodeID:  domain.PostalCodeID(p.PostalCodeID),
		Street:        p.Street,
		HouseNumber:   p.HouseNumber.String,
		Latitude:      p.Latitude,
		Longitude:     p.Longitude,
		AddressSuffix: p.AddressSuffix.String,
		ChargingType:  domain.ChargingType(p.ChargingType),
	}
	if p.Operator.Valid {
		operator := p.Operator.String
		s.Operator = &operator
	}
	if p.NominalPower.Valid {
		power := p.NominalPower.Float64
		s.NominalPower = &power
	}
	if p.NumChargingPoints.Valid {
		points := int(p.NumChargingPoints.Int64)
		s.NumChargingPoints = &points
	}

	return s
}

func (p *PgChargingStation) FromDomain(s domain.ChargingStation) {
	*p = PgChargingStation{
		ID:            int64(s.ID),
		Status:        string(s.Status),
		PostalCodeID:  int64(s.PostalCodeID),
		Street:        s.Street,
		HouseNumber:   nullString(s.HouseNumber),
		AddressSuffix: nullString(s.AddressSuffix),
		Latitude:      s.Latitude,
		Longitude:     s.Longitude,
		ChargingType:  string(s.ChargingType),
	}
	if s.Operator != nil {
		p.Operator = sql.NullString{String: *s.Operator, Valid: true}
	}
	if s.NominalPower != nil {
		p.NominalPower = sql.NullFloat64{Float64: *s.NominalPower, Valid: true}
	}
	if s.NumChargingPoints != nil {
		p.NumChargingPoints = sql.NullInt64{Int64: int64(*s.NumChargingPoints), Valid: true}
	}
}

type PgUser struct {
	ID           int64          `db:"id"            goqu:"skipinsert"`
	Username     string         `db:"username"`
	Email        string         `db:"email"`
	PasswordHash string         `db:"password_hash"`
	PhoneNumber  sql.NullString `db:"phone_number"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Username:     p.Username,
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
		PhoneNumber:  p.PhoneNumber.String,
	}
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:           int64(u.ID),
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		PhoneNumber:  nullString(u.PhoneNumber),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func pgStationsToDomain(rows []PgChargingStation) []domain.ChargingStation {
	out := make([]domain.ChargingStation, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}

func pgPostalCodesToDomain(rows []PgPostalCode) []domain.PostalCode {
	out := make([]domain.PostalCode, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].ToDomain())
	}

	return out
}
