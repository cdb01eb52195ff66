package postgres

import (
	"database/sql"
	"time"

	"github.com/legislate-ai/core-service/internal/domain"
)

type userRow struct {
	ID                 int64
	Role               string
	Status             string
	Name               sql.NullString
	AdminName          sql.NullString
	UID                sql.NullString
	Email              sql.NullString
	PasswordHash       sql.NullString
	TotpSecret         sql.NullString
	RegistrationNumber sql.NullString
	EnrollmentNumber   sql.NullString
	ContactNumber      sql.NullString
	CreatedAt          time.Time
}

func (ur userRow) toDomain() domain.User {
	return domain.User{
		ID:                 ur.ID,
		Role:               domain.Role(ur.Role),
		Status:             domain.Status(ur.Status),
		Name:               ur.Name.String,
		AdminName:          ur.AdminName.String,
		UID:                ur.UID.String,
		Email:              ur.Email.String,
		PasswordHash:       ur.PasswordHash.String,
		TotpSecret:         ur.TotpSecret.String,
		RegistrationNumber: ur.RegistrationNumber.String,
		EnrollmentNumber:   ur.EnrollmentNumber.String,
		ContactNumber:      ur.ContactNumber.String,
		CreatedAt:          ur.CreatedAt,
	}
}

// nullable maps Go's empty string to SQL NULL so the partial unique
// indexes never trip over absent identifiers.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
