package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/legislate-ai/core-service/internal/domain"
)

const userColumns = `id, role, status, name, adminname, uid, email, password_hash, totp_secret, registration_number, enrollment_number, contact_number, created_at`

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// ---------- helpers ----------

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUserRow(row rowScanner) (userRow, error) {
	var ur userRow
	err := row.Scan(
		&ur.ID,
		&ur.Role,
		&ur.Status,
		&ur.Name,
		&ur.AdminName,
		&ur.UID,
		&ur.Email,
		&ur.PasswordHash,
		&ur.TotpSecret,
		&ur.RegistrationNumber,
		&ur.EnrollmentNumber,
		&ur.ContactNumber,
		&ur.CreatedAt,
	)
	return ur, err
}

// identifierField names the unique login key of a role for conflict
// messages.
func identifierField(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "adminname"
	case domain.RoleNgo:
		return "registrationNumber"
	case domain.RoleLawyer:
		return "enrollmentNumber or contactNumber"
	case domain.RoleIndividual:
		return "name"
	}
	return "identifier"
}

// identifierColumn is the per-role login lookup column.
func identifierColumn(role domain.Role) string {
	switch role {
	case domain.RoleAdmin:
		return "adminname"
	case domain.RoleNgo:
		return "registration_number"
	case domain.RoleLawyer:
		return "contact_number"
	case domain.RoleIndividual:
		return "name"
	}
	return ""
}

func isDuplicate(err error) bool {
	return err != nil && strings.Contains(strings.ToLower(err.Error()), "duplicate")
}

// ---------- auth.UserRepo ----------

func (r *UserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	if !domain.IsValidRole(string(u.Role)) {
		return domain.User{}, domain.ErrInvalidField("role", "unknown role")
	}
	if u.Status == "" {
		u.Status = domain.StatusPending
	}

	const q = `
INSERT INTO users (role, status, name, adminname, uid, email, password_hash, totp_secret, registration_number, enrollment_number, contact_number)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
RETURNING ` + userColumns + `;
`
	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q,
		string(u.Role), string(u.Status),
		nullable(u.Name), nullable(u.AdminName), nullable(u.UID), nullable(u.Email),
		nullable(u.PasswordHash), nullable(u.TotpSecret),
		nullable(u.RegistrationNumber), nullable(u.EnrollmentNumber), nullable(u.ContactNumber),
	))
	if err != nil {
		if isDuplicate(err) {
			return domain.User{}, domain.ErrIdentifierTaken(identifierField(u.Role))
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1;`

	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) GetByRoleIdentifier(ctx context.Context, role domain.Role, identifier string) (domain.User, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return domain.User{}, domain.ErrMissingField("identifier")
	}
	col := identifierColumn(role)
	if col == "" {
		return domain.User{}, domain.ErrInvalidField("role", "unknown role")
	}

	q := `SELECT ` + userColumns + ` FROM users WHERE role = $1 AND ` + col + ` = $2 LIMIT 1;`

	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, string(role), identifier))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) UpdateStatus(ctx context.Context, id int64, status domain.Status) (domain.User, error) {
	if !domain.IsValidStatus(string(status)) {
		return domain.User{}, domain.ErrInvalidField("status", "unknown status")
	}

	const q = `UPDATE users SET status = $2 WHERE id = $1 RETURNING ` + userColumns + `;`

	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, id, string(status)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) UpdateTotpSecret(ctx context.Context, id int64, secret string) (domain.User, error) {
	if secret == "" {
		return domain.User{}, domain.ErrMissingField("totp_secret")
	}

	const q = `UPDATE users SET totp_secret = $2 WHERE id = $1 RETURNING ` + userColumns + `;`

	ur, err := scanUserRow(r.db.QueryRowContext(ctx, q, id, secret))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound()
		}
		return domain.User{}, domain.ErrDBUnavailable(err)
	}
	return ur.toDomain(), nil
}

func (r *UserRepo) ListByRoleStatus(ctx context.Context, role domain.Role, status domain.Status) ([]domain.User, error) {
	const q = `
SELECT ` + userColumns + `
FROM users
WHERE role = $1 AND status = $2
ORDER BY created_at DESC, id DESC;
`
	rows, err := r.db.QueryContext(ctx, q, string(role), string(status))
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		ur, err := scanUserRow(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		users = append(users, ur.toDomain())
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return users, nil
}

func (r *UserRepo) Counts(ctx context.Context) (domain.UserCounts, error) {
	const q = `
SELECT
	COUNT(*),
	COUNT(*) FILTER (WHERE role = 'ngo' AND status = 'verified'),
	COUNT(*) FILTER (WHERE role = 'lawyer' AND status = 'verified'),
	COUNT(*) FILTER (WHERE role = 'individual')
FROM users;
`
	var c domain.UserCounts
	err := r.db.QueryRowContext(ctx, q).Scan(&c.TotalUsers, &c.VerifiedNgos, &c.VerifiedLawyers, &c.Individuals)
	if err != nil {
		return domain.UserCounts{}, domain.ErrDBUnavailable(err)
	}
	return c, nil
}
