package postgres

import (
	"context"
	"database/sql"

	"github.com/legislate-ai/core-service/internal/domain"
)

// Role-specific login identifiers are unique per role, not globally:
// an NGO's name may collide with an individual's, so plain UNIQUE
// columns would be wrong. Partial unique indexes encode the invariant.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	id                  BIGSERIAL PRIMARY KEY,
	role                TEXT NOT NULL,
	status              TEXT NOT NULL DEFAULT 'pending',
	name                TEXT,
	adminname           TEXT,
	uid                 TEXT,
	email               TEXT,
	password_hash       TEXT,
	totp_secret         TEXT,
	registration_number TEXT,
	enrollment_number   TEXT,
	contact_number      TEXT,
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE UNIQUE INDEX IF NOT EXISTS users_admin_adminname_key
	ON users (adminname) WHERE role = 'admin';
CREATE UNIQUE INDEX IF NOT EXISTS users_ngo_registration_number_key
	ON users (registration_number) WHERE role = 'ngo';
CREATE UNIQUE INDEX IF NOT EXISTS users_lawyer_enrollment_number_key
	ON users (enrollment_number) WHERE role = 'lawyer';
CREATE UNIQUE INDEX IF NOT EXISTS users_lawyer_contact_number_key
	ON users (contact_number) WHERE role = 'lawyer';
CREATE UNIQUE INDEX IF NOT EXISTS users_individual_name_key
	ON users (name) WHERE role = 'individual';

CREATE TABLE IF NOT EXISTS requests (
	id             BIGSERIAL PRIMARY KEY,
	requester_id   BIGINT NOT NULL,
	requester_role TEXT NOT NULL,
	target_id      BIGINT NOT NULL,
	target_role    TEXT NOT NULL,
	status         TEXT NOT NULL DEFAULT 'pending',
	created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS requests_target_idx ON requests (target_id, target_role);
CREATE INDEX IF NOT EXISTS requests_requester_idx ON requests (requester_id);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
// It runs once at startup, before the server accepts connections.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return domain.ErrDBUnavailable(err)
	}
	return nil
}
