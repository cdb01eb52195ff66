package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/legislate-ai/core-service/internal/domain"
)

const requestColumns = `r.id, r.requester_id, r.requester_role, r.target_id, r.target_role, r.status, r.created_at`

// partyColumns is the public profile slice of the joined user. The
// credential columns are never selected here.
const partyColumns = `u.id, u.role, u.name, u.uid, u.email, u.contact_number, u.registration_number, u.enrollment_number`

type RequestRepo struct {
	db *sql.DB
}

func NewRequestRepo(db *sql.DB) *RequestRepo {
	return &RequestRepo{db: db}
}

// ---------- helpers ----------

func scanRequestRow(row rowScanner) (domain.ConnectionRequest, error) {
	var cr domain.ConnectionRequest
	err := row.Scan(
		&cr.ID,
		&cr.RequesterID,
		&cr.RequesterRole,
		&cr.TargetID,
		&cr.TargetRole,
		&cr.Status,
		&cr.CreatedAt,
	)
	return cr, err
}

func scanRequestWithParty(row rowScanner) (domain.RequestWithParty, error) {
	var (
		rp    domain.RequestWithParty
		name  sql.NullString
		uid   sql.NullString
		email sql.NullString
		cn    sql.NullString
		rn    sql.NullString
		en    sql.NullString
	)
	err := row.Scan(
		&rp.ID,
		&rp.RequesterID,
		&rp.RequesterRole,
		&rp.TargetID,
		&rp.TargetRole,
		&rp.Status,
		&rp.CreatedAt,
		&rp.Party.ID,
		&rp.Party.Role,
		&name,
		&uid,
		&email,
		&cn,
		&rn,
		&en,
	)
	if err != nil {
		return domain.RequestWithParty{}, err
	}
	rp.Party.Name = name.String
	rp.Party.UID = uid.String
	rp.Party.Email = email.String
	rp.Party.ContactNumber = cn.String
	rp.Party.RegistrationNumber = rn.String
	rp.Party.EnrollmentNumber = en.String
	return rp, nil
}

func (r *RequestRepo) queryJoined(ctx context.Context, q string, args ...any) ([]domain.RequestWithParty, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	defer rows.Close()

	var out []domain.RequestWithParty
	for rows.Next() {
		rp, err := scanRequestWithParty(rows)
		if err != nil {
			return nil, domain.ErrDBUnavailable(err)
		}
		out = append(out, rp)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.ErrDBUnavailable(err)
	}
	return out, nil
}

// ---------- connect.RequestRepo ----------

func (r *RequestRepo) Create(ctx context.Context, cr domain.ConnectionRequest) (domain.ConnectionRequest, error) {
	const q = `
INSERT INTO requests (requester_id, requester_role, target_id, target_role, status)
VALUES ($1,$2,$3,$4,$5)
RETURNING id, requester_id, requester_role, target_id, target_role, status, created_at;
`
	created, err := scanRequestRow(r.db.QueryRowContext(ctx, q,
		cr.RequesterID, string(cr.RequesterRole), cr.TargetID, string(cr.TargetRole), string(cr.Status),
	))
	if err != nil {
		return domain.ConnectionRequest{}, domain.ErrDBUnavailable(err)
	}
	return created, nil
}

func (r *RequestRepo) GetByID(ctx context.Context, id int64) (domain.ConnectionRequest, error) {
	const q = `
SELECT id, requester_id, requester_role, target_id, target_role, status, created_at
FROM requests
WHERE id = $1
LIMIT 1;
`
	cr, err := scanRequestRow(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ConnectionRequest{}, domain.ErrRequestNotFound()
		}
		return domain.ConnectionRequest{}, domain.ErrDBUnavailable(err)
	}
	return cr, nil
}

// ResolvePending is a single conditional row update: the WHERE clause
// keeps two concurrent decisions from both succeeding.
func (r *RequestRepo) ResolvePending(ctx context.Context, id int64, status domain.RequestStatus) (domain.ConnectionRequest, error) {
	const q = `
UPDATE requests
SET status = $2
WHERE id = $1 AND status = 'pending'
RETURNING id, requester_id, requester_role, target_id, target_role, status, created_at;
`
	cr, err := scanRequestRow(r.db.QueryRowContext(ctx, q, id, string(status)))
	if err == nil {
		return cr, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return domain.ConnectionRequest{}, domain.ErrDBUnavailable(err)
	}

	// No pending row matched: either the id is unknown or the request
	// was already resolved. Re-read to report the right failure.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return domain.ConnectionRequest{}, getErr
	}
	return domain.ConnectionRequest{}, domain.ErrRequestAlreadyResolved()
}

func (r *RequestRepo) ListForTarget(ctx context.Context, targetID int64, targetRole domain.Role) ([]domain.RequestWithParty, error) {
	const q = `
SELECT ` + requestColumns + `, ` + partyColumns + `
FROM requests r
JOIN users u ON u.id = r.requester_id
WHERE r.target_id = $1 AND r.target_role = $2
ORDER BY r.created_at DESC, r.id DESC;
`
	return r.queryJoined(ctx, q, targetID, string(targetRole))
}

func (r *RequestRepo) ListForRequester(ctx context.Context, requesterID int64) ([]domain.RequestWithParty, error) {
	const q = `
SELECT ` + requestColumns + `, ` + partyColumns + `
FROM requests r
JOIN users u ON u.id = r.target_id
WHERE r.requester_id = $1
ORDER BY r.created_at DESC, r.id DESC;
`
	return r.queryJoined(ctx, q, requesterID)
}

// ListAccepted joins each accepted request with whichever user is the
// other party relative to the viewer.
func (r *RequestRepo) ListAccepted(ctx context.Context, userID int64, userRole domain.Role) ([]domain.RequestWithParty, error) {
	const q = `
SELECT ` + requestColumns + `, ` + partyColumns + `
FROM requests r
JOIN users u ON u.id = CASE WHEN r.requester_id = $1 THEN r.target_id ELSE r.requester_id END
WHERE r.status = 'accepted'
  AND (r.requester_id = $1 OR (r.target_id = $1 AND r.target_role = $2))
ORDER BY r.created_at DESC, r.id DESC;
`
	return r.queryJoined(ctx, q, userID, string(userRole))
}

func (r *RequestRepo) HasOpenRequest(ctx context.Context, requesterID, targetID int64) (bool, error) {
	const q = `
SELECT EXISTS (
	SELECT 1 FROM requests
	WHERE requester_id = $1 AND target_id = $2 AND status IN ('pending', 'accepted')
);
`
	var exists bool
	if err := r.db.QueryRowContext(ctx, q, requesterID, targetID).Scan(&exists); err != nil {
		return false, domain.ErrDBUnavailable(err)
	}
	return exists, nil
}
