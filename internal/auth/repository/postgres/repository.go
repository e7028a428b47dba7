package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
)

// PgxIface is the subset of pgxpool.Pool the repositories need; it is
// also what pgxmock implements.
type PgxIface interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements domain.IdentityDirectory over the students and
// users tables. Both tables are owned by the record-management side of
// the system; this repository only reads them, plus the check-in stamp.
type Repository struct {
	db PgxIface
}

func NewRepository(db PgxIface) *Repository {
	return &Repository{db: db}
}

const studentColumns = `id, name, uid, email, phone, dob`

func (r *Repository) StudentByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM students
		WHERE email = $1
		LIMIT 1;
	`, studentColumns)

	return r.scanStudent(r.db.QueryRow(ctx, query, email))
}

// StudentByUID matches on the digits of the stored UID, so lookups
// succeed whether the caller or the table carries the two-letter
// prefix.
func (r *Repository) StudentByUID(ctx context.Context, uid string) (*domain.Identity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM students
		WHERE regexp_replace(uid, '\D', '', 'g') = $1
		LIMIT 1;
	`, studentColumns)

	return r.scanStudent(r.db.QueryRow(ctx, query, domain.NormalizeUID(uid)))
}

func (r *Repository) StudentByUIDAndDOB(ctx context.Context, uid, dob string) (*domain.Identity, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM students
		WHERE regexp_replace(uid, '\D', '', 'g') = $1 AND dob = $2::date
		LIMIT 1;
	`, studentColumns)

	return r.scanStudent(r.db.QueryRow(ctx, query, domain.NormalizeUID(uid), dob))
}

func (r *Repository) AdminByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	query := `
		SELECT id, name, email, phone
		FROM users
		WHERE email = $1
		LIMIT 1;
	`

	var admin domain.Identity
	err := r.db.QueryRow(ctx, query, email).Scan(&admin.ID, &admin.Name, &admin.Email, &admin.Phone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin by email: %w", err)
	}

	admin.Role = domain.RoleAdmin

	return &admin, nil
}

func (r *Repository) TouchCheckIn(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE students SET checked_in_at = now() WHERE email = $1
	`, email)

	return err
}

func (r *Repository) scanStudent(row pgx.Row) (*domain.Identity, error) {
	var student domain.Identity
	err := row.Scan(&student.ID, &student.Name, &student.UID, &student.Email, &student.Phone, &student.DOB)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	student.Role = domain.RoleStudent

	return &student, nil
}
