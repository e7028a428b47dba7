package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
)

// OTPRepository stores challenge codes as rows. Issuing a new code
// inserts; nothing updates in place. Most-recent-wins semantics fall
// out of LatestByEmail ordering by created_at.
type OTPRepository struct {
	db PgxIface
}

func NewOTPRepository(db PgxIface) *OTPRepository {
	return &OTPRepository{db: db}
}

func (r *OTPRepository) Save(ctx context.Context, otp *domain.OneTimePassword) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO otps (id, email, phone, otp, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, otp.ID, otp.Email, otp.Phone, otp.Code, otp.CreatedAt)

	return err
}

func (r *OTPRepository) LatestByEmail(ctx context.Context, email string) (*domain.OneTimePassword, error) {
	query := `
		SELECT id, email, phone, otp, created_at
		FROM otps
		WHERE email = $1
		ORDER BY created_at DESC
		LIMIT 1;
	`

	var otp domain.OneTimePassword
	err := r.db.QueryRow(ctx, query, email).Scan(&otp.ID, &otp.Email, &otp.Phone, &otp.Code, &otp.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get latest otp: %w", err)
	}

	return &otp, nil
}

func (r *OTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM otps WHERE email = $1`, email)
	return err
}
