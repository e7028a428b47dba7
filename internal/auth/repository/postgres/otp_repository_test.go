package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
	repo "github.com/datachef-lab/idsnap-portal/internal/auth/repository/postgres"
)

func TestOTPRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewOTPRepository(mock)
	ctx := context.Background()

	otp := &domain.OneTimePassword{
		ID:        "otp-1",
		Email:     "asha@college.edu",
		Phone:     "9876543210",
		Code:      "123456",
		CreatedAt: time.Now(),
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO otps").
			WithArgs(otp.ID, otp.Email, otp.Phone, otp.Code, otp.CreatedAt).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))

		assert.NoError(t, r.Save(ctx, otp))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO otps").
			WithArgs(otp.ID, otp.Email, otp.Phone, otp.Code, otp.CreatedAt).
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.Save(ctx, otp))
	})
}

func TestOTPRepository_LatestByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewOTPRepository(mock)
	ctx := context.Background()
	columns := []string{"id", "email", "phone", "otp", "created_at"}

	t.Run("returns the newest row", func(t *testing.T) {
		createdAt := time.Now()
		mock.ExpectQuery("SELECT id, email, phone, otp, created_at").
			WithArgs("asha@college.edu").
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow("otp-2", "asha@college.edu", "9876543210", "222222", createdAt))

		otp, err := r.LatestByEmail(ctx, "asha@college.edu")
		require.NoError(t, err)
		require.NotNil(t, otp)
		assert.Equal(t, "otp-2", otp.ID)
		assert.Equal(t, "222222", otp.Code)
	})

	t.Run("no outstanding code", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, phone, otp, created_at").
			WithArgs("ghost@college.edu").
			WillReturnError(pgx.ErrNoRows)

		otp, err := r.LatestByEmail(ctx, "ghost@college.edu")
		require.NoError(t, err)
		assert.Nil(t, otp)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, email, phone, otp, created_at").
			WithArgs("asha@college.edu").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.LatestByEmail(ctx, "asha@college.edu")
		assert.Error(t, err)
	})
}

func TestOTPRepository_DeleteByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewOTPRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM otps").
			WithArgs("asha@college.edu").
			WillReturnResult(pgxmock.NewResult("DELETE", 2))

		assert.NoError(t, r.DeleteByEmail(ctx, "asha@college.edu"))
	})

	t.Run("nothing to delete", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM otps").
			WithArgs("ghost@college.edu").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		assert.NoError(t, r.DeleteByEmail(ctx, "ghost@college.edu"))
	})
}
