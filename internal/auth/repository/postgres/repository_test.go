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

var studentColumns = []string{"id", "name", "uid", "email", "phone", "dob"}

func studentRow() *pgxmock.Rows {
	dob, _ := time.Parse("2006-01-02", "2004-07-21")
	return pgxmock.NewRows(studentColumns).
		AddRow(42, "Asha Verma", "ST0123456789", "asha@college.edu", "9876543210", dob)
}

func TestStudentByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, uid").
			WithArgs("asha@college.edu").
			WillReturnRows(studentRow())

		student, err := r.StudentByEmail(ctx, "asha@college.edu")
		require.NoError(t, err)
		require.NotNil(t, student)
		assert.Equal(t, 42, student.ID)
		assert.Equal(t, "ST0123456789", student.UID)
		assert.Equal(t, domain.RoleStudent, student.Role)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, uid").
			WithArgs("ghost@college.edu").
			WillReturnError(pgx.ErrNoRows)

		student, err := r.StudentByEmail(ctx, "ghost@college.edu")
		require.NoError(t, err)
		assert.Nil(t, student)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, uid").
			WithArgs("asha@college.edu").
			WillReturnError(fmt.Errorf("db error"))

		_, err := r.StudentByEmail(ctx, "asha@college.edu")
		assert.Error(t, err)
	})
}

// Lookups go through digits-only normalization before they hit the
// query, so a prefixed caller UID still binds the bare digits.
func TestStudentByUID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("prefixed input is normalized", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, uid").
			WithArgs("0123456789").
			WillReturnRows(studentRow())

		student, err := r.StudentByUID(ctx, "ST0123456789")
		require.NoError(t, err)
		require.NotNil(t, student)
		assert.Equal(t, "asha@college.edu", student.Email)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, uid").
			WithArgs("9999999999").
			WillReturnError(pgx.ErrNoRows)

		student, err := r.StudentByUID(ctx, "9999999999")
		require.NoError(t, err)
		assert.Nil(t, student)
	})
}

func TestStudentByUIDAndDOB(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, uid").
			WithArgs("0123456789", "2004-07-21").
			WillReturnRows(studentRow())

		student, err := r.StudentByUIDAndDOB(ctx, "ST0123456789", "2004-07-21")
		require.NoError(t, err)
		require.NotNil(t, student)
		assert.Equal(t, 42, student.ID)
	})

	t.Run("no match", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, uid").
			WithArgs("0123456789", "1999-01-01").
			WillReturnError(pgx.ErrNoRows)

		student, err := r.StudentByUIDAndDOB(ctx, "0123456789", "1999-01-01")
		require.NoError(t, err)
		assert.Nil(t, student)
	})
}

func TestAdminByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, phone").
			WithArgs("registry@college.edu").
			WillReturnRows(pgxmock.NewRows([]string{"id", "name", "email", "phone"}).
				AddRow(7, "Registry Office", "registry@college.edu", "9000000000"))

		admin, err := r.AdminByEmail(ctx, "registry@college.edu")
		require.NoError(t, err)
		require.NotNil(t, admin)
		assert.Equal(t, domain.RoleAdmin, admin.Role)
		assert.Empty(t, admin.UID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, email, phone").
			WithArgs("ghost@college.edu").
			WillReturnError(pgx.ErrNoRows)

		admin, err := r.AdminByEmail(ctx, "ghost@college.edu")
		require.NoError(t, err)
		assert.Nil(t, admin)
	})
}

func TestTouchCheckIn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	r := repo.NewRepository(mock)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE students SET checked_in_at").
			WithArgs("asha@college.edu").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		assert.NoError(t, r.TouchCheckIn(ctx, "asha@college.edu"))
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec("UPDATE students SET checked_in_at").
			WithArgs("asha@college.edu").
			WillReturnError(fmt.Errorf("db error"))

		assert.Error(t, r.TouchCheckIn(ctx, "asha@college.edu"))
	})
}
