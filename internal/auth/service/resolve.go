package service

import (
	"context"
	"strings"

	"github.com/datachef-lab/idsnap-portal/internal/auth/domain"
	autherror "github.com/datachef-lab/idsnap-portal/internal/errors"
)

// resolveIdentifier maps a login identifier to an identity. An
// identifier containing '@' is an email and may belong to either
// variant (students are checked first, matching the directory's
// historical precedence); anything else is treated as a student UID.
func resolveIdentifier(ctx context.Context, dir domain.IdentityDirectory, identifier string) (*domain.Identity, error) {
	identifier = strings.TrimSpace(identifier)

	if strings.Contains(identifier, "@") {
		student, err := dir.StudentByEmail(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if student != nil {
			return student, nil
		}

		admin, err := dir.AdminByEmail(ctx, identifier)
		if err != nil {
			return nil, err
		}
		if admin != nil {
			return admin, nil
		}

		return nil, autherror.ErrUserNotFound
	}

	student, err := dir.StudentByUID(ctx, domain.NormalizeUID(identifier))
	if err != nil {
		return nil, err
	}
	if student == nil {
		return nil, autherror.ErrUserNotFound
	}

	return student, nil
}
