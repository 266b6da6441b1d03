// internal/database/seeder.go
package database

import (
	"context"
	"errors"

	"donorlink-api-server/internal/auth"
	"donorlink-api-server/internal/models"
	"donorlink-api-server/internal/store"
)

// SeedAdmin provisions an admin account if one with the given email does not
// already exist. It reports whether a new account was created, so callers can
// decide whether to surface the generated password.
func SeedAdmin(ctx context.Context, users store.UserStore, fullName, email, password string) (bool, error) {
	_, err := users.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return false, err
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return false, err
	}

	_, err = users.Create(ctx, models.User{
		FullName: fullName,
		Email:    email,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			// Raced with another seeding run.
			return false, nil
		}
		return false, err
	}
	return true, nil
}
