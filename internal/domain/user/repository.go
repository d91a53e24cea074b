package user

import (
	"context"

	"github.com/BruksfildServices01/barber-booking/internal/models"
)

// Repository is the admin-account side of the persistence gateway.
// Missing accounts are reported as httperr.ErrNotFound.
type Repository interface {
	FindUserByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	GetUser(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// InsertUserIfAbsent is a no-op when the email is already taken.
	InsertUserIfAbsent(
		ctx context.Context,
		name string,
		email string,
		passwordHash string,
	) error
}
