package session

import (
	"context"
	"fmt"

	"github.com/BruksfildServices01/barber-booking/internal/auth"
	userDomain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

type SeedAdmin struct {
	users userDomain.Repository
}

func NewSeedAdmin(users userDomain.Repository) *SeedAdmin {
	return &SeedAdmin{users: users}
}

// Execute makes sure an account with email exists. An existing account is
// left untouched, password included.
func (uc *SeedAdmin) Execute(
	ctx context.Context,
	name string,
	email string,
	password string,
) error {

	email = validators.NormalizeEmail(email)
	if !validators.IsEmailSyntaxValid(email) {
		return fmt.Errorf("seed admin: invalid email %q", email)
	}
	if password == "" {
		return fmt.Errorf("seed admin: empty password")
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("seed admin: hash password: %w", err)
	}

	return uc.users.InsertUserIfAbsent(ctx, name, email, hash)
}
