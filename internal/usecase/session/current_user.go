package session

import (
	"context"

	userDomain "github.com/BruksfildServices01/barber-booking/internal/domain/user"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

type CurrentUser struct {
	users userDomain.Repository
}

func NewCurrentUser(users userDomain.Repository) *CurrentUser {
	return &CurrentUser{users: users}
}

func (uc *CurrentUser) Execute(ctx context.Context, userID uint) (*models.User, error) {
	return uc.users.GetUser(ctx, userID)
}
