package usecases

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mvegadev/comanda/models"
)

// ErrInvalidCredentials hides whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserUseCases manages staff accounts and credential checks.
type UserUseCases struct {
	users  models.UserRepository
	events models.EventSink
	clock  models.Clock
}

func NewUserUseCases(users models.UserRepository, events models.EventSink, clock models.Clock) *UserUseCases {
	return &UserUseCases{users: users, events: events, clock: clock}
}

// Register creates a staff account with a bcrypt-hashed password. Emails are
// unique.
func (uc *UserUseCases) Register(name, email, password string, role models.UserRole) (*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, role)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", models.ErrValidation)
	}

	existing, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email %s is already registered", models.ErrConflict, email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.NewUser(uuid.NewString(), name, email, string(hash), role, uc.clock.Now())
	saved, err := uc.users.Save(user)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventUserCreated, saved)
	return saved, nil
}

// Authenticate verifies the credentials of an active account.
func (uc *UserUseCases) Authenticate(email, password string) (*models.User, error) {
	user, err := uc.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (uc *UserUseCases) get(userID string) (*models.User, error) {
	user, err := uc.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", models.ErrNotFound, userID)
	}
	return user, nil
}

func (uc *UserUseCases) Update(userID string, patch models.UserPatch) (*models.User, error) {
	user, err := uc.get(userID)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		other, err := uc.users.FindByEmail(*patch.Email)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, fmt.Errorf("%w: email %s is already registered", models.ErrConflict, *patch.Email)
		}
	}

	user.Update(patch, uc.clock.Now())

	updated, err := uc.users.Update(user)
	if err != nil {
		return nil, err
	}
	uc.events.Emit(models.EventUserUpdated, updated)
	return updated, nil
}

func (uc *UserUseCases) Get(userID string) (*models.User, error) {
	return uc.get(userID)
}

func (uc *UserUseCases) ListAll() ([]*models.User, error) {
	return uc.users.FindAll()
}

func (uc *UserUseCases) ListByRole(role models.UserRole) ([]*models.User, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", models.ErrValidation, role)
	}
	return uc.users.FindByRole(role)
}
