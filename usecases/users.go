package usecases

import (
	"errors"
	"fmt"

	"krapi/auth"
	"krapi/entities"
	"krapi/repositories"
)

// Sentinel errors forming the outcome taxonomy of every user mutation.
// Anything else escaping a usecase method is a server error.
var (
	ErrAlreadyExists     = errors.New("username or email already exists")
	ErrNotFound          = errors.New("user not found")
	ErrIncorrectPassword = errors.New("username or password is incorrect")
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// CreateInput carries the request body for user creation. Password is
// the plaintext; it is hashed before anything touches storage.
type CreateInput struct {
	Name     string   `json:"name" binding:"required"`
	Username string   `json:"username" binding:"required"`
	Password string   `json:"password" binding:"required"`
	Email    *string  `json:"email"`
	ImgURL   *string  `json:"img_url"`
	Phone    *float64 `json:"phone"`
}

// CreateUser inserts a new user after checking that neither the
// username nor the email is taken. The check and the insert are two
// separate statements; without a database uniqueness constraint two
// concurrent creates for the same username can both pass the check.
func (uc *UserUseCase) CreateUser(input CreateInput) (*entities.User, error) {
	existing, err := uc.UserRepo.GetByUsernameOrEmail(input.Username, input.Email)
	if err != nil {
		return nil, fmt.Errorf("create pre-check: %w", err)
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	user := &entities.User{
		Name:     input.Name,
		Username: input.Username,
		Email:    input.Email,
		ImgURL:   input.ImgURL,
		Phone:    input.Phone,
		Password: auth.HashPassword(input.Password),
	}

	if err := uc.UserRepo.Create(user); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// GetUser fetches one user by id.
func (uc *UserUseCase) GetUser(id uint) (*entities.User, error) {
	user, err := uc.UserRepo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("lookup user %d: %w", id, err)
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// GetAllUsers returns every user, newest first.
func (uc *UserUseCase) GetAllUsers() ([]entities.User, error) {
	return uc.UserRepo.GetAll()
}

// MatchUser verifies a username/password pair. A missing user and a
// wrong password both come back as ErrIncorrectPassword so callers
// cannot probe which usernames exist.
func (uc *UserUseCase) MatchUser(username, password string) error {
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("lookup user %q: %w", username, err)
	}
	if user == nil {
		return ErrIncorrectPassword
	}
	if !auth.VerifyPassword(password, user.Password) {
		return ErrIncorrectPassword
	}
	return nil
}

// UpdatePassword rotates a user's password after verifying the current
// one. Unlike MatchUser this distinguishes a missing user from a wrong
// password; the caller already holds the username.
func (uc *UserUseCase) UpdatePassword(username, password, newPassword string) error {
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		return fmt.Errorf("lookup user %q: %w", username, err)
	}
	if user == nil {
		return ErrNotFound
	}
	if !auth.VerifyPassword(password, user.Password) {
		return ErrIncorrectPassword
	}

	hash := auth.HashPassword(newPassword)
	if err := uc.UserRepo.UpdatePassword(username, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	return nil
}

// UpdateInput carries a partial profile update. Username selects the
// row and is never itself changed; nil fields keep their stored value.
type UpdateInput struct {
	Username string   `json:"username" binding:"required"`
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Phone    *float64 `json:"phone"`
	ImgURL   *string  `json:"img_url"`
}

// UpdateUser overwrites the provided profile fields in a single write.
func (uc *UserUseCase) UpdateUser(input UpdateInput) error {
	user, err := uc.UserRepo.GetByUsername(input.Username)
	if err != nil {
		return fmt.Errorf("lookup user %q: %w", input.Username, err)
	}
	if user == nil {
		return ErrNotFound
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = input.Email
	}
	if input.Phone != nil {
		user.Phone = input.Phone
	}
	if input.ImgURL != nil {
		user.ImgURL = input.ImgURL
	}

	if err := uc.UserRepo.Update(user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}
