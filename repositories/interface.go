package repositories

import "krapi/entities"

// UserRepository is the storage surface for users. Lookups report
// "no such row" as a nil user with a nil error; a non-nil error always
// means the storage operation itself failed.
type UserRepository interface {
	Create(user *entities.User) error
	GetByID(id uint) (*entities.User, error)
	GetByUsername(username string) (*entities.User, error)
	// GetByUsernameOrEmail backs the create pre-check. A nil email
	// matches on username only.
	GetByUsernameOrEmail(username string, email *string) (*entities.User, error)
	// GetAll returns every user ordered by descending id.
	GetAll() ([]entities.User, error)
	Update(user *entities.User) error
	UpdatePassword(username, hash string) error
	CreateBatch(users []entities.User) error
}
