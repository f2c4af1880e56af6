package repositories

import (
	"errors"

	"krapi/db"
	"krapi/entities"

	"gorm.io/gorm"
)

type userPgRepository struct {
	db db.Database
}

func NewUserPgRepository(database db.Database) UserRepository {
	return &userPgRepository{db: database}
}

func (r *userPgRepository) Create(user *entities.User) error {
	// gorm fills user.ID and user.CreatedAt on insert, so the caller
	// gets back exactly the row that was written.
	return r.db.GetDB().Create(user).Error
}

func (r *userPgRepository) GetByID(id uint) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByUsername(username string) (*entities.User, error) {
	var user entities.User
	err := r.db.GetDB().Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetByUsernameOrEmail(username string, email *string) (*entities.User, error) {
	var user entities.User
	query := r.db.GetDB().Where("username = ?", username)
	if email != nil {
		// A NULL email never matches, so only OR it in when present.
		query = query.Or("email = ?", *email)
	}
	err := query.First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userPgRepository) GetAll() ([]entities.User, error) {
	var users []entities.User
	err := r.db.GetDB().Order("id DESC").Find(&users).Error
	return users, err
}

func (r *userPgRepository) Update(user *entities.User) error {
	return r.db.GetDB().Save(user).Error
}

func (r *userPgRepository) UpdatePassword(username, hash string) error {
	return r.db.GetDB().Model(&entities.User{}).
		Where("username = ?", username).
		Update("password", hash).Error
}

func (r *userPgRepository) CreateBatch(users []entities.User) error {
	return r.db.GetDB().Create(&users).Error
}
