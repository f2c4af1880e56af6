package entities

import "time"

// User is a row in the users table. Password always holds the encoded
// argon2 hash, never the plaintext; it is excluded from JSON output.
//
// Username and email are unique only by application-level pre-check,
// there is no database constraint backing them.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Username  string    `gorm:"not null" json:"username"`
	Email     *string   `json:"email"`
	ImgURL    *string   `json:"img_url"`
	Phone     *float64  `json:"phone"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// UserView is the public projection of a User returned by every
// endpoint. It has no password field at all.
type UserView struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Email     *string   `json:"email"`
	ImgURL    *string   `json:"img_url"`
	Phone     *float64  `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Public() UserView {
	return UserView{
		ID:        u.ID,
		Name:      u.Name,
		Username:  u.Username,
		Email:     u.Email,
		ImgURL:    u.ImgURL,
		Phone:     u.Phone,
		CreatedAt: u.CreatedAt,
	}
}
