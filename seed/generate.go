package seed

import (
	"fmt"

	"krapi/auth"
	"krapi/entities"
	"krapi/repositories"

	"github.com/brianvoe/gofakeit/v7"
)

// GenerateUsers inserts n fake users in one batch and returns them.
// Every generated password goes through the real hashing path, so
// seeded rows are indistinguishable from organically created ones.
func GenerateUsers(n int, repo repositories.UserRepository) ([]entities.User, error) {
	if n <= 0 {
		return nil, fmt.Errorf("nothing to generate: len=%d", n)
	}

	users := make([]entities.User, 0, n)
	for i := 0; i < n; i++ {
		email := gofakeit.Email()
		users = append(users, entities.User{
			Name:     gofakeit.Name(),
			Username: gofakeit.Username(),
			Email:    &email,
			Password: auth.HashPassword(gofakeit.Password(true, true, true, false, false, 12)),
		})
	}

	if err := repo.CreateBatch(users); err != nil {
		return nil, fmt.Errorf("insert generated users: %w", err)
	}
	return users, nil
}
