package repositories

import (
	"testing"

	"krapi/db"
	"krapi/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepo(t *testing.T) UserRepository {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))

	return NewUserPgRepository(&db.GormDatabase{DB: gdb})
}

func seedUser(t *testing.T, repo UserRepository, username string, email *string) *entities.User {
	t.Helper()
	user := &entities.User{
		Name:     "user " + username,
		Username: username,
		Email:    email,
		Password: "$argon2id$v=19$m=65536,t=1,p=4$c2FsdHNhbHRzYWx0c2FsdA$ZGlnZXN0",
	}
	require.NoError(t, repo.Create(user))
	return user
}

func strPtr(s string) *string { return &s }

func TestGetByUsernameOrEmail(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, "ann", strPtr("ann@example.com"))

	byUsername, err := repo.GetByUsernameOrEmail("ann", nil)
	require.NoError(t, err)
	require.NotNil(t, byUsername)

	byEmail, err := repo.GetByUsernameOrEmail("someone-else", strPtr("ann@example.com"))
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "ann", byEmail.Username)

	// No match at all reports nil, nil rather than an error.
	none, err := repo.GetByUsernameOrEmail("bob", strPtr("bob@example.com"))
	require.NoError(t, err)
	assert.Nil(t, none)
}

func TestGetByUsernameOrEmailNilEmailNeverMatches(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, "ann", nil)

	// A row with NULL email must not match a nil-email probe on the
	// email side of the OR.
	got, err := repo.GetByUsernameOrEmail("bob", nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestGetByIDMissing(t *testing.T) {
	repo := newTestRepo(t)

	got, err := repo.GetByID(42)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUpdatePasswordTouchesOnlyPassword(t *testing.T) {
	repo := newTestRepo(t)
	created := seedUser(t, repo, "ann", strPtr("ann@example.com"))

	require.NoError(t, repo.UpdatePassword("ann", "$argon2id$new"))

	got, err := repo.GetByUsername("ann")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "$argon2id$new", got.Password)
	assert.Equal(t, created.Name, got.Name)
	require.NotNil(t, got.Email)
	assert.Equal(t, "ann@example.com", *got.Email)
}

func TestGetAllDescendingID(t *testing.T) {
	repo := newTestRepo(t)
	seedUser(t, repo, "first", nil)
	seedUser(t, repo, "second", nil)
	seedUser(t, repo, "third", nil)

	users, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.True(t, users[0].ID > users[1].ID && users[1].ID > users[2].ID)
}
