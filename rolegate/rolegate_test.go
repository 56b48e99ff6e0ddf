package rolegate

import (
	"testing"

	"camisetas-api/models"

	"github.com/stretchr/testify/assert"
)

const adminEmail = "admin@example.com"

func TestDecide(t *testing.T) {
	assert.Equal(t, Pending, Decide(nil, adminEmail), "unresolved identity must be pending, not denied")

	admin := &models.User{Email: "admin@example.com"}
	assert.Equal(t, Admin, Decide(admin, adminEmail))

	user := &models.User{Email: "someone@example.com"}
	assert.Equal(t, User, Decide(user, adminEmail))

	// Exact, case-sensitive match only
	shouty := &models.User{Email: "Admin@example.com"}
	assert.Equal(t, User, Decide(shouty, adminEmail))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin("admin@example.com", adminEmail))
	assert.False(t, IsAdmin("someone@example.com", adminEmail))
	assert.False(t, IsAdmin("ADMIN@EXAMPLE.COM", adminEmail))
	assert.False(t, IsAdmin("", adminEmail))
}
