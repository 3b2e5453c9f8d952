package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicate(t *testing.T) {
	dup := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'alice' for key 'uq_users_username'"}

	assert.True(t, isDuplicate(dup, ""))
	assert.True(t, isDuplicate(dup, "uq_users_username"))
	assert.False(t, isDuplicate(dup, "uq_users_email"))

	// Wrapped driver errors still match.
	assert.True(t, isDuplicate(fmt.Errorf("insert user: %w", dup), ""))

	assert.False(t, isDuplicate(&mysql.MySQLError{Number: 1452, Message: "foreign key fails"}, ""))
	assert.False(t, isDuplicate(errors.New("duplicate entry"), ""))
	assert.False(t, isDuplicate(nil, ""))
}
