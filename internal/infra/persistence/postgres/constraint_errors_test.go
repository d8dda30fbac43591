package postgres

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	wrapped := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "idx_relations_actor_target_kind"})

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(errors.Wrap(gorm.ErrDuplicatedKey, "create")))
	assert.True(t, isUniqueConstraintViolation(wrapped))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isUniqueConstraintViolation(errors.New("duplicate key")))

	assert.Equal(t, "idx_relations_actor_target_kind", uniqueConstraintName(wrapped))
	assert.Empty(t, uniqueConstraintName(gorm.ErrDuplicatedKey))
}

func TestIsForeignKeyAndNotNullViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: "23505"}))

	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: "23502"}))
	assert.False(t, isNotNullConstraintViolation(errors.New("null value")))
}
