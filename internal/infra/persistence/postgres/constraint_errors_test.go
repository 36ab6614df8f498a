package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"beautymarket/config"
	"beautymarket/internal/domain/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestConstraintViolations(t *testing.T) {
	unique := errors.Wrap(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}, "insert")
	fk := &pgconn.PgError{Code: "23503"}
	check := &pgconn.PgError{Code: "23514"}
	notNull := &pgconn.PgError{Code: "23502"}

	assert.True(t, isUniqueConstraintViolation(unique))
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.False(t, isUniqueConstraintViolation(fk))

	assert.True(t, isForeignKeyConstraintViolation(fk))
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isCheckConstraintViolation(check))
	assert.True(t, isNotNullConstraintViolation(notNull))
	assert.False(t, isNotNullConstraintViolation(errors.New("required field missing")))

	assert.Equal(t, "idx_users_username", violatedConstraint(unique))
	assert.Empty(t, violatedConstraint(gorm.ErrDuplicatedKey))
}

func TestDuplicateUserError(t *testing.T) {
	assert.ErrorIs(t, duplicateUserError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_username"}), repository.ErrDuplicateUsername)
	assert.ErrorIs(t, duplicateUserError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}), repository.ErrDuplicateUser)
	assert.ErrorIs(t, duplicateUserError(gorm.ErrDuplicatedKey), repository.ErrDuplicateUser)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := newGormSlogLogger(base, &config.Config{}).(*gormSlogLogger)
	sql := func() (string, int64) { return `SELECT * FROM "products"`, 3 }

	l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	assert.Empty(t, buf.String())

	l.Trace(context.Background(), time.Now(), sql, nil)
	assert.Empty(t, buf.String(), "plain queries are only logged in debug mode")

	l.Trace(context.Background(), time.Now(), sql, &pgconn.PgError{Code: "23505"})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "GORM query failed")
	buf.Reset()

	l.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	assert.Contains(t, buf.String(), "GORM slow query")
	buf.Reset()

	debug := l.LogMode(logger.Info)
	debug.Trace(context.Background(), time.Now(), sql, nil)
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "rows=3")
}
