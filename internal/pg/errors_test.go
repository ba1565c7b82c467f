package pg

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "Unique violation", err: &pgconn.PgError{Code: "23505"}, want: true},
		{name: "Wrapped unique violation", err: fmt.Errorf("insert offer: %w", &pgconn.PgError{Code: "23505"}), want: true},
		{name: "Other pg error", err: &pgconn.PgError{Code: "23503"}, want: false},
		{name: "Plain error", err: errors.New("boom"), want: false},
		{name: "Nil", err: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	assert.True(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsForeignKeyViolation(&pgconn.PgError{Code: "23505"}))
	assert.False(t, IsForeignKeyViolation(errors.New("boom")))
}

func TestIsLockConflict(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "Deadlock", err: &pgconn.PgError{Code: "40P01"}, want: true},
		{name: "Serialization failure", err: &pgconn.PgError{Code: "40001"}, want: true},
		{name: "Wrapped deadlock", err: fmt.Errorf("commit transaction: %w", &pgconn.PgError{Code: "40P01"}), want: true},
		{name: "Unique violation", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "Plain error", err: errors.New("boom"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLockConflict(tt.err))
		})
	}
}
