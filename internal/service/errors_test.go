package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestClassifyStoreError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want storeFailure
	}{
		{"gorm not found", gorm.ErrRecordNotFound, storeNotFound},
		{"gorm duplicate", gorm.ErrDuplicatedKey, storeUnique},
		{"gorm foreign key", fmt.Errorf("insert: %w", gorm.ErrForeignKeyViolated), storeForeignKey},
		{"pg unique", &pgconn.PgError{Code: "23505"}, storeUnique},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, storeForeignKey},
		{"pg other", &pgconn.PgError{Code: "22001"}, storeOther},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: employees.cpf (2067)"), storeUnique},
		{"sqlite foreign key", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), storeForeignKey},
		{"other", errors.New("connection refused"), storeOther},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, classifyStoreError(tc.err))
		})
	}
}

func TestWriteError_Kinds(t *testing.T) {
	assert.Equal(t, KindConflict, KindOf(writeError("op", gorm.ErrDuplicatedKey, "x")))
	assert.Equal(t, KindMissingReference, KindOf(writeError("op", gorm.ErrForeignKeyViolated, "x")))
	assert.Equal(t, KindNotFound, KindOf(writeError("op", gorm.ErrRecordNotFound, "x")))

	err := writeError("op", errors.New("disk full"), "x")
	assert.Equal(t, KindInternal, KindOf(err))
	assert.Equal(t, "Internal Server Error", MessageOf(err), "cause is not exposed")
	assert.ErrorContains(t, err, "disk full", "cause is kept for logs")
}

func TestKindOf_ForeignErrors(t *testing.T) {
	assert.Equal(t, KindInternal, KindOf(errors.New("boom")))
	assert.Equal(t, "Internal Server Error", MessageOf(errors.New("boom")))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("wrapped: %w", newError(KindNotFound, "gone", nil))))
}
