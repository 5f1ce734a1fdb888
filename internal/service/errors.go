package service

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Kind tags a service failure so handlers can choose a status without
// matching on message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindConflict
	KindMissingReference
	KindNotFound
	KindUnauthorized
	KindForbidden
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindMissingReference:
		return "missing_reference"
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	default:
		return "internal"
	}
}

// Error is the error type returned by every service. Message is safe to show
// to clients; Err keeps the underlying cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Message: msg, Err: cause}
}

// KindOf reports the kind of err. Errors that did not come from this package
// are Internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return msgInternal
}

// Client-facing messages.
const (
	msgUniqueViolation  = "There is a unique constraint violation"
	msgEmployeeNotFound = "Employee not found"
	msgSaleNotFound     = "Sale not found"
	msgMistakeNotFound  = "Mistake not found"
	msgGoalNotFound     = "Sales goal not found"
	msgCPFExists        = "CPF already exists"
	msgUpdateNotFound   = "Record to update not found."
	msgStillReferenced  = "Record is still referenced"
	msgInternal         = "Internal Server Error"
	msgAuthNoEmployee   = "Funcionário não encontrado"
	msgAuthCashier      = "Cargo não administrativo"
	msgAuthHasPassword  = "Funcionário já possui senha"
	msgAuthNoPassword   = "Senha não cadastrada"
	msgAuthBadPassword  = "Dados inválidos"
	msgAuthUnauthorized = "Não autorizado"
)

type storeFailure int

const (
	storeOther storeFailure = iota
	storeNotFound
	storeUnique
	storeForeignKey
)

// classifyStoreError maps driver errors onto the constraint classes the
// services care about. GORM's translated sentinels come first, then raw
// Postgres SQLSTATEs, then SQLite's constraint messages.
func classifyStoreError(err error) storeFailure {
	switch {
	case err == nil:
		return storeOther
	case errors.Is(err, gorm.ErrRecordNotFound):
		return storeNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return storeUnique
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return storeForeignKey
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505":
			return storeUnique
		case "23503":
			return storeForeignKey
		}
		return storeOther
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return storeUnique
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return storeForeignKey
	}
	return storeOther
}

// writeError converts a failed create/update/upsert into a service error.
// notFound is used when the target row does not exist.
func writeError(op string, err error, notFound string) error {
	switch classifyStoreError(err) {
	case storeNotFound:
		return newError(KindNotFound, notFound, err)
	case storeUnique:
		return newError(KindConflict, msgUniqueViolation, err)
	case storeForeignKey:
		return newError(KindMissingReference, msgEmployeeNotFound, err)
	}
	return internal(op, err)
}

// readError converts a failed lookup into a service error.
func readError(op string, err error, notFound string) error {
	if classifyStoreError(err) == storeNotFound {
		return newError(KindNotFound, notFound, err)
	}
	return internal(op, err)
}

// deleteError treats a foreign-key failure as a conflict: the row exists but
// other records still point to it.
func deleteError(op string, err error, notFound string) error {
	switch classifyStoreError(err) {
	case storeNotFound:
		return newError(KindNotFound, notFound, err)
	case storeForeignKey:
		return newError(KindConflict, msgStillReferenced, err)
	}
	return internal(op, err)
}

func internal(op string, err error) error {
	log.Error().Err(err).Str("op", op).Msg("store failure")
	return newError(KindInternal, msgInternal, err)
}
