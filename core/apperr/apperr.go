package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies a failure for the UI.
type Kind string

const (
	KindUnknown          Kind = "unknown"
	KindInvalidConfig    Kind = "invalid_config"
	KindAlreadyRunning   Kind = "already_running"
	KindNotRunning       Kind = "not_running"
	KindAddressInUse     Kind = "address_in_use"
	KindPermissionDenied Kind = "permission_denied"
	KindEngineFailure    Kind = "engine_failure"
	KindStorageFailure   Kind = "storage_failure"
	KindNotFound         Kind = "not_found"
	KindBusy             Kind = "busy"
)

// Sentinels usable with errors.Is.
var (
	ErrInvalidConfig    = &Error{Kind: KindInvalidConfig}
	ErrAlreadyRunning   = &Error{Kind: KindAlreadyRunning}
	ErrNotRunning       = &Error{Kind: KindNotRunning}
	ErrAddressInUse     = &Error{Kind: KindAddressInUse}
	ErrPermissionDenied = &Error{Kind: KindPermissionDenied}
	ErrEngineFailure    = &Error{Kind: KindEngineFailure}
	ErrStorageFailure   = &Error{Kind: KindStorageFailure}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrBusy             = &Error{Kind: KindBusy}
)

// Error is a classified failure. Op names the operation that failed and Err
// holds the cause, if any.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// New wraps err with a kind and the failing operation.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Newf is New with a formatted cause.
func Newf(kind Kind, op string, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

func (e *Error) Error() string {
	msg := string(e.Kind)
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports a match when target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

var messages = map[Kind]string{
	KindInvalidConfig:    "Invalid configuration",
	KindAlreadyRunning:   "FTP server is already running",
	KindNotRunning:       "FTP server is not running",
	KindAddressInUse:     "Port is already in use",
	KindPermissionDenied: "Permission denied",
	KindEngineFailure:    "FTP server failed",
	KindStorageFailure:   "Could not read or write the configuration",
	KindNotFound:         "No network address found",
	KindBusy:             "Another start or stop is in progress",
	KindUnknown:          "Unexpected error",
}

// Message returns the user-facing text for err. Validation errors keep their
// detail since it names the offending field.
func Message(err error) string {
	if err == nil {
		return ""
	}
	kind := KindOf(err)
	msg := messages[kind]
	if kind == KindInvalidConfig {
		var e *Error
		if errors.As(err, &e) && e.Err != nil {
			return msg + ": " + e.Err.Error()
		}
	}
	return msg
}

// HTTPStatus maps a kind to the status code used by the panel API.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindInvalidConfig:
		return fiber.StatusBadRequest
	case KindAlreadyRunning, KindNotRunning, KindAddressInUse, KindBusy:
		return fiber.StatusConflict
	case KindPermissionDenied:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
