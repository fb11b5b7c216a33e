package discord

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/WelcomerTeam/Discord-Resources/wirejson"
)

var (
	ErrUnauthorized = errors.New("improper token was passed")

	// ErrSchemaViolation is matched by every *SchemaViolation.
	ErrSchemaViolation = errors.New("schema violation")

	// ErrPrecondition is matched by every *PreconditionError.
	ErrPrecondition = errors.New("precondition failed")

	ErrGuildOnly = errors.New("guild-only operation")
)

// SchemaViolation is returned when a component payload has an unknown type or
// breaks a structural rule. Path locates the offending node, for example
// "components[0].components[2]".
type SchemaViolation struct {
	Path   string
	Type   ComponentType
	Reason string
}

func newSchemaViolation(path string, componentType ComponentType, format string, args ...any) *SchemaViolation {
	return &SchemaViolation{
		Path:   path,
		Type:   componentType,
		Reason: fmt.Sprintf(format, args...),
	}
}

func (e *SchemaViolation) Error() string {
	var b strings.Builder

	b.WriteString("schema violation")

	if e.Path != "" {
		b.WriteString(" at ")
		b.WriteString(e.Path)
	}

	if e.Type != 0 {
		b.WriteString(" (")
		b.WriteString(e.Type.String())
		b.WriteString(")")
	}

	b.WriteString(": ")
	b.WriteString(e.Reason)

	return b.String()
}

func (e *SchemaViolation) Is(target error) bool {
	return target == ErrSchemaViolation
}

// PreconditionError is returned before any request is made when an operation
// is not valid for the entity it was called on.
type PreconditionError struct {
	Op  string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

func (e *PreconditionError) Is(target error) bool {
	return target == ErrPrecondition
}

// RestError contains the error structure that is returned by discord.
// It is passed back to callers unchanged and is never retried.
type RestError struct {
	Request      *http.Request
	Response     *http.Response
	Message      *ErrorMessage
	ResponseBody []byte
	StatusCode   int
	Status       string
}

// ErrorMessage represents a basic error message.
type ErrorMessage struct {
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
	Code    int32           `json:"code"`
}

func NewRestError(req *http.Request, resp *http.Response, body []byte) *RestError {
	restError := newRestError(resp.StatusCode, resp.Status, body)
	restError.Request = req
	restError.Response = resp

	return restError
}

func newRestError(statusCode int, status string, body []byte) *RestError {
	var errorMessage ErrorMessage

	_ = wirejson.Unmarshal(body, &errorMessage)

	if status == "" {
		status = fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode))
	}

	return &RestError{
		ResponseBody: body,
		Message:      &errorMessage,
		StatusCode:   statusCode,
		Status:       status,
	}
}

func (r *RestError) Error() string {
	return fmt.Sprintf("%s: %s", r.Status, r.Message.Message)
}

// Is matches ErrUnauthorized for 401 responses.
func (r *RestError) Is(target error) bool {
	return target == ErrUnauthorized && r.StatusCode == http.StatusUnauthorized
}
