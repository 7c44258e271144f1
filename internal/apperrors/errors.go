package apperrors

import (
	"fmt"
	"todoList/internal/repository"
)

const (
	CodeInvalidEntity = "INVALID_ENTITY"
	CodeLimitExceeded = "LIMIT_EXCEEDED"
)

// Sentinels for errors.Is: any BusinessError with the same code matches.
var (
	ErrInvalidEntity = &BusinessError{Code: CodeInvalidEntity}
	ErrLimitExceeded = &BusinessError{Code: CodeLimitExceeded}
)

type BusinessError struct {
	Code    string
	Message string
	Details map[string]any
	Err     error
}

type Detail struct {
	Key     string
	Payload any
}

func (b *BusinessError) Error() string {
	if b.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", b.Code, b.Message, b.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", b.Code, b.Message)
}

func (b *BusinessError) Unwrap() error {
	return b.Err
}

func (b *BusinessError) Is(target error) bool {
	t, ok := target.(*BusinessError)
	if !ok {
		return false
	}
	return t.Message == "" && t.Code == b.Code
}

func ToDetail(key string, payload any) Detail {
	return Detail{
		Key:     key,
		Payload: payload,
	}
}

func NewBusinessError(code string, message string, details ...Detail) *BusinessError {
	busErr := &BusinessError{
		Code:    code,
		Message: message,
		Details: make(map[string]any),
	}
	for _, detail := range details {
		busErr.Details[detail.Key] = detail.Payload
	}
	return busErr
}

func NewInvalidEntity(field, reason string) *BusinessError {
	return NewBusinessError(
		CodeInvalidEntity,
		fmt.Sprintf("%s %s", field, reason),
		ToDetail("field", field),
		ToDetail("reason", reason),
	)
}

func NewNotFound(resource, id string) *BusinessError {
	return &BusinessError{
		Code:    CodeInvalidEntity,
		Message: fmt.Sprintf("%s %s not found", resource, id),
		Details: map[string]any{
			"resource": resource,
			"id":       id,
		},
		Err: repository.ErrNotFound,
	}
}

func NewLimitExceeded(resource string, limit int) *BusinessError {
	return NewBusinessError(
		CodeLimitExceeded,
		fmt.Sprintf("maximum number of %s reached (%d)", resource, limit),
		ToDetail("resource", resource),
		ToDetail("limit", limit),
	)
}
