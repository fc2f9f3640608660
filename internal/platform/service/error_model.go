package service

import (
	"errors"

	"gorm.io/gorm"
)

type ErrorCode string

// MsgInternal 存储层等内部错误对外展示的统一文案，原因只写入日志
const MsgInternal = "Internal error, please try again later."

const (
	ErrorCodeValidation   ErrorCode = "validation"
	ErrorCodeUnauthorized ErrorCode = "unauthorized"
	ErrorCodeConflict     ErrorCode = "conflict"
	ErrorCodeNotFound     ErrorCode = "not_found"
	ErrorCodeInternal     ErrorCode = "internal"
)

type ServiceError struct {
	Code    ErrorCode
	Message string
	cause   error
}

func (e *ServiceError) Error() string {
	return e.Message
}

// Unwrap 暴露底层存储错误，便于日志记录
func (e *ServiceError) Unwrap() error {
	return e.cause
}

func NewServiceError(code ErrorCode, message string) error {
	return &ServiceError{Code: code, Message: message}
}

func NewValidationError(message string) error {
	return NewServiceError(ErrorCodeValidation, message)
}

func NewUnauthorizedError(message string) error {
	return NewServiceError(ErrorCodeUnauthorized, message)
}

func NewConflictError(message string) error {
	return NewServiceError(ErrorCodeConflict, message)
}

func NewNotFoundError(message string) error {
	return NewServiceError(ErrorCodeNotFound, message)
}

// WrapInternal 以统一文案包装内部错误并保留原因
func WrapInternal(cause error) error {
	return &ServiceError{Code: ErrorCodeInternal, Message: MsgInternal, cause: cause}
}

func AsServiceError(err error) (*ServiceError, bool) {
	var serviceErr *ServiceError
	if errors.As(err, &serviceErr) {
		return serviceErr, true
	}
	return nil, false
}

// FromStore 将存储层错误转换为 ServiceError：记录不存在映射为 not_found，其余为 internal
func FromStore(err error, notFoundMessage string) error {
	if err == nil {
		return nil
	}
	if _, ok := AsServiceError(err); ok {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NewNotFoundError(notFoundMessage)
	}
	return WrapInternal(err)
}
