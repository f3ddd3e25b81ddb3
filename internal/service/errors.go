package service

import "errors"

// ValidationError ошибка входных данных, отдаётся клиенту как 400.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

// AuthError неверный общий секрет, отдаётся клиенту как 401.
type AuthError struct{}

func (e *AuthError) Error() string {
	return "Invalid Secret"
}

func validation(msg string) error {
	return &ValidationError{Msg: msg}
}

// IsValidation сообщает, является ли err ошибкой валидации.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsAuth сообщает, является ли err ошибкой аутентификации.
func IsAuth(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}
