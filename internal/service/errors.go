package service

import "errors"

// Ошибки валидации: текст уходит клиенту в поле error ответа 400.
var (
	ErrUsernameTooShort = errors.New("username must be at least 3 characters long")
	ErrUsernameTaken    = errors.New("username must be unique")
	ErrNameRequired     = errors.New("name is required")
	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 3 characters long")
	ErrTitleRequired    = errors.New("title is required")
	ErrURLRequired      = errors.New("url is required")
)

// Ошибки аутентификации и доступа.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNoIdentity         = errors.New("token missing or invalid")
	ErrForbidden          = errors.New("only the owner can delete a blog")
	ErrNotFound           = errors.New("not found")
)

var validationErrs = []error{
	ErrUsernameTooShort,
	ErrUsernameTaken,
	ErrNameRequired,
	ErrPasswordRequired,
	ErrPasswordTooShort,
	ErrTitleRequired,
	ErrURLRequired,
}

// IsValidation сообщает, относится ли ошибка к классу ошибок валидации (HTTP 400).
func IsValidation(err error) bool {
	for _, v := range validationErrs {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
