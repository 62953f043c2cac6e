package customer

import (
	"errors"
	"net/mail"
	"unicode/utf8"
)

// Validate checks the field-level rules applied before the handler runs.
func (r CreateRequest) Validate() error {
	return validateFields(r.Name, r.Email, r.Phone, !r.BirthDate.IsZero())
}

// Validate checks the field-level rules applied before the handler runs.
func (r UpdateRequest) Validate() error {
	return validateFields(r.Name, r.Email, r.Phone, !r.BirthDate.IsZero())
}

func validateFields(name, email, phone string, hasBirthDate bool) error {
	if n := utf8.RuneCountInString(name); n < 3 || n > 50 {
		return errors.New("name must be between 3 and 50 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errors.New("email is invalid")
	}
	if !validPhone(phone) {
		return errors.New("phone is invalid")
	}
	if !hasBirthDate {
		return errors.New("birth date is required")
	}
	return nil
}

// validPhone accepts digits with optional separators and a leading +,
// requiring at least eight digits overall.
func validPhone(phone string) bool {
	digits := 0
	for i, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-' || r == '(' || r == ')':
		default:
			return false
		}
	}
	return digits >= 8
}
