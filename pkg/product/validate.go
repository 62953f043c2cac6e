package product

import "errors"

// Validate checks the field-level rules applied before the handler runs.
func (r CreateRequest) Validate() error {
	return validateFields(r.Title, r.Description, r.Price.IsNegative())
}

// Validate checks the field-level rules applied before the handler runs.
func (r UpdateRequest) Validate() error {
	return validateFields(r.Title, r.Description, r.Price.IsNegative())
}

func validateFields(title, description string, negativePrice bool) error {
	if title == "" {
		return errors.New("title is required")
	}
	if description == "" {
		return errors.New("description is required")
	}
	if negativePrice {
		return errors.New("price must not be negative")
	}
	return nil
}
