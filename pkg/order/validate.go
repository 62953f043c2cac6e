package order

import "errors"

// Validate checks the field-level rules applied before the handler runs.
func (r CreateRequest) Validate() error {
	if r.CustomerID == "" {
		return errors.New("customer id is required")
	}
	if len(r.Lines) == 0 {
		return errors.New("at least one line is required")
	}
	for _, line := range r.Lines {
		if line.ProductID == "" {
			return errors.New("product id is required")
		}
		if line.Quantity < 1 {
			return errors.New("quantity must be at least 1")
		}
	}
	return nil
}
