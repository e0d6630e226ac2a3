package mutate

import (
	"context"
	"fmt"
	"regexp"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
)

// Accepted phone formats: international (+ followed by 10-15 digits) or
// dashed US style (123-456-7890).
var phonePattern = regexp.MustCompile(`^(\+\d{10,15}|\d{3}-\d{3}-\d{4})$`)

type CustomerInput struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Email string  `json:"email" validate:"required,email,max=255"`
	Phone *string `json:"phone" validate:"omitempty,max=20"`
}

type CustomerResult struct {
	Customer *models.Customer `json:"customer,omitempty"`
	Success  bool             `json:"success"`
	Message  string           `json:"message"`
}

type BulkCustomerResult struct {
	Customers []models.Customer `json:"customers"`
	Errors    []string          `json:"errors"`
}

func rejectedCustomer(message string) CustomerResult {
	return CustomerResult{Success: false, Message: message}
}

// CreateCustomer validates and commits one customer: duplicate email check,
// phone format check, then field validation. Either the full row is written
// or nothing is.
func (s *Service) CreateCustomer(ctx context.Context, in CustomerInput) (CustomerResult, error) {
	exists, err := s.store.CustomerEmailExists(ctx, in.Email)
	if err != nil {
		return CustomerResult{}, err
	}
	if exists {
		return rejectedCustomer("customer with this email already exists"), nil
	}

	if in.Phone != nil && *in.Phone != "" && !phonePattern.MatchString(*in.Phone) {
		return rejectedCustomer("invalid phone number format, examples: +1234567890 or 123-456-7890"), nil
	}

	if msg, ok := s.checkInput(in); !ok {
		return rejectedCustomer(msg), nil
	}

	customer := &models.Customer{
		Name:  in.Name,
		Email: in.Email,
		Phone: normalizePhone(in.Phone),
	}
	if err := s.store.CreateCustomer(ctx, customer); err != nil {
		// The unique index can still fire under a concurrent create.
		if apperr.IsKind(err, apperr.KindConflict) {
			return rejectedCustomer(err.Error()), nil
		}
		return CustomerResult{}, err
	}

	s.log.Infow("customer created", "id", customer.ID, "email", customer.Email)
	return CustomerResult{Customer: customer, Success: true, Message: "customer created successfully"}, nil
}

// BulkCreateCustomers commits each input independently: a rejected row does
// not block its siblings and there is no enclosing transaction. Errors carry
// the 1-based row number.
func (s *Service) BulkCreateCustomers(ctx context.Context, inputs []CustomerInput) (BulkCustomerResult, error) {
	result := BulkCustomerResult{
		Customers: []models.Customer{},
		Errors:    []string{},
	}
	for i, in := range inputs {
		res, err := s.CreateCustomer(ctx, in)
		if err != nil {
			// A storage failure sinks this row only, but is never silent.
			s.log.Errorw("bulk customer row failed", "row", i+1, "error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, err.Error()))
			continue
		}
		if !res.Success {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %s", i+1, res.Message))
			continue
		}
		result.Customers = append(result.Customers, *res.Customer)
	}
	return result, nil
}

func normalizePhone(phone *string) *string {
	if phone == nil || *phone == "" {
		return nil
	}
	return phone
}
