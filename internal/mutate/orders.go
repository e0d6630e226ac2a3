package mutate

import (
	"context"
	"strconv"
	"time"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
	"github.com/matthieukhl/crmd/internal/query"
)

// OrderInput carries ids as strings, matching the API surface; non-numeric
// ids are a validation rejection here, unlike the order list filter where
// they produce an empty page.
type OrderInput struct {
	CustomerID string     `json:"customer_id"`
	ProductIDs []string   `json:"product_ids"`
	OrderDate  *time.Time `json:"order_date"`
}

type OrderResult struct {
	Order   *models.Order `json:"order,omitempty"`
	Success bool          `json:"success"`
	Message string        `json:"message"`
}

func rejectedOrder(message string) OrderResult {
	return OrderResult{Success: false, Message: message}
}

// CreateOrder validates referential integrity and commits the order with its
// full product link set in one transaction. The resolved-count comparison
// catches unknown and duplicate product ids alike.
func (s *Service) CreateOrder(ctx context.Context, in OrderInput) (OrderResult, error) {
	customerID, ok := parseID(in.CustomerID)
	if !ok {
		return rejectedOrder("IDs must be valid integers"), nil
	}
	productIDs := make([]uint, 0, len(in.ProductIDs))
	for _, raw := range in.ProductIDs {
		id, ok := parseID(raw)
		if !ok {
			return rejectedOrder("IDs must be valid integers"), nil
		}
		productIDs = append(productIDs, id)
	}

	if len(productIDs) == 0 {
		return rejectedOrder("at least one product must be selected"), nil
	}

	customer, err := s.store.GetCustomer(ctx, customerID)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return rejectedOrder("customer not found"), nil
		}
		return OrderResult{}, err
	}

	products, err := s.store.ProductsByIDs(ctx, productIDs)
	if err != nil {
		return OrderResult{}, err
	}
	if len(products) == 0 {
		return rejectedOrder("no valid products found"), nil
	}
	if len(products) != len(productIDs) {
		return rejectedOrder("some product IDs are invalid"), nil
	}

	orderDate := s.now()
	if in.OrderDate != nil {
		orderDate = *in.OrderDate
	}

	order := &models.Order{CustomerID: customer.ID, OrderDate: orderDate}
	if err := s.store.CreateOrder(ctx, order, products); err != nil {
		return OrderResult{}, err
	}
	order.Customer = *customer
	order.TotalAmount = query.Total(*order)

	s.log.Infow("order created", "id", order.ID, "customer_id", customer.ID, "products", len(products))
	return OrderResult{Order: order, Success: true, Message: "order created successfully"}, nil
}

func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
