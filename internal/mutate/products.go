package mutate

import (
	"context"

	"github.com/matthieukhl/crmd/internal/models"
)

type ProductInput struct {
	Name  string  `json:"name" validate:"required,max=255"`
	Price float64 `json:"price"`
	Stock *int64  `json:"stock"`
}

type ProductResult struct {
	Product *models.Product `json:"product,omitempty"`
	Success bool            `json:"success"`
	Message string          `json:"message"`
}

func rejectedProduct(message string) ProductResult {
	return ProductResult{Success: false, Message: message}
}

func (s *Service) CreateProduct(ctx context.Context, in ProductInput) (ProductResult, error) {
	if in.Price <= 0 {
		return rejectedProduct("price must be greater than 0"), nil
	}

	var stock int64
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return rejectedProduct("stock must be 0 or more"), nil
	}

	if msg, ok := s.checkInput(in); !ok {
		return rejectedProduct(msg), nil
	}

	product := &models.Product{Name: in.Name, Price: in.Price, Stock: stock}
	if err := s.store.CreateProduct(ctx, product); err != nil {
		return ProductResult{}, err
	}

	s.log.Infow("product created", "id", product.ID, "name", product.Name)
	return ProductResult{Product: product, Success: true, Message: "product created successfully"}, nil
}
