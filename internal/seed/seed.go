package seed

import (
	"context"
	"fmt"
	"strconv"

	"github.com/matthieukhl/crmd/internal/apperr"
	"github.com/matthieukhl/crmd/internal/models"
	"github.com/matthieukhl/crmd/internal/mutate"
	"github.com/matthieukhl/crmd/internal/store"
)

func strPtr(s string) *string { return &s }

var demoCustomers = []mutate.CustomerInput{
	{Name: "Alice", Email: "alice@example.com", Phone: strPtr("+1234567890")},
	{Name: "Bob", Email: "bob@example.com", Phone: strPtr("123-456-7890")},
	{Name: "Carol", Email: "carol@example.com"},
}

var demoProducts = []mutate.ProductInput{
	{Name: "Laptop", Price: 999.99, Stock: int64Ptr(10)},
	{Name: "Tablet", Price: 999.99, Stock: int64Ptr(10)},
}

func int64Ptr(n int64) *int64 { return &n }

// Run seeds the demo data set through the mutation core, get-or-create
// style: reruns are no-ops.
func Run(ctx context.Context, st *store.Store, mut *mutate.Service) error {
	for _, in := range demoCustomers {
		exists, err := st.CustomerEmailExists(ctx, in.Email)
		if err != nil {
			return fmt.Errorf("failed to check customer %s: %w", in.Email, err)
		}
		if exists {
			fmt.Printf("Customer %s already exists, skipping\n", in.Email)
			continue
		}
		res, err := mut.CreateCustomer(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to create customer %s: %w", in.Email, err)
		}
		if !res.Success {
			return fmt.Errorf("customer %s rejected: %s", in.Email, res.Message)
		}
		fmt.Printf("Created customer: %s\n", res.Customer.Name)
	}

	products := make([]*models.Product, 0, len(demoProducts))
	for _, in := range demoProducts {
		existing, err := st.ProductByName(ctx, in.Name)
		if err == nil {
			fmt.Printf("Product %s already exists, skipping\n", in.Name)
			products = append(products, existing)
			continue
		}
		if !apperr.IsKind(err, apperr.KindNotFound) {
			return fmt.Errorf("failed to check product %s: %w", in.Name, err)
		}
		res, err := mut.CreateProduct(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to create product %s: %w", in.Name, err)
		}
		if !res.Success {
			return fmt.Errorf("product %s rejected: %s", in.Name, res.Message)
		}
		products = append(products, res.Product)
		fmt.Printf("Created product: %s\n", res.Product.Name)
	}

	alice, err := st.CustomerByEmail(ctx, "alice@example.com")
	if err != nil {
		return fmt.Errorf("failed to load seed customer: %w", err)
	}
	hasOrders, err := st.CustomerHasOrders(ctx, alice.ID)
	if err != nil {
		return fmt.Errorf("failed to check existing orders: %w", err)
	}
	if hasOrders {
		fmt.Println("Demo order already exists, skipping")
		return nil
	}

	productIDs := make([]string, 0, len(products))
	for _, p := range products {
		productIDs = append(productIDs, strconv.FormatUint(uint64(p.ID), 10))
	}
	res, err := mut.CreateOrder(ctx, mutate.OrderInput{
		CustomerID: strconv.FormatUint(uint64(alice.ID), 10),
		ProductIDs: productIDs,
	})
	if err != nil {
		return fmt.Errorf("failed to create demo order: %w", err)
	}
	if !res.Success {
		return fmt.Errorf("demo order rejected: %s", res.Message)
	}
	fmt.Printf("Created order %d for customer %s (total %.2f)\n", res.Order.ID, alice.Name, res.Order.TotalAmount)
	return nil
}
