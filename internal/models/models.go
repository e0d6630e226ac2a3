package models

import (
	"time"
)

// Customer is a CRM customer. Email is unique across all customers and
// CreatedAt is set once on insert, never updated.
type Customer struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255;not null;uniqueIndex"`
	Phone     *string   `json:"phone,omitempty" gorm:"size:20"`
	CreatedAt time.Time `json:"created_at" gorm:"<-:create"`
}

type Product struct {
	ID    uint    `json:"id" gorm:"primaryKey"`
	Name  string  `json:"name" gorm:"size:255;not null"`
	Price float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Stock int64   `json:"stock" gorm:"not null;default:0"`
}

// Order links one customer to a set of products through the order_products
// join table. TotalAmount is derived at read time (sum of linked product
// prices) and is never stored; the query layer fills it from an aggregate
// select, mutation results fill it in memory.
type Order struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CustomerID  uint      `json:"customer_id" gorm:"not null;index"`
	Customer    Customer  `json:"customer"`
	Products    []Product `json:"products" gorm:"many2many:order_products"`
	OrderDate   time.Time `json:"order_date" gorm:"not null;index"`
	TotalAmount float64   `json:"total_amount" gorm:"->;-:migration"`
}
