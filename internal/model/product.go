package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductStatus identifies the catalog state of a product.
type ProductStatus string

const (
	ProductStatusActive       ProductStatus = "active"
	ProductStatusInactive     ProductStatus = "inactive"
	ProductStatusOutOfStock   ProductStatus = "out_of_stock"
	ProductStatusDiscontinued ProductStatus = "discontinued"
)

// Valid reports whether the status is one of the known statuses.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock, ProductStatusDiscontinued:
		return true
	}
	return false
}

// Rating aggregates customer ratings for a product.
type Rating struct {
	Average float64 `json:"average" db:"rating_average"`
	Count   int     `json:"count" db:"rating_count"`
}

// Product represents a product in the catalog.
type Product struct {
	ID          uuid.UUID     `json:"id" db:"id"`
	Name        string        `json:"name" db:"name"`
	Description string        `json:"description" db:"description"`
	Price       float64       `json:"price" db:"price"`
	Category    string        `json:"category" db:"category"`
	Stock       int           `json:"stock" db:"stock"`
	Rating      Rating        `json:"rating"`
	Status      ProductStatus `json:"status" db:"status"`
	CreatedAt   time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt" db:"updated_at"`
}

// ProductRequest represents the request payload for creating or updating a product.
type ProductRequest struct {
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Price       float64       `json:"price" validate:"gte=0"`
	Category    string        `json:"category" validate:"required"`
	Stock       int           `json:"stock" validate:"gte=0"`
	Status      ProductStatus `json:"status" validate:"omitempty,oneof=active inactive out_of_stock discontinued"`
}
