package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// sampleProduct mirrors the seed file shape consumed on startup.
type sampleProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
	Status      string  `json:"status"`
}

// generateSampleProducts writes a small product catalog seed file for
// local development. Point SEED_FILE at the generated file and set
// SEED_ENABLED=true to load it on startup.
func main() {
	dataDir := "seed"

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create directory: %v", err)
	}

	products := []sampleProduct{
		{Name: "Wireless Headphones", Description: "Over-ear Bluetooth headphones with noise cancellation", Price: 2999, Category: "electronics", Stock: 120, Status: "active"},
		{Name: "Yoga Mat", Description: "Non-slip 6mm exercise mat", Price: 799, Category: "sports", Stock: 200, Status: "active"},
		{Name: "Stainless Steel Bottle", Description: "1L insulated water bottle", Price: 549, Category: "home", Stock: 350, Status: "active"},
		{Name: "Running Shoes", Description: "Lightweight road running shoes", Price: 3499, Category: "sports", Stock: 80, Status: "active"},
		{Name: "Desk Lamp", Description: "LED lamp with adjustable brightness", Price: 1299, Category: "home", Stock: 60, Status: "active"},
		{Name: "Mechanical Keyboard", Description: "Tenkeyless keyboard with brown switches", Price: 4999, Category: "electronics", Stock: 45, Status: "active"},
		{Name: "Cotton T-Shirt", Description: "Plain crew neck t-shirt", Price: 399, Category: "clothing", Stock: 500, Status: "active"},
		{Name: "Espresso Maker", Description: "Stovetop 6-cup moka pot", Price: 1599, Category: "home", Stock: 0, Status: "out_of_stock"},
	}

	filePath := filepath.Join(dataDir, "products.json")

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatalf("Failed to marshal products: %v", err)
	}

	if err := os.WriteFile(filePath, append(data, '\n'), 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", filePath, err)
	}

	fmt.Printf("Created %s with %d products\n", filePath, len(products))
}
