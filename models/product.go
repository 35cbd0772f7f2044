package models

import "time"

// Product is a purchasable digital item. Price 0 means free.
type Product struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Image       string    `json:"image" bson:"image"`
	Features    []string  `json:"features,omitempty" bson:"features,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// DemoProducts returns the built-in catalog used when the product store is
// unreachable. The storefront stays browsable in degraded mode.
func DemoProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Premium UI Component Library",
			Description: "Complete set of customizable UI components for modern web applications",
			Price:       49.99,
			Image:       "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=600&auto=format",
		},
		{
			ID:          "2",
			Name:        "Developer Toolkit Pro",
			Description: "Essential tools and utilities for web development workflow",
			Price:       39.99,
			Image:       "https://images.unsplash.com/photo-1487058792275-0ad4aaf24ca7?w=600&auto=format",
		},
		{
			ID:          "3",
			Name:        "Code Editor Plus",
			Description: "Advanced code editor with syntax highlighting and AI suggestions",
			Price:       29.99,
			Image:       "https://images.unsplash.com/photo-1461749280684-dccba630e2f6?w=600&auto=format",
		},
		{
			ID:          "4",
			Name:        "Web Analytics Dashboard",
			Description: "Comprehensive analytics solution for tracking website performance",
			Price:       59.99,
			Image:       "https://images.unsplash.com/photo-1531297484001-80022131f5a1?w=600&auto=format",
		},
	}
}
