package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category string

const (
	CategoryBreakfast Category = "Breakfast"
	CategoryLunch     Category = "Lunch"
	CategoryDinner    Category = "Dinner"
	CategoryDrinks    Category = "Drinks"
	CategoryDesserts  Category = "Desserts"
)

// Categories is the closed set of menu categories, in display order.
var Categories = []Category{
	CategoryBreakfast,
	CategoryLunch,
	CategoryDinner,
	CategoryDrinks,
	CategoryDesserts,
}

// ValidCategory reports whether c belongs to the fixed category set.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// MenuItem is a sellable item in the catalog. The catalog is the only
// authoritative source of prices; clients never supply one.
type MenuItem struct {
	ID          int
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
	Image       string
	Available   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

const defaultMenuImage = "https://via.placeholder.com/300x200?text=Menu+Item"

// NewMenuItem builds a catalog item for an admin write, applying the same
// validation the update path uses.
func NewMenuItem(name, description string, price decimal.Decimal, category Category, image string) (*MenuItem, error) {
	item := &MenuItem{
		Name:        name,
		Description: description,
		Price:       price,
		Category:    category,
		Image:       image,
		Available:   true,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if item.Image == "" {
		item.Image = defaultMenuImage
	}
	if errs := item.Validate(); len(errs) > 0 {
		return nil, errs
	}
	return item, nil
}

// Validate checks the catalog invariants: non-empty name and description,
// price >= 0, category in the fixed set.
func (m *MenuItem) Validate() ValidationErrors {
	var errs ValidationErrors
	if m.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if m.Description == "" {
		errs = append(errs, ValidationError{Field: "description", Message: "description is required"})
	}
	if m.Price.IsNegative() {
		errs = append(errs, ValidationError{Field: "price", Message: "price must not be negative"})
	}
	if !ValidCategory(m.Category) {
		errs = append(errs, ValidationError{Field: "category", Message: "category must be one of: Breakfast, Lunch, Dinner, Drinks, Desserts"})
	}
	return errs
}
