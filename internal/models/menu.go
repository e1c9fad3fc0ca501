package models

// SectionType classifies a menu section.
type SectionType string

const (
	SectionFood   SectionType = "food"
	SectionDrinks SectionType = "drinks"
)

// MenuItem represents a single dish or drink on the menu.
// The catalog is defined at deploy time and never mutated.
type MenuItem struct {
	ID          string  `json:"id" validate:"required"`
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image,omitempty"`
}

// MenuSection groups related menu items under a title.
type MenuSection struct {
	ID    string      `json:"id" validate:"required"`
	Title string      `json:"title" validate:"required"`
	Type  SectionType `json:"type" validate:"required,oneof=food drinks"`
	Items []MenuItem  `json:"items"`
}
