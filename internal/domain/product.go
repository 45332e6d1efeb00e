package domain

import "github.com/shopspring/decimal"

// Product is a catalog entry as returned by the mall API.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	CategoryID    int64           `json:"category_id"`
	CategoryName  string          `json:"category_name,omitempty"`
	SKU           string          `json:"sku"`
	Price         decimal.Decimal `json:"price"`
	OriginalPrice decimal.Decimal `json:"original_price"`
	Stock         int             `json:"stock"`
	Sales         int             `json:"sales"`
	Images        []string        `json:"images"`
	Description   string          `json:"description"`
	Specs         []Spec          `json:"specs"`
	Attributes    []Attribute     `json:"attributes"`
	Status        int             `json:"status"`
	IsFeatured    bool            `json:"is_featured"`
	IsNew         bool            `json:"is_new"`
	Weight        float64         `json:"weight"`
	CreatedAt     string          `json:"created_at"`
	UpdatedAt     string          `json:"updated_at"`
}

// MainImage returns the first catalog image, or "" when none were uploaded.
func (p Product) MainImage() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

type Attribute struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	ParentID    int64      `json:"parent_id"`
	Level       int        `json:"level"`
	Sort        int        `json:"sort"`
	Icon        string     `json:"icon,omitempty"`
	Description string     `json:"description,omitempty"`
	Status      int        `json:"status"`
	Children    []Category `json:"children,omitempty"`
}

type Banner struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Image string `json:"image"`
	Link  string `json:"link"`
	Sort  int    `json:"sort"`
}
