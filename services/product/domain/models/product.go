package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is the aggregate for this bounded context. SKU is unique across
// all products and is generated when the caller does not supply one.
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       decimal.Decimal
	Quantity    int
	Category    *string
	SKU         string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductInput carries every caller-controlled field of a Product. An empty
// SKU means "generate one" on create and "keep the stored one" on update.
type ProductInput struct {
	Name        string
	Description *string
	Price       decimal.Decimal
	Quantity    int
	Category    *string
	SKU         string
}

// NewProduct builds an unsaved Product identified by sku. Both timestamps are set to now.
func NewProduct(in ProductInput, sku string, now time.Time) *Product {
	p := &Product{SKU: sku, CreatedAt: now}
	p.replaceFields(in, now)
	return p
}

// Replace overwrites p with in. An empty in.SKU keeps the stored SKU.
func (p *Product) Replace(in ProductInput, now time.Time) {
	if in.SKU != "" {
		p.SKU = in.SKU
	}
	p.replaceFields(in, now)
}

// SetQuantity changes the stock level and stamps UpdatedAt.
func (p *Product) SetQuantity(quantity int, now time.Time) {
	p.Quantity = quantity
	p.UpdatedAt = now
}

// InStock reports whether at least one unit is available.
func (p *Product) InStock() bool {
	return p.Quantity > 0
}

func (p *Product) replaceFields(in ProductInput, now time.Time) {
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Quantity = in.Quantity
	p.Category = in.Category
	p.UpdatedAt = now
}
