package entities

// Product is the purchasable capability set expected in a transaction's
// basket. Any concrete type works as long as it can report a price, a
// display name, a category, an item-type code and a unique key.

type Product interface {
	GetKey() string
	GetName() string
	GetCategory() string
	GetItemType() string
	GetPrice() float64
}

// CatalogProduct is a plain Product implementation used by the HTTP layer
// and in tests.

type CatalogProduct struct {
	Key      string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	ItemType string  `json:"type"`
	Price    float64 `json:"price"`
}

var _ Product = CatalogProduct{}

func (p CatalogProduct) GetKey() string      { return p.Key }
func (p CatalogProduct) GetName() string     { return p.Name }
func (p CatalogProduct) GetCategory() string { return p.Category }
func (p CatalogProduct) GetItemType() string { return p.ItemType }
func (p CatalogProduct) GetPrice() float64   { return p.Price }
