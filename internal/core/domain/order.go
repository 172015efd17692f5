package domain

import "time"

// Order is the snapshot of a placed shop order.
type Order struct {
	ExternalID      string          `json:"external_id"`
	OrderNumber     string          `json:"order_number"`
	PlacedAt        time.Time       `json:"placed_at"`
	Currency        string          `json:"currency"`
	CustomerEmail   string          `json:"customer_email"`
	LineItems       []OrderLineItem `json:"line_items"`
	Totals          OrderTotals     `json:"totals"`
	Discounts       []Discount      `json:"discounts"`
	ShippingAddress *Address        `json:"shipping_address,omitempty"`
}

type OrderLineItem struct {
	SKU      string   `json:"sku"`
	Title    string   `json:"title"`
	Quantity int      `json:"quantity"`
	Price    float64  `json:"price"`
	ImageURL *string  `json:"image_url,omitempty"`
	Weight   *float64 `json:"weight,omitempty"`
}

type OrderTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

type Discount struct {
	Code   string  `json:"code"`
	Amount float64 `json:"amount"`
}

type Address struct {
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	Company     *string `json:"company,omitempty"`
	Street      string  `json:"street"`
	ZipCode     string  `json:"zip_code"`
	City        string  `json:"city"`
	CountryCode string  `json:"country_code"`
	Phone       *string `json:"phone,omitempty"`
}

// OrderPayload is the body of POST /v1/orders.
type OrderPayload struct {
	ExternalID      string          `json:"external_id"`
	OrderNumber     string          `json:"order_number"`
	PlacedAt        string          `json:"placed_at"`
	Currency        string          `json:"currency"`
	CustomerEmail   string          `json:"customer_email"`
	LineItems       []OrderLineItem `json:"line_items"`
	Totals          OrderTotals     `json:"totals"`
	Discounts       []Discount      `json:"discounts"`
	ShippingAddress *Address        `json:"shipping_address,omitempty"`
}

// ToPayload renders the order for the Karla API. Nil slices become empty
// arrays and placed_at is RFC 3339 in UTC.
func (o *Order) ToPayload() OrderPayload {
	items := o.LineItems
	if items == nil {
		items = []OrderLineItem{}
	}
	discounts := o.Discounts
	if discounts == nil {
		discounts = []Discount{}
	}
	return OrderPayload{
		ExternalID:      o.ExternalID,
		OrderNumber:     o.OrderNumber,
		PlacedAt:        o.PlacedAt.UTC().Format(time.RFC3339),
		Currency:        o.Currency,
		CustomerEmail:   o.CustomerEmail,
		LineItems:       items,
		Totals:          o.Totals,
		Discounts:       discounts,
		ShippingAddress: o.ShippingAddress,
	}
}
