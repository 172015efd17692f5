package dto

import (
	"time"

	"karla-connector/internal/core/domain"
)

// OrderRequest is the body of POST /hooks/orders.
type OrderRequest struct {
	ExternalID      string            `json:"external_id" binding:"required,entity_id"`
	OrderNumber     string            `json:"order_number" binding:"required,max=64"`
	PlacedAt        time.Time         `json:"placed_at" binding:"required"`
	Currency        string            `json:"currency" binding:"required,iso4217"`
	CustomerEmail   string            `json:"customer_email" binding:"omitempty,email"`
	LineItems       []LineItemRequest `json:"line_items" binding:"required,min=1,dive"`
	Totals          TotalsRequest     `json:"totals"`
	Discounts       []DiscountRequest `json:"discounts" binding:"omitempty,dive"`
	ShippingAddress *AddressRequest   `json:"shipping_address" binding:"omitempty"`
}

type LineItemRequest struct {
	SKU      string   `json:"sku" binding:"required,max=128"`
	Title    string   `json:"title" binding:"required,max=255"`
	Quantity int      `json:"quantity" binding:"required,gt=0"`
	Price    float64  `json:"price" binding:"gte=0"`
	ImageURL *string  `json:"image_url" binding:"omitempty,http_url"`
	Weight   *float64 `json:"weight" binding:"omitempty,gte=0"`
}

type TotalsRequest struct {
	Subtotal float64 `json:"subtotal" binding:"gte=0"`
	Shipping float64 `json:"shipping" binding:"gte=0"`
	Tax      float64 `json:"tax" binding:"gte=0"`
	Total    float64 `json:"total" binding:"gte=0"`
}

type DiscountRequest struct {
	Code   string  `json:"code" binding:"required,max=64"`
	Amount float64 `json:"amount" binding:"gte=0"`
}

type AddressRequest struct {
	FirstName   string  `json:"first_name" binding:"required,max=100"`
	LastName    string  `json:"last_name" binding:"required,max=100"`
	Company     *string `json:"company"`
	Street      string  `json:"street" binding:"required,max=255"`
	ZipCode     string  `json:"zip_code" binding:"required,max=20"`
	City        string  `json:"city" binding:"required,max=100"`
	CountryCode string  `json:"country_code" binding:"required,iso3166_1_alpha2"`
	Phone       *string `json:"phone"`
}

// ToDomain converts the validated request.
func (r *OrderRequest) ToDomain() *domain.Order {
	order := &domain.Order{
		ExternalID:    r.ExternalID,
		OrderNumber:   r.OrderNumber,
		PlacedAt:      r.PlacedAt,
		Currency:      r.Currency,
		CustomerEmail: r.CustomerEmail,
		Totals: domain.OrderTotals{
			Subtotal: r.Totals.Subtotal,
			Shipping: r.Totals.Shipping,
			Tax:      r.Totals.Tax,
			Total:    r.Totals.Total,
		},
	}

	for _, li := range r.LineItems {
		order.LineItems = append(order.LineItems, domain.OrderLineItem{
			SKU:      li.SKU,
			Title:    li.Title,
			Quantity: li.Quantity,
			Price:    li.Price,
			ImageURL: li.ImageURL,
			Weight:   li.Weight,
		})
	}
	for _, d := range r.Discounts {
		order.Discounts = append(order.Discounts, domain.Discount{Code: d.Code, Amount: d.Amount})
	}
	if a := r.ShippingAddress; a != nil {
		order.ShippingAddress = &domain.Address{
			FirstName:   a.FirstName,
			LastName:    a.LastName,
			Company:     a.Company,
			Street:      a.Street,
			ZipCode:     a.ZipCode,
			City:        a.City,
			CountryCode: a.CountryCode,
			Phone:       a.Phone,
		}
	}
	return order
}

// SettingsRequest is the body of PUT /api/v1/settings.
type SettingsRequest struct {
	WebhookEnabled *bool `json:"webhook_enabled"`
	CatalogEnabled *bool `json:"catalog_enabled"`
	OrdersEnabled  *bool `json:"orders_enabled"`
}

func (r *SettingsRequest) ToPatch() domain.SettingsPatch {
	return domain.SettingsPatch{
		WebhookEnabled: r.WebhookEnabled,
		CatalogEnabled: r.CatalogEnabled,
		OrdersEnabled:  r.OrdersEnabled,
	}
}

// SyncStatusResponse is the body of GET /api/v1/catalog/sync.
type SyncStatusResponse struct {
	Status domain.SyncStatus `json:"status"`
}

// HealthResponse reports each dependency as "up" or "down".
type HealthResponse struct {
	Status       string            `json:"status"`
	Dependencies map[string]string `json:"dependencies"`
}
