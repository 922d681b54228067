package commerce

import "encoding/json"

// The JSON tags on these types mirror the wire names of the hosted commerce
// API. The backend is the system of record for every field; nothing here is
// computed locally.

type Price struct {
	Raw                 float64 `json:"raw"`
	Formatted           string  `json:"formatted"`
	FormattedWithSymbol string  `json:"formatted_with_symbol"`
	FormattedWithCode   string  `json:"formatted_with_code"`
}

type Currency struct {
	Symbol string `json:"symbol"`
	Code   string `json:"code"`
}

type ImageDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

type Asset struct {
	ID              string          `json:"id"`
	URL             string          `json:"url"`
	Description     string          `json:"description"`
	IsImage         bool            `json:"is_image"`
	Filename        string          `json:"filename"`
	FileExtension   string          `json:"file_extension"`
	ImageDimensions ImageDimensions `json:"image_dimensions"`
	FileSize        int64           `json:"file_size,omitempty"`
	Meta            json.RawMessage `json:"meta,omitempty"`
	CreatedAt       int64           `json:"created_at"`
	UpdatedAt       int64           `json:"updated_at"`
}

// SelectedVariant is one group/option choice bound to a cart line item,
// as resolved and priced by the backend.
type SelectedVariant struct {
	GroupID    string `json:"group_id"`
	GroupName  string `json:"group_name"`
	OptionID   string `json:"option_id"`
	OptionName string `json:"option_name"`
	Price      Price  `json:"price"`
}

type Variant struct {
	ID                string            `json:"id"`
	SKU               string            `json:"sku"`
	Description       string            `json:"description"`
	Inventory         *int              `json:"inventory"`
	Price             *Price            `json:"price"`
	IsValid           bool              `json:"is_valid"`
	InvalidReasonCode string            `json:"invalid_reason_code"`
	Meta              json.RawMessage   `json:"meta,omitempty"`
	Created           int64             `json:"created,omitempty"`
	Updated           int64             `json:"updated,omitempty"`
	Options           map[string]string `json:"options"`
	Assets            []Asset           `json:"assets"`
}

type LineItem struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Quantity        int               `json:"quantity"`
	ProductID       string            `json:"product_id"`
	ProductName     string            `json:"product_name"`
	ProductMeta     json.RawMessage   `json:"product_meta,omitempty"`
	SKU             string            `json:"sku"`
	Permalink       string            `json:"permalink"`
	SelectedOptions []SelectedVariant `json:"selected_options"`
	Variant         *Variant          `json:"variant,omitempty"`
	Price           Price             `json:"price"`
	LineTotal       Price             `json:"line_total"`
	Image           *Asset            `json:"image"`
}

type Cart struct {
	ID                string     `json:"id"`
	Created           int64      `json:"created"`
	Updated           int64      `json:"updated"`
	Expires           int64      `json:"expires"`
	TotalItems        int        `json:"total_items"`
	TotalUniqueItems  int        `json:"total_unique_items"`
	Subtotal          Price      `json:"subtotal"`
	Currency          Currency   `json:"currency"`
	HostedCheckoutURL string     `json:"hosted_checkout_url"`
	LineItems         []LineItem `json:"line_items"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.LineItems) == 0
}

type ProductVariantOption struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Price   Price           `json:"price"`
	Assets  []string        `json:"assets"`
	Meta    json.RawMessage `json:"meta,omitempty"`
	Created int64           `json:"created"`
	Updated int64           `json:"updated"`
}

type ProductVariantGroup struct {
	ID      string                 `json:"id"`
	Name    string                 `json:"name"`
	Meta    json.RawMessage        `json:"meta,omitempty"`
	Created int64                  `json:"created"`
	Updated int64                  `json:"updated"`
	Options []ProductVariantOption `json:"options"`
}

type ProductInventory struct {
	Managed   bool `json:"managed"`
	Available int  `json:"available"`
}

type ProductMedia struct {
	Type   string `json:"type"`
	Source string `json:"source"`
}

type ProductSEO struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Boolean capability and status flags reported by the backend. Read-only
// reflections of backend state, grouped the way the wire format groups them.
type ProductConditionals struct {
	IsActive                bool `json:"is_active"`
	IsTaxExempt             bool `json:"is_tax_exempt"`
	IsPayWhatYouWant        bool `json:"is_pay_what_you_want"`
	IsInventoryManaged      bool `json:"is_inventory_managed"`
	IsSoldOut               bool `json:"is_sold_out"`
	HasDigitalDelivery      bool `json:"has_digital_delivery"`
	HasPhysicalDelivery     bool `json:"has_physical_delivery"`
	HasImages               bool `json:"has_images"`
	CollectsFullname        bool `json:"collects_fullname"`
	CollectsShippingAddress bool `json:"collects_shipping_address"`
	CollectsBillingAddress  bool `json:"collects_billing_address"`
	CollectsExtraFields     bool `json:"collects_extra_fields"`
}

type ProductIs struct {
	Active           bool `json:"active"`
	TaxExempt        bool `json:"tax_exempt"`
	PayWhatYouWant   bool `json:"pay_what_you_want"`
	InventoryManaged bool `json:"inventory_managed"`
	SoldOut          bool `json:"sold_out"`
}

type ProductHas struct {
	DigitalDelivery  bool `json:"digital_delivery"`
	PhysicalDelivery bool `json:"physical_delivery"`
	Images           bool `json:"images"`
	Video            bool `json:"video"`
	RichEmbed        bool `json:"rich_embed"`
}

type ProductCollects struct {
	Fullname        bool `json:"fullname"`
	ShippingAddress bool `json:"shipping_address"`
	BillingAddress  bool `json:"billing_address"`
	ExtraFields     bool `json:"extra_fields"`
}

type ProductCheckoutURL struct {
	Checkout string `json:"checkout"`
	Display  string `json:"display"`
}

type ProductCategory struct {
	ID   string `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

type Product struct {
	ID            string                `json:"id"`
	Created       int64                 `json:"created"`
	Updated       int64                 `json:"updated"`
	Active        bool                  `json:"active"`
	Permalink     string                `json:"permalink"`
	Name          string                `json:"name"`
	Description   string                `json:"description"`
	Price         Price                 `json:"price"`
	Inventory     ProductInventory      `json:"inventory"`
	Media         ProductMedia          `json:"media"`
	SKU           string                `json:"sku"`
	SortOrder     int                   `json:"sort_order"`
	SEO           ProductSEO            `json:"seo"`
	ThankYouURL   string                `json:"thank_you_url"`
	Meta          json.RawMessage       `json:"meta,omitempty"`
	Conditionals  ProductConditionals   `json:"conditionals"`
	Is            ProductIs             `json:"is"`
	Has           ProductHas            `json:"has"`
	Collects      ProductCollects       `json:"collects"`
	CheckoutURL   ProductCheckoutURL    `json:"checkout_url"`
	VariantGroups []ProductVariantGroup `json:"variant_groups"`
	Categories    []ProductCategory     `json:"categories"`
	Assets        []Asset               `json:"assets"`
	Image         *Asset                `json:"image"`
}

type Category struct {
	ID          string          `json:"id"`
	Slug        string          `json:"slug"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Products    int             `json:"products"`
	Created     int64           `json:"created"`
	Meta        json.RawMessage `json:"meta,omitempty"`
}

type Pagination struct {
	Count       int `json:"count"`
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
	TotalPages  int `json:"total_pages"`
}

type PaginationMeta struct {
	Pagination Pagination `json:"pagination"`
}

type ProductCollection struct {
	Data []Product      `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

type CategoryCollection struct {
	Data []Category     `json:"data"`
	Meta PaginationMeta `json:"meta"`
}

// SortOption is one entry of the static sort menu offered on the search page.
// Key is a composite "<field>-<direction>" string, e.g. "price-desc".
type SortOption struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// SelectedOption is a human-readable variant selection taken from the product
// page URL, e.g. {Name: "Size", Value: "Large"}. It is resolved against the
// product's own variant groups, never trusted as ids.
type SelectedOption struct {
	Name  string
	Value string
}

// ProductDetail is the shaped product view returned by Provider.GetProduct.
// SelectedVariantIDs holds one {groupID: optionID} entry per selection that
// resolved against the product's variant groups.
type ProductDetail struct {
	ID                 string                `json:"id"`
	Permalink          string                `json:"permalink"`
	Name               string                `json:"name"`
	DescriptionHTML    string                `json:"descriptionHtml"`
	Price              Price                 `json:"price"`
	Image              *Asset                `json:"image"`
	VariantGroups      []ProductVariantGroup `json:"variant_groups"`
	SelectedVariantIDs []map[string]string   `json:"selectedVariantIds"`
}
