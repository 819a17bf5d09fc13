package models

// Read-only projections of upstream catalog state. The gateway never mutates
// these locally; every change is an upstream round-trip.

type Prices struct {
	Price             string `json:"price"`
	RegularPrice      string `json:"regular_price"`
	SalePrice         string `json:"sale_price"`
	CurrencyCode      string `json:"currency_code"`
	CurrencySymbol    string `json:"currency_symbol"`
	CurrencyMinorUnit int    `json:"currency_minor_unit"`
}

type Image struct {
	ID        int    `json:"id"`
	Src       string `json:"src"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Name      string `json:"name"`
	Alt       string `json:"alt"`
}

type CategoryRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// StoreProduct is the public store-surface product shape.
type StoreProduct struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	Description      string        `json:"description"`
	ShortDescription string        `json:"short_description"`
	SKU              string        `json:"sku"`
	Prices           Prices        `json:"prices"`
	Images           []Image       `json:"images"`
	Categories       []CategoryRef `json:"categories"`
	IsInStock        bool          `json:"is_in_stock"`
	AverageRating    string        `json:"average_rating"`
	ReviewCount      int           `json:"review_count"`
	Permalink        string        `json:"permalink"`
	HasOptions       bool          `json:"has_options"`
	IsPurchasable    bool          `json:"is_purchasable"`
	OnSale           bool          `json:"on_sale"`
	Type             string        `json:"type"`
}

type RestAttribute struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Slug      string   `json:"slug"`
	Position  int      `json:"position"`
	Visible   bool     `json:"visible"`
	Variation bool     `json:"variation"`
	Options   []string `json:"options"`
}

// RestProduct is the administrative-surface product shape; it carries fields
// the public surface omits, most importantly the variation id list.
type RestProduct struct {
	ID               int             `json:"id"`
	Name             string          `json:"name"`
	Slug             string          `json:"slug"`
	Permalink        string          `json:"permalink"`
	DateModified     string          `json:"date_modified"`
	Type             string          `json:"type"`
	Description      string          `json:"description"`
	ShortDescription string          `json:"short_description"`
	SKU              string          `json:"sku"`
	Price            string          `json:"price"`
	RegularPrice     string          `json:"regular_price"`
	SalePrice        string          `json:"sale_price"`
	OnSale           bool            `json:"on_sale"`
	Purchasable      bool            `json:"purchasable"`
	StockStatus      string          `json:"stock_status"`
	StockQuantity    *int            `json:"stock_quantity"`
	Images           []Image         `json:"images"`
	Categories       []CategoryRef   `json:"categories"`
	Attributes       []RestAttribute `json:"attributes"`
	Variations       []int           `json:"variations"`
	AverageRating    string          `json:"average_rating"`
	ReviewCount      int             `json:"review_count"`
}

type VariationAttribute struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Option string `json:"option"`
}

type RestVariation struct {
	ID           int                  `json:"id"`
	SKU          string               `json:"sku"`
	Price        string               `json:"price"`
	RegularPrice string               `json:"regular_price"`
	SalePrice    string               `json:"sale_price"`
	StockStatus  string               `json:"stock_status"`
	Attributes   []VariationAttribute `json:"attributes"`
	Image        *Image               `json:"image"`
}

type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Parent      int    `json:"parent"`
	Count       int    `json:"count"`
	Image       *Image `json:"image"`
	Permalink   string `json:"permalink"`
}

type ProductQueryParams struct {
	Include  string `json:"include,omitempty"`
	Search   string `json:"search,omitempty"`
	Category string `json:"category,omitempty"`
	PerPage  int    `json:"per_page"`
	Page     int    `json:"page"`
	OrderBy  string `json:"orderby,omitempty"`
	Order    string `json:"order,omitempty"`
}

type ProductList struct {
	Products   []StoreProduct `json:"products"`
	Total      int            `json:"total"`
	TotalPages int            `json:"totalPages"`
}

// ProductDetail pairs the administrative product record with its full
// variation list. Product is nil when the slug is unknown upstream.
// Excerpt is a plain-text rendering of the short description for use in
// meta tags.
type ProductDetail struct {
	Product    *RestProduct    `json:"product"`
	Variations []RestVariation `json:"variations"`
	Excerpt    string          `json:"excerpt,omitempty"`
}

type CategoryList struct {
	Categories []Category `json:"categories"`
}
