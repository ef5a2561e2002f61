package rest

import (
	"time"

	"github.com/shopspring/decimal"
)

// MaxJSONBodyBytes caps JSON request bodies.
const MaxJSONBodyBytes = 1 << 20

// ProductRequest is the body of create and update calls. Value rules live in
// the domain; the tags only enforce presence.
type ProductRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description" validate:"max=2000"`
	Price       *decimal.Decimal `json:"price" validate:"required"`
	Quantity    *int             `json:"quantity" validate:"required"`
}

type QuantityRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

type ProductResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	InStock     bool            `json:"in_stock"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

type ImageResponse struct {
	ID          string    `json:"id"`
	FileName    string    `json:"file_name"`
	FileURL     string    `json:"file_url"`
	ContentType string    `json:"content_type"`
	FileSize    int64     `json:"file_size"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	UploadedAt  time.Time `json:"uploaded_at"`
}

type StatusResponse struct {
	Service string    `json:"service"`
	Status  string    `json:"status"`
	Env     string    `json:"env"`
	Time    time.Time `json:"time"`
}
