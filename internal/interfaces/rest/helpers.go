package rest

import (
	"github.com/DanielPopoola/aquapure/internal/domain"
)

// ToDomainProduct builds a transient product from the request.
func ToDomainProduct(req ProductRequest) (*domain.Product, error) {
	if req.Price == nil {
		return nil, domain.NewValidationError("price", "price is required")
	}
	if req.Quantity == nil {
		return nil, domain.NewValidationError("quantity", "quantity is required")
	}

	return domain.NewProduct(domain.ProductParams{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Quantity:    *req.Quantity,
	})
}

func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID().Value(),
		Name:        p.Name().Value(),
		Description: p.Description(),
		Price:       p.Price().Amount(),
		Quantity:    p.Quantity().Value(),
		InStock:     p.IsInStock(),
		TotalPrice:  p.TotalPrice().Amount(),
	}
}

func ToProductResponses(products []*domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out
}

func ToImageResponse(d *domain.ImageDocument) ImageResponse {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return ImageResponse{
		ID:          d.ID,
		FileName:    d.FileName,
		FileURL:     d.FileURL,
		ContentType: d.ContentType,
		FileSize:    d.FileSize,
		Description: d.Description,
		Tags:        tags,
		UploadedAt:  d.UploadedAt,
	}
}

func ToImageResponses(docs []*domain.ImageDocument) []ImageResponse {
	out := make([]ImageResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, ToImageResponse(d))
	}
	return out
}
