package postgres

import (
	"fmt"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/shopspring/decimal"
)

// toDomainModel maps a row to the entity. A row the domain rejects is a store
// fault, so the cause is kept as text rather than wrapped.
func toDomainModel(m ProductModel) (*domain.Product, error) {
	price, err := decimal.NewFromString(m.Price)
	if err != nil {
		return nil, corruptRow(m.ID, err)
	}

	product, err := domain.NewProduct(domain.ProductParams{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Price:       price,
		Quantity:    m.Quantity,
	})
	if err != nil {
		return nil, corruptRow(m.ID, err)
	}
	return product, nil
}

func corruptRow(id int64, err error) error {
	return fmt.Errorf("%w: corrupt product row %d: %v", application.ErrStoreFailure, id, err)
}

// toDBModel: maps domain entity to db model
func toDBModel(p *domain.Product) ProductModel {
	params := p.Params()
	return ProductModel{
		ID:          params.ID,
		Name:        params.Name,
		Description: params.Description,
		Price:       params.Price.String(),
		Quantity:    params.Quantity,
	}
}

func toImageDocument(m ImageModel) *domain.ImageDocument {
	tags := m.Tags
	if tags == nil {
		tags = []string{}
	}
	return &domain.ImageDocument{
		ID:          m.ID,
		FileName:    m.FileName,
		ObjectName:  m.ObjectName,
		FileURL:     m.FileURL,
		ContentType: m.ContentType,
		FileSize:    m.FileSize,
		Description: m.Description,
		Tags:        tags,
		UploadedAt:  m.UploadedAt,
	}
}

func toImageModel(d *domain.ImageDocument) ImageModel {
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	return ImageModel{
		ID:          d.ID,
		FileName:    d.FileName,
		ObjectName:  d.ObjectName,
		FileURL:     d.FileURL,
		ContentType: d.ContentType,
		FileSize:    d.FileSize,
		Description: d.Description,
		Tags:        tags,
		UploadedAt:  d.UploadedAt,
	}
}

func toPendingDeletion(m PendingDeletionModel) application.PendingDeletion {
	return application.PendingDeletion{
		ObjectName:    m.ObjectName,
		Attempts:      m.Attempts,
		NextAttemptAt: m.NextAttemptAt,
		LastError:     m.LastError,
		CreatedAt:     m.CreatedAt,
	}
}
