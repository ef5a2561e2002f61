package postgres

import (
	"time"
)

// ProductModel mirrors a products row. Price travels as text so NUMERIC
// values keep their exact digits.
type ProductModel struct {
	ID          int64
	Name        string
	Description string
	Price       string
	Quantity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ImageModel struct {
	ID          string
	FileName    string
	ObjectName  string
	FileURL     string
	ContentType string
	FileSize    int64
	Description string
	Tags        []string
	UploadedAt  time.Time
}

type PendingDeletionModel struct {
	ObjectName    string
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	CreatedAt     time.Time
}
