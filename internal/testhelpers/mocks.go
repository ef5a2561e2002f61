package testhelpers

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
)

// MockProductRepository is an in-memory ProductRepository. Setting an XxxFn
// field overrides the matching method.
type MockProductRepository struct {
	mu       sync.RWMutex
	products map[int64]*domain.Product
	nextID   int64

	ListCalls int

	ListFn       func(ctx context.Context) ([]*domain.Product, error)
	FindByIDFn   func(ctx context.Context, id domain.ProductID) (*domain.Product, error)
	SaveFn       func(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteByIDFn func(ctx context.Context, id domain.ProductID) error
}

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[int64]*domain.Product),
	}
}

func (m *MockProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	m.mu.Lock()
	m.ListCalls++
	m.mu.Unlock()

	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*domain.Product, 0, len(m.products))
	for _, p := range m.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().Value() < out[j].ID().Value()
	})
	return out, nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	if p, ok := m.products[id.Value()]; ok {
		return p, nil
	}
	return nil, application.ErrRecordNotFound
}

func (m *MockProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, product)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	saved := product
	if !product.IsPersisted() {
		m.nextID++
		id, err := domain.NewProductID(m.nextID)
		if err != nil {
			return nil, err
		}
		saved = product.WithID(id)
	} else if product.ID().Value() > m.nextID {
		m.nextID = product.ID().Value()
	}

	m.products[saved.ID().Value()] = saved
	return saved, nil
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id domain.ProductID) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.products[id.Value()]; !ok {
		return application.ErrRecordNotFound
	}
	delete(m.products, id.Value())
	return nil
}

// MockImageIndex is an in-memory ImageIndex with case-insensitive
// substring search.
type MockImageIndex struct {
	mu   sync.RWMutex
	docs map[string]*domain.ImageDocument

	SearchCalls int

	SaveFn       func(ctx context.Context, doc *domain.ImageDocument) error
	DeleteByIDFn func(ctx context.Context, id string) error
}

func NewMockImageIndex() *MockImageIndex {
	return &MockImageIndex{
		docs: make(map[string]*domain.ImageDocument),
	}
}

func (m *MockImageIndex) Save(ctx context.Context, doc *domain.ImageDocument) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, doc)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs[doc.ID] = doc
	return nil
}

func (m *MockImageIndex) FindByID(ctx context.Context, id string) (*domain.ImageDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if d, ok := m.docs[id]; ok {
		return d, nil
	}
	return nil, application.ErrRecordNotFound
}

func (m *MockImageIndex) SearchByTag(ctx context.Context, tag string) ([]*domain.ImageDocument, error) {
	return m.search(func(d *domain.ImageDocument) bool {
		for _, t := range d.Tags {
			if containsFold(t, tag) {
				return true
			}
		}
		return false
	}), nil
}

func (m *MockImageIndex) SearchByDescription(ctx context.Context, keyword string) ([]*domain.ImageDocument, error) {
	return m.search(func(d *domain.ImageDocument) bool {
		return containsFold(d.Description, keyword)
	}), nil
}

func (m *MockImageIndex) SearchByFileName(ctx context.Context, keyword string) ([]*domain.ImageDocument, error) {
	return m.search(func(d *domain.ImageDocument) bool {
		return containsFold(d.FileName, keyword)
	}), nil
}

func (m *MockImageIndex) DeleteByID(ctx context.Context, id string) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[id]; !ok {
		return application.ErrRecordNotFound
	}
	delete(m.docs, id)
	return nil
}

func (m *MockImageIndex) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.docs)
}

func (m *MockImageIndex) search(match func(*domain.ImageDocument) bool) []*domain.ImageDocument {
	m.mu.Lock()
	m.SearchCalls++
	m.mu.Unlock()

	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []*domain.ImageDocument{}
	for _, d := range m.docs {
		if match(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UploadedAt.After(out[j].UploadedAt)
	})
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}

// MockPendingDeletionQueue is an in-memory PendingDeletionQueue.
type MockPendingDeletionQueue struct {
	mu      sync.Mutex
	entries map[string]*application.PendingDeletion
	now     func() time.Time
}

func NewMockPendingDeletionQueue() *MockPendingDeletionQueue {
	return &MockPendingDeletionQueue{
		entries: make(map[string]*application.PendingDeletion),
		now:     time.Now,
	}
}

func (m *MockPendingDeletionQueue) Enqueue(ctx context.Context, objectName string, cause error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[objectName]
	if !ok {
		now := m.now()
		entry = &application.PendingDeletion{
			ObjectName:    objectName,
			NextAttemptAt: now,
			CreatedAt:     now,
		}
		m.entries[objectName] = entry
	}
	if cause != nil {
		entry.LastError = cause.Error()
	}
	return nil
}

func (m *MockPendingDeletionQueue) FindDue(ctx context.Context, limit int) ([]application.PendingDeletion, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	out := []application.PendingDeletion{}
	for _, e := range m.entries {
		if !e.NextAttemptAt.After(now) {
			out = append(out, *e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].NextAttemptAt.Before(out[j].NextAttemptAt)
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MockPendingDeletionQueue) Remove(ctx context.Context, objectName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, objectName)
	return nil
}

func (m *MockPendingDeletionQueue) Reschedule(ctx context.Context, objectName string, nextAttemptAt time.Time, cause error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[objectName]
	if !ok {
		return application.ErrRecordNotFound
	}
	entry.Attempts++
	entry.NextAttemptAt = nextAttemptAt
	if cause != nil {
		entry.LastError = cause.Error()
	}
	return nil
}

// Get returns a copy of the entry for objectName.
func (m *MockPendingDeletionQueue) Get(objectName string) (application.PendingDeletion, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[objectName]
	if !ok {
		return application.PendingDeletion{}, false
	}
	return *e, true
}

var (
	_ application.ProductRepository    = (*MockProductRepository)(nil)
	_ application.ImageIndex           = (*MockImageIndex)(nil)
	_ application.PendingDeletionQueue = (*MockPendingDeletionQueue)(nil)
)
