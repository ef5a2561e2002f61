package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/application/services"
	"github.com/DanielPopoola/aquapure/internal/config"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/cache"
	"github.com/DanielPopoola/aquapure/internal/testhelpers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProductServicesTestSuite struct {
	suite.Suite
	repo          *testhelpers.MockProductRepository
	listCache     *cache.ReadThrough[[]*domain.Product]
	queryService  *services.QueryService
	createService *services.CreateService
	updateService *services.UpdateService
	deleteService *services.DeleteService
}

func TestProductServicesSuite(t *testing.T) {
	suite.Run(t, new(ProductServicesTestSuite))
}

func (suite *ProductServicesTestSuite) SetupTest() {
	logger := testhelpers.DiscardLogger()

	suite.repo = testhelpers.NewMockProductRepository()
	suite.listCache = cache.New[[]*domain.Product]("products", config.CacheConfig{Size: 16}, logger)

	suite.queryService = services.NewQueryService(suite.repo, suite.listCache, logger)
	suite.createService = services.NewCreateService(suite.repo, suite.listCache, logger)
	suite.updateService = services.NewUpdateService(suite.repo, suite.listCache, logger)
	suite.deleteService = services.NewDeleteService(suite.repo, suite.listCache, logger)
}

func candidate(t *testing.T, name, price string, qty int) *domain.Product {
	t.Helper()
	p, err := domain.NewProduct(domain.ProductParams{
		Name:        name,
		Description: "Removes chlorine",
		Price:       decimal.RequireFromString(price),
		Quantity:    qty,
	})
	require.NoError(t, err)
	return p
}

func (suite *ProductServicesTestSuite) createWaterFilter() *domain.Product {
	created, err := suite.createService.CreateProduct(context.Background(), candidate(suite.T(), "Water Filter", "19.99", 10))
	require.NoError(suite.T(), err)
	return created
}

// ============================================================================
// CREATE
// ============================================================================

func (suite *ProductServicesTestSuite) TestCreateProduct_AssignsIdentifier() {
	t := suite.T()

	created := suite.createWaterFilter()

	assert.Greater(t, created.ID().Value(), int64(0))
	assert.True(t, created.IsInStock())
	assert.Equal(t, "199.9", created.TotalPrice().String())

	expected, err := domain.ParseMoney("199.90")
	require.NoError(t, err)
	assert.True(t, created.TotalPrice().Equal(expected))
}

func (suite *ProductServicesTestSuite) TestCreateProduct_IgnoresCandidateID() {
	t := suite.T()
	p, err := domain.NewProduct(domain.ProductParams{
		ID:       77,
		Name:     "Shower Filter",
		Price:    decimal.RequireFromString("5"),
		Quantity: 1,
	})
	require.NoError(t, err)

	created, err := suite.createService.CreateProduct(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID().Value())
}

func (suite *ProductServicesTestSuite) TestCreateProduct_PropagatesStoreFailure() {
	t := suite.T()
	suite.repo.SaveFn = func(ctx context.Context, product *domain.Product) (*domain.Product, error) {
		return nil, application.ErrStoreFailure
	}

	_, err := suite.createService.CreateProduct(context.Background(), candidate(t, "Water Filter", "1", 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, application.ErrStoreFailure)
}

// ============================================================================
// QUERY
// ============================================================================

func (suite *ProductServicesTestSuite) TestGetProductByID_MissingIsNotFound() {
	t := suite.T()

	_, err := suite.queryService.GetProductByID(context.Background(), 999)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "999", domainErr.Details["id"])
	assert.Equal(t, domain.ResourceProduct, domainErr.Details["resource"])
}

func (suite *ProductServicesTestSuite) TestGetProductByID_NonPositiveIsValidation() {
	_, err := suite.queryService.GetProductByID(context.Background(), 0)
	assert.ErrorIs(suite.T(), err, domain.ErrValidation)

	_, err = suite.queryService.GetProductByID(context.Background(), -4)
	assert.ErrorIs(suite.T(), err, domain.ErrValidation)
}

func (suite *ProductServicesTestSuite) TestGetProductByID_IsIdempotent() {
	t := suite.T()
	created := suite.createWaterFilter()

	first, err := suite.queryService.GetProductByID(context.Background(), created.ID().Value())
	require.NoError(t, err)
	second, err := suite.queryService.GetProductByID(context.Background(), created.ID().Value())
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.True(t, created.Equal(first))
}

func (suite *ProductServicesTestSuite) TestGetProductByID_StoreFailureIsNotNotFound() {
	t := suite.T()
	suite.repo.FindByIDFn = func(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
		return nil, application.ErrStoreFailure
	}

	_, err := suite.queryService.GetProductByID(context.Background(), 1)
	assert.ErrorIs(t, err, application.ErrStoreFailure)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
}

func (suite *ProductServicesTestSuite) TestListProducts_ServedFromCacheUntilWrite() {
	t := suite.T()
	ctx := context.Background()
	suite.createWaterFilter()

	first, err := suite.queryService.ListProducts(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	_, err = suite.queryService.ListProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, suite.repo.ListCalls)

	_, err = suite.createService.CreateProduct(ctx, candidate(t, "Shower Filter", "5.00", 2))
	require.NoError(t, err)

	after, err := suite.queryService.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, after, 2)
	assert.Equal(t, 2, suite.repo.ListCalls)
}

// ============================================================================
// UPDATE
// ============================================================================

func (suite *ProductServicesTestSuite) TestUpdateProduct_ReplacesFields() {
	t := suite.T()
	created := suite.createWaterFilter()

	updated, err := suite.updateService.UpdateProduct(context.Background(), created.ID().Value(), candidate(t, "Water Filter Pro", "24.50", 3))
	require.NoError(t, err)

	assert.Equal(t, created.ID(), updated.ID())
	assert.Equal(t, "Water Filter Pro", updated.Name().Value())
	assert.Equal(t, 3, updated.Quantity().Value())

	found, err := suite.queryService.GetProductByID(context.Background(), created.ID().Value())
	require.NoError(t, err)
	assert.True(t, updated.Equal(found))
}

func (suite *ProductServicesTestSuite) TestUpdateProduct_MissingIsNotFound() {
	_, err := suite.updateService.UpdateProduct(context.Background(), 42, candidate(suite.T(), "Water Filter", "1", 1))
	assert.ErrorIs(suite.T(), err, domain.ErrNotFound)
	assert.Equal(suite.T(), 0, len(mustList(suite)))
}

func (suite *ProductServicesTestSuite) TestUpdateProductQuantity_ToZeroIsOutOfStock() {
	t := suite.T()
	created := suite.createWaterFilter()

	updated, err := suite.updateService.UpdateProductQuantity(context.Background(), created.ID().Value(), 0)
	require.NoError(t, err)

	assert.False(t, updated.IsInStock())
	assert.Equal(t, created.Name(), updated.Name())
	assert.True(t, created.Price().Equal(updated.Price()))
}

func (suite *ProductServicesTestSuite) TestUpdateProductQuantity_NegativeIsValidation() {
	created := suite.createWaterFilter()

	_, err := suite.updateService.UpdateProductQuantity(context.Background(), created.ID().Value(), -1)
	assert.ErrorIs(suite.T(), err, domain.ErrValidation)
}

// ============================================================================
// DELETE
// ============================================================================

func (suite *ProductServicesTestSuite) TestDeleteProduct_ThenGetIsNotFound() {
	t := suite.T()
	ctx := context.Background()
	created := suite.createWaterFilter()

	require.NoError(t, suite.deleteService.DeleteProduct(ctx, created.ID().Value()))

	_, err := suite.queryService.GetProductByID(ctx, created.ID().Value())
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = suite.deleteService.DeleteProduct(ctx, created.ID().Value())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func (suite *ProductServicesTestSuite) TestDeleteProduct_InvalidatesList() {
	t := suite.T()
	ctx := context.Background()
	created := suite.createWaterFilter()
	require.Len(t, mustList(suite), 1)

	require.NoError(t, suite.deleteService.DeleteProduct(ctx, created.ID().Value()))

	assert.Empty(t, mustList(suite))
}

func mustList(suite *ProductServicesTestSuite) []*domain.Product {
	products, err := suite.queryService.ListProducts(context.Background())
	require.NoError(suite.T(), err)
	return products
}
