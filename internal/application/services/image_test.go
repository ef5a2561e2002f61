package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DanielPopoola/aquapure/internal/application/services"
	"github.com/DanielPopoola/aquapure/internal/config"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/cache"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/objectstore"
	"github.com/DanielPopoola/aquapure/internal/infrastructure/objectstore/mocks"
	"github.com/DanielPopoola/aquapure/internal/testhelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const presignExpiry = 7 * 24 * time.Hour

type ImageServiceTestSuite struct {
	suite.Suite
	index       *testhelpers.MockImageIndex
	pending     *testhelpers.MockPendingDeletionQueue
	mockStorage *mocks.MockStorage
	service     *services.ImageService
}

func TestImageServiceSuite(t *testing.T) {
	suite.Run(t, new(ImageServiceTestSuite))
}

func (suite *ImageServiceTestSuite) SetupTest() {
	logger := testhelpers.DiscardLogger()

	suite.index = testhelpers.NewMockImageIndex()
	suite.pending = testhelpers.NewMockPendingDeletionQueue()
	suite.mockStorage = mocks.NewMockStorage(suite.T())

	searchCache := cache.New[[]*domain.ImageDocument]("images", config.CacheConfig{Size: 16}, logger)
	suite.service = services.NewImageService(
		suite.index,
		suite.mockStorage,
		suite.pending,
		searchCache,
		presignExpiry,
		logger,
	)
}

func uploadCommand(fileName, description string, tags ...string) services.UploadImageCommand {
	return services.UploadImageCommand{
		FileName:    fileName,
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
		Description: description,
		Tags:        tags,
	}
}

func (suite *ImageServiceTestSuite) expectStored() {
	suite.mockStorage.EXPECT().
		PutObject(mock.Anything, mock.AnythingOfType("string"), "image/png", []byte("png-bytes")).
		Return(nil)
	suite.mockStorage.EXPECT().
		PresignGetURL(mock.AnythingOfType("string"), presignExpiry).
		RunAndReturn(func(objectName string, _ time.Duration) (string, error) {
			return "https://cdn.example/images/" + objectName + "?signature=abc", nil
		})
}

func (suite *ImageServiceTestSuite) upload(cmd services.UploadImageCommand) *domain.ImageDocument {
	doc, err := suite.service.Upload(context.Background(), cmd)
	require.NoError(suite.T(), err)
	return doc
}

// ============================================================================
// UPLOAD
// ============================================================================

func (suite *ImageServiceTestSuite) TestUpload_StoresAndIndexes() {
	t := suite.T()
	suite.expectStored()

	doc := suite.upload(uploadCommand("Kitchen.PNG", " Under sink ", "kitchen", " filter ", "kitchen"))

	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, doc.ID+".png", doc.ObjectName)
	assert.Equal(t, "Kitchen.PNG", doc.FileName)
	assert.Equal(t, "Under sink", doc.Description)
	assert.Equal(t, []string{"kitchen", "filter"}, doc.Tags)
	assert.Equal(t, int64(len("png-bytes")), doc.FileSize)
	assert.True(t, strings.HasPrefix(doc.FileURL, "https://cdn.example/images/"+doc.ObjectName))
	assert.Equal(t, 1, suite.index.Len())
}

func (suite *ImageServiceTestSuite) TestUpload_EmptyFileIsValidation() {
	cmd := uploadCommand("a.png", "")
	cmd.Data = nil

	_, err := suite.service.Upload(context.Background(), cmd)
	assert.ErrorIs(suite.T(), err, domain.ErrValidation)
	suite.mockStorage.AssertNotCalled(suite.T(), "PutObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ImageServiceTestSuite) TestUpload_StorageFailureIsReturned() {
	t := suite.T()
	storageErr := &objectstore.StorageError{Code: "INTERNAL", Message: "boom", StatusCode: 500}
	suite.mockStorage.EXPECT().
		PutObject(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(storageErr)

	_, err := suite.service.Upload(context.Background(), uploadCommand("a.png", ""))

	var target *objectstore.StorageError
	require.True(t, errors.As(err, &target))
	assert.Equal(t, 0, suite.index.Len())
}

func (suite *ImageServiceTestSuite) TestUpload_IndexFailureRemovesObject() {
	t := suite.T()
	suite.expectStored()
	suite.index.SaveFn = func(ctx context.Context, doc *domain.ImageDocument) error {
		return errors.New("index unavailable")
	}

	var deleted string
	suite.mockStorage.EXPECT().
		DeleteObject(mock.Anything, mock.Anything).
		Run(func(_ context.Context, objectName string) { deleted = objectName }).
		Return(nil).
		Once()

	_, err := suite.service.Upload(context.Background(), uploadCommand("a.jpg", ""))
	require.Error(t, err)
	assert.True(t, strings.HasSuffix(deleted, ".jpg"))

	_, queued := suite.pending.Get(deleted)
	assert.False(t, queued)
}

func (suite *ImageServiceTestSuite) TestUpload_FailedCompensationIsQueued() {
	t := suite.T()
	suite.expectStored()
	suite.index.SaveFn = func(ctx context.Context, doc *domain.ImageDocument) error {
		return errors.New("index unavailable")
	}

	var deleted string
	suite.mockStorage.EXPECT().
		DeleteObject(mock.Anything, mock.Anything).
		Run(func(_ context.Context, objectName string) { deleted = objectName }).
		Return(errors.New("storage down"))

	_, err := suite.service.Upload(context.Background(), uploadCommand("a.jpg", ""))
	require.Error(t, err)

	entry, queued := suite.pending.Get(deleted)
	require.True(t, queued)
	assert.Equal(t, "storage down", entry.LastError)
}

// ============================================================================
// SEARCH
// ============================================================================

func (suite *ImageServiceTestSuite) TestSearch_CaseInsensitiveNewestFirst() {
	t := suite.T()
	suite.expectStored()

	older := suite.upload(uploadCommand("kitchen.png", "Carbon block", "Filter"))
	time.Sleep(2 * time.Millisecond)
	newer := suite.upload(uploadCommand("shower.png", "Shower head", "filter", "bathroom"))

	byTag, err := suite.service.SearchByTag(context.Background(), "FILTER")
	require.NoError(t, err)
	require.Len(t, byTag, 2)
	assert.Equal(t, newer.ID, byTag[0].ID)
	assert.Equal(t, older.ID, byTag[1].ID)

	byDesc, err := suite.service.SearchByDescription(context.Background(), "carbon")
	require.NoError(t, err)
	require.Len(t, byDesc, 1)
	assert.Equal(t, older.ID, byDesc[0].ID)

	byName, err := suite.service.SearchByFileName(context.Background(), "SHOWER")
	require.NoError(t, err)
	require.Len(t, byName, 1)
	assert.Equal(t, newer.ID, byName[0].ID)
}

func (suite *ImageServiceTestSuite) TestSearch_BlankKeywordIsValidation() {
	_, err := suite.service.SearchByTag(context.Background(), "   ")
	assert.ErrorIs(suite.T(), err, domain.ErrValidation)

	_, err = suite.service.SearchByDescription(context.Background(), "")
	assert.ErrorIs(suite.T(), err, domain.ErrValidation)

	_, err = suite.service.SearchByFileName(context.Background(), "")
	assert.ErrorIs(suite.T(), err, domain.ErrValidation)
}

func (suite *ImageServiceTestSuite) TestSearch_CachedUntilUpload() {
	t := suite.T()
	suite.expectStored()
	suite.upload(uploadCommand("a.png", "", "filter"))

	_, err := suite.service.SearchByTag(context.Background(), "filter")
	require.NoError(t, err)
	_, err = suite.service.SearchByTag(context.Background(), "Filter")
	require.NoError(t, err)
	assert.Equal(t, 1, suite.index.SearchCalls)

	suite.upload(uploadCommand("b.png", "", "filter"))

	results, err := suite.service.SearchByTag(context.Background(), "filter")
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, 2, suite.index.SearchCalls)
}

// ============================================================================
// DELETE
// ============================================================================

func (suite *ImageServiceTestSuite) TestDelete_RemovesObjectAndDocument() {
	t := suite.T()
	suite.expectStored()
	doc := suite.upload(uploadCommand("a.png", "", "filter"))

	suite.mockStorage.EXPECT().DeleteObject(mock.Anything, doc.ObjectName).Return(nil).Once()

	require.NoError(t, suite.service.Delete(context.Background(), doc.ID))
	assert.Equal(t, 0, suite.index.Len())

	results, err := suite.service.SearchByTag(context.Background(), "filter")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func (suite *ImageServiceTestSuite) TestDelete_UnknownIsNotFound() {
	err := suite.service.Delete(context.Background(), "missing")
	assert.ErrorIs(suite.T(), err, domain.ErrNotFound)
}

func (suite *ImageServiceTestSuite) TestDelete_StorageFailureQueuesObject() {
	t := suite.T()
	suite.expectStored()
	doc := suite.upload(uploadCommand("a.png", ""))

	suite.mockStorage.EXPECT().
		DeleteObject(mock.Anything, doc.ObjectName).
		Return(&objectstore.StorageError{Code: "UNAVAILABLE", Message: "down", StatusCode: 503})

	require.NoError(t, suite.service.Delete(context.Background(), doc.ID))
	assert.Equal(t, 0, suite.index.Len())

	entry, queued := suite.pending.Get(doc.ObjectName)
	require.True(t, queued)
	assert.Contains(t, entry.LastError, "down")
}
