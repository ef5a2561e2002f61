package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/DanielPopoola/aquapure/internal/interfaces/rest"
	"github.com/DanielPopoola/aquapure/internal/tests/e2e/testdata"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to a running service.
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// APIError is a non-2xx reply.
type APIError struct {
	StatusCode int
	Body       rest.ErrorResponse
}

func (e *APIError) Error() string {
	return fmt.Sprintf("status %d: %s: %s", e.StatusCode, e.Body.Error.Code, e.Body.Error.Message)
}

type envelope[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
}

func (c *TestClient) CreateProduct(t *testing.T, p testdata.SampleProduct) (*rest.ProductResponse, error) {
	body := fmt.Sprintf(`{"name":%q,"description":%q,"price":%q,"quantity":%d}`, p.Name, p.Description, p.Price, p.Quantity)
	return doJSON[rest.ProductResponse](t, c, http.MethodPost, "/api/products", body)
}

func (c *TestClient) GetProduct(t *testing.T, id int64) (*rest.ProductResponse, error) {
	return doJSON[rest.ProductResponse](t, c, http.MethodGet, "/api/products/"+strconv.FormatInt(id, 10), "")
}

func (c *TestClient) ListProducts(t *testing.T) ([]rest.ProductResponse, error) {
	list, err := doJSON[[]rest.ProductResponse](t, c, http.MethodGet, "/api/products", "")
	if err != nil {
		return nil, err
	}
	return *list, nil
}

func (c *TestClient) UpdateQuantity(t *testing.T, id int64, quantity int) (*rest.ProductResponse, error) {
	return doJSON[rest.ProductResponse](t, c, http.MethodPatch,
		"/api/products/"+strconv.FormatInt(id, 10)+"/quantity",
		fmt.Sprintf(`{"quantity":%d}`, quantity))
}

func (c *TestClient) DeleteProduct(t *testing.T, id int64) error {
	return c.doNoContent(t, http.MethodDelete, "/api/products/"+strconv.FormatInt(id, 10))
}

func (c *TestClient) UploadImage(t *testing.T, fileName, description, tags string) (*rest.ImageResponse, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(testdata.PixelPNG)
	require.NoError(t, err)
	require.NoError(t, writer.WriteField("description", description))
	require.NoError(t, writer.WriteField("tags", tags))
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/api/images", body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return send[rest.ImageResponse](t, c, req)
}

func (c *TestClient) SearchImagesByTag(t *testing.T, tag string) ([]rest.ImageResponse, error) {
	list, err := doJSON[[]rest.ImageResponse](t, c, http.MethodGet, "/api/images/search/tag/"+tag, "")
	if err != nil {
		return nil, err
	}
	return *list, nil
}

func (c *TestClient) DeleteImage(t *testing.T, id string) error {
	return c.doNoContent(t, http.MethodDelete, "/api/images/"+id)
}

func (c *TestClient) Health() (int, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/api/health")
	if err != nil {
		return 0, err
	}
	resp.Body.Close()
	return resp.StatusCode, nil
}

func doJSON[T any](t *testing.T, c *TestClient, method, path, body string) (*T, error) {
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	return send[T](t, c, req)
}

func send[T any](t *testing.T, c *TestClient, req *http.Request) (*T, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.Unmarshal(bodyBytes, &apiErr.Body)
		return nil, apiErr
	}

	var env envelope[T]
	require.NoError(t, json.Unmarshal(bodyBytes, &env))
	return &env.Data, nil
}

func (c *TestClient) doNoContent(t *testing.T, method, path string) error {
	req, err := http.NewRequest(method, c.baseURL+path, nil)
	require.NoError(t, err)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr.Body)
		return apiErr
	}
	return nil
}
