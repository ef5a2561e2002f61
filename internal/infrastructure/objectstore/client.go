package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DanielPopoola/aquapure/internal/config"
)

// Storage is the contract shared by the HTTP client and its decorators.
type Storage interface {
	EnsureBucket(ctx context.Context) error
	PutObject(ctx context.Context, objectName, contentType string, data []byte) error
	DeleteObject(ctx context.Context, objectName string) error
	PresignGetURL(objectName string, expiry time.Duration) (string, error)
}

// HTTPClient talks to a path-style bucket API:
// HEAD/PUT /{bucket} and PUT/DELETE /{bucket}/{object}.
type HTTPClient struct {
	baseURL     string
	publicURL   string
	bucket      string
	accessToken string
	signer      *Signer
	httpClient  *http.Client
}

func NewClient(cfg config.ObjectStorageConfig) *HTTPClient {
	publicURL := cfg.PublicURL
	if publicURL == "" {
		publicURL = cfg.BaseURL
	}

	return &HTTPClient{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		publicURL:   strings.TrimRight(publicURL, "/"),
		bucket:      cfg.Bucket,
		accessToken: cfg.AccessToken,
		signer:      NewSigner(cfg.SigningSecret),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// EnsureBucket creates the bucket unless it already exists.
func (c *HTTPClient) EnsureBucket(ctx context.Context) error {
	resp, err := c.send(ctx, http.MethodHead, c.bucketURL(), "", nil)
	if err != nil {
		return err
	}
	resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	default:
		return &StorageError{
			Code:       "bucket_check_failed",
			Message:    fmt.Sprintf("unexpected status checking bucket %s", c.bucket),
			StatusCode: resp.StatusCode,
		}
	}

	resp, err = c.send(ctx, http.MethodPut, c.bucketURL(), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// Another instance may have created it in the meantime.
	if resp.StatusCode == http.StatusConflict {
		return nil
	}
	return checkResponse(resp)
}

func (c *HTTPClient) PutObject(ctx context.Context, objectName, contentType string, data []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := c.send(ctx, http.MethodPut, c.objectURL(objectName), contentType, data)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return checkResponse(resp)
}

// DeleteObject removes the object. Deleting a missing object succeeds.
func (c *HTTPClient) DeleteObject(ctx context.Context, objectName string) error {
	resp, err := c.send(ctx, http.MethodDelete, c.objectURL(objectName), "", nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil
	}
	return checkResponse(resp)
}

// PresignGetURL returns a public link to the object valid for expiry.
func (c *HTTPClient) PresignGetURL(objectName string, expiry time.Duration) (string, error) {
	if objectName == "" {
		return "", fmt.Errorf("object name is required")
	}
	if expiry <= 0 {
		return "", fmt.Errorf("expiry must be positive")
	}

	path := c.objectPath(objectName)
	expires := c.signer.now().Add(expiry).Unix()

	query := url.Values{}
	query.Set("expires", fmt.Sprintf("%d", expires))
	query.Set("signature", c.signer.Sign(http.MethodGet, path, expires))

	return c.publicURL + path + "?" + query.Encode(), nil
}

func (c *HTTPClient) bucketURL() string {
	return c.baseURL + "/" + url.PathEscape(c.bucket)
}

func (c *HTTPClient) objectPath(objectName string) string {
	return "/" + url.PathEscape(c.bucket) + "/" + url.PathEscape(objectName)
}

func (c *HTTPClient) objectURL(objectName string) string {
	return c.baseURL + c.objectPath(objectName)
}

func (c *HTTPClient) send(ctx context.Context, method, rawURL, contentType string, body []byte) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	return resp, nil
}

func checkResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(resp.Body)
	var errResp StorageErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil || errResp.Err == "" {
		return &StorageError{
			Code:       "unexpected_status",
			Message:    strings.TrimSpace(string(body)),
			StatusCode: resp.StatusCode,
		}
	}

	return &StorageError{
		Code:       errResp.Err,
		Message:    errResp.Message,
		StatusCode: resp.StatusCode,
	}
}
