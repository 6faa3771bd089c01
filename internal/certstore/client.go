package certstore

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"
)

// Client uploads team certificates to an S3-compatible object storage
// HTTP API and returns their public URLs.
type Client struct {
	BaseURL string
	APIKey  string
	Bucket  string
	HTTP    *http.Client
}

// New creates a certificate storage client.
func New(baseURL, apiKey, bucket string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Bucket:  bucket,
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// UploadResult holds the stored object's location.
type UploadResult struct {
	Path      string `json:"path"`
	PublicURL string `json:"public_url"`
}

// Upload stores raw file bytes under a timestamped safe name and
// returns the public URL.
func (c *Client) Upload(data []byte, originalName, contentType string) (*UploadResult, error) {
	objectPath := SafeObjectName(originalName)

	url := fmt.Sprintf("%s/storage/v1/object/%s/%s", c.BaseURL, c.Bucket, objectPath)
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("certstore: create request failed: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("certstore: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("certstore: upload failed (%d): %s", resp.StatusCode, string(body))
	}

	return &UploadResult{
		Path:      objectPath,
		PublicURL: fmt.Sprintf("%s/storage/v1/object/public/%s/%s", c.BaseURL, c.Bucket, objectPath),
	}, nil
}

// SafeObjectName builds a timestamped object name from an uploaded
// filename, replacing anything outside [a-z0-9] in the base name.
func SafeObjectName(originalName string) string {
	ext := path.Ext(originalName)
	base := strings.TrimSuffix(path.Base(originalName), ext)
	safe := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '_'
		}
	}, base)
	return fmt.Sprintf("%d_%s%s", time.Now().UnixMilli(), safe, ext)
}
