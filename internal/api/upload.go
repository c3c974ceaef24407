// internal/api/upload.go
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// File is a file staged for upload
type File struct {
	Name   string
	Reader io.Reader
}

// uploadResponse is the backend's upload reply
type uploadResponse struct {
	URL string `json:"url"`
}

// UploadFile uploads a single file and returns its served URL. Uploads run
// before product create/update so the product payload carries URLs only.
func (c *Client) UploadFile(ctx context.Context, file File) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", file.Name)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart form: %w", err)
	}
	if _, err := io.Copy(part, file.Reader); err != nil {
		return "", fmt.Errorf("failed to read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/upload", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var resp uploadResponse
	if err := c.send(req, &resp); err != nil {
		return "", err
	}
	return resp.URL, nil
}

// UploadFiles uploads files in order and returns their URLs in the same order
func (c *Client) UploadFiles(ctx context.Context, files []File) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, file := range files {
		url, err := c.UploadFile(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s: %w", file.Name, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
