// Package client talks to the remote résumé analysis service over HTTP.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"resume-analyzer-desktop/internal/models"
)

const uploadPath = "/upload"

// Client submits résumés to the analysis service and parses its responses.
type Client struct {
	serverURL  string
	httpClient *http.Client
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for the analysis service at serverURL,
// e.g. http://localhost:8000.
func New(serverURL string, options ...Option) *Client {
	c := &Client{
		serverURL: serverURL,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger: zerolog.Nop(),
	}

	for _, option := range options {
		option(c)
	}

	return c
}

// Analyze uploads one résumé with its target job title and returns the parsed
// analysis. The request is a multipart POST with fields "resume" (the file,
// original filename preserved) and "title".
//
// Service-side failures (envelope status "error") are returned as
// *ServiceError with the server's message. Everything else that goes wrong
// (network failure, non-2xx status, undecodable body) is a *TransportError.
func (c *Client) Analyze(ctx context.Context, file io.Reader, filename, title string) (models.AnalysisResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("resume", filename)
	if err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("failed to create form file: %w", err)}
	}
	if _, err := io.Copy(part, file); err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("failed to read resume: %w", err)}
	}
	if err := writer.WriteField("title", title); err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("failed to write title field: %w", err)}
	}
	if err := writer.Close(); err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("failed to finalize form: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+uploadPath, &body)
	if err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	c.logger.Debug().Str("filename", filename).Str("title", title).Msg("Submitting resume for analysis")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("server returned status %d", resp.StatusCode)}
	}

	var envelope models.AnalysisEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	if envelope.Status == models.StatusError {
		c.logger.Warn().Str("message", envelope.Error).Msg("Analysis service reported an error")
		return models.DefaultAnalysisResult(), &ServiceError{Message: envelope.Error}
	}

	result, err := models.MergeResult(envelope.Data)
	if err != nil {
		return models.DefaultAnalysisResult(), &TransportError{Err: fmt.Errorf("failed to parse analysis payload: %w", err)}
	}

	c.logger.Info().Int("rating", result.ResumeRating).Msg("Analysis received")

	return result, nil
}
