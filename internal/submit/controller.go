// Package submit gates and executes résumé submissions: local validation, the
// Idle/Submitting/Results/Error state machine, and the request lifecycle.
package submit

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"resume-analyzer-desktop/internal/client"
	"resume-analyzer-desktop/internal/models"
	"resume-analyzer-desktop/internal/store"
	"resume-analyzer-desktop/internal/upload"
)

const (
	// DefaultJobTitle is substituted when the title input is blank.
	DefaultJobTitle = "Frontend Intern"

	// MaxFileSizeBytes is the upload size limit.
	MaxFileSizeBytes = 10 * 1024 * 1024
)

var allowedExtensions = map[string]bool{
	"pdf":  true,
	"doc":  true,
	"docx": true,
}

// Analyzer submits one résumé and returns the parsed analysis.
type Analyzer interface {
	Analyze(ctx context.Context, file io.Reader, filename, title string) (models.AnalysisResult, error)
}

// Controller runs exactly one submission at a time end-to-end: validation,
// state transitions, the request, and storing the result.
type Controller struct {
	analyzer Analyzer
	store    *store.ResultStore
	view     View
	logger   zerolog.Logger

	mu    sync.Mutex
	state UIState
}

// NewController creates a controller in the Idle state.
func NewController(analyzer Analyzer, resultStore *store.ResultStore, view View, logger zerolog.Logger) *Controller {
	return &Controller{
		analyzer: analyzer,
		store:    resultStore,
		view:     view,
		logger:   logger,
		state:    StateIdle,
	}
}

// State returns the current UI state.
func (c *Controller) State() UIState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// DismissError hides the error banner.
func (c *Controller) DismissError() {
	c.dispatch(Event{Kind: EventErrorDismissed})
}

// CloseResults closes the results view.
func (c *Controller) CloseResults() {
	c.dispatch(Event{Kind: EventResultsClosed})
}

// Submit validates the selection and title and, if they pass, runs one
// submission to completion. It blocks until the request resolves, so callers
// on a UI thread run it in a goroutine; the submit control is disabled for the
// whole duration, which keeps submissions sequential. On every outcome the
// submit control is restored as the final effect.
func (c *Controller) Submit(ctx context.Context, selection *upload.Selection, titleInput string) error {
	if c.State() == StateSubmitting {
		return nil
	}

	file, ok := selection.Current()
	if !ok {
		return c.reject(MsgNoFile)
	}

	if file.SizeBytes > MaxFileSizeBytes {
		return c.reject(MsgFileTooLarge)
	}

	title := strings.TrimSpace(titleInput)
	if title == "" {
		title = DefaultJobTitle
	}
	if title == "" {
		// Unreachable once the default is applied; kept as a guard on the
		// submission contract.
		return c.reject(MsgBlankTitle)
	}

	if !allowedExtensions[file.Extension()] {
		return c.reject(MsgBadFileType)
	}

	c.dispatch(Event{Kind: EventSubmitValid})
	c.logger.Info().
		Str("filename", file.Name).
		Int64("size_bytes", file.SizeBytes).
		Str("title", title).
		Msg("Submitting resume")

	reader, err := file.Open()
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to open selected file")
		c.dispatch(Event{Kind: EventFailed, Message: MsgGenericFailure})
		return err
	}
	defer reader.Close()

	result, err := c.analyzer.Analyze(ctx, reader, file.Name, title)
	if err != nil {
		message := MsgGenericFailure
		var svcErr *client.ServiceError
		if errors.As(err, &svcErr) {
			message = svcErr.Message
		}
		c.logger.Error().Err(err).Msg("Submission failed")
		c.dispatch(Event{Kind: EventFailed, Message: message})
		return err
	}

	c.store.Set(result)
	c.logger.Info().Int("rating", result.ResumeRating).Msg("Submission succeeded")
	c.dispatch(Event{Kind: EventSucceeded})

	return nil
}

func (c *Controller) reject(message string) error {
	c.logger.Warn().Str("reason", message).Msg("Submission rejected")
	c.dispatch(Event{Kind: EventSubmitInvalid, Message: message})
	return &ValidationError{Message: message}
}

// dispatch feeds one event through the transition function and applies the
// resulting effects in order.
func (c *Controller) dispatch(event Event) {
	c.mu.Lock()
	next, effects := Transition(c.state, event)
	c.state = next
	c.mu.Unlock()

	for _, effect := range effects {
		c.view.Apply(effect)
	}
}
