// Package upload tracks the single résumé file currently chosen by the user.
//
// A selection only records what was chosen; whether the file is acceptable
// (type, size) is decided at submit time, so a user who drags in an invalid
// file learns about it when they submit, not before.
package upload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// NoFileLabel is shown while nothing is selected.
const NoFileLabel = "No file selected"

// SelectedFile describes the file currently chosen for submission.
type SelectedFile struct {
	Name      string
	SizeBytes int64
	Path      string
}

// Extension returns the lowercase extension of the file name, without the dot.
func (f SelectedFile) Extension() string {
	ext := filepath.Ext(f.Name)
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Open opens the underlying file for reading.
func (f SelectedFile) Open() (io.ReadCloser, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open selected file: %w", err)
	}
	return file, nil
}

// ChangeFunc observes selection changes. label is the human-readable text for
// the file slot and selected reports whether a file is currently chosen, which
// drives submit enablement.
type ChangeFunc func(label string, selected bool)

// Selection is the single slot holding the currently chosen file. Dropped
// files and picker choices both land here; any new choice overwrites the
// previous one without warning.
type Selection struct {
	file     *SelectedFile
	onChange ChangeFunc
}

// NewSelection creates an empty selection. onChange may be nil.
func NewSelection(onChange ChangeFunc) *Selection {
	return &Selection{onChange: onChange}
}

// Select stores the file as the current selection and notifies the observer.
func (s *Selection) Select(name string, sizeBytes int64, path string) {
	s.file = &SelectedFile{Name: name, SizeBytes: sizeBytes, Path: path}
	s.notify()
}

// SelectPath stats path and stores it as the current selection. Used for
// dropped files, where only a path is delivered.
func (s *Selection) SelectPath(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat dropped file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory, not a file", info.Name())
	}
	s.Select(info.Name(), info.Size(), path)
	return nil
}

// Clear resets the slot to the no-file state and notifies the observer.
// Called when the user cancels the file picker.
func (s *Selection) Clear() {
	s.file = nil
	s.notify()
}

// Current returns the selected file, if any.
func (s *Selection) Current() (SelectedFile, bool) {
	if s.file == nil {
		return SelectedFile{}, false
	}
	return *s.file, true
}

// Label returns the text for the file slot: "<name> (<size> MB)" with the
// size in mebibytes to two decimals, or the no-file placeholder.
func (s *Selection) Label() string {
	if s.file == nil {
		return NoFileLabel
	}
	sizeInMB := float64(s.file.SizeBytes) / (1024 * 1024)
	return fmt.Sprintf("%s (%.2f MB)", s.file.Name, sizeInMB)
}

func (s *Selection) notify() {
	if s.onChange != nil {
		s.onChange(s.Label(), s.file != nil)
	}
}
