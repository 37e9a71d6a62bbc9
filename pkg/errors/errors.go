package errors

import (
	"fmt"
)

// SchemaError represents a structural validation failure against the registry
// schema, either for the merged item list or an individual style payload.
type SchemaError struct {
	Pointer string
	Message string
	Err     error
}

// NewSchemaError constructs a SchemaError. Pointer locates the offending
// element and may be empty for document-level failures.
func NewSchemaError(pointer, message string, err error) error {
	return &SchemaError{Pointer: pointer, Message: message, Err: err}
}

func (e *SchemaError) Error() string {
	if e == nil {
		return ""
	}
	if e.Pointer != "" {
		return fmt.Sprintf("schema error: %s: %s", e.Pointer, e.Message)
	}
	return fmt.Sprintf("schema error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *SchemaError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ReadError represents a failure to read a referenced file from disk.
type ReadError struct {
	Path string
	Err  error
}

// NewReadError constructs a ReadError for the given path.
func NewReadError(path string, err error) error {
	return &ReadError{Path: path, Err: err}
}

func (e *ReadError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("read error: %s: %v", e.Path, e.Err)
}

// Unwrap exposes the underlying error.
func (e *ReadError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CrawlError represents a failure while discovering registry items in the
// content tree.
type CrawlError struct {
	Dir string
	Err error
}

// NewCrawlError constructs a CrawlError for the given directory.
func NewCrawlError(dir string, err error) error {
	return &CrawlError{Dir: dir, Err: err}
}

func (e *CrawlError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("crawl error: %s: %v", e.Dir, e.Err)
}

// Unwrap exposes the underlying error.
func (e *CrawlError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RenderError represents a failure while rendering a generated artifact.
type RenderError struct {
	Artifact string
	Err      error
}

// NewRenderError constructs a RenderError for the named artifact.
func NewRenderError(artifact string, err error) error {
	return &RenderError{Artifact: artifact, Err: err}
}

func (e *RenderError) Error() string {
	if e == nil {
		return ""
	}
	if e.Artifact != "" {
		return fmt.Sprintf("render error [%s]: %v", e.Artifact, e.Err)
	}
	return fmt.Sprintf("render error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *RenderError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
