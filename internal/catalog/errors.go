package catalog

import "fmt"

// NotFoundError indicates an unknown section or item id. Callers recover
// locally; it is never fatal.
type NotFoundError struct {
	Kind string // "section" or "item"
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

// LoadError indicates the vocabulary source is malformed. It is fatal:
// startup should abort rather than run with a partial catalog.
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load vocabulary catalog: %v", e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
