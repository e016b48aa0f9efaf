package session

import "fmt"

// InsufficientItemsError indicates a section is too small to quiz. The
// caller reports the section as unavailable; this is never fatal.
type InsufficientItemsError struct {
	SectionID string
	Items     int
	Required  int
}

func (e *InsufficientItemsError) Error() string {
	return fmt.Sprintf("section %q has %d items, %d required to quiz", e.SectionID, e.Items, e.Required)
}
