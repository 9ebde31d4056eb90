package resume

import (
	"errors"
	"fmt"
	"strings"
)

// Validate checks the fields the page cannot render without. Optional
// fields are left alone; they render empty. Every problem is reported,
// each one wrapping [ErrInvalidResume].
func (r Resume) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidResume, fmt.Sprintf(format, args...)))
	}

	if strings.TrimSpace(r.Profile.Name) == "" {
		fail("profile name is required")
	}

	if len(r.Qualifications) == 0 {
		fail("at least one qualification is required")
	}
	for i, q := range r.Qualifications {
		if strings.TrimSpace(q.Year) == "" {
			fail("qualification %d: year is required", i)
		}
		if strings.TrimSpace(q.Title) == "" {
			fail("qualification %d: title is required", i)
		}
		if !q.Color.Valid() {
			fail("qualification %d: unknown color %q", i, q.Color)
		}
	}

	if len(r.Philosophies) == 0 {
		fail("at least one philosophy is required")
	}
	for i, p := range r.Philosophies {
		if strings.TrimSpace(p.Title) == "" {
			fail("philosophy %d: title is required", i)
		}
		if !p.Color.Valid() {
			fail("philosophy %d: unknown color %q", i, p.Color)
		}
	}

	return errors.Join(errs...)
}
