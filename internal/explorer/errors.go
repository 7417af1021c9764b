package explorer

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds returned by the explorer. Callers match them with errors.Is;
// the wrapped message carries the offending value.
var (
	// ErrInvalidArgument marks malformed input: a negative year, an empty
	// selection, a country name that cannot be an identifier.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotFound marks well-formed input that matches nothing in the dataset.
	ErrNotFound = errors.New("not found")
	// ErrConfiguration marks a dataset that lacks the columns a view needs.
	ErrConfiguration = errors.New("insufficient dataset columns")
	// ErrDataUnavailable marks a view invoked while no dataset could be loaded.
	ErrDataUnavailable = errors.New("dataset unavailable")
)

// withKind tags err with one of the kinds above. Both stay reachable through
// errors.Is.
func withKind(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
