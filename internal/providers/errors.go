package providers

import (
	"errors"
	"fmt"
)

// ErrMissingDataset is returned when a required collection cannot be found.
var ErrMissingDataset = errors.New("dataset not found")

// DatasetError captures a failure to load one collection from a provider.
type DatasetError struct {
	Provider string
	Name     string
	Err      error
}

func (e *DatasetError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("%s: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s: load %s: %v", e.Provider, e.Name, e.Err)
}

func (e *DatasetError) Unwrap() error { return e.Err }

// AsDatasetError attempts to unwrap an error into a DatasetError.
func AsDatasetError(err error) (*DatasetError, bool) {
	var dsErr *DatasetError
	if errors.As(err, &dsErr) {
		return dsErr, true
	}
	return nil, false
}
