package media

import (
	"context"
	"errors"
	"io"
)

// ErrSaverDisabled indicates that generated-image storage is not enabled.
var ErrSaverDisabled = errors.New("media saver disabled")

// SaveInput wraps the payload required for persisting a generated image.
type SaveInput struct {
	Filename    string
	ContentType string
	Body        io.Reader
	Size        int64
}

// SaveResult captures the canonical object key and its accessible URL.
type SaveResult struct {
	Key string
	URL string
}

// Saver hides the backing implementation for storing generated images.
type Saver interface {
	Save(ctx context.Context, input SaveInput) (SaveResult, error)
}

type disabledSaver struct{}

func (disabledSaver) Save(_ context.Context, _ SaveInput) (SaveResult, error) {
	return SaveResult{}, ErrSaverDisabled
}

// Disabled returns a saver that always signals disabled storage.
func Disabled() Saver {
	return disabledSaver{}
}
