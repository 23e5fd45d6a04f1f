package cerr

import (
	"errors"
	"fmt"

	"github.com/bilumvv/bilum/pkg/storage"
)

// The storage wrappers translate blob-store failures into coded errors at
// the repository boundary. Missing blobs surface as NotFound; everything
// else is an internal error whose cause stays in the logs, not the response.

func WrapStorageReadError(collection string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return NewError(NotFound, fmt.Sprintf("%s not found", collection), err)
	}
	return NewError(Internal, "server error", fmt.Errorf("read %s: %w", collection, err))
}

func WrapStorageWriteError(collection string, err error) error {
	return NewError(Internal, "server error", fmt.Errorf("write %s: %w", collection, err))
}

func WrapStorageDeleteError(collection string, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return NewError(NotFound, fmt.Sprintf("%s not found", collection), err)
	}
	return NewError(Internal, "server error", fmt.Errorf("delete %s: %w", collection, err))
}
