package usecase

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"

	"vidhub/domain/model"
	"vidhub/domain/repository"

	"github.com/google/uuid"
)

var errMediaUnavailable = fmt.Errorf("media storage unavailable: %w", model.ErrInvalidInput)

// uploadMedia streams a multipart file to the media store and returns its
// public URL. A nil file header is not an error; it yields an empty URL.
func uploadMedia(ctx context.Context, store repository.IMediaStore, prefix string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", nil
	}
	if store == nil {
		return "", errMediaUnavailable
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	name := fmt.Sprintf("%s/%s%s", prefix, uuid.NewString(), filepath.Ext(fh.Filename))
	return store.Put(ctx, name, f, fh.Size, fh.Header.Get("Content-Type"))
}
