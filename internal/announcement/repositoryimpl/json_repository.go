package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/announcement"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const announcementsKey = "announcements.json"

// JSONRepository stores the whole announcement collection as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) List(ctx context.Context) ([]announcement.Announcement, error) {
	data, err := r.storage.Read(ctx, announcementsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("announcements", err)
	}
	var announcements []announcement.Announcement
	if err := json.Unmarshal(data, &announcements); err != nil {
		slog.WarnContext(ctx, "discarding malformed announcements blob", "error", err)
		return nil, nil
	}
	return announcements, nil
}

func (r *JSONRepository) Save(ctx context.Context, a *announcement.Announcement) error {
	announcements, err := r.List(ctx)
	if err != nil {
		return err
	}
	announcements = append([]announcement.Announcement{*a}, announcements...)
	data, err := json.Marshal(announcements)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal announcements: %w", err))
	}
	if err := r.storage.Write(ctx, announcementsKey, data); err != nil {
		return cerr.WrapStorageWriteError("announcements", err)
	}
	return nil
}
