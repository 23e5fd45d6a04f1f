package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/forum"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const topicsKey = "forum-topics.json"

// JSONRepository stores the whole topic collection as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) List(ctx context.Context) ([]forum.Topic, error) {
	data, err := r.storage.Read(ctx, topicsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("forum topics", err)
	}
	var topics []forum.Topic
	if err := json.Unmarshal(data, &topics); err != nil {
		slog.WarnContext(ctx, "discarding malformed forum-topics blob", "error", err)
		return nil, nil
	}
	return topics, nil
}

func (r *JSONRepository) Save(ctx context.Context, t *forum.Topic) error {
	topics, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range topics {
		if topics[i].ID == t.ID {
			topics[i] = *t
			found = true
			break
		}
	}
	if !found {
		topics = append([]forum.Topic{*t}, topics...)
	}
	data, err := json.Marshal(topics)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal forum topics: %w", err))
	}
	if err := r.storage.Write(ctx, topicsKey, data); err != nil {
		return cerr.WrapStorageWriteError("forum topics", err)
	}
	return nil
}
