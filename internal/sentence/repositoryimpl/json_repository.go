package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/sentence"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const sentencesKey = "sentences.json"

// JSONRepository stores the whole sentence collection as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) List(ctx context.Context) ([]sentence.Sentence, error) {
	data, err := r.storage.Read(ctx, sentencesKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("sentences", err)
	}
	var sentences []sentence.Sentence
	if err := json.Unmarshal(data, &sentences); err != nil {
		slog.WarnContext(ctx, "discarding malformed sentences blob", "error", err)
		return nil, nil
	}
	return sentences, nil
}

func (r *JSONRepository) Save(ctx context.Context, s *sentence.Sentence) error {
	sentences, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range sentences {
		if sentences[i].ID == s.ID {
			sentences[i] = *s
			found = true
			break
		}
	}
	if !found {
		sentences = append(sentences, *s)
	}
	return r.ReplaceAll(ctx, sentences)
}

func (r *JSONRepository) ReplaceAll(ctx context.Context, sentences []sentence.Sentence) error {
	data, err := json.Marshal(sentences)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal sentences: %w", err))
	}
	if err := r.storage.Write(ctx, sentencesKey, data); err != nil {
		return cerr.WrapStorageWriteError("sentences", err)
	}
	return nil
}
