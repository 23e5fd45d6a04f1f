package repositoryimpl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bilumvv/bilum/internal/word"
	"github.com/bilumvv/bilum/pkg/cerr"
	"github.com/bilumvv/bilum/pkg/storage"
)

const (
	wordsKey            = "words.json"
	wordTranslationsKey = "word-translations.json"
)

// JSONRepository stores the headword collection as one JSON blob.
type JSONRepository struct {
	storage storage.Storage
}

func NewJSONRepository(s storage.Storage) *JSONRepository {
	return &JSONRepository{storage: s}
}

func (r *JSONRepository) List(ctx context.Context) ([]word.Word, error) {
	data, err := r.storage.Read(ctx, wordsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("words", err)
	}
	var words []word.Word
	if err := json.Unmarshal(data, &words); err != nil {
		slog.WarnContext(ctx, "discarding malformed words blob", "error", err)
		return nil, nil
	}
	return words, nil
}

func (r *JSONRepository) Save(ctx context.Context, w *word.Word) error {
	words, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range words {
		if words[i].NormalizedText == w.NormalizedText {
			words[i] = *w
			found = true
			break
		}
	}
	if !found {
		words = append(words, *w)
	}
	data, err := json.Marshal(words)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal words: %w", err))
	}
	if err := r.storage.Write(ctx, wordsKey, data); err != nil {
		return cerr.WrapStorageWriteError("words", err)
	}
	return nil
}

// TranslationJSONRepository stores the dictionary-entry collection as one
// JSON blob.
type TranslationJSONRepository struct {
	storage storage.Storage
}

func NewTranslationJSONRepository(s storage.Storage) *TranslationJSONRepository {
	return &TranslationJSONRepository{storage: s}
}

func (r *TranslationJSONRepository) List(ctx context.Context) ([]word.WordTranslation, error) {
	data, err := r.storage.Read(ctx, wordTranslationsKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, nil
		}
		return nil, cerr.WrapStorageReadError("word translations", err)
	}
	var entries []word.WordTranslation
	if err := json.Unmarshal(data, &entries); err != nil {
		slog.WarnContext(ctx, "discarding malformed word-translations blob", "error", err)
		return nil, nil
	}
	return entries, nil
}

func (r *TranslationJSONRepository) Save(ctx context.Context, wt *word.WordTranslation) error {
	entries, err := r.List(ctx)
	if err != nil {
		return err
	}
	found := false
	for i := range entries {
		if entries[i].ID == wt.ID {
			entries[i] = *wt
			found = true
			break
		}
	}
	if !found {
		entries = append(entries, *wt)
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return cerr.NewError(cerr.Internal, "server error", fmt.Errorf("failed to marshal word translations: %w", err))
	}
	if err := r.storage.Write(ctx, wordTranslationsKey, data); err != nil {
		return cerr.WrapStorageWriteError("word translations", err)
	}
	return nil
}
