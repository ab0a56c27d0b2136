package config

import (
	"context"
	"encoding/json"

	"performx/internal/store"
)

// Record pairs the decoded settings document with the row revision the caller
// must present on update.
type Record struct {
	Doc      SystemConfig
	Revision int64
}

// ConfigSource is the slice of the sync layer the repository needs.
type ConfigSource interface {
	GetConfig(ctx context.Context) (*store.ConfigRow, error)
	UpsertConfig(ctx context.Context, row *store.ConfigRow, expectedRevision int64) error
}

type Repository interface {
	Get(ctx context.Context) (*Record, error)
	// Put writes the document at expectedRevision; 0 creates the row.
	Put(ctx context.Context, doc SystemConfig, expectedRevision int64) (*Record, error)
}

type repository struct {
	source ConfigSource
}

func NewRepository(source ConfigSource) Repository {
	return &repository{source: source}
}

func (r *repository) Get(ctx context.Context) (*Record, error) {
	row, err := r.source.GetConfig(ctx)
	if err != nil {
		return nil, err
	}

	var doc SystemConfig
	if err := json.Unmarshal([]byte(row.Data), &doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return &Record{Doc: doc, Revision: row.Revision}, nil
}

func (r *repository) Put(ctx context.Context, doc SystemConfig, expectedRevision int64) (*Record, error) {
	doc.Normalize()
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}

	row := &store.ConfigRow{
		ID:   store.ConfigRowID,
		Data: string(data),
	}
	if err := r.source.UpsertConfig(ctx, row, expectedRevision); err != nil {
		return nil, err
	}
	return &Record{Doc: doc, Revision: row.Revision}, nil
}
