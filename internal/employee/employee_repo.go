package employee

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"performx/internal/store"
)

// casAttempts bounds the read-mutate-save loop used for server-side appends.
const casAttempts = 3

// Record pairs a decoded employee document with the row revision the caller
// must present on its next write.
type Record struct {
	Doc      Employee
	Revision int64
}

// DocumentSource is the slice of the syncer the repository needs.
type DocumentSource interface {
	ListEmployees(ctx context.Context) ([]store.EmployeeRow, error)
	GetEmployee(ctx context.Context, id string) (*store.EmployeeRow, error)
	InsertEmployee(ctx context.Context, row *store.EmployeeRow) error
	UpdateEmployee(ctx context.Context, row *store.EmployeeRow, expectedRevision int64) error
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	Insert(ctx context.Context, doc Employee) (*Record, error)
	Save(ctx context.Context, doc Employee, expectedRevision int64) (*Record, error)
	// Mutate runs fn against the current document and saves the result,
	// retrying on revision conflicts so concurrent appends never clobber
	// each other.
	Mutate(ctx context.Context, id string, fn func(doc *Employee) error) (*Record, error)
}

type repository struct {
	source DocumentSource
}

func NewRepository(source DocumentSource) Repository {
	return &repository{source: source}
}

func (r *repository) List(ctx context.Context) ([]Record, error) {
	rows, err := r.source.ListEmployees(ctx)
	if err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		rec, err := decodeRow(row)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

func (r *repository) Get(ctx context.Context, id string) (*Record, error) {
	row, err := r.source.GetEmployee(ctx, id)
	if err != nil {
		return nil, err
	}
	return decodeRow(*row)
}

func (r *repository) Insert(ctx context.Context, doc Employee) (*Record, error) {
	doc.Normalize()
	row, err := encodeDoc(doc)
	if err != nil {
		return nil, err
	}
	if err := r.source.InsertEmployee(ctx, row); err != nil {
		return nil, err
	}
	return &Record{Doc: doc, Revision: row.Revision}, nil
}

func (r *repository) Save(ctx context.Context, doc Employee, expectedRevision int64) (*Record, error) {
	doc.Normalize()
	row, err := encodeDoc(doc)
	if err != nil {
		return nil, err
	}
	if err := r.source.UpdateEmployee(ctx, row, expectedRevision); err != nil {
		return nil, err
	}
	return &Record{Doc: doc, Revision: row.Revision}, nil
}

func (r *repository) Mutate(ctx context.Context, id string, fn func(doc *Employee) error) (*Record, error) {
	var lastErr error
	for attempt := 0; attempt < casAttempts; attempt++ {
		rec, err := r.Get(ctx, id)
		if err != nil {
			return nil, err
		}
		doc := rec.Doc
		if err := fn(&doc); err != nil {
			return nil, err
		}
		out, err := r.Save(ctx, doc, rec.Revision)
		if err == nil {
			return out, nil
		}
		if !errors.Is(err, store.ErrRevisionConflict) {
			return nil, err
		}
		lastErr = err
	}
	return nil, lastErr
}

func decodeRow(row store.EmployeeRow) (*Record, error) {
	var doc Employee
	if err := json.Unmarshal([]byte(row.Data), &doc); err != nil {
		return nil, fmt.Errorf("decode employee row %s: %w", row.ID, err)
	}
	doc.Normalize()
	return &Record{Doc: doc, Revision: row.Revision}, nil
}

func encodeDoc(doc Employee) (*store.EmployeeRow, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode employee %s: %w", doc.ID, err)
	}
	return &store.EmployeeRow{ID: doc.ID, Data: string(data)}, nil
}
