package absence

import (
	"context"
	"errors"
	"testing"

	"performx/internal/employee"
	employeeerrors "performx/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	docs map[string]*employee.Record
}

func newFakeRepo(docs ...employee.Employee) *fakeRepo {
	f := &fakeRepo{docs: make(map[string]*employee.Record)}
	for _, doc := range docs {
		doc.Normalize()
		f.docs[doc.ID] = &employee.Record{Doc: doc, Revision: 1}
	}
	return f
}

func (f *fakeRepo) List(_ context.Context) ([]employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Get(_ context.Context, id string) (*employee.Record, error) {
	rec, ok := f.docs[id]
	if !ok {
		return nil, errors.New("not found")
	}
	out := *rec
	return &out, nil
}

func (f *fakeRepo) Insert(_ context.Context, doc employee.Employee) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Save(_ context.Context, doc employee.Employee, expectedRevision int64) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Mutate(_ context.Context, id string, fn func(doc *employee.Employee) error) (*employee.Record, error) {
	rec, ok := f.docs[id]
	if !ok {
		return nil, employeeerrors.ErrEmployeeNotFound
	}
	doc := rec.Doc
	if err := fn(&doc); err != nil {
		return nil, err
	}
	rec.Doc = doc
	rec.Revision++
	return rec, nil
}

func TestService_Add_PrependsNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo(employee.Employee{
		ID:   "3",
		Name: "Kevin Smith",
		Absences: []employee.Absence{
			{ID: "a1", Date: "2024-01-10", Type: "Sick"},
		},
	})
	svc := NewService(repo)

	resp, err := svc.Add(ctx, "3", CreateAbsenceRequest{
		Date:   "2024-05-02",
		Type:   "Unscheduled Leave",
		Reason: "No notice given",
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Absences, 2)
	assert.Equal(t, "2024-05-02", resp.Absences[0].Date)
	assert.Equal(t, "Unscheduled Leave", resp.Absences[0].Type)
	assert.Equal(t, "a1", resp.Absences[1].ID)
	assert.NotEmpty(t, resp.Absences[0].ID)
	assert.Equal(t, int64(2), resp.Revision)
}

func TestService_Add_UnknownEmployee(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.Add(context.Background(), "999", CreateAbsenceRequest{
		Date: "2024-05-02",
		Type: "Sick",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}

func TestService_Add_ReasonOptional(t *testing.T) {
	repo := newFakeRepo(employee.Employee{ID: "3"})
	svc := NewService(repo)

	resp, err := svc.Add(context.Background(), "3", CreateAbsenceRequest{
		Date: "2024-05-02",
		Type: "Vacation",
	})

	assert.NoError(t, err)
	assert.Empty(t, resp.Absences[0].Reason)
}
