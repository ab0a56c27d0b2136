package insight

import (
	"context"
	"errors"
	"strings"
	"testing"

	"performx/internal/analytics"
	"performx/internal/employee"
	employeeerrors "performx/internal/employee/errors"
	insighterrors "performx/internal/insight/errors"
	"performx/internal/store"

	"github.com/stretchr/testify/assert"
)

type recordingGenerator struct {
	lastParams GenerateParams
	text       string
	err        error
}

func (g *recordingGenerator) Generate(_ context.Context, params GenerateParams) (string, error) {
	g.lastParams = params
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

type fakeRepo struct {
	doc *employee.Employee
}

func (f *fakeRepo) List(ctx context.Context) ([]employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Get(ctx context.Context, id string) (*employee.Record, error) {
	if f.doc == nil || f.doc.ID != id {
		return nil, store.ErrNotFound
	}
	return &employee.Record{Doc: *f.doc, Revision: 1}, nil
}

func (f *fakeRepo) Insert(ctx context.Context, doc employee.Employee) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Save(ctx context.Context, doc employee.Employee, expectedRevision int64) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeRepo) Mutate(ctx context.Context, id string, fn func(doc *employee.Employee) error) (*employee.Record, error) {
	return nil, errors.New("not implemented")
}

type fakeAnalytics struct {
	snap analytics.Snapshot
	err  error
}

func (f *fakeAnalytics) Snapshot(ctx context.Context) (analytics.Snapshot, error) {
	return f.snap, f.err
}

func testDoc() *employee.Employee {
	return &employee.Employee{
		ID:               "3",
		Name:             "Kevin Smith",
		Role:             "Developer",
		Department:       "Engineering",
		PerformanceScore: 3.8,
		Goals: []employee.Goal{
			{ID: "g1", Title: "Ship importer", Status: employee.GoalInProgress, Progress: 40},
		},
		Reviews: []employee.Review{
			{ID: "r1", Category: employee.ReviewAnnual, Rating: 4, Comments: "Solid year"},
		},
	}
}

func TestInsightService_Relay(t *testing.T) {
	ctx := context.Background()

	t.Run("passes the body through unchanged", func(t *testing.T) {
		gen := &recordingGenerator{text: "analysis"}
		svc := NewService(gen, &fakeRepo{}, &fakeAnalytics{})

		temp := float32(0.9)
		text, err := svc.Relay(ctx, RelayRequest{
			Model:    "gemini-3-flash-preview",
			Contents: "Summarize Q3",
			Config:   &RelayConfig{SystemInstruction: "Be terse", Temperature: &temp},
		})

		assert.NoError(t, err)
		assert.Equal(t, "analysis", text)
		assert.Equal(t, "gemini-3-flash-preview", gen.lastParams.Model)
		assert.Equal(t, "Summarize Q3", gen.lastParams.Contents)
		assert.Equal(t, "Be terse", gen.lastParams.SystemInstruction)
		assert.Equal(t, &temp, gen.lastParams.Temperature)
	})

	t.Run("provider errors pass through unwrapped", func(t *testing.T) {
		providerErr := errors.New("quota exceeded")
		svc := NewService(&recordingGenerator{err: providerErr}, &fakeRepo{}, &fakeAnalytics{})

		_, err := svc.Relay(ctx, RelayRequest{Model: "m", Contents: "c"})
		assert.ErrorIs(t, err, providerErr)
	})

	t.Run("nil generator means not configured", func(t *testing.T) {
		svc := NewService(nil, &fakeRepo{}, &fakeAnalytics{})

		_, err := svc.Relay(ctx, RelayRequest{Model: "m", Contents: "c"})
		assert.ErrorIs(t, err, insighterrors.ErrNotConfigured)
	})
}

func TestInsightService_EmployeeSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("builds the summary prompt from the document", func(t *testing.T) {
		gen := &recordingGenerator{text: "summary text"}
		svc := NewService(gen, &fakeRepo{doc: testDoc()}, &fakeAnalytics{})

		resp, err := svc.EmployeeSummary(ctx, "3")

		assert.NoError(t, err)
		assert.Equal(t, "summary text", resp.Text)
		assert.Equal(t, modelFlash, gen.lastParams.Model)
		assert.Equal(t, summarySystemInstruction, gen.lastParams.SystemInstruction)
		assert.Equal(t, float32(0.7), *gen.lastParams.Temperature)
		assert.Contains(t, gen.lastParams.Contents, "Kevin Smith")
		assert.Contains(t, gen.lastParams.Contents, "Ship importer")
		assert.Contains(t, gen.lastParams.Contents, "Solid year")
	})

	t.Run("unknown employee maps to not found", func(t *testing.T) {
		svc := NewService(&recordingGenerator{}, &fakeRepo{}, &fakeAnalytics{})

		_, err := svc.EmployeeSummary(ctx, "999")
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("provider failure is wrapped for the envelope", func(t *testing.T) {
		gen := &recordingGenerator{err: errors.New("upstream 503")}
		svc := NewService(gen, &fakeRepo{doc: testDoc()}, &fakeAnalytics{})

		_, err := svc.EmployeeSummary(ctx, "3")
		assert.ErrorIs(t, err, insighterrors.ErrProviderFailure)
	})
}

func TestInsightService_YTDReport(t *testing.T) {
	ctx := context.Background()

	gen := &recordingGenerator{text: "ytd report"}
	svc := NewService(gen, &fakeRepo{doc: testDoc()}, &fakeAnalytics{snap: analytics.Snapshot{
		AvgScore:          4.12,
		AvgGoalCompletion: 63,
	}})

	resp, err := svc.YTDReport(ctx, "3")

	assert.NoError(t, err)
	assert.Equal(t, "ytd report", resp.Text)
	assert.Equal(t, modelPro, gen.lastParams.Model)
	assert.Equal(t, float32(0.4), *gen.lastParams.Temperature)
	assert.Contains(t, gen.lastParams.Contents, "4.12/5")
	assert.Contains(t, gen.lastParams.Contents, "63%")
	for _, header := range []string{
		"1. Executive Intelligence Summary",
		"2. Comparative Performance Analysis",
		"3. Reliability & Operational Integrity",
		"4. Strategic Alignment & Velocity",
		"5. Leadership Potential & Readiness",
		"6. Corrective Actions or Optimization Strategy",
	} {
		assert.Contains(t, gen.lastParams.Contents, header)
	}
}

func TestInsightService_OrgOutlook(t *testing.T) {
	ctx := context.Background()

	t.Run("feeds the snapshot into a short outlook prompt", func(t *testing.T) {
		gen := &recordingGenerator{text: "outlook"}
		svc := NewService(gen, &fakeRepo{}, &fakeAnalytics{snap: analytics.Snapshot{ActiveCount: 12}})

		resp, err := svc.OrgOutlook(ctx)

		assert.NoError(t, err)
		assert.Equal(t, "outlook", resp.Text)
		assert.Equal(t, modelFlash, gen.lastParams.Model)
		assert.True(t, strings.Contains(gen.lastParams.Contents, "2-sentence strategic outlook"))
		assert.Contains(t, gen.lastParams.Contents, `"activeCount":12`)
	})

	t.Run("snapshot failure surfaces", func(t *testing.T) {
		svc := NewService(&recordingGenerator{}, &fakeRepo{}, &fakeAnalytics{err: errors.New("list failed")})

		_, err := svc.OrgOutlook(ctx)
		assert.Error(t, err)
	})
}

func TestMockGenerator(t *testing.T) {
	gen := NewMockGenerator()

	text, err := gen.Generate(context.Background(), GenerateParams{Model: "gemini-3-pro-preview"})
	assert.NoError(t, err)
	assert.Equal(t, "MOCK RESPONSE: Received model=gemini-3-pro-preview. Brief analysis: Positive trend detected.", text)
}

func TestNewGeneratorFromEnv(t *testing.T) {
	ctx := context.Background()

	t.Run("placeholder key counts as unset", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", PlaceholderKey)
		t.Setenv("DEV_GENAI_MOCK", "")

		gen, err := NewGeneratorFromEnv(ctx)
		assert.NoError(t, err)
		assert.Nil(t, gen)
	})

	t.Run("dev mock flag enables the canned generator", func(t *testing.T) {
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("DEV_GENAI_MOCK", "true")

		gen, err := NewGeneratorFromEnv(ctx)
		assert.NoError(t, err)
		assert.NotNil(t, gen)

		text, genErr := gen.Generate(ctx, GenerateParams{Model: "m"})
		assert.NoError(t, genErr)
		assert.Contains(t, text, "MOCK RESPONSE")
	})
}
