package employee_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"performx/internal/employee"
	"performx/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFn     func(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	getAllFn     func(ctx context.Context) ([]employee.EmployeeResponse, error)
	getByIDFn    func(ctx context.Context, id string) (employee.EmployeeResponse, error)
	updateFn     func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error)
	deactivateFn func(ctx context.Context, id string) (employee.EmployeeResponse, error)
}

func (f *fakeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]employee.EmployeeResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Deactivate(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	return f.deactivateFn(ctx, id)
}

func directory() []employee.EmployeeResponse {
	return []employee.EmployeeResponse{
		{Employee: employee.Employee{ID: "1", Name: "Sarah Chen", Role: "Senior Software Engineer", Department: "Engineering", PerformanceScore: 4.8}, Revision: 3},
		{Employee: employee.Employee{ID: "2", Name: "Marcus Thorne", Role: "Product Designer", Department: "Design", PerformanceScore: 4.2}, Revision: 1},
		{Employee: employee.Employee{ID: "3", Name: "Kevin Smith", Role: "Junior Developer", Department: "Engineering", PerformanceScore: 3.8}, Revision: 2},
	}
}

func TestHandler_GetAll_FilterAndSort(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) { return directory(), nil },
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?q=developer&sort_by=score&sort_dir=desc", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data []employee.EmployeeResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, "Kevin Smith", body.Data[0].Name)
}

func TestHandler_GetAll_Pagination(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		getAllFn: func(ctx context.Context) ([]employee.EmployeeResponse, error) { return directory(), nil },
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/employees?page=2&page_size=2", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "\"meta\"")

	var body struct {
		Data []employee.EmployeeResponse `json:"data"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data, 1)
	assert.Equal(t, int64(3), body.Meta.Total)
}

func TestHandler_Update_RequiresRevision(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := employee.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/employees/1", strings.NewReader(`{"name":"No Revision"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Update(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestHandler_Update_ConflictMapsTo409(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &fakeService{
		updateFn: func(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
			return employee.EmployeeResponse{}, apperror.ErrRevisionConflict
		},
	}
	h := employee.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/employees/1", strings.NewReader(`{"revision":1,"name":"Stale"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Update(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "REVISION_CONFLICT")
}
