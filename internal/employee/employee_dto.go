package employee

type CreateEmployeeRequest struct {
	// ID is optional; the service generates one when absent.
	ID               string  `json:"id"`
	Name             string  `json:"name" binding:"required"`
	RoleAccess       string  `json:"roleAccess" binding:"required,oneof=Admin Manager Employee"`
	Role             string  `json:"role" binding:"required"`
	Department       string  `json:"department" binding:"required"`
	Email            string  `json:"email" binding:"required,email"`
	Avatar           string  `json:"avatar"`
	PerformanceScore float64 `json:"performanceScore" binding:"min=0,max=5"`
	JoiningDate      string  `json:"joiningDate" binding:"required"`
}

// UpdateEmployeeRequest is a partial overlay: nil fields keep their current
// value. Revision is the optimistic concurrency token from the last read.
type UpdateEmployeeRequest struct {
	Revision         int64    `json:"revision" binding:"required,min=1"`
	Name             *string  `json:"name"`
	Role             *string  `json:"role"`
	Department       *string  `json:"department"`
	Email            *string  `json:"email"`
	Avatar           *string  `json:"avatar"`
	PerformanceScore *float64 `json:"performanceScore"`
	IsActive         *bool    `json:"isActive"`
	InternalNotes    *string  `json:"internalNotes"`
}

type EmployeeResponse struct {
	Employee
	Revision int64 `json:"revision"`
}

func toResponse(rec Record) EmployeeResponse {
	return EmployeeResponse{Employee: rec.Doc, Revision: rec.Revision}
}

func toListResponse(records []Record) []EmployeeResponse {
	res := make([]EmployeeResponse, len(records))
	for i, rec := range records {
		res[i] = toResponse(rec)
	}
	return res
}
