package goal

type CreateGoalRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Progress    int    `json:"progress" binding:"min=0,max=100"`
	DueDate     string `json:"dueDate" binding:"required"`
	Status      string `json:"status" binding:"required,oneof='In Progress' Completed Pending Overdue"`
}

// GoalProgressUpdate is one item of a cross-employee batch: progress (and
// optionally status) of an existing goal.
type GoalProgressUpdate struct {
	EmployeeID string  `json:"employeeId" binding:"required"`
	GoalID     string  `json:"goalId" binding:"required"`
	Progress   int     `json:"progress" binding:"min=0,max=100"`
	Status     *string `json:"status" binding:"omitempty,oneof='In Progress' Completed Pending Overdue"`
}

type BatchUpdateRequest struct {
	Items []GoalProgressUpdate `json:"items" binding:"required,min=1,dive"`
}

// BatchItemResult reports one employee's outcome. Batches are applied one
// employee at a time with no transaction across them, so a failure midway
// leaves earlier employees updated.
type BatchItemResult struct {
	EmployeeID string `json:"employeeId"`
	Ok         bool   `json:"ok"`
	Revision   int64  `json:"revision,omitempty"`
	Error      string `json:"error,omitempty"`
}

type BatchUpdateResponse struct {
	Results []BatchItemResult `json:"results"`
	Failed  int               `json:"failed"`
}
