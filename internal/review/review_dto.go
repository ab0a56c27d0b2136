package review

type CreateReviewRequest struct {
	ReviewerName string `json:"reviewerName" binding:"required"`
	Date         string `json:"date" binding:"required"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Comments     string `json:"comments" binding:"required"`
	Category     string `json:"category" binding:"required,oneof=Annual Quarterly Peer Self"`
}

// BatchReviewItem targets one employee; the batch endpoint lets a manager file
// the same review cycle across their reports in one call.
type BatchReviewItem struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	CreateReviewRequest
}

type BatchReviewRequest struct {
	Items []BatchReviewItem `json:"items" binding:"required,min=1,dive"`
}

type BatchReviewResult struct {
	EmployeeID string `json:"employeeId"`
	Ok         bool   `json:"ok"`
	Revision   int64  `json:"revision,omitempty"`
	Error      string `json:"error,omitempty"`
}

type BatchReviewResponse struct {
	Results []BatchReviewResult `json:"results"`
	Failed  int                 `json:"failed"`
}
