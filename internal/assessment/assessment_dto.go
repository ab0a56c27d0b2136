package assessment

type CreateAssessmentRequest struct {
	Month    string `json:"month" binding:"required,oneof=January February March April May June July August September October November December"`
	Year     int    `json:"year" binding:"required,min=2000,max=2100"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Feedback string `json:"feedback" binding:"required"`
}
