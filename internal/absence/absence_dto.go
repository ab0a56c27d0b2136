package absence

type CreateAbsenceRequest struct {
	Date   string `json:"date" binding:"required"`
	Type   string `json:"type" binding:"required,oneof=Sick Vacation Personal Other Absent 'Unauthorized Leave' 'Unscheduled Leave'"`
	Reason string `json:"reason"`
}
