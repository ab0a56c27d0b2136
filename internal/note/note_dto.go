package note

type CreateNoteRequest struct {
	Date string `json:"date" binding:"required"`
	Text string `json:"text" binding:"required"`
	// Author defaults to the caller's directory name when omitted.
	Author string `json:"author"`
}
