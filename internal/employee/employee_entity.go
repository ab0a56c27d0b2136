package employee

// AccessLevel is one of the three static role levels governing route access.
type AccessLevel string

const (
	AccessAdmin    AccessLevel = "Admin"
	AccessManager  AccessLevel = "Manager"
	AccessEmployee AccessLevel = "Employee"
)

func (a AccessLevel) Valid() bool {
	switch a {
	case AccessAdmin, AccessManager, AccessEmployee:
		return true
	}
	return false
}

// Goal statuses as they appear in the stored documents.
const (
	GoalInProgress = "In Progress"
	GoalCompleted  = "Completed"
	GoalPending    = "Pending"
	GoalOverdue    = "Overdue"
)

// Review categories.
const (
	ReviewAnnual    = "Annual"
	ReviewQuarterly = "Quarterly"
	ReviewPeer      = "Peer"
	ReviewSelf      = "Self"
)

type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Progress    int    `json:"progress"`
	DueDate     string `json:"dueDate"`
	Status      string `json:"status"`
}

type Review struct {
	ID           string `json:"id"`
	ReviewerName string `json:"reviewerName"`
	Date         string `json:"date"`
	Rating       int    `json:"rating"`
	Comments     string `json:"comments"`
	Category     string `json:"category"`
}

type Absence struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

type MonthlyAssessment struct {
	ID       string `json:"id"`
	Month    string `json:"month"`
	Year     int    `json:"year"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

type NoteEntry struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Text   string `json:"text"`
	Author string `json:"author"`
}

// Employee is the full directory document stored in one employees row. Field
// names keep the camelCase wire format so backups and stored rows round-trip
// byte-compatible with existing data. Credentials are deliberately absent:
// password material lives only in the credentials table.
//
// Ordering invariants: goals and reviews are appended oldest-first; absences,
// monthlyAssessments and notesHistory are prepended newest-first.
type Employee struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Username           string              `json:"username,omitempty"`
	RoleAccess         AccessLevel         `json:"roleAccess"`
	IsActive           bool                `json:"isActive"`
	Role               string              `json:"role"`
	Department         string              `json:"department"`
	Email              string              `json:"email"`
	Avatar             string              `json:"avatar"`
	PerformanceScore   float64             `json:"performanceScore"`
	JoiningDate        string              `json:"joiningDate"`
	Goals              []Goal              `json:"goals"`
	Reviews            []Review            `json:"reviews"`
	Absences           []Absence           `json:"absences"`
	MonthlyAssessments []MonthlyAssessment `json:"monthlyAssessments"`
	NotesHistory       []NoteEntry         `json:"notesHistory"`
	InternalNotes      string              `json:"internalNotes,omitempty"`
}

// Normalize replaces nil sub-entity slices with empty ones so documents always
// serialize arrays, never null.
func (e *Employee) Normalize() {
	if e.Goals == nil {
		e.Goals = []Goal{}
	}
	if e.Reviews == nil {
		e.Reviews = []Review{}
	}
	if e.Absences == nil {
		e.Absences = []Absence{}
	}
	if e.MonthlyAssessments == nil {
		e.MonthlyAssessments = []MonthlyAssessment{}
	}
	if e.NotesHistory == nil {
		e.NotesHistory = []NoteEntry{}
	}
}
