package analytics

// Distribution buckets employees by performance score: Exceeds >= 4.5,
// Meets >= 3.5, Developing below that.
type Distribution struct {
	Exceeds    int `json:"exceeds"`
	Meets      int `json:"meets"`
	Developing int `json:"developing"`
}

type DepartmentAverage struct {
	Department string  `json:"department"`
	AvgScore   float64 `json:"avgScore"`
	Headcount  int     `json:"headcount"`
}

// Snapshot is the dashboard aggregate, computed over active employees only.
type Snapshot struct {
	ActiveCount       int                 `json:"activeCount"`
	TotalGoals        int                 `json:"totalGoals"`
	AvgScore          float64             `json:"avgScore"`
	AvgGoalCompletion float64             `json:"avgGoalCompletion"`
	Distribution      Distribution        `json:"distribution"`
	Departments       []DepartmentAverage `json:"departments"`
}
