package app

import (
	"context"
	"errors"

	"performx/internal/auth"
	"performx/internal/config"
	"performx/internal/employee"
	"performx/internal/store"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const seedPassword = "password123"

func seedEmployees() []employee.Employee {
	return []employee.Employee{
		{
			ID:               "1",
			Name:             "Sarah Chen",
			Username:         "admin",
			RoleAccess:       employee.AccessAdmin,
			IsActive:         true,
			Role:             "Senior Software Engineer",
			Department:       "Engineering",
			Email:            "sarah.chen@performx.ai",
			Avatar:           "https://picsum.photos/seed/sarah/200",
			PerformanceScore: 4.8,
			JoiningDate:      "2021-03-15",
			Absences: []employee.Absence{
				{ID: "a1", Date: "2024-01-10", Type: "Sick", Reason: "Flu symptoms"},
			},
			MonthlyAssessments: []employee.MonthlyAssessment{
				{ID: "m1", Month: "January", Year: 2024, Rating: 5, Feedback: "Strong start to the year leading the AWS migration."},
			},
			NotesHistory: []employee.NoteEntry{
				{ID: "n1", Date: "2024-02-15", Text: `Won "Innovator of the Month".`, Author: "HR"},
			},
			Goals: []employee.Goal{
				{ID: "g1", Title: "Implement Microservices", Description: "Transition legacy monolith", Progress: 75, DueDate: "2024-06-30", Status: employee.GoalInProgress},
			},
		},
		{
			ID:               "2",
			Name:             "Marcus Thorne",
			Username:         "manager",
			RoleAccess:       employee.AccessManager,
			IsActive:         true,
			Role:             "Product Designer",
			Department:       "Design",
			Email:            "marcus.t@performx.ai",
			Avatar:           "https://picsum.photos/seed/marcus/200",
			PerformanceScore: 4.2,
			JoiningDate:      "2022-08-10",
		},
		{
			ID:               "3",
			Name:             "Kevin Smith",
			Username:         "ksmith",
			RoleAccess:       employee.AccessEmployee,
			IsActive:         true,
			Role:             "Junior Developer",
			Department:       "Engineering",
			Email:            "kevin@performx.ai",
			Avatar:           "https://picsum.photos/seed/kevin/200",
			PerformanceScore: 3.8,
			JoiningDate:      "2023-11-01",
			MonthlyAssessments: []employee.MonthlyAssessment{
				{ID: "m3", Month: "January", Year: 2024, Rating: 3, Feedback: "Learning the ropes."},
			},
			NotesHistory: []employee.NoteEntry{
				{ID: "n2", Date: "2024-01-20", Text: "Needs more focus on testing.", Author: "Manager"},
			},
			Goals: []employee.Goal{
				{ID: "g4", Title: "Complete Onboarding", Description: "Internal training modules", Progress: 100, DueDate: "2023-12-01", Status: employee.GoalCompleted},
			},
		},
	}
}

func seedConfig() config.SystemConfig {
	return config.SystemConfig{
		CompanyName: "PerformX AI",
		CompanyLogo: nil,
		Departments: []string{"Engineering", "Design", "Marketing", "Sales", "HR", "Operations"},
		DashboardWidgets: config.DashboardWidgets{
			Charts:  true,
			Stats:   true,
			AIAudit: true,
		},
	}
}

// seedIfEmpty inserts the starter dataset on first run: three employees,
// their credentials and the default settings document. A non-empty directory
// means a previous run already owns the data.
func seedIfEmpty(
	ctx context.Context,
	employeeRepo employee.Repository,
	configRepo config.Repository,
	authRepo auth.Repository,
	logger *zap.Logger,
) error {
	existing, err := employeeRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	for _, doc := range seedEmployees() {
		if _, err := employeeRepo.Insert(ctx, doc); err != nil {
			if errors.Is(err, store.ErrDuplicateID) {
				continue
			}
			return err
		}
		cred := &auth.Credential{
			ID:           uuid.New(),
			EmployeeID:   doc.ID,
			Username:     doc.Username,
			PasswordHash: string(hash),
			RoleAccess:   string(doc.RoleAccess),
			IsActive:     true,
		}
		if err := authRepo.Create(ctx, cred); err != nil {
			return err
		}
	}

	if _, err := configRepo.Put(ctx, seedConfig(), 0); err != nil {
		return err
	}

	logger.Info("seeded starter dataset", zap.Int("employees", len(seedEmployees())))
	return nil
}
