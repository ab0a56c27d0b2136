package backup

import (
	"performx/internal/config"
	"performx/internal/employee"
)

// BackupDocument is the full-dataset export. The same shape is accepted by
// restore; both top-level keys must be present or the restore is rejected.
type BackupDocument struct {
	Employees []employee.Employee `json:"employees"`
	Config    config.SystemConfig `json:"config"`
	Timestamp string              `json:"timestamp"`
}

// RestoreRequest uses pointers so a missing key is distinguishable from an
// empty value: restoring an empty directory is legal, omitting the key is not.
type RestoreRequest struct {
	Employees *[]employee.Employee `json:"employees" binding:"required"`
	Config    *config.SystemConfig `json:"config" binding:"required"`
	Timestamp string               `json:"timestamp"`
}

type RestoreResponse struct {
	Employees int `json:"employees"`
}
