package config

// DashboardWidgets toggles the dashboard sections shown to users.
type DashboardWidgets struct {
	Charts  bool `json:"charts"`
	Stats   bool `json:"stats"`
	AIAudit bool `json:"aiAudit"`
}

// SystemConfig is the singleton settings document stored as the main_config
// row. Field names keep the camelCase wire format so backups round-trip with
// existing data. Departments is display metadata only; nothing ties an
// employee's department to this list.
type SystemConfig struct {
	CompanyName      string           `json:"companyName"`
	CompanyLogo      *string          `json:"companyLogo"`
	Departments      []string         `json:"departments"`
	DashboardWidgets DashboardWidgets `json:"dashboardWidgets"`
}

func (c *SystemConfig) Normalize() {
	if c.Departments == nil {
		c.Departments = []string{}
	}
}
