package config

type UpdateConfigRequest struct {
	Revision         int64            `json:"revision" binding:"required,min=1"`
	CompanyName      string           `json:"companyName" binding:"required"`
	CompanyLogo      *string          `json:"companyLogo"`
	Departments      []string         `json:"departments" binding:"required,min=1,unique,dive,required"`
	DashboardWidgets DashboardWidgets `json:"dashboardWidgets"`
}

type ConfigResponse struct {
	SystemConfig
	Revision int64 `json:"revision"`
}
