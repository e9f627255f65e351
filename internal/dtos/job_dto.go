package dtos

// JobCreationRequest arrives as multipart form data because the logo file
// rides along in the same submit. Category is optional; when present it
// must be one of the fixed values (checked in the service).
type JobCreationRequest struct {
	CompanyName string `form:"companyName" binding:"required"`
	Position    string `form:"position" binding:"required"`
	Vacancies   int    `form:"vacancies" binding:"required"`
	SalaryFrom  int    `form:"salaryFrom" binding:"required"`
	SalaryTo    int    `form:"salaryTo" binding:"required"`
	Location    string `form:"location" binding:"required"`
	Category    string `form:"category"`
}
