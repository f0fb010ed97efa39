package education

type CreateEducationRequest struct {
	EmployeeGuid   string  `json:"employee_guid" binding:"required,uuid"`
	Major          string  `json:"major" binding:"required"`
	Degree         string  `json:"degree" binding:"required"`
	Gpa            float64 `json:"gpa" binding:"required"`
	UniversityGuid string  `json:"university_guid" binding:"required,uuid"`
}

type UpdateEducationRequest struct {
	Major          string  `json:"major" binding:"required"`
	Degree         string  `json:"degree" binding:"required"`
	Gpa            float64 `json:"gpa" binding:"required"`
	UniversityGuid string  `json:"university_guid" binding:"required,uuid"`
}

type EducationResponse struct {
	Guid           string  `json:"guid"`
	Major          string  `json:"major"`
	Degree         string  `json:"degree"`
	Gpa            float64 `json:"gpa"`
	UniversityGuid string  `json:"university_guid"`
}
