package employee

type CreateEmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date" binding:"required"`
	Gender      *int16 `json:"gender" binding:"required"`
	HiringDate  string `json:"hiring_date" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName   string `json:"first_name" binding:"required"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date" binding:"required"`
	Gender      *int16 `json:"gender" binding:"required"`
	HiringDate  string `json:"hiring_date" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phone_number" binding:"required"`
}

type EmployeeResponse struct {
	Guid        string `json:"guid"`
	Nik         string `json:"nik"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	BirthDate   string `json:"birth_date"`
	Gender      int16  `json:"gender"`
	HiringDate  string `json:"hiring_date"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// EmployeeEducationResponse is the employee joined with its education and
// university, one row per employee that has an education record.
type EmployeeEducationResponse struct {
	Guid           string  `json:"guid"`
	Nik            string  `json:"nik"`
	FullName       string  `json:"full_name"`
	BirthDate      string  `json:"birth_date"`
	Gender         int16   `json:"gender"`
	HiringDate     string  `json:"hiring_date"`
	Email          string  `json:"email"`
	PhoneNumber    string  `json:"phone_number"`
	Major          string  `json:"major"`
	Degree         string  `json:"degree"`
	Gpa            float64 `json:"gpa"`
	UniversityName string  `json:"university_name"`
}
