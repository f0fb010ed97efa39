package account

type RegisterRequest struct {
	FirstName       string  `json:"first_name" binding:"required"`
	LastName        string  `json:"last_name"`
	BirthDate       string  `json:"birth_date" binding:"required"`
	Gender          *int16  `json:"gender" binding:"required"`
	HiringDate      string  `json:"hiring_date" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	PhoneNumber     string  `json:"phone_number" binding:"required"`
	Major           string  `json:"major" binding:"required"`
	Degree          string  `json:"degree" binding:"required"`
	Gpa             float64 `json:"gpa" binding:"required,gte=0,lte=4"`
	UniversityCode  string  `json:"university_code" binding:"required"`
	UniversityName  string  `json:"university_name" binding:"required"`
	Password        string  `json:"password" binding:"required,min=8"`
	ConfirmPassword string  `json:"confirm_password" binding:"required"`
}

type RegisterResponse struct {
	Guid     string `json:"guid"`
	Nik      string `json:"nik"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	Otp             *int   `json:"otp" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=NewPassword"`
}

type CreateAccountRequest struct {
	EmployeeGuid string `json:"employee_guid" binding:"required,uuid"`
	Password     string `json:"password" binding:"required,min=8"`
}

type UpdateAccountRequest struct {
	Password string `json:"password" binding:"required,min=8"`
}

type AccountResponse struct {
	Guid        string `json:"guid"`
	IsUsed      bool   `json:"is_used"`
	ExpiredTime string `json:"expired_time"`
	IsDeleted   bool   `json:"is_deleted"`
}
