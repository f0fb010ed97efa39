package university

type CreateUniversityRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type UpdateUniversityRequest struct {
	Code string `json:"code" binding:"required"`
	Name string `json:"name" binding:"required"`
}

type UniversityResponse struct {
	Guid string `json:"guid"`
	Code string `json:"code"`
	Name string `json:"name"`
}
