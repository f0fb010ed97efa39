package booking

type CreateBookingRequest struct {
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	Status       *int16 `json:"status" binding:"required"`
	Remarks      string `json:"remarks"`
	RoomGuid     string `json:"room_guid" binding:"required,uuid"`
	EmployeeGuid string `json:"employee_guid" binding:"required,uuid"`
}

type UpdateBookingRequest struct {
	StartDate    string `json:"start_date" binding:"required"`
	EndDate      string `json:"end_date" binding:"required"`
	Status       *int16 `json:"status" binding:"required"`
	Remarks      string `json:"remarks"`
	RoomGuid     string `json:"room_guid" binding:"required,uuid"`
	EmployeeGuid string `json:"employee_guid" binding:"required,uuid"`
}

type BookingResponse struct {
	Guid         string `json:"guid"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Status       int16  `json:"status"`
	StatusName   string `json:"status_name"`
	Remarks      string `json:"remarks"`
	RoomGuid     string `json:"room_guid"`
	EmployeeGuid string `json:"employee_guid"`
}

type BookingDetailResponse struct {
	Guid      string `json:"guid"`
	BookedNik string `json:"booked_nik"`
	BookedBy  string `json:"booked_by"`
	RoomName  string `json:"room_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
	Remarks   string `json:"remarks"`
}

type BookingLengthResponse struct {
	RoomGuid      string `json:"room_guid"`
	RoomName      string `json:"room_name"`
	BookingLength string `json:"booking_length"`
}
