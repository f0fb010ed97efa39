package room

type CreateRoomRequest struct {
	Name  string `json:"name" binding:"required"`
	Floor *int   `json:"floor" binding:"required,min=0"`
}

type UpdateRoomRequest struct {
	Name  string `json:"name" binding:"required"`
	Floor *int   `json:"floor" binding:"required,min=0"`
}

type RoomResponse struct {
	Guid  string `json:"guid"`
	Name  string `json:"name"`
	Floor int    `json:"floor"`
}
