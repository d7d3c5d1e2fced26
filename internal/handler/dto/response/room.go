package response

import "hotel-kiosk/internal/usecase/queries"

type RoomListResponse struct {
	Rooms []queries.RoomView `json:"rooms"`
}

func FromRooms(rooms []queries.RoomView) *RoomListResponse {
	if rooms == nil {
		rooms = []queries.RoomView{}
	}
	return &RoomListResponse{Rooms: rooms}
}
