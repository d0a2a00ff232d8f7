package request

import "time"

type ScreeningRequest struct {
	MovieID                string    `json:"movie" validate:"required,uuid4"`
	RoomID                 string    `json:"room" validate:"required,uuid4"`
	Date                   time.Time `json:"date" validate:"required"`
	AdvertisementsDuration *int      `json:"advertisementsDuration" validate:"required,min=0"`
}

type ScreeningUpdateRequest struct {
	MovieID                *string    `json:"movie,omitempty" validate:"omitempty,uuid4"`
	RoomID                 *string    `json:"room,omitempty" validate:"omitempty,uuid4"`
	Date                   *time.Time `json:"date,omitempty"`
	AdvertisementsDuration *int       `json:"advertisementsDuration,omitempty" validate:"omitempty,min=0"`
}
