package request

type ReleaseRequest struct {
	Year    int    `json:"year" validate:"required,min=1888"`
	Country string `json:"country" validate:"required"`
}

type MovieRequest struct {
	Title          string         `json:"title" validate:"required,min=1,max=200"`
	Director       string         `json:"director" validate:"required"`
	Release        ReleaseRequest `json:"release" validate:"required"`
	Duration       int            `json:"duration" validate:"required,min=1"`
	AgeRestriction *int           `json:"ageRestriction,omitempty" validate:"omitempty,min=0"`
	Cast           []string       `json:"cast,omitempty"`
	Genres         []string       `json:"genres,omitempty"`
	Description    string         `json:"description" validate:"required"`
}

type MovieUpdateRequest struct {
	Title          *string         `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Director       *string         `json:"director,omitempty" validate:"omitempty,min=1"`
	Release        *ReleaseRequest `json:"release,omitempty"`
	Duration       *int            `json:"duration,omitempty" validate:"omitempty,min=1"`
	AgeRestriction *int            `json:"ageRestriction,omitempty" validate:"omitempty,min=0"`
	Cast           []string        `json:"cast,omitempty"`
	Genres         []string        `json:"genres,omitempty"`
	Description    *string         `json:"description,omitempty" validate:"omitempty,min=1"`
}
