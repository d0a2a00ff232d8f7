package response

import (
	"screenix/internal/data/entity"
)

type ReleaseResponse struct {
	Year    int    `json:"year"`
	Country string `json:"country"`
}

type MovieResponse struct {
	ID             string          `json:"id"`
	Title          string          `json:"title"`
	Director       string          `json:"director"`
	Release        ReleaseResponse `json:"release"`
	Duration       int             `json:"duration"`
	AgeRestriction *int            `json:"ageRestriction,omitempty"`
	Cast           []string        `json:"cast"`
	Genres         []string        `json:"genres"`
	Description    string          `json:"description"`
	PosterURL      *string         `json:"posterUrl,omitempty"`
	Tags           []string        `json:"tags,omitempty"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:       movie.ID.String(),
		Title:    movie.Title,
		Director: movie.Director,
		Release: ReleaseResponse{
			Year:    movie.ReleaseYear,
			Country: movie.ReleaseCountry,
		},
		Duration:       movie.Duration,
		AgeRestriction: movie.AgeRestriction,
		Cast:           movie.Cast,
		Genres:         movie.Genres,
		Description:    movie.Description,
		PosterURL:      movie.PosterURL,
	}
}
