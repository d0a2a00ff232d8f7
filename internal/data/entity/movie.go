package entity

type Movie struct {
	Base
	Title          string   `db:"title"`
	Director       string   `db:"director"`
	ReleaseYear    int      `db:"release_year"`
	ReleaseCountry string   `db:"release_country"`
	Duration       int      `db:"duration"`
	AgeRestriction *int     `db:"age_restriction"`
	Cast           []string `db:"cast_members"`
	Genres         []string `db:"genres"`
	Description    string   `db:"description"`
	PosterURL      *string  `db:"poster_url"`
	PosterAssetID  *string  `db:"poster_asset_id"`
}
