package usecase

import (
	"context"
	"io"
	"strings"
	"time"

	"screenix/internal/data/entity"
	"screenix/internal/data/repository"
	"screenix/internal/dto/request"
	"screenix/internal/dto/response"
	"screenix/pkg/apperror"
	"screenix/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MovieService interface {
	GetMovies(ctx context.Context) (*response.ListResponse[response.MovieResponse], error)
	GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error)
	CreateMovie(ctx context.Context, req *request.MovieRequest, posterName string, poster io.Reader) (*response.MovieResponse, error)
	UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error)
	DeleteMovie(ctx context.Context, movieID string) error
}

type movieService struct {
	repo   *repository.Repository
	tags   TagSuggester
	assets AssetHost
	log    *zap.Logger
}

func NewMovieService(repo *repository.Repository, tags TagSuggester, assets AssetHost, log *zap.Logger) MovieService {
	return &movieService{
		repo:   repo,
		tags:   tags,
		assets: assets,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovies(ctx context.Context) (*response.ListResponse[response.MovieResponse], error) {
	movies, err := s.repo.Movie.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get movies", zap.Error(err))
		return nil, apperror.Internal(err, "get movies")
	}

	movieResponses := make([]response.MovieResponse, len(movies))
	for i, movie := range movies {
		movieResponses[i] = response.MovieToResponse(movie)
	}

	return response.NewListResponse(movieResponses), nil
}

func (s *movieService) GetMovieByID(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperror.Invalid("invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get movie %s", movieID)
	}
	if movie == nil {
		return nil, apperror.NotFound("no movie with ID: %s", movieID)
	}

	// Suggested tags are display-only but a suggester failure still fails
	// the read.
	suggested, err := s.tags.SuggestTags(ctx, movie.Title, movie.Description)
	if err != nil {
		s.log.Error("Failed to generate tags",
			zap.Error(err),
			zap.String("movie_id", movieID),
		)
		return nil, apperror.Internal(err, "generate tags for movie %s", movieID)
	}

	movieResponse := response.MovieToResponse(movie)
	movieResponse.Tags = splitTags(suggested)

	return &movieResponse, nil
}

func (s *movieService) CreateMovie(ctx context.Context, req *request.MovieRequest, posterName string, poster io.Reader) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create movie validation failed", zap.Any("errors", errs))
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if poster == nil {
		return nil, apperror.Invalid("poster image file is required")
	}

	posterURL, posterAssetID, err := s.assets.Upload(ctx, posterName, poster)
	if err != nil {
		s.log.Error("Failed to upload poster", zap.Error(err), zap.String("title", req.Title))
		return nil, apperror.Internal(err, "upload poster for movie %q", req.Title)
	}

	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:          req.Title,
		Director:       req.Director,
		ReleaseYear:    req.Release.Year,
		ReleaseCountry: req.Release.Country,
		Duration:       req.Duration,
		AgeRestriction: req.AgeRestriction,
		Cast:           req.Cast,
		Genres:         req.Genres,
		Description:    req.Description,
		PosterURL:      &posterURL,
		PosterAssetID:  &posterAssetID,
	}
	if movie.Cast == nil {
		movie.Cast = []string{}
	}
	if movie.Genres == nil {
		movie.Genres = []string{}
	}

	if err := s.repo.Movie.Create(ctx, movie); err != nil {
		return nil, apperror.Internal(err, "create movie %q", req.Title)
	}

	s.log.Info("Movie created",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)

	movieResponse := response.MovieToResponse(movie)
	return &movieResponse, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, movieID string, req *request.MovieUpdateRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperror.Invalid("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(movieID)
	if err != nil {
		return nil, apperror.Invalid("invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err, "get movie %s", movieID)
	}
	if movie == nil {
		return nil, apperror.NotFound("no movie with ID: %s", movieID)
	}

	if req.Title != nil {
		movie.Title = *req.Title
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Release != nil {
		movie.ReleaseYear = req.Release.Year
		movie.ReleaseCountry = req.Release.Country
	}
	if req.Duration != nil {
		movie.Duration = *req.Duration
	}
	if req.AgeRestriction != nil {
		movie.AgeRestriction = req.AgeRestriction
	}
	if req.Cast != nil {
		movie.Cast = req.Cast
	}
	if req.Genres != nil {
		movie.Genres = req.Genres
	}
	if req.Description != nil {
		movie.Description = *req.Description
	}
	movie.UpdatedAt = time.Now()

	if err := s.repo.Movie.Update(ctx, movie); err != nil {
		return nil, apperror.Internal(err, "update movie %s", movieID)
	}

	s.log.Info("Movie updated", zap.String("movie_id", movieID))

	movieResponse := response.MovieToResponse(movie)
	return &movieResponse, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, movieID string) error {
	id, err := uuid.Parse(movieID)
	if err != nil {
		return apperror.Invalid("invalid movie ID format %s", movieID)
	}

	movie, err := s.repo.Movie.FindByID(ctx, id)
	if err != nil {
		return apperror.Internal(err, "get movie %s", movieID)
	}
	if movie == nil {
		return apperror.NotFound("no movie with ID: %s", movieID)
	}

	if err := s.repo.Movie.Delete(ctx, id); err != nil {
		return apperror.Internal(err, "delete movie %s", movieID)
	}

	s.log.Info("Movie deleted", zap.String("movie_id", movieID))
	return nil
}

// splitTags turns the suggester's comma-separated answer into clean tags.
func splitTags(suggested string) []string {
	var tags []string
	for _, tag := range strings.Split(suggested, ",") {
		tag = strings.ReplaceAll(strings.TrimSpace(tag), ".", "")
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
