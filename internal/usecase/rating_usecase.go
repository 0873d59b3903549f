package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"
)

var (
	ErrInvalidRatingSubject = errors.New("invalid rating subject")
	ErrInvalidRatingScore   = errors.New("invalid rating score")
)

// Scores match the 5-star widget with half-step precision: anything in
// [0, 5] is accepted.
const (
	minRatingScore = 0.0
	maxRatingScore = 5.0
)

// IRatingUseCase exposes rating submission. Ratings are append-only;
// averages and counts are derived views outside this service.

type IRatingUseCase interface {
	Submit(ctx context.Context, subjectName string, score float64) (entities.Rating, error)
}

type RatingUseCase struct {
	repo interfaces.IRatingRepository
}

var _ IRatingUseCase = (*RatingUseCase)(nil)

func NewRatingUseCase(repo interfaces.IRatingRepository) *RatingUseCase {
	return &RatingUseCase{repo: repo}
}

func (u *RatingUseCase) Submit(ctx context.Context, subjectName string, score float64) (entities.Rating, error) {
	subjectName = strings.TrimSpace(subjectName)
	if subjectName == "" {
		return entities.Rating{}, ErrInvalidRatingSubject
	}
	if score < minRatingScore || score > maxRatingScore {
		return entities.Rating{}, ErrInvalidRatingScore
	}

	r := entities.Rating{
		SubjectName: subjectName,
		Score:       score,
		CreatedAt:   time.Now().UTC(),
	}
	appended, err := u.repo.Append(ctx, r)
	if err != nil {
		log.Printf("[rating][usecase] append failed subject=%q err=%v", subjectName, err)
		return entities.Rating{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	log.Printf("[rating][usecase] appended id=%d subject=%q score=%.1f", appended.ID, subjectName, score)
	return appended, nil
}
