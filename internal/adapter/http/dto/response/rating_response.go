package response

import (
	"time"

	"foodcourt_api/internal/domain/entities"
)

type RatingResponse struct {
	ID          int64     `json:"id"`
	SubjectName string    `json:"subject_name"`
	Score       float64   `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromRating(r entities.Rating) RatingResponse {
	return RatingResponse{
		ID:          r.ID,
		SubjectName: r.SubjectName,
		Score:       r.Score,
		CreatedAt:   r.CreatedAt,
	}
}
