package request

// RatingRequest is the /api/ratings payload. Score is a pointer so a
// legitimate 0.0 still passes the required binding.
type RatingRequest struct {
	SubjectName string   `json:"subject_name" binding:"required"`
	Score       *float64 `json:"score" binding:"required"`
}
