package entities

import "time"

// Rating is a single submitted restaurant rating. The table is
// append-only; aggregates (average, count) are derived views elsewhere.
//
// Storage model (DynamoDB):
//   - PK: id (number, assigned from an atomic counter)
type Rating struct {
	ID          int64     `json:"id"`
	SubjectName string    `json:"subject_name"`
	Score       float64   `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}
