package usecase

import (
	"context"
	"errors"
	"testing"

	"foodcourt_api/internal/domain/entities"
	mock_interfaces "foodcourt_api/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestRatingUseCase_SubmitValidation(t *testing.T) {
	cases := []struct {
		name    string
		subject string
		score   float64
		want    error
	}{
		{name: "blank subject", subject: "  ", score: 4.5, want: ErrInvalidRatingSubject},
		{name: "score below range", subject: "Burger Palace", score: -0.5, want: ErrInvalidRatingScore},
		{name: "score above range", subject: "Burger Palace", score: 5.5, want: ErrInvalidRatingScore},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewRatingUseCase(nil)
			_, err := uc.Submit(context.Background(), tc.subject, tc.score)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRatingUseCase_Submit(t *testing.T) {
	t.Run("boundary scores are accepted", func(t *testing.T) {
		for _, score := range []float64{0.0, 5.0} {
			ctrl := gomock.NewController(t)
			repo := mock_interfaces.NewMockIRatingRepository(ctrl)
			uc := NewRatingUseCase(repo)

			repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, r entities.Rating) (entities.Rating, error) {
					r.ID = 1
					return r, nil
				},
			)

			if _, err := uc.Submit(context.Background(), "Burger Palace", score); err != nil {
				t.Fatalf("score %v: unexpected error: %v", score, err)
			}
			ctrl.Finish()
		}
	})

	t.Run("store assigns the sequence id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRatingRepository(ctrl)
		uc := NewRatingUseCase(repo)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.Rating) (entities.Rating, error) {
				if r.ID != 0 {
					t.Fatalf("expected unassigned id, got %d", r.ID)
				}
				if r.CreatedAt.IsZero() {
					t.Fatalf("expected created_at to be set")
				}
				r.ID = 42
				return r, nil
			},
		)

		r, err := uc.Submit(context.Background(), " Burger Palace ", 4.5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.ID != 42 || r.SubjectName != "Burger Palace" {
			t.Fatalf("unexpected rating: %+v", r)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRatingRepository(ctrl)
		uc := NewRatingUseCase(repo)

		repo.EXPECT().Append(gomock.Any(), gomock.Any()).Return(entities.Rating{}, errors.New("timeout"))

		_, err := uc.Submit(context.Background(), "Burger Palace", 4.5)
		if !errors.Is(err, ErrStoreUnavailable) {
			t.Fatalf("expected ErrStoreUnavailable, got %v", err)
		}
	})
}
