package handlers

import (
	"errors"
	"net/http"

	request "foodcourt_api/internal/adapter/http/dto/request"
	response "foodcourt_api/internal/adapter/http/dto/response"
	"foodcourt_api/internal/usecase"
	"foodcourt_api/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRatingPayload = pkg.NewDomainErrorSimple("INVALID_RATING_INPUT", "Invalid rating payload", http.StatusBadRequest)

// RatingHandler handles HTTP requests for restaurant ratings.

type RatingHandler struct {
	usecase usecase.IRatingUseCase
}

func NewRatingHandler(uc usecase.IRatingUseCase) *RatingHandler {
	return &RatingHandler{usecase: uc}
}

// Submit godoc
//
//	@Summary	Submit a restaurant rating
//	@Tags		ratings
//	@Accept		json
//	@Produce	json
//	@Param		rating	body		request.RatingRequest	true	"rating"
//	@Success	201		{object}	response.RatingResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Router		/ratings [post]
func (h *RatingHandler) Submit(c *gin.Context) {
	var payload request.RatingRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.Score == nil {
		c.JSON(errInvalidRatingPayload.HTTPStatus, errInvalidRatingPayload.ToHTTPError())
		return
	}

	r, err := h.usecase.Submit(c.Request.Context(), payload.SubjectName, *payload.Score)
	if err != nil {
		appErr := mapRatingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRating(r))
}

func mapRatingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRatingSubject), errors.Is(err, usecase.ErrInvalidRatingScore):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Rating store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
