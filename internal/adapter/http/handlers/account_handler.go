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

var (
	errInvalidAccountPayload = pkg.NewDomainErrorSimple("INVALID_ACCOUNT_INPUT", "Invalid account payload", http.StatusBadRequest)
	// One opaque message for unknown username and wrong password alike.
	errAuthFailed = pkg.NewDomainErrorSimple("AUTH_FAILED", "Invalid username or password", http.StatusUnauthorized)
)

// AccountHandler handles HTTP requests for client registration, login
// and profile lookup.

type AccountHandler struct {
	usecase usecase.IAccountUseCase
}

func NewAccountHandler(uc usecase.IAccountUseCase) *AccountHandler {
	return &AccountHandler{usecase: uc}
}

// Register godoc
//
//	@Summary	Register a new client
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		account	body		request.RegisterRequest	true	"registration"
//	@Success	201		{object}	response.AccountResponse
//	@Failure	400		{object}	pkg.HTTPError
//	@Failure	409		{object}	pkg.HTTPError
//	@Router		/register [post]
func (h *AccountHandler) Register(c *gin.Context) {
	var payload request.RegisterRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAccountPayload.HTTPStatus, errInvalidAccountPayload.ToHTTPError())
		return
	}

	a, err := h.usecase.Register(c.Request.Context(), payload.Username, payload.PasswordHash, payload.Email)
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromAccount(a))
}

// Login godoc
//
//	@Summary	Log a client in
//	@Tags		accounts
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		request.LoginRequest	true	"credentials"
//	@Success	200			{object}	response.LoginResponse
//	@Failure	401			{object}	pkg.HTTPError
//	@Router		/login [post]
func (h *AccountHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		// Malformed credentials get the same opaque rejection.
		c.JSON(errAuthFailed.HTTPStatus, errAuthFailed.ToHTTPError())
		return
	}

	a, token, err := h.usecase.Login(c.Request.Context(), payload.Username, payload.PasswordHash)
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLogin(a, token))
}

// GetProfile godoc
//
//	@Summary	Fetch a client profile
//	@Tags		accounts
//	@Produce	json
//	@Param		username	path		string	true	"username"
//	@Success	200			{object}	response.AccountResponse
//	@Failure	404			{object}	pkg.HTTPError
//	@Router		/profile/{username} [get]
func (h *AccountHandler) GetProfile(c *gin.Context) {
	a, err := h.usecase.GetProfile(c.Request.Context(), c.Param("username"))
	if err != nil {
		appErr := mapAccountError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromAccount(a))
}

func mapAccountError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUsername), errors.Is(err, usecase.ErrInvalidPasswordHash):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrAuthFailed):
		return errAuthFailed
	case errors.Is(err, usecase.ErrAccountNotFound):
		return pkg.NewDomainErrorSimple("ACCOUNT_NOT_FOUND", "Account not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Account store unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
