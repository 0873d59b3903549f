package usecase

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"foodcourt_api/internal/domain/entities"
	"foodcourt_api/internal/usecase/interfaces"
)

var (
	ErrInvalidUsername     = errors.New("invalid username")
	ErrInvalidPasswordHash = errors.New("invalid password hash")
	ErrUsernameTaken       = errors.New("username already taken")
	ErrAccountNotFound     = errors.New("account not found")

	// ErrAuthFailed is the single opaque login failure: an unknown
	// username and a wrong password hash are indistinguishable to the
	// caller.
	ErrAuthFailed = errors.New("invalid username or password")
)

// IAccountUseCase exposes client registration, login and profile lookup.

type IAccountUseCase interface {
	Register(ctx context.Context, username, passwordHash, email string) (entities.Account, error)
	Login(ctx context.Context, username, passwordHash string) (entities.Account, string, error)
	GetProfile(ctx context.Context, username string) (entities.Account, error)
}

type AccountUseCase struct {
	repo   interfaces.IAccountRepository
	tokens interfaces.ITokenIssuer
}

var _ IAccountUseCase = (*AccountUseCase)(nil)

func NewAccountUseCase(repo interfaces.IAccountRepository, tokens interfaces.ITokenIssuer) *AccountUseCase {
	return &AccountUseCase{repo: repo, tokens: tokens}
}

func (u *AccountUseCase) Register(ctx context.Context, username, passwordHash, email string) (entities.Account, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" {
		return entities.Account{}, ErrInvalidUsername
	}
	if passwordHash == "" {
		return entities.Account{}, ErrInvalidPasswordHash
	}

	a := entities.Account{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        email,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := u.repo.Create(ctx, a)
	if errors.Is(err, interfaces.ErrConflict) {
		log.Printf("[account][usecase] register duplicate username=%s", username)
		return entities.Account{}, ErrUsernameTaken
	}
	if err != nil {
		log.Printf("[account][usecase] register failed username=%s err=%v", username, err)
		return entities.Account{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	log.Printf("[account][usecase] registered username=%s", username)
	return created, nil
}

// Login verifies the supplied hash byte-for-byte against the stored one
// and mints a bearer token on success. Misses and mismatches both come
// back as ErrAuthFailed.
func (u *AccountUseCase) Login(ctx context.Context, username, passwordHash string) (entities.Account, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || passwordHash == "" {
		return entities.Account{}, "", ErrAuthFailed
	}

	a, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Printf("[account][usecase] login lookup failed username=%s err=%v", username, err)
		return entities.Account{}, "", fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if a.Username == "" || subtle.ConstantTimeCompare([]byte(a.PasswordHash), []byte(passwordHash)) != 1 {
		log.Printf("[account][usecase] login rejected username=%s", username)
		return entities.Account{}, "", ErrAuthFailed
	}

	var token string
	if u.tokens != nil {
		token, err = u.tokens.Issue(a.Username)
		if err != nil {
			log.Printf("[account][usecase] token issue failed username=%s err=%v", username, err)
			return entities.Account{}, "", err
		}
	}
	return a, token, nil
}

func (u *AccountUseCase) GetProfile(ctx context.Context, username string) (entities.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return entities.Account{}, ErrInvalidUsername
	}

	a, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		log.Printf("[account][usecase] profile lookup failed username=%s err=%v", username, err)
		return entities.Account{}, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	if a.Username == "" {
		return entities.Account{}, ErrAccountNotFound
	}
	return a, nil
}
