package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// dummyPassword is hashed once at construction; logins for unknown emails
// compare against it so that they cost as much as real ones.
const dummyPassword = "go-note-keeper-dummy-password"

type idGenerator interface {
	Generate() string
}

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification with bcrypt, and the
// lifecycle of server-side sessions referenced by signed JWTs.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// sessionStorage keeps the server-side session records.
	sessionStorage store.SessionStorage

	// idGenerator produces session identifiers.
	idGenerator idGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// sessionDuration bounds both the JWT and the server-side session.
	sessionDuration time.Duration

	// bcryptCost is the work factor for new password hashes.
	bcryptCost int

	dummyHash []byte

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, sessionStorage store.SessionStorage, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	dummyHash, err := bcrypt.GenerateFromPassword([]byte(dummyPassword), cost)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error preparing dummy password hash")
	}

	return &authService{
		userRepository:  userRepository,
		sessionStorage:  sessionStorage,
		idGenerator:     utils.NewUUIDGenerator(),
		tokenSignKey:    cfg.TokenSignKey,
		tokenIssuer:     cfg.TokenIssuer,
		sessionDuration: cfg.SessionDuration,
		bcryptCost:      cost,
		dummyHash:       dummyHash,
		now:             time.Now,
		logger:          logger,
	}
}

// Register hashes the password and persists a new account.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrEmailTaken if the email is already registered.
//   - ErrPasswordHashing if bcrypt rejects the password.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContextOr(ctx, a.logger)

	email := normalizeEmail(credentials.Email)

	hash, err := bcrypt.GenerateFromPassword([]byte(credentials.Password), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("error hashing password")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    timestamp(a.now()),
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		log.Info().Str("func", "authService.Register").Msg("email is already registered")
		return models.User{}, ErrEmailTaken
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.Register").Int64("user_id", user.UserID).Msg("user registered")
	return user, nil
}

// Login authenticates an existing user.
//
// Unknown emails and wrong passwords both yield ErrInvalidCredentials, and
// both paths run a bcrypt comparison.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContextOr(ctx, a.logger)

	user, err := a.userRepository.FindUserByEmail(ctx, normalizeEmail(credentials.Email))
	if errors.Is(err, store.ErrUserNotFound) {
		if a.dummyHash != nil {
			_ = bcrypt.CompareHashAndPassword(a.dummyHash, []byte(credentials.Password))
		}
		log.Info().Str("func", "authService.Login").Msg("login attempt for unknown email")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Login").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credentials.Password)); err != nil {
		log.Info().Str("func", "authService.Login").Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CurrentUser returns the account of an authenticated principal. A principal
// whose account no longer exists is treated as anonymous.
func (a *authService) CurrentUser(ctx context.Context, principal models.Principal) (models.User, error) {
	if !principal.IsAuthenticated() {
		return models.User{}, ErrAuthenticationRequired
	}

	user, err := a.userRepository.FindUserByID(ctx, principal.UserID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrAuthenticationRequired
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// CreateSession saves a session valid for the configured duration and signs
// a token carrying its ID.
func (a *authService) CreateSession(ctx context.Context, user models.User) (models.Token, error) {
	log := logger.FromContextOr(ctx, a.logger)

	now := timestamp(a.now())
	session := models.Session{
		ID:        a.idGenerator.Generate(),
		UserID:    user.UserID,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionDuration),
	}

	if err := a.sessionStorage.SaveSession(ctx, session); err != nil {
		log.Err(err).Str("func", "authService.CreateSession").Int64("user_id", user.UserID).Msg("error saving session")
		return models.Token{}, fmt.Errorf("%w: %w", ErrSessionCreationFailed, err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, session.ID, a.sessionDuration, a.tokenSignKey)
	if err != nil {
		_ = a.sessionStorage.DeleteSession(ctx, session.ID)
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ResolveSession verifies the token and checks that its session still exists
// for the same user.
func (a *authService) ResolveSession(ctx context.Context, tokenString string) (models.Principal, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Principal{}, ErrInvalidSession
	}

	session, err := a.sessionStorage.GetSession(ctx, token.SessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Principal{}, ErrInvalidSession
	}
	if err != nil {
		return models.Principal{}, fmt.Errorf("error reading session: %w", err)
	}

	if session.UserID != token.UserID {
		logger.FromContextOr(ctx, a.logger).Warn().
			Str("func", "authService.ResolveSession").
			Int64("token_user_id", token.UserID).
			Int64("session_user_id", session.UserID).
			Msg("session owner does not match token subject")
		return models.Principal{}, ErrInvalidSession
	}

	return models.Principal{UserID: session.UserID, SessionID: session.ID}, nil
}

// Logout deletes the principal's session, if any.
func (a *authService) Logout(ctx context.Context, principal models.Principal) error {
	if principal.SessionID == "" {
		return nil
	}

	if err := a.sessionStorage.DeleteSession(ctx, principal.SessionID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// timestamp is the canonical form of stored times: UTC, microseconds.
func timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
