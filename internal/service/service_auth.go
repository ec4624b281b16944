package service

import (
	"context"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/mkhalitov/shoplist/internal/config"
	"github.com/mkhalitov/shoplist/internal/logger"
	"github.com/mkhalitov/shoplist/internal/store"
	"github.com/mkhalitov/shoplist/internal/utils"
	"github.com/mkhalitov/shoplist/models"
)

// Registration limits enforced before any persistence call.
const (
	minUsernameLength = 3
	minPasswordLength = 6

	// passwordHashCost is the bcrypt work factor. Fixed at 10; raising it
	// invalidates no existing hashes since bcrypt embeds the cost per hash.
	passwordHashCost = 10
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// idGenerator assigns opaque identifiers to new accounts.
	idGenerator IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, idGenerator IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		idGenerator:    idGenerator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Register creates a new user account.
//
// It validates that both fields are present and long enough, checks the
// username for availability, hashes the password with bcrypt, and delegates
// persistence to the UserRepository. The pre-check keeps the common
// duplicate case cheap; the unique constraint on the username column
// backstops the race between check and insert, so a concurrent registration
// still surfaces as [store.ErrUsernameTaken].
//
// Returns the persisted user or:
//   - ErrMissingCredentials if either field is empty.
//   - ErrCredentialsTooShort if a length rule is violated.
//   - store.ErrUsernameTaken if the username is already registered.
func (a *authService) Register(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("missing registration credentials")
		return models.User{}, ErrMissingCredentials
	}

	if utf8.RuneCountInString(creds.Username) < minUsernameLength || utf8.RuneCountInString(creds.Password) < minPasswordLength {
		log.Error().Str("username", creds.Username).Msg("registration credentials too short")
		return models.User{}, ErrCredentialsTooShort
	}

	_, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err == nil {
		log.Error().Str("username", creds.Username).Msg("username already exists")
		return models.User{}, store.ErrUsernameTaken
	}
	if !errors.Is(err, store.ErrUserNotFound) {
		log.Err(err).Str("username", creds.Username).Msg("user lookup before registration failed")
		return models.User{}, fmt.Errorf("user lookup before registration failed: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		ID:           a.idGenerator.Generate(),
		Username:     creds.Username,
		PasswordHash: string(passwordHash),
		CreatedAt:    time.Now().UTC(),
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", creds.Username).Msg("user creation ended with error")
		if errors.Is(err, store.ErrUsernameTaken) {
			return models.User{}, store.ErrUsernameTaken
		}
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("id", registeredUser.ID).Str("username", registeredUser.Username).Msg("user registered successfully")

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both fields are present, looks the account up by
// username, and compares the supplied password against the stored bcrypt
// hash. A missing account and a failed comparison both collapse into
// ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		log.Error().Str("username", creds.Username).Msg("missing login credentials")
		return models.User{}, ErrMissingCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Error().Str("username", creds.Username).Msg("login for unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", creds.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(creds.Password)); err != nil {
		log.Error().Str("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	log.Info().Str("id", foundUser.ID).Str("username", foundUser.Username).Msg("user successfully logged in")

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the compact token string on success or a wrapped error if JWT
// generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (string, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature and
// the issuer claim. Any validation failure (expired, wrong issuer, malformed)
// is normalised to ErrTokenInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Claims, error) {
	claims, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Claims{}, ErrTokenInvalid
	}

	return claims, nil
}
