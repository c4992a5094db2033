package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

// UseCase describes registration, authentication and account management
// behavior.
type UseCase interface {
	Register(ctx context.Context, name, email, password string) (AuthResult, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	// Authenticate resolves a raw Authorization header into the account it
	// proves. It is the single entry point protected routes go through.
	Authenticate(ctx context.Context, authorizationHeader string) (User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, name, email string) (User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo   UserRepository
	tokens TokenService
}

// NewService returns the default implementation of UseCase.
func NewService(repo UserRepository, tokens TokenService) UseCase {
	return &authService{repo: repo, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, name, email, password string) (AuthResult, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	if name == "" || email == "" || password == "" {
		return AuthResult{}, apperror.NewValidation("Name, email, and password are required")
	}
	if err := validatePassword(password); err != nil {
		return AuthResult{}, err
	}

	// Best-effort duplicate check; the unique constraint still backstops races.
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return AuthResult{}, apperror.NewDuplicate("User already exists")
	} else if !apperror.IsKind(err, apperror.NotFound) {
		return AuthResult{}, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return AuthResult{}, apperror.NewInternal("Server error", err)
	}

	now := time.Now().UTC()
	user := User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return AuthResult{}, err
	}
	token, err := s.tokens.Generate(ctx, user.ID)
	if err != nil {
		return AuthResult{}, apperror.NewInternal("Server error", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, apperror.NewValidation("Email and password are required")
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			// Same failure as a wrong password: never reveal which was wrong.
			return AuthResult{}, apperror.NewInvalidCredentials()
		}
		return AuthResult{}, err
	}
	if !checkPassword(user.PasswordHash, password) {
		return AuthResult{}, apperror.NewInvalidCredentials()
	}
	token, err := s.tokens.Generate(ctx, user.ID)
	if err != nil {
		return AuthResult{}, apperror.NewInternal("Server error", err)
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Authenticate(ctx context.Context, authorizationHeader string) (User, error) {
	tokenStr := extractBearer(authorizationHeader)
	if tokenStr == "" {
		return User{}, apperror.NewMissingToken()
	}
	userID, err := s.tokens.Verify(tokenStr)
	if err != nil {
		return User{}, err
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if apperror.IsKind(err, apperror.NotFound) {
			// Account deleted after issuance; tokens are not invalidated.
			return User{}, apperror.NewUserNotFound()
		}
		return User{}, err
	}
	return user, nil
}

func (s *authService) GetProfile(ctx context.Context, userID uuid.UUID) (User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, name, email string) (User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return User{}, err
	}
	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if email = normalizeEmail(email); email != "" && email != user.Email {
		if _, err := s.repo.GetByEmail(ctx, email); err == nil {
			return User{}, apperror.NewDuplicate("Email already in use")
		} else if !apperror.IsKind(err, apperror.NotFound) {
			return User{}, err
		}
		user.Email = email
	}
	user.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, user); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if currentPassword == "" || newPassword == "" {
		return apperror.NewValidation("Current password and new password are required")
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !checkPassword(user.PasswordHash, currentPassword) {
		return apperror.New(apperror.InvalidCredentials, "Current password is incorrect")
	}
	if err := validatePassword(newPassword); err != nil {
		return err
	}
	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return apperror.NewInternal("Server error", err)
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	return s.repo.Update(ctx, user)
}

// normalizeEmail lowercases and trims for case-insensitive uniqueness.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// extractBearer pulls the token out of an Authorization header. Both
// "Bearer <token>" and a bare token are accepted.
func extractBearer(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
