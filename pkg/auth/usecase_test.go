package auth

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/BuildWithPundalik/Task-Manager-Backend/pkg/apperror"
)

// fakeUserRepo is an in-memory UserRepository honoring the email unique
// constraint the real store enforces.
type fakeUserRepo struct {
	users map[uuid.UUID]User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user User) error {
	for _, u := range r.users {
		if u.Email == user.Email {
			return apperror.NewDuplicate("User already exists")
		}
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, apperror.NewNotFound("User not found")
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (User, error) {
	u, ok := r.users[id]
	if !ok {
		return User{}, apperror.NewNotFound("User not found")
	}
	return u, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperror.NewNotFound("User not found")
	}
	for id, u := range r.users {
		if id != user.ID && u.Email == user.Email {
			return apperror.NewDuplicate("Email already in use")
		}
	}
	r.users[user.ID] = user
	return nil
}

// fakeTokens issues predictable tokens and verifies by lookup.
type fakeTokens struct {
	issued map[string]uuid.UUID
}

func newFakeTokens() *fakeTokens { return &fakeTokens{issued: make(map[string]uuid.UUID)} }

func (t *fakeTokens) Generate(_ context.Context, userID uuid.UUID) (string, error) {
	token := fmt.Sprintf("token-%s", userID)
	t.issued[token] = userID
	return token, nil
}

func (t *fakeTokens) Verify(token string) (uuid.UUID, error) {
	id, ok := t.issued[token]
	if !ok {
		return uuid.Nil, apperror.NewInvalidToken()
	}
	return id, nil
}

func newTestService() (UseCase, *fakeUserRepo, *fakeTokens) {
	repo := newFakeUserRepo()
	tokens := newFakeTokens()
	return NewService(repo, tokens), repo, tokens
}

func TestRegisterSuccess(t *testing.T) {
	svc, repo, _ := newTestService()

	result, err := svc.Register(context.Background(), "Alice", "Alice@Example.COM", "Str0ng!pwd")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Equal(t, "Alice", result.User.Name)
	require.Equal(t, "alice@example.com", result.User.Email, "email must be lowercased")

	stored, err := repo.GetByID(context.Background(), result.User.ID)
	require.NoError(t, err)
	require.NotEqual(t, "Str0ng!pwd", stored.PasswordHash, "password must never be stored in plaintext")
	require.True(t, checkPassword(stored.PasswordHash, "Str0ng!pwd"))
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name, email, password string
	}{
		{"", "a@b.com", "Str0ng!pwd"},
		{"Alice", "", "Str0ng!pwd"},
		{"Alice", "a@b.com", ""},
	}
	for _, tt := range tests {
		_, err := svc.Register(context.Background(), tt.name, tt.email, tt.password)
		require.True(t, apperror.IsKind(err, apperror.Validation), "name=%q email=%q", tt.name, tt.email)
	}
}

func TestRegisterPasswordPolicy(t *testing.T) {
	svc, _, _ := newTestService()

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"too short", "S0!a", true},
		{"no uppercase", "str0ng!pwd", true},
		{"no lowercase", "STR0NG!PWD", true},
		{"no digit", "Strong!pwd", true},
		{"no symbol", "Str0ngpwd", true},
		{"symbol outside allowed set", "Str0ng#pwd", true},
		{"meets policy", "Str0ng!pwd", false},
	}
	for i, tt := range tests {
		email := fmt.Sprintf("user%d@example.com", i)
		_, err := svc.Register(context.Background(), "User", email, tt.password)
		if tt.wantErr {
			require.True(t, apperror.IsKind(err, apperror.Validation), tt.name)
		} else {
			require.NoError(t, err, tt.name)
		}
	}
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Str0ng!pwd")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Alice Again", "ALICE@EXAMPLE.com", "Str0ng!pwd")
	require.True(t, apperror.IsKind(err, apperror.Duplicate))
}

func TestLoginSuccess(t *testing.T) {
	svc, _, _ := newTestService()
	registered, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Str0ng!pwd")
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "Alice@Example.com", "Str0ng!pwd")
	require.NoError(t, err)
	require.Equal(t, registered.User.ID, result.User.ID)
	require.NotEmpty(t, result.Token)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _ := newTestService()
	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Str0ng!pwd")
	require.NoError(t, err)

	_, wrongPassword := svc.Login(context.Background(), "alice@example.com", "Wr0ng!pwd")
	_, unknownEmail := svc.Login(context.Background(), "nobody@example.com", "Str0ng!pwd")

	require.True(t, apperror.IsKind(wrongPassword, apperror.InvalidCredentials))
	require.True(t, apperror.IsKind(unknownEmail, apperror.InvalidCredentials))
	require.Equal(t, wrongPassword.Error(), unknownEmail.Error(),
		"the response must not reveal whether the email or the password was wrong")
}

func TestAuthenticate(t *testing.T) {
	svc, repo, _ := newTestService()
	registered, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Str0ng!pwd")
	require.NoError(t, err)

	t.Run("bearer header", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "Bearer "+registered.Token)
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, user.ID)
	})

	t.Run("bare token", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), registered.Token)
		require.NoError(t, err)
		require.Equal(t, registered.User.ID, user.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "")
		require.True(t, apperror.IsKind(err, apperror.MissingToken))
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "Bearer bogus")
		require.True(t, apperror.IsKind(err, apperror.InvalidToken))
	})

	t.Run("account deleted after issuance", func(t *testing.T) {
		delete(repo.users, registered.User.ID)
		_, err := svc.Authenticate(context.Background(), "Bearer "+registered.Token)
		require.True(t, apperror.IsKind(err, apperror.UserNotFound))
	})
}

func TestUpdateProfile(t *testing.T) {
	svc, _, _ := newTestService()
	alice, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Str0ng!pwd")
	require.NoError(t, err)
	_, err = svc.Register(context.Background(), "Bob", "bob@example.com", "Str0ng!pwd")
	require.NoError(t, err)

	t.Run("change name only", func(t *testing.T) {
		updated, err := svc.UpdateProfile(context.Background(), alice.User.ID, "Alice Smith", "")
		require.NoError(t, err)
		require.Equal(t, "Alice Smith", updated.Name)
		require.Equal(t, "alice@example.com", updated.Email)
	})

	t.Run("email conflict", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), alice.User.ID, "", "BOB@example.com")
		require.True(t, apperror.IsKind(err, apperror.Duplicate))
	})

	t.Run("change email", func(t *testing.T) {
		updated, err := svc.UpdateProfile(context.Background(), alice.User.ID, "", "Alice.New@Example.com")
		require.NoError(t, err)
		require.Equal(t, "alice.new@example.com", updated.Email)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.UpdateProfile(context.Background(), uuid.New(), "Ghost", "")
		require.True(t, apperror.IsKind(err, apperror.NotFound))
	})
}

func TestChangePassword(t *testing.T) {
	svc, _, _ := newTestService()
	alice, err := svc.Register(context.Background(), "Alice", "alice@example.com", "Str0ng!pwd")
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), alice.User.ID, "Wr0ng!pwd", "N3wStr0ng!")
		require.True(t, apperror.IsKind(err, apperror.InvalidCredentials))
	})

	t.Run("weak new password", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), alice.User.ID, "Str0ng!pwd", "weak")
		require.True(t, apperror.IsKind(err, apperror.Validation))
	})

	t.Run("success rehashes", func(t *testing.T) {
		err := svc.ChangePassword(context.Background(), alice.User.ID, "Str0ng!pwd", "N3wStr0ng!")
		require.NoError(t, err)

		_, err = svc.Login(context.Background(), "alice@example.com", "Str0ng!pwd")
		require.True(t, apperror.IsKind(err, apperror.InvalidCredentials))
		_, err = svc.Login(context.Background(), "alice@example.com", "N3wStr0ng!")
		require.NoError(t, err)
	})
}
