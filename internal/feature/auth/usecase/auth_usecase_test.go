package usecase

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"item_backend/internal/feature/auth/domain/entity"
)

// mockUserRepository is a mock implementation of the UserRepository interface.
// It simulates database operations during testing.
type mockUserRepository struct {
	// CreateFunc is called when the Create method is invoked.
	CreateFunc func(ctx context.Context, user *entity.User) error
	// FindByEmailFunc is called when the FindByEmail method is invoked.
	FindByEmailFunc func(ctx context.Context, email string) (*entity.User, error)
	// FindByIDFunc is called when the FindByID method is invoked.
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

// mockJWTGenerator is a mock implementation of the JWTGenerator interface.
type mockJWTGenerator struct {
	// GenerateTokenFunc is called when the GenerateToken method is invoked.
	GenerateTokenFunc func(userID uint, email string) (string, error)
}

// GenerateToken is the mock implementation of the GenerateToken method.
func (m *mockJWTGenerator) GenerateToken(userID uint, email string) (string, error) {
	if m.GenerateTokenFunc != nil {
		return m.GenerateTokenFunc(userID, email)
	}
	// Default: return a dummy token
	return "mock-jwt-token", nil
}

// Create is the mock implementation of the Create method.
func (m *mockUserRepository) Create(ctx context.Context, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil // Default: success
}

// FindByEmail is the mock implementation of the FindByEmail method.
func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	// Default: return user not found error
	return nil, ErrUserNotFound
}

// FindByID is the mock implementation of the FindByID method.
func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, ErrUserNotFound
}

func TestAuthUsecase_Register(t *testing.T) {
	t.Run("successful registration", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				// Verify that the password is hashed
				if len(user.Password) == 0 || user.Password == "password123" {
					t.Errorf("password is not hashed")
				}
				// Verify that it's a valid bcrypt hash
				if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")); err != nil {
					t.Errorf("invalid bcrypt hash: %v", err)
				}
				user.ID = 1
				return nil
			},
		}
		mockJWT := &mockJWTGenerator{}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		user, err := uc.Register(context.Background(), "testuser", "test@example.com", "password123")

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID != 1 {
			t.Errorf("expected ID 1, got %d", user.ID)
		}
		if user.Username != "testuser" {
			t.Errorf("expected username %q, got %q", "testuser", user.Username)
		}
		if user.Email != "test@example.com" {
			t.Errorf("expected email %q, got %q", "test@example.com", user.Email)
		}
	})

	t.Run("password below minimum length", func(t *testing.T) {
		repoCalled := false
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				repoCalled = true
				return nil
			},
		}
		mockJWT := &mockJWTGenerator{}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Register(context.Background(), "testuser", "test@example.com", "short")

		if err == nil {
			t.Error("expected error for short password")
		}
		if repoCalled {
			t.Error("repository should not be called for an invalid password")
		}
	})

	t.Run("duplicate email error", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return ErrEmailAlreadyExists
			},
		}
		mockJWT := &mockJWTGenerator{}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Register(context.Background(), "testuser", "existing@example.com", "password123")

		if !errors.Is(err, ErrEmailAlreadyExists) {
			t.Errorf("expected ErrEmailAlreadyExists, got: %v", err)
		}
	})

	t.Run("repository create failure", func(t *testing.T) {
		expectedErr := errors.New("database error")
		mockRepo := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				return expectedErr
			},
		}
		mockJWT := &mockJWTGenerator{}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Register(context.Background(), "testuser", "test@example.com", "password123")

		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error '%v', got: %v", expectedErr, err)
		}
	})
}

func TestAuthUsecase_Login(t *testing.T) {
	// Hashed password for testing
	password := "password123"
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	testUser := &entity.User{
		ID:       1,
		Username: "testuser",
		Email:    "test@example.com",
		Password: string(hashedPassword),
	}

	t.Run("successful login", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				if email == testUser.Email {
					return testUser, nil
				}
				return nil, ErrUserNotFound
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				if userID != testUser.ID {
					t.Errorf("expected userID %d, got %d", testUser.ID, userID)
				}
				return "signed-token", nil
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		token, err := uc.Login(context.Background(), testUser.Email, password)

		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token != "signed-token" {
			t.Errorf("expected token %q, got %q", "signed-token", token)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockJWT := &mockJWTGenerator{}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Login(context.Background(), testUser.Email, "wrongpassword")

		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("unknown email returns the same aggregated error", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return nil, ErrUserNotFound
			},
		}
		mockJWT := &mockJWTGenerator{}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Login(context.Background(), "unknown@example.com", password)

		// Unknown user and wrong password must be indistinguishable
		if !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got: %v", err)
		}
	})

	t.Run("token generation failure", func(t *testing.T) {
		mockRepo := &mockUserRepository{
			FindByEmailFunc: func(ctx context.Context, email string) (*entity.User, error) {
				return testUser, nil
			},
		}
		mockJWT := &mockJWTGenerator{
			GenerateTokenFunc: func(userID uint, email string) (string, error) {
				return "", errors.New("signing error")
			},
		}

		uc := NewAuthUsecase(mockRepo, mockJWT)
		_, err := uc.Login(context.Background(), testUser.Email, password)

		if err == nil {
			t.Error("expected error when token generation fails")
		}
		if errors.Is(err, ErrInvalidCredentials) {
			t.Error("token generation failure must not look like bad credentials")
		}
	})
}
