package service

import (
	"errors"
	"testing"
	"time"

	"github.com/fandyandika/hello-saas/internal/config"
	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]*model.User // keyed by email
}

var _ repository.UserRepositoryInterface = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*model.User)}
}

func (f *fakeUserRepo) Create(user *model.User) error {
	user.ID = "u-" + user.Email
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*model.User, error) {
	return f.users[email], nil
}

func (f *fakeUserRepo) ExistsByEmail(email string) (bool, error) {
	_, ok := f.users[email]
	return ok, nil
}

func (f *fakeUserRepo) GetByID(id string) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) UpdatePassword(userID, passwordHash string) error {
	for _, u := range f.users {
		if u.ID == userID {
			u.PasswordHash = passwordHash
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) Delete(id string) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
		}
	}
	return nil
}

func newTestUserService() (*UserService, *fakeUserRepo) {
	config.Load()
	repo := newFakeUserRepo()
	return NewUserServiceWithRepo(repo, NewSignupThrottle(time.Minute)), repo
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := newTestUserService()

	cases := []struct {
		name    string
		email   string
		pass    string
		wantErr error
	}{
		{"bad email", "not-an-email", "secret1", ErrInvalidEmail},
		{"no domain", "a@b", "secret1", ErrInvalidEmail},
		{"short password", "a@b.co", "12345", ErrPasswordTooShort},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Register(&model.RegisterRequest{Email: tc.email, Password: tc.pass})
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newTestUserService()

	user, err := svc.Register(&model.RegisterRequest{Email: "a@b.co", Password: "rahasia"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	stored := repo.users["a@b.co"]
	if stored.PasswordHash == "rahasia" {
		t.Fatalf("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("rahasia")); err != nil {
		t.Errorf("stored hash does not verify: %v", err)
	}
	if user.ID == "" {
		t.Errorf("registered user has no id")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestUserService()

	if _, err := svc.Register(&model.RegisterRequest{Email: "a@b.co", Password: "rahasia"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	_, err := svc.Register(&model.RegisterRequest{Email: "a@b.co", Password: "rahasia"})
	if !errors.Is(err, ErrEmailExists) {
		t.Errorf("got %v, want ErrEmailExists", err)
	}
}

func TestRegisterThrottledAfterRecentAttempt(t *testing.T) {
	config.Load()
	repo := newFakeUserRepo()
	throttle := NewSignupThrottle(time.Minute)
	svc := NewUserServiceWithRepo(repo, throttle)

	if _, err := svc.Register(&model.RegisterRequest{Email: "a@b.co", Password: "rahasia"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	// Simulate the account disappearing so the duplicate check passes and
	// the throttle is the only remaining guard.
	delete(repo.users, "a@b.co")

	_, err := svc.Register(&model.RegisterRequest{Email: "a@b.co", Password: "rahasia"})
	if !errors.Is(err, ErrSignupThrottled) {
		t.Errorf("got %v, want ErrSignupThrottled", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _ := newTestUserService()

	if _, err := svc.Register(&model.RegisterRequest{Email: "a@b.co", Password: "rahasia"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	user, token, err := svc.Login(&model.LoginRequest{Email: "a@b.co", Password: "rahasia"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("login returned empty token")
	}

	claims, err := NewJWTService().ValidateToken(token)
	if err != nil {
		t.Fatalf("issued token does not validate: %v", err)
	}
	if claims.UserID != user.ID || claims.Email != "a@b.co" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newTestUserService()

	if _, err := svc.Register(&model.RegisterRequest{Email: "a@b.co", Password: "rahasia"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, _, err := svc.Login(&model.LoginRequest{Email: "a@b.co", Password: "salah"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: got %v", err)
	}
	if _, _, err := svc.Login(&model.LoginRequest{Email: "nobody@b.co", Password: "rahasia"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: got %v", err)
	}
}
