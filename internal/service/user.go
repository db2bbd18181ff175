package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"regexp"
	"time"

	"github.com/fandyandika/hello-saas/internal/model"
	"github.com/fandyandika/hello-saas/internal/repository"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailExists        = errors.New("Email ini sudah terdaftar! Silakan login untuk masuk ke dashboard.")
	ErrInvalidEmail       = errors.New("Mohon masukkan alamat email yang valid")
	ErrPasswordTooShort   = errors.New("Password harus minimal 6 karakter")
	ErrInvalidCredentials = errors.New("Email atau password salah")
	ErrSignupThrottled    = errors.New("Email ini baru saja digunakan untuk pendaftaran. Silakan cek email Anda atau tunggu sebentar.")
	ErrResetTokenInvalid  = errors.New("Link reset password tidak valid atau sudah kedaluwarsa")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const resetTokenTTL = time.Hour

type UserService struct {
	repo      repository.UserRepositoryInterface
	resetRepo *repository.PasswordResetRepository
	throttle  *SignupThrottle
}

// NewUserServiceWithRepo wires explicit dependencies, for tests.
func NewUserServiceWithRepo(repo repository.UserRepositoryInterface, throttle *SignupThrottle) *UserService {
	return &UserService{
		repo:      repo,
		resetRepo: repository.NewPasswordResetRepository(),
		throttle:  throttle,
	}
}

func NewUserService(throttle *SignupThrottle) *UserService {
	return NewUserServiceWithRepo(repository.NewUserRepository(), throttle)
}

func (s *UserService) Register(req *model.RegisterRequest) (*model.User, error) {
	if !emailPattern.MatchString(req.Email) {
		return nil, ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return nil, ErrPasswordTooShort
	}

	exists, err := s.repo.ExistsByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	if s.throttle != nil && s.throttle.Recent(req.Email) {
		return nil, ErrSignupThrottled
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	if s.throttle != nil {
		s.throttle.Record(req.Email)
	}
	return user, nil
}

func (s *UserService) Login(req *model.LoginRequest) (*model.User, string, error) {
	user, err := s.repo.GetByEmail(req.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	jwtService := NewJWTService()
	token, err := jwtService.GenerateToken(user.ID, user.Email)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *UserService) EmailExists(email string) (bool, error) {
	return s.repo.ExistsByEmail(email)
}

// RequestPasswordReset issues a one-time reset token for the email. Absent
// accounts are not revealed to the caller; the token is only logged here
// because no mail delivery is wired up.
func (s *UserService) RequestPasswordReset(email string) error {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return err
	}
	token := hex.EncodeToString(buf)

	if _, err := s.resetRepo.Create(user.ID, token, time.Now().Add(resetTokenTTL)); err != nil {
		return err
	}

	log.WithField("user_id", user.ID).Info("password reset token issued")
	return nil
}

func (s *UserService) ConfirmPasswordReset(token, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	reset, err := s.resetRepo.GetByToken(token)
	if err != nil {
		return err
	}
	if reset == nil || reset.Used || time.Now().After(reset.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.UpdatePassword(reset.UserID, string(hashedPassword)); err != nil {
		return err
	}
	return s.resetRepo.MarkUsed(reset.ID)
}

func (s *UserService) GetByID(id string) (*model.User, error) {
	return s.repo.GetByID(id)
}
