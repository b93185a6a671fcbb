package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"mrtravel/internal/domain"
	"mrtravel/internal/domain/models"
	"mrtravel/internal/repositories"
	"mrtravel/internal/utils"
)

const (
	minPasswordLen = 6
	// bcrypt only accepts up to 72 bytes.
	maxPasswordLen = 72
)

var errInvalidCredentials = domain.UnauthorizedError{Msg: "Invalid credentials"}

// RegisterInput is a sign-up request.
type RegisterInput struct {
	Name     string `validate:"required"`
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

// AuthService registers accounts and issues HS256 tokens for them.
type AuthService struct {
	Store     *repositories.Store
	Secret    []byte
	TTL       time.Duration
	Cost      int
	Now       func() time.Time
	RequestID string
}

func (s AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return utils.NowUTC()
}

func (s AuthService) cost() int {
	if s.Cost != 0 {
		return s.Cost
	}
	return bcrypt.DefaultCost
}

func (s AuthService) Register(in RegisterInput) (models.User, error) {
	return s.register(in, domain.RoleUser)
}

func (s AuthService) register(in RegisterInput, role string) (models.User, error) {
	trimAll(&in.Name, &in.Email)
	if err := validateStruct(in); err != nil {
		return models.User{}, err
	}
	if !utils.IsEmail(in.Email) {
		return models.User{}, domain.ValidationError{Msg: "Invalid email format"}
	}
	if len(in.Password) < minPasswordLen {
		return models.User{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("must be at least %d characters", minPasswordLen)}
	}
	if len(in.Password) > maxPasswordLen {
		return models.User{}, domain.ValidationError{Field: "password", Msg: fmt.Sprintf("must be at most %d bytes", maxPasswordLen)}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost())
	if err != nil {
		return models.User{}, domain.InternalError{Msg: "failed to hash password", Err: err}
	}

	var user models.User
	err = s.Store.Update(func(tx *repositories.Tx) error {
		var err error
		user, err = tx.InsertUser(models.User{
			Name:         in.Name,
			Email:        in.Email,
			PasswordHash: string(hash),
			Role:         role,
			CreatedAt:    s.now(),
		})
		return err
	})
	if err != nil {
		return models.User{}, err
	}

	utils.LogEvent(s.RequestID, "auth", "register", fmt.Sprintf("user_id=%d role=%s", user.ID, role))
	return user, nil
}

// EnsureAdmin creates an admin account unless the email is already taken.
func (s AuthService) EnsureAdmin(email, password string) error {
	_, err := s.register(RegisterInput{Name: "Administrator", Email: email, Password: password}, domain.RoleAdmin)
	if domain.IsConflict(err) {
		return nil
	}
	return err
}

// Login checks the credentials and returns a signed token for the user.
func (s AuthService) Login(email, password string) (string, models.User, error) {
	email = strings.TrimSpace(email)

	var user models.User
	err := s.Store.View(func(tx *repositories.Tx) error {
		var err error
		user, err = tx.FindUserByEmail(email)
		return err
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return "", models.User{}, errInvalidCredentials
		}
		return "", models.User{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", models.User{}, errInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": int64(user.ID),
		"email":   user.Email,
		"role":    user.Role,
		"iat":     s.now().Unix(),
		"exp":     s.now().Add(s.TTL).Unix(),
	})
	signed, err := token.SignedString(s.Secret)
	if err != nil {
		return "", models.User{}, domain.InternalError{Msg: "failed to sign token", Err: err}
	}

	utils.LogEvent(s.RequestID, "auth", "login", fmt.Sprintf("user_id=%d", user.ID))
	return signed, user, nil
}

// ParseToken verifies signature and expiry and returns the caller identity.
func (s AuthService) ParseToken(raw string) (domain.RequestContext, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return s.Secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.RequestContext{}, domain.UnauthorizedError{Msg: "token expired", Err: err}
		}
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token", Err: err}
	}

	id, _ := claims["user_id"].(float64)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if id <= 0 || email == "" {
		return domain.RequestContext{}, domain.UnauthorizedError{Msg: "invalid token"}
	}
	return domain.RequestContext{UserID: domain.ID(id), Email: email, Role: role}, nil
}

// CurrentUser resolves the account behind an authenticated request.
func (s AuthService) CurrentUser(rc domain.RequestContext) (models.User, error) {
	var user models.User
	err := s.Store.View(func(tx *repositories.Tx) error {
		var err error
		user, err = tx.FindUserByID(rc.UserID)
		return err
	})
	return user, err
}
