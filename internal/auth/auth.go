package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/violintec/common-login/internal/access"
	"github.com/violintec/common-login/internal/user"
)

// emailPattern is the corporate domain every email identifier must
// belong to.
var emailPattern = regexp.MustCompile(`^[^@]+@violintec\.com$`)

func IsCorporateEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// HashPassword produces the stored credential form: a hex-encoded
// SHA-256 digest of the plaintext. Login recomputes this digest and
// compares it against the stored column.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// UserRepository is the identity slice of the user store that login and
// signup need.
type UserRepository interface {
	GetByEmployeeID(empID string) (*user.User, error)
	GetByEmail(email string) (*user.User, error)
	CountByEmail(email string) (int64, error)
	Deactivate(empID string) error
	ExistsByEmployeeID(empID string) (bool, error)
	ExistsByEmail(email string) (bool, error)
	Create(u *user.User) error
}

// UnitLister supplies the unit membership aggregated into the login
// profile.
type UnitLister interface {
	ListUnits(empID string) ([]string, error)
}

// GrantLister supplies the access grants aggregated into the login
// profile.
type GrantLister interface {
	ListAllGrants(empID string) ([]access.Grant, error)
}

// AccessSeeder provisions initial access records during signup.
type AccessSeeder interface {
	SeedAccess(employeeID, projectCode, authType string) error
}

// Profile is the aggregated payload returned on a successful login.
type Profile struct {
	EmployeeID string         `json:"employee_id"`
	Title      string         `json:"title"`
	FirstName  string         `json:"first_name"`
	LastName   string         `json:"last_name"`
	Department string         `json:"department"`
	Units      []string       `json:"units"`
	Access     []access.Grant `json:"access"`
}

// LoginResult carries the terminal state of a login attempt that is not
// an error: success, or the shared-email redirect.
type LoginResult struct {
	Status  string   `json:"status"`
	Message string   `json:"message"`
	Data    *Profile `json:"data,omitempty"`
	Token   string   `json:"token,omitempty"`
}

const (
	StatusSuccess     = "success"
	StatusSharedEmail = "shared_email"
)

type Claims struct {
	EmployeeID string `json:"employee_id"`
	Email      string `json:"email"`
	jwt.RegisteredClaims
}

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

// JWTTokenGenerator signs session tokens handed out on login.
type JWTTokenGenerator struct {
	Secret   []byte
	TokenTTL time.Duration
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		Secret:   []byte(secret),
		TokenTTL: ttl,
	}
}

func (j *JWTTokenGenerator) GenerateToken(employeeID, email string) (string, error) {
	expiresAt := time.Now().Add(j.TokenTTL)

	claims := &Claims{
		EmployeeID: employeeID,
		Email:      email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Subject:   employeeID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.Secret)
}

func (j *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return j.Secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrInvalidToken
}
