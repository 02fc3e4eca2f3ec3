package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"goalazo/config"
	"goalazo/internal/domain/entity"
	"goalazo/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using
// HS256 JWTs signed with a single symmetric secret.
type jwtService struct {
	secret string
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Token == "" {
		return nil, errors.New("token signing secret must be provided")
	}

	ttl := 24 * time.Hour
	if cfg.Auth != nil && cfg.Auth.TokenTTL != 0 {
		ttl = cfg.Auth.TokenTTL
	}

	return &jwtService{
		secret: cfg.SecretKey.Token,
		ttl:    ttl,
	}, nil
}

// Issue signs the user's claims with an absolute expiry of now + ttl.
func (s *jwtService) Issue(user *entity.AuthenticatedUser) (string, error) {
	now := time.Now()
	claims := &service.TokenClaims{
		UserID:           user.ID,
		Name:             user.Name,
		IsAdmin:          user.IsAdmin,
		IsAutoGenerated:  user.IsAutoGenerated,
		RegistrationDate: user.RegistrationDate,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// Validate verifies signature and expiry and reconstructs the claims.
// jwt.ParseWithClaims rejects expired tokens by default.
func (s *jwtService) Validate(tokenString string) (*service.TokenClaims, error) {
	claims := &service.TokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify token")
	}
	if !token.Valid {
		return nil, errors.WithStack(jwt.ErrTokenUnverifiable)
	}

	return claims, nil
}
