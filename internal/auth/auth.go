package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidClaimToken возвращается для просроченного или подделанного claim-токена
	ErrInvalidClaimToken = errors.New("auth: invalid claim token")
)

// bcryptCost стоимость хеширования паролей
const bcryptCost = 12

// HashPassword хеширует пароль bcrypt-ом
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("auth: failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сверяет пароль с хешем
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ClaimClaims полезная нагрузка claim-токена
// Токен выдается на странице результата создания лендинга и позволяет
// привязать анонимный профиль к новому аккаунту при регистрации -
// явный параметр вместо неявного состояния сессии
type ClaimClaims struct {
	LandingID int64  `json:"landing_id"`
	Slug      string `json:"slug"`
	jwt.RegisteredClaims
}

// ClaimTokens подписывает и проверяет claim-токены
type ClaimTokens struct {
	secret []byte
	ttl    time.Duration
}

// NewClaimTokens создает подписыватель claim-токенов
func NewClaimTokens(secret string, ttl time.Duration) *ClaimTokens {
	return &ClaimTokens{secret: []byte(secret), ttl: ttl}
}

// Issue выдает подписанный claim-токен для лендинга
func (c *ClaimTokens) Issue(landingID int64, slug string) (string, error) {
	now := time.Now()
	claims := ClaimClaims{
		LandingID: landingID,
		Slug:      slug,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "tap-landing-service",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("auth: failed to sign claim token: %w", err)
	}
	return signed, nil
}

// Verify проверяет подпись и срок действия claim-токена
func (c *ClaimTokens) Verify(tokenString string) (*ClaimClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &ClaimClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidClaimToken, err)
	}

	claims, ok := token.Claims.(*ClaimClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaimToken
	}
	return claims, nil
}
