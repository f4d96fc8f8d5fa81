package session

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/gophdraw/internal/models"
)

const issuer = "gophdraw"

// DefaultTTL срок жизни токена возобновления сессии
const DefaultTTL = 24 * time.Hour

var (
	// ErrInvalidToken indicates a token that failed signature or expiry checks
	ErrInvalidToken = errors.New("invalid resume token")

	// ErrRoomMismatch indicates a token issued for another room
	ErrRoomMismatch = errors.New("resume token belongs to another room")
)

// ResumeClaims представляет JWT claims токена возобновления.
// Subject содержит userId, который сохраняется между переподключениями.
type ResumeClaims struct {
	Room        string `json:"room"`
	DisplayName string `json:"name"`
	Color       string `json:"color"`
	jwt.RegisteredClaims
}

// Service выдает и проверяет токены возобновления сессии (HS256)
type Service struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewService создает сервис токенов. Пустой secret заменяется случайным:
// токены тогда действуют только до перезапуска процесса.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	key := []byte(secret)
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Service{secret: key, ttl: ttl, now: time.Now}, nil
}

// Issue создает подписанный токен для профиля в комнате
func (s *Service) Issue(room string, profile models.UserProfile) (string, error) {
	now := s.now()

	claims := ResumeClaims{
		Room:        room,
		DisplayName: profile.DisplayName,
		Color:       profile.Color,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   profile.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// Resume проверяет токен и возвращает профиль прошлой сессии
func (s *Service) Resume(room, tokenString string) (*models.UserProfile, error) {
	claims := &ResumeClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return nil, ErrInvalidToken
	}
	if claims.Room != room {
		return nil, ErrRoomMismatch
	}

	return &models.UserProfile{
		UserID:      claims.Subject,
		DisplayName: claims.DisplayName,
		Color:       claims.Color,
	}, nil
}
