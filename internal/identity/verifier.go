package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid identity token")
	ErrUnknownKeyID = errors.New("unknown signing key id")
)

// Identity - проверенный субъект запроса
type Identity struct {
	UID   string
	Email string
	Name  string
}

// TokenVerifier проверяет bearer-токен и возвращает субъекта
type TokenVerifier interface {
	Verify(ctx context.Context, rawToken string) (*Identity, error)
}

type VerifierConfig struct {
	ProjectID string
	CertsURL  string
	// DevSecret включает HS256-токены (только development/test)
	DevSecret string
}

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// JWTVerifier проверяет ID-токены провайдера (RS256 по x509-сертификатам)
// и, если настроен DevSecret, HS256-токены разработки.
type JWTVerifier struct {
	projectID string
	issuer    string
	devSecret []byte
	keys      *certKeySet
}

func NewJWTVerifier(cfg VerifierConfig, httpClient *http.Client) (*JWTVerifier, error) {
	if cfg.ProjectID == "" && cfg.DevSecret == "" {
		return nil, fmt.Errorf("identity verifier needs a project id or a dev secret")
	}

	v := &JWTVerifier{
		projectID: cfg.ProjectID,
		issuer:    "https://securetoken.google.com/" + cfg.ProjectID,
	}
	if cfg.DevSecret != "" {
		v.devSecret = []byte(cfg.DevSecret)
	}
	if cfg.ProjectID != "" {
		if cfg.CertsURL == "" {
			return nil, fmt.Errorf("identity certs url is required when project id is set")
		}
		v.keys = newCertKeySet(cfg.CertsURL, httpClient)
	}
	return v, nil
}

func (v *JWTVerifier) Verify(ctx context.Context, rawToken string) (*Identity, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return nil, ErrInvalidToken
	}

	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims,
		func(t *jwt.Token) (interface{}, error) {
			return v.keyFor(ctx, t)
		},
		jwt.WithValidMethods([]string{"RS256", "HS256"}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(30*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	// Для токенов провайдера дополнительно проверяем aud/iss
	if _, isRSA := token.Method.(*jwt.SigningMethodRSA); isRSA {
		if !slices.Contains(claims.Audience, v.projectID) {
			return nil, fmt.Errorf("%w: unexpected audience", ErrInvalidToken)
		}
		if claims.Issuer != v.issuer {
			return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
		}
	}

	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: empty subject", ErrInvalidToken)
	}

	return &Identity{
		UID:   claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}

func (v *JWTVerifier) keyFor(ctx context.Context, t *jwt.Token) (interface{}, error) {
	switch t.Method.(type) {
	case *jwt.SigningMethodHMAC:
		if len(v.devSecret) == 0 {
			return nil, fmt.Errorf("hmac tokens are disabled")
		}
		return v.devSecret, nil
	case *jwt.SigningMethodRSA:
		if v.keys == nil {
			return nil, fmt.Errorf("rsa tokens are disabled")
		}
		kid, _ := t.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("%w: missing kid", ErrUnknownKeyID)
		}
		return v.keys.Get(ctx, kid)
	default:
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
}

// IssueDevToken подписывает HS256-токен для локальной разработки и тестов
func IssueDevToken(secret, uid, email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
