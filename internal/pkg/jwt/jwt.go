package jwt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/cmlabs-hris/training-attendance/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidClaims = errors.New("invalid token claims")

type Service interface {
	GenerateAccessToken(u user.User) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey                 string
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
	revokedTokens             map[string]int64
	mu                        sync.RWMutex
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		secretKey:                 secretKey,
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens:             make(map[string]int64),
	}
}

func (j *JWTService) GenerateAccessToken(u user.User) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"user_id":    u.ID,
		"account_id": u.AccountID,
		"email":      u.Email,
		"name":       u.Name,
		"role":       string(u.Role),
		"course_id":  j.returnValueOrNil(u.CourseID),
		"type":       "access",
		"exp":        expiresAt,
	}
	if u.LeaveDate != nil {
		claims["leave_date"] = u.LeaveDate.Format("2006-01-02")
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func (j *JWTService) RevokeToken(token string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.revokedTokens[token] = time.Now().Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}

func (j *JWTService) returnValueOrNil(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

// ActorFromClaims rebuilds the acting user from access token claims.
func ActorFromClaims(claims map[string]interface{}) (user.Actor, error) {
	if tokenType, _ := claims["type"].(string); tokenType != "access" {
		return user.Actor{}, fmt.Errorf("%w: not an access token", ErrInvalidClaims)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Actor{}, fmt.Errorf("%w: user_id is missing", ErrInvalidClaims)
	}
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return user.Actor{}, fmt.Errorf("%w: role is missing", ErrInvalidClaims)
	}

	actor := user.Actor{
		UserID: userID,
		Role:   user.Role(role),
	}
	actor.AccountID, _ = claims["account_id"].(string)
	actor.UserName, _ = claims["name"].(string)
	actor.CourseID, _ = claims["course_id"].(string)

	if leave, ok := claims["leave_date"].(string); ok && leave != "" {
		d, err := time.Parse("2006-01-02", leave)
		if err != nil {
			return user.Actor{}, fmt.Errorf("%w: leave_date: %v", ErrInvalidClaims, err)
		}
		actor.LeaveDate = &d
	}
	return actor, nil
}
