package jwt

import (
	"errors"
	"fmt"
	"log"
	"time"

	"DTCL-Backend/domain"
	"DTCL-Backend/internal/utils"

	"github.com/golang-jwt/jwt/v4"
)

const (
	accessTokenDuration  = time.Hour * 2
	refreshTokenDuration = time.Hour * 24 * 30
)

type (
	JWTService interface {
		GenerateAccessToken(userID string, role string) string
		GenerateRefreshToken(userID string) (string, error)
		ValidateToken(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, string, error)
		GetUserIDByRefreshToken(token string) (string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
	}
)

func getSecretKey() string {
	utils.LoadConfig()
	return utils.GetConfig("JWT_SECRET")
}

func NewJWTService() JWTService {
	return &jwtService{
		secretKey: getSecretKey(),
		issuer:    "DTCL",
	}
}

func (j *jwtService) GenerateAccessToken(userID string, role string) string {
	claims := jwtUserClaim{
		userID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenDuration)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tx, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Println(err)
	}
	return tx
}

func (j *jwtService) GenerateRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(refreshTokenDuration).Unix(),
		"iat":     time.Now().Unix(),
		"iss":     j.issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.secretKey))
}

func (j *jwtService) parseToken(t_ *jwt.Token) (any, error) {
	if _, ok := t_.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t_.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateToken(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, string, error) {
	t_Token, err := j.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !t_Token.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := t_Token.Claims.(*jwtUserClaim)
	return claims.UserID, claims.Role, nil
}

func (j *jwtService) GetUserIDByRefreshToken(token string) (string, error) {
	t_Token, err := jwt.Parse(token, j.parseToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrRefreshExpired
		}
		return "", domain.ErrRefreshExpired
	}
	if !t_Token.Valid {
		return "", domain.ErrRefreshExpired
	}

	claims, ok := t_Token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrRefreshExpired
	}
	id, _ := claims["user_id"].(string)
	if id == "" {
		return "", domain.ErrRefreshExpired
	}
	return id, nil
}
