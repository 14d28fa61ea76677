package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"k8s.io/klog/v2"

	"github.com/algonotes/backend/config"
)

// RoleAdmin 后台管理员角色
const RoleAdmin = "admin"

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token expired")
	ErrAuthNotConfigured  = errors.New("admin account is not configured")
)

// Claims 管理员 JWT 声明
type Claims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService 管理员认证
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	admin config.AdminConfig
	jwt   config.JWTConfig
	now   func() time.Time
}

// NewAuthService 创建服务实例
func NewAuthService(admin config.AdminConfig, jwtCfg config.JWTConfig) AuthService {
	return &authService{admin: admin, jwt: jwtCfg, now: time.Now}
}

// HashPassword 生成 bcrypt 密码哈希，用于填写 admin.password_hash
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Login 校验用户名密码并签发令牌
func (s *authService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if s.admin.PasswordHash == "" || s.jwt.Secret == "" {
		klog.Warningf("[Auth] 未配置管理员密码或 JWT 密钥，拒绝登录")
		return nil, ErrAuthNotConfigured
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.admin.Username)) != 1 {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	hours := s.jwt.ExpireHours
	if hours <= 0 {
		hours = 24
	}
	expiresAt := now.Add(time.Duration(hours) * time.Hour)
	claims := &Claims{
		Username: username,
		Role:     RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwt.Secret))
	if err != nil {
		return nil, err
	}
	klog.V(6).Infof("[Auth] 管理员 %s 登录成功", username)
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Username: username}, nil
}

// ParseToken 解析并验证令牌，只接受 HMAC 签名的管理员令牌
func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	if s.jwt.Secret == "" {
		return nil, ErrInvalidToken
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.jwt.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Role != RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
