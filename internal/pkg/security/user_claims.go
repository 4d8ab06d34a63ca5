package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	JWTSecret         string = "Terrace"
	JWTExpirationTime        = time.Hour * 24
)

// 角色常量，与签发侧约定一致
const (
	RoleAdmin     = "ADMIN"
	RoleModerator = "MODERATOR"
)

// UserClaims 定义了我们 Token 中需要包含的业务信息
type UserClaims struct {
	UserID uint64   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}
