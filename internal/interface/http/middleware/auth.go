package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/mall/internal/domain/auth"
	"github.com/xiebiao/mall/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/mall/pkg/jwt"
	"github.com/xiebiao/mall/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 设计说明：
// 1. 从Header提取Token → 黑名单检查 → 验证签名和有效期
// 2. Claims还原为操作主体（ID+角色）注入Context
// 3. 角色授权不在中间件做：哪个角色能做什么由auth策略表在用例入口统一裁决，
//    中间件只负责"你是谁"
type AuthMiddleware struct {
	jwtManager   *jwt.Manager
	sessionStore *redis.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, sessionStore *redis.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager:   jwtManager,
		sessionStore: sessionStore,
	}
}

// RequireAuth 要求登录
// 使用方式：
//
//	authorized := r.Group("/api/v1")
//	authorized.Use(authMiddleware.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Authorization: Bearer <token>
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.ErrorWithCode(c, 40100, "请先登录")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.ErrorWithCode(c, 40101, "Token格式错误")
			c.Abort()
			return
		}

		tokenString := parts[1]

		// 黑名单检查（已登出或被强制失效的Token）
		isBlacklisted, err := m.sessionStore.IsInBlacklist(c.Request.Context(), tokenString)
		if err != nil {
			response.ErrorWithCode(c, 50000, "验证Token失败")
			c.Abort()
			return
		}
		if isBlacklisted {
			response.ErrorWithCode(c, 40102, "Token已失效，请重新登录")
			c.Abort()
			return
		}

		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		// Claims里的角色必须是已知角色，陌生值一律拒绝
		role := auth.Role(claims.Role)
		if !role.Valid() {
			response.ErrorWithCode(c, 40101, "Token角色无效")
			c.Abort()
			return
		}

		setActor(c, auth.Actor{ID: claims.UserID, Role: role})
		c.Set("email", claims.Email)
		c.Set("nickname", claims.Nickname)
		c.Set("access_token", tokenString)

		c.Next()
	}
}

// OptionalAuth 可选登录
// 有Token则验证并注入主体，没有则作为匿名用户继续（公开读接口用）
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && parts[0] == "Bearer" {
			claims, err := m.jwtManager.ParseToken(parts[1])
			if err == nil {
				role := auth.Role(claims.Role)
				if role.Valid() {
					setActor(c, auth.Actor{ID: claims.UserID, Role: role})
					c.Set("email", claims.Email)
				}
			}
		}

		c.Next()
	}
}

const actorKey = "actor"

func setActor(c *gin.Context, actor auth.Actor) {
	c.Set(actorKey, actor)
}

// GetActor 从Context获取操作主体
// 未登录时返回零值Actor（Role为空，任何策略裁决都会拒绝）
func GetActor(c *gin.Context) (auth.Actor, bool) {
	if v, exists := c.Get(actorKey); exists {
		if actor, ok := v.(auth.Actor); ok {
			return actor, true
		}
	}
	return auth.Actor{}, false
}

// MustGetActor 从Context获取操作主体（仅用于RequireAuth之后的Handler）
func MustGetActor(c *gin.Context) auth.Actor {
	actor, ok := GetActor(c)
	if !ok {
		panic("actor not found in context")
	}
	return actor
}

// GetAccessToken 从Context获取原始Access Token（登出时加黑名单用）
func GetAccessToken(c *gin.Context) string {
	if v, exists := c.Get("access_token"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
