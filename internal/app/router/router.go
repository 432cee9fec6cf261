package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	authhandler "item_backend/internal/feature/auth/transport/handler"
	itemhandler "item_backend/internal/feature/items/transport/handler"
	"item_backend/internal/platform/http/handler"
	jwtmw "item_backend/internal/platform/jwt"
	"item_backend/internal/shared/ratelimiter"
)

// rateLimited は上限超過時に429を返すミドルウェアを生成します。
func rateLimited(rl ratelimiter.RateLimiterInterface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}

func NewRouter(authHandler *authhandler.AuthHandler, items *itemhandler.ItemHandler) *gin.Engine {
	r := gin.Default()

	// 認証エンドポイントの総当たり対策
	authLimiter := ratelimiter.NewRateLimiter(30, time.Minute)

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/register", rateLimited(authLimiter), authHandler.Register)
	// ログイン（JWT 発行）
	r.POST("/login", rateLimited(authLimiter), authHandler.Login)

	// 認証必須のルート
	// r.Group("/items") でルートグループを作成
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	auth := r.Group("/items")
	auth.Use(jwtmw.AuthRequired())
	{
		auth.GET("", items.List)
		auth.POST("", items.Create)
		auth.GET("/:id", items.Get)
		auth.PUT("/:id", items.Update)
		auth.DELETE("/:id", items.Delete)
	}

	return r
}
