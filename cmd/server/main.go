package main

import (
	"log"
	"os"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"item_backend/internal/app/di"
	"item_backend/internal/app/router"
	authadapters "item_backend/internal/feature/auth/adapters"
	authhandler "item_backend/internal/feature/auth/transport/handler"
	authusecase "item_backend/internal/feature/auth/usecase"
	itemhandler "item_backend/internal/feature/items/transport/handler"
	itemusecase "item_backend/internal/feature/items/usecase"
	infradb "item_backend/internal/platform/db"
	jwtmw "item_backend/internal/platform/jwt"
	infraredis "item_backend/internal/platform/redis"
)

// jwtExpiration は JWT_EXPIRY_MINUTES から有効期限を読み取ります。
func jwtExpiration() time.Duration {
	if v := os.Getenv("JWT_EXPIRY_MINUTES"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
		log.Printf("[WARN] invalid JWT_EXPIRY_MINUTES %q, using default", v)
	}
	return jwtmw.DefaultExpiration
}

func main() {
	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// JWT_SECRETチェック（開発中の注意喚起）
	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// Repository
	userRepo := authadapters.NewUserMySQL(db)
	// Redisキャッシュでラップ
	itemRepo := di.NewItemRepository(rdb, db)

	// Usecase
	jwtGen := jwtmw.NewGenerator(secret, jwtExpiration())
	authUC := authusecase.NewAuthUsecase(userRepo, jwtGen)
	itemUC := itemusecase.NewItemUsecase(itemRepo)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	itemH := itemhandler.NewItemHandler(itemUC)

	// ルータ生成
	router := router.NewRouter(authH, itemH)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
