// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"item_backend/internal/feature/auth/domain/entity"
	"item_backend/internal/feature/auth/transport/http/dto"
	"item_backend/internal/feature/auth/usecase"
	"item_backend/internal/shared/validation"
)

// AuthUsecase は認証操作のユースケースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（usecase）ではなくコンシューマー（handler）が定義します。
type AuthUsecase interface {
	// Register は指定されたユーザー名・メールアドレス・パスワードで新規ユーザーを登録します。
	Register(ctx context.Context, username, email, password string) (*entity.User, error)
	// Login はユーザーを認証し、成功時にJWTトークンを返します。
	Login(ctx context.Context, email, password string) (string, error)
}

// AuthHandler は認証操作のHTTPリクエストを処理します。
// AuthUsecaseインターフェースに依存し、JSONリクエスト/レスポンスを処理します。
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタで、外部からAuthUsecaseを注入します。
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Register はユーザー登録APIエンドポイントを処理します。
// - リクエストJSONをRegisterReqにバインド
// - バリデーションエラー時はフィールドごとのエラーを付けて400を返却
// - メールアドレス重複時はemailフィールドのエラーとして400を返却
// - 成功時は作成されたユーザー（パスワードを除く）を付けて201を返却
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("register validation failed", "error", err, "remote_addr", c.ClientIP())
		if fieldErrs := validation.FromBindingError(err); fieldErrs != nil {
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrEmailAlreadyExists) {
			slog.Warn("register rejected: duplicate email", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, validation.FieldErrors{
				"email": {"user with this email already exists."},
			})
			return
		}
		slog.Error("register failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	slog.Info("user registered", "user_id", user.ID, "email", user.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.RegisterResp{ID: user.ID, Username: user.Username, Email: user.Email})
}

// Login はユーザーログインAPIエンドポイントを処理します。
// - リクエストJSONをLoginReqにバインド
// - フィールド欠落時はフィールドごとのエラーを付けて400を返却
// - 資格情報不一致時はnon_field_errorsの集約エラーとして400を返却
//   （メール未登録かパスワード誤りかを区別しない。ユーザー列挙攻撃の防止）
// - 認証成功時はアクセストークンを付けて200を返却
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		if fieldErrs := validation.FromBindingError(err); fieldErrs != nil {
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login rejected", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusBadRequest, validation.NonField("Invalid credentials."))
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	slog.Info("user login successful", "email", req.Email, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.TokenResp{Access: token})
}
