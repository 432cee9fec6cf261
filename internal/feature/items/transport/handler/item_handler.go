// Package handler はitemsフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"item_backend/internal/feature/items/domain/entity"
	"item_backend/internal/feature/items/transport/http/dto"
	"item_backend/internal/feature/items/usecase"
	"item_backend/internal/shared/validation"
)

// ItemUsecase はアイテム操作のユースケースを定義します。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ItemUsecase interface {
	ListItems(ctx context.Context) ([]entity.Item, error)
	GetItem(ctx context.Context, id uint) (*entity.Item, error)
	CreateItem(ctx context.Context, name, description string) (*entity.Item, error)
	UpdateItem(ctx context.Context, id uint, name, description string) (*entity.Item, error)
	DeleteItem(ctx context.Context, id uint) error
}

// ItemHandler はアイテム操作のHTTPリクエストを処理します。
type ItemHandler struct {
	items ItemUsecase
}

// NewItemHandler はItemHandlerの新しいインスタンスを生成します。
func NewItemHandler(items ItemUsecase) *ItemHandler {
	return &ItemHandler{items: items}
}

// parseID はパスパラメータのアイテムIDを解析します。
// 数値でないIDはルーティング上存在しないリソースとして扱います（404）。
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return 0, false
	}
	return uint(id), true
}

// toResp はエンティティをレスポンスDTOに変換します。
func toResp(item *entity.Item) dto.ItemResp {
	return dto.ItemResp{ID: item.ID, Name: item.Name, Description: item.Description}
}

// List はアイテム一覧を取得するAPIです。
// 一覧は常にストアから直接読み取り、キャッシュを経由しません。
func (h *ItemHandler) List(c *gin.Context) {
	items, err := h.items.ListItems(c.Request.Context())
	if err != nil {
		slog.Error("list items failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list items"})
		return
	}
	out := make([]dto.ItemResp, 0, len(items))
	for i := range items {
		out = append(out, toResp(&items[i]))
	}
	c.JSON(http.StatusOK, out)
}

// Get はアイテムを1件取得するAPIです。
// - 存在するIDの場合は200を返却（キャッシュヒット時はスナップショットをそのまま返す）
// - 存在しないIDの場合は404を返却
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.items.GetItem(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		slog.Error("get item failed", "error", err, "item_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get item"})
		return
	}
	c.JSON(http.StatusOK, toResp(item))
}

// Create はアイテムを作成するAPIです。
// - バリデーションエラー時はフィールドごとのエラーを付けて400を返却
// - 名前が重複する場合はnameフィールドのエラーとして400を返却
// - 成功時は作成されたアイテムを付けて201を返却
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("create item validation failed", "error", err, "remote_addr", c.ClientIP())
		if fieldErrs := validation.FromBindingError(err); fieldErrs != nil {
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.items.CreateItem(c.Request.Context(), req.Name, req.Description)
	if err != nil {
		if errors.Is(err, usecase.ErrItemNameTaken) {
			c.JSON(http.StatusBadRequest, validation.FieldErrors{
				"name": {"item with this name already exists."},
			})
			return
		}
		slog.Error("create item failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create item"})
		return
	}

	slog.Info("item created", "item_id", item.ID, "name", item.Name)
	c.JSON(http.StatusCreated, toResp(item))
}

// Update はアイテムを更新するAPIです。
// ストアへの書き込みが確定した後、対応するキャッシュエントリは
// リポジトリ層で同期的に無効化されてからレスポンスが返ります。
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("update item validation failed", "error", err, "remote_addr", c.ClientIP())
		if fieldErrs := validation.FromBindingError(err); fieldErrs != nil {
			c.JSON(http.StatusBadRequest, fieldErrs)
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	item, err := h.items.UpdateItem(c.Request.Context(), id, req.Name, req.Description)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrItemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		case errors.Is(err, usecase.ErrItemNameTaken):
			c.JSON(http.StatusBadRequest, validation.FieldErrors{
				"name": {"item with this name already exists."},
			})
		default:
			slog.Error("update item failed", "error", err, "item_id", id)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update item"})
		}
		return
	}

	slog.Info("item updated", "item_id", item.ID, "name", item.Name)
	c.JSON(http.StatusOK, toResp(item))
}

// Delete はアイテムを削除するAPIです。
// - 成功時は204を返却
// - 存在しないID（削除済みを含む）の場合は404を返却
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.items.DeleteItem(c.Request.Context(), id); err != nil {
		if errors.Is(err, usecase.ErrItemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		slog.Error("delete item failed", "error", err, "item_id", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete item"})
		return
	}

	slog.Info("item deleted", "item_id", id)
	c.Status(http.StatusNoContent)
}
