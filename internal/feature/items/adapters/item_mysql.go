// Package adapters はitemsフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"context"
	"errors"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"item_backend/internal/feature/items/domain/entity"
	"item_backend/internal/feature/items/usecase"
)

// itemMySQL はItemRepositoryインターフェースのMySQL実装です。
// GORMを使用してデータベース操作を行います。
type itemMySQL struct {
	db *gorm.DB
}

// itemMySQLがItemRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ItemRepository = (*itemMySQL)(nil)

// NewItemMySQL は指定されたgorm.DB接続でitemMySQLの新しいインスタンスを生成します。
func NewItemMySQL(db *gorm.DB) *itemMySQL {
	return &itemMySQL{db: db}
}

// isDuplicateKey はユニーク制約違反かどうかを判定します。
// MySQLエラー1062のほか、テスト用SQLiteドライバの変換済みエラーにも対応します。
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Create はアイテムをデータベースに追加します。
// 同じ名前のアイテムが既に存在する場合、usecase.ErrItemNameTakenを返します。
func (r *itemMySQL) Create(ctx context.Context, item *entity.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrItemNameTaken
		}
		return err
	}
	return nil
}

// FindByID はIDでアイテムを取得します。
// アイテムが存在しない場合、usecase.ErrItemNotFoundを返します。
func (r *itemMySQL) FindByID(ctx context.Context, id uint) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

// Update は既存アイテムの名前と説明を置き換えます。
// アイテムが存在しない場合はusecase.ErrItemNotFound、
// 変更後の名前が他のアイテムと衝突する場合はusecase.ErrItemNameTakenを返します。
func (r *itemMySQL) Update(ctx context.Context, id uint, name, description string) (*entity.Item, error) {
	var item entity.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrItemNotFound
		}
		return nil, err
	}

	item.Name = name
	item.Description = description
	if err := r.db.WithContext(ctx).Save(&item).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, usecase.ErrItemNameTaken
		}
		return nil, err
	}
	return &item, nil
}

// Delete はIDでアイテムを削除します。
// 対象行が存在しない場合、usecase.ErrItemNotFoundを返します。
func (r *itemMySQL) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&entity.Item{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrItemNotFound
	}
	return nil
}

// List はすべてのアイテムを返します。アイテムが無い場合は空スライスを返します。
func (r *itemMySQL) List(ctx context.Context) ([]entity.Item, error) {
	items := make([]entity.Item, 0)
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
