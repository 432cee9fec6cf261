// Package dto はauthフィーチャーのHTTPトランスポート層のデータ転送オブジェクトを定義します。
package dto

// LoginReq は/loginエンドポイントのリクエストボディを表します。
// 資格情報エラーと区別するため、フィールドの存在のみ検証します（形式チェックはしない）。
type LoginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
