// Package ratelimiter は固定ウィンドウ方式のシンプルなレートリミッターを提供します。
package ratelimiter

import (
	"sync"
	"time"
)

// RateLimiterInterface は、ログイン試行などの操作の頻度を制限するインターフェースです。
type RateLimiterInterface interface {
	Allow() bool
}

// RateLimiterは、認証エンドポイントへのリクエスト頻度を制限します。
// プロセス単位の固定ウィンドウカウンターで、総当たり攻撃の速度を抑えます。
type RateLimiter struct {
	mu        sync.Mutex
	limit     int           // ウィンドウあたりの上限
	interval  time.Duration // どの単位でリセットするか
	count     int
	lastReset time.Time
}

// NewRateLimiterは新しいRateLimiterのインスタンスを生成します。
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:     limit,
		interval:  interval,
		lastReset: time.Now(),
	}
}

// Allowはレートリミットの上限に達しているかを確認します。
// 上限以内であればtrueを返し、超過している場合はfalseを返します。
// ハンドラーをブロックしないため、待機はせずに即座に判定します。
func (rl *RateLimiter) Allow() bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	// interval を過ぎたらカウントリセット
	if now.Sub(rl.lastReset) >= rl.interval {
		rl.count = 0
		rl.lastReset = now
	}

	if rl.count >= rl.limit {
		return false
	}
	rl.count++
	return true
}
