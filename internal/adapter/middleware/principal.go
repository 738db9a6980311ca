package middleware

import (
	"github.com/gin-gonic/gin"
)

// principalContextKey はコンテキストに格納するプリンシパル ID のキー。
const principalContextKey = "principal_id"

// Principal は認証ゲートウェイが付与したプリンシパル ID ヘッダーを取り込む
// ミドルウェアを返す。トークン検証はゲートウェイ側で完了しており、
// 本サービスは検証済みのプリンシパル ID のみを受け取る。
//
// ヘッダーが無いリクエストは未認証として扱う（パーミッションゼロ）。
// ここでは拒否せず、判定は各ガード・ハンドラーに委ねる。
func Principal(headerName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader(headerName); id != "" {
			c.Set(principalContextKey, id)
		}
		c.Next()
	}
}

// GetPrincipalID は gin.Context からプリンシパル ID を取得する。
func GetPrincipalID(c *gin.Context) (string, bool) {
	val, exists := c.Get(principalContextKey)
	if !exists {
		return "", false
	}
	id, ok := val.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
