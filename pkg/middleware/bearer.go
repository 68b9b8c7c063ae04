package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// bearerPrefix はAuthorizationヘッダーのスキーム部分。
const bearerPrefix = "Bearer "

// unauthorizedBody は認証失敗時に返すJSONボディ。
var unauthorizedBody = gin.H{"error": "Unauthorized"}

// BearerToken は固定の共有シークレットでBearerトークンを検証するGinミドルウェアを返す。
// Authorizationヘッダーが "Bearer <secret>" と完全一致した場合のみ後続のハンドラを実行する。
// secretが空の場合はすべてのリクエストを拒否する。
func BearerToken(secret string) gin.HandlerFunc {
	expected := []byte(bearerPrefix + secret)

	return func(c *gin.Context) {
		if secret == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		got := []byte(c.GetHeader("Authorization"))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		c.Next()
	}
}
