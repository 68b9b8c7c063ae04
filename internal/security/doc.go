// Package security はセキュリティサービス（APIゲートウェイ）の内部実装を提供する。
//
// 固定の共有シークレットでBearerトークンを検証し、認証に成功したリクエストのみ
// スクレイパーサービスへ転送して、受け取った請求書JSONをそのまま中継する。
// スクレイパーとの通信に失敗した場合は502、タイムアウトした場合は504を返す。
package security
