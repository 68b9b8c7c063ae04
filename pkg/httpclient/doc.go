// Package httpclient はサービス間のHTTP通信を行うクライアントを提供する。
//
// セキュリティサービスがスクレイパーサービスから請求書を取得する際に使用する。
// タイムアウト、上流サービスのエラーステータスの型付け、
// リクエストIDの伝播といったサービス間通信の振る舞いを統一する。
package httpclient
