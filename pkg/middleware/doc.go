// Package middleware はGinベースのHTTP APIで使用する共通ミドルウェアを提供する。
//
// 固定Bearerトークンの検証、リクエストIDの付与、パニックリカバリ、
// CORS設定など、各サービスで共通して使用するミドルウェアを含む。
package middleware
