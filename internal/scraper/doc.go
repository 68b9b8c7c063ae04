// Package scraper はスクレイパーサービスの内部実装を提供する。
//
// 電気・水道・学費の請求書を固定値のモックとして返す。
// 外部I/Oや状態は持たず、リクエストごとに請求書を生成する。
package scraper
