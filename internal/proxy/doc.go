// Package proxy はリバースプロキシサービスの内部実装を提供する。
//
// 受信したすべてのリクエストをメソッド・パスを問わず単一の上流ホストへ転送し、
// 上流のレスポンスをそのまま返す。パスの書き換えやルーティングは行わない。
package proxy
