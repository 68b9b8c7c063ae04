// Package bill はスクレイパーとセキュリティサービスで共有する請求書レコードの型を提供する。
//
// 請求書は固定値から生成されるモックであり、永続化や変更は行わない。
package bill
