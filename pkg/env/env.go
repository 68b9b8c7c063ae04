// Package env は環境変数から設定値を読み込むヘルパーを提供する。
package env

import (
	"log"
	"os"
	"strings"
	"time"
)

// GetOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func GetOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

// DurationOr は環境変数をtime.Durationとして取得する。
// 未設定またはパースできない場合はデフォルト値を返す。
func DurationOr(key string, defaultValue time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("環境変数 %s の値が不正なためデフォルト値を使用します: %q", key, v)
		return defaultValue
	}
	return d
}

// List はカンマ区切りの環境変数をスライスとして取得する。
// 前後の空白は取り除き、空の要素は無視する。
func List(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
