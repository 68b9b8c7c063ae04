// スクレイパーサービスのエントリポイント。
// 電気・水道・学費のモック請求書を固定値で返す。
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/nao1215/openclaw/internal/scraper"
	"github.com/nao1215/openclaw/pkg/env"
)

func main() {
	port := env.GetOr("PORT", "4000")

	server, err := scraper.NewServer(port)
	if err != nil {
		log.Fatalf("スクレイパーサーバーの初期化に失敗: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("スクレイパーサービスを起動します: :%s", port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("スクレイパーサービスの起動に失敗: %v", err)
	}
}
