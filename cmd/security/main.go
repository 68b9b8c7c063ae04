// セキュリティサービスのエントリポイント。
// Bearerトークンを検証し、認証済みリクエストをスクレイパーサービスへ中継する。
// クライアントからアクセスされる唯一の入口であり、セキュリティの境界線となる。
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nao1215/openclaw/internal/security"
	"github.com/nao1215/openclaw/pkg/env"
	"github.com/nao1215/openclaw/pkg/httpclient"
)

func main() {
	port := env.GetOr("PORT", "3000")

	cfg := security.Config{
		SecureToken:    os.Getenv("SECURE_TOKEN"),
		ScraperURL:     env.GetOr("SCRAPER_URL", "http://scraper:4000"),
		ScraperTimeout: env.DurationOr("SCRAPER_TIMEOUT", httpclient.DefaultTimeout),
		AllowedOrigins: env.List("ALLOWED_ORIGINS"),
	}
	if cfg.SecureToken == "" {
		log.Printf("SECURE_TOKENが設定されていません。すべてのリクエストが401になります")
	}

	server, err := security.NewServer(port, cfg)
	if err != nil {
		log.Fatalf("セキュリティサーバーの初期化に失敗: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("セキュリティサービスを起動します: :%s -> %s", port, cfg.ScraperURL)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("セキュリティサービスの起動に失敗: %v", err)
	}
}
