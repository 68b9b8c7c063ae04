// プロキシサービスのエントリポイント。
// すべてのリクエストを単一の上流ホストへ転送する。
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/nao1215/openclaw/internal/proxy"
	"github.com/nao1215/openclaw/pkg/env"
)

func main() {
	port := env.GetOr("PORT", "8080")

	server, err := proxy.NewServer(port, proxy.Config{
		Target: env.GetOr("PROXY_TARGET", "https://site-real.com"),
	})
	if err != nil {
		log.Fatalf("プロキシサーバーの初期化に失敗: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("プロキシサービスを起動します: :%s -> %s", port, server.Target())
	if err := server.Run(ctx); err != nil {
		log.Fatalf("プロキシサービスの起動に失敗: %v", err)
	}
}
