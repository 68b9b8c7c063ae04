// Package httpserver はHTTPサーバーの起動とグレースフルシャットダウンを提供する。
package httpserver

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"
)

const (
	// readHeaderTimeout はリクエストヘッダー読み込みのタイムアウト。
	readHeaderTimeout = 10 * time.Second
	// shutdownTimeout はシャットダウン時に処理中のリクエストを待つ最大時間。
	shutdownTimeout = 10 * time.Second
)

// ListenAndServe はaddrでHTTPサーバーを起動し、ctxがキャンセルされるまでリクエストを処理する。
// ctxのキャンセル後は処理中のリクエストの完了を待ってから終了する。
func ListenAndServe(ctx context.Context, addr string, handler http.Handler) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("リッスンに失敗: addr=%s: %w", addr, err)
	}
	return Serve(ctx, ln, handler)
}

// Serve は既存のリスナーでHTTPサーバーを起動する。
// 終了時にリスナーはクローズされる。
func Serve(ctx context.Context, ln net.Listener, handler http.Handler) error {
	srv := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("サーバーが異常終了: %w", err)
	case <-ctx.Done():
	}

	log.Printf("シャットダウンを開始します: %s", ln.Addr())
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("シャットダウンに失敗: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("サーバーが異常終了: %w", err)
	}
	return nil
}
