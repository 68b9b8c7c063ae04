package proxy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/openclaw/pkg/httpserver"
	"github.com/nao1215/openclaw/pkg/middleware"
)

// Config はプロキシサービスの設定。
type Config struct {
	// Target は転送先の上流ホストのURL（例: "https://site-real.com"）。
	Target string
}

// Server はプロキシサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// target は転送先の上流ホスト。
	target *url.URL
	// proxy は上流ホストへ転送するリバースプロキシ。
	proxy *httputil.ReverseProxy
}

// NewServer は新しいプロキシサーバーを生成する。
func NewServer(port string, cfg Config) (*Server, error) {
	target, err := parseTarget(cfg.Target)
	if err != nil {
		return nil, err
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	proxy.ErrorHandler = handleProxyError

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router: router,
		port:   port,
		target: target,
		proxy:  proxy,
	}
	s.setupRoutes()

	return s, nil
}

// parseTarget は転送先URLを検証してパースする。
func parseTarget(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, errors.New("転送先のURLが設定されていません")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("転送先のURLが不正です: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, fmt.Errorf("転送先のURLが不正です: %q", raw)
	}
	return u, nil
}

// Run はHTTPサーバーを起動し、ctxがキャンセルされるまで処理を続ける。
func (s *Server) Run(ctx context.Context) error {
	return httpserver.ListenAndServe(ctx, fmt.Sprintf(":%s", s.port), s.router)
}

// Target は転送先の上流ホストを返す。
func (s *Server) Target() *url.URL {
	return s.target
}

// setupRoutes はすべてのリクエストをプロキシへ流すルーティングを設定する。
// 標準メソッドはcatch-allルートで、それ以外のメソッドはNoRouteで受ける。
func (s *Server) setupRoutes() {
	h := gin.WrapH(s.proxy)
	s.router.Any("/*path", h)
	s.router.NoRoute(h)
}

// handleProxyError は上流への転送に失敗した場合に502を返す。
func handleProxyError(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("プロキシエラー: %s %s: %v", r.Method, r.URL.Path, err)
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusBadGateway)
	_, _ = w.Write([]byte(`{"error":"Bad Gateway"}`))
}
