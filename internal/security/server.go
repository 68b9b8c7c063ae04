package security

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/openclaw/pkg/bill"
	"github.com/nao1215/openclaw/pkg/httpclient"
	"github.com/nao1215/openclaw/pkg/httpserver"
	"github.com/nao1215/openclaw/pkg/middleware"
)

// Config はセキュリティサービスの設定。
// 起動時に一度だけ環境変数から読み込み、NewServerに渡す。
type Config struct {
	// SecureToken はBearerトークンとして要求する共有シークレット。空の場合はすべて拒否する。
	SecureToken string
	// ScraperURL はスクレイパーサービスのベースURL。
	ScraperURL string
	// ScraperTimeout はスクレイパーへのリクエストのタイムアウト。0の場合はタイムアウトしない。
	ScraperTimeout time.Duration
	// AllowedOrigins はCORSで許可するオリジンの一覧。
	AllowedOrigins []string
}

// Server はセキュリティサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// secureToken はBearerトークンとして要求する共有シークレット。
	secureToken string
	// scraperClient はスクレイパーサービスへの通信クライアント。
	scraperClient *httpclient.Client
}

// NewServer は新しいセキュリティサーバーを生成する。
func NewServer(port string, cfg Config) (*Server, error) {
	if err := validateScraperURL(cfg.ScraperURL); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	s := &Server{
		router:        router,
		port:          port,
		secureToken:   cfg.SecureToken,
		scraperClient: httpclient.New(cfg.ScraperURL, httpclient.WithTimeout(cfg.ScraperTimeout)),
	}
	s.setupRoutes()

	return s, nil
}

// validateScraperURL はスクレイパーのURLがhttp(s)の絶対URLであることを検証する。
func validateScraperURL(raw string) error {
	if raw == "" {
		return errors.New("スクレイパーのURLが設定されていません")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("スクレイパーのURLが不正です: %w", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("スクレイパーのURLが不正です: %q", raw)
	}
	return nil
}

// Run はHTTPサーバーを起動し、ctxがキャンセルされるまで処理を続ける。
func (s *Server) Run(ctx context.Context) error {
	return httpserver.ListenAndServe(ctx, fmt.Sprintf(":%s", s.port), s.router)
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// 認証必須の請求書API
	api := s.router.Group("/api")
	api.Use(middleware.BearerToken(s.secureToken))
	{
		for _, r := range bill.Resources() {
			path := fmt.Sprintf("/%s/bills", r)
			api.GET(path, s.handleRelayBill(r))
			api.HEAD(path, s.handleRelayBill(r))
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "security"})
	})
}

// handleRelayBill はスクレイパーから請求書を取得し、そのまま中継するハンドラを返す。
func (s *Server) handleRelayBill(r bill.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := middleware.GetRequestID(c)
		ctx := httpclient.WithRequestID(c.Request.Context(), requestID)

		var body json.RawMessage
		if err := s.scraperClient.GetJSON(ctx, "/"+string(r), &body); err != nil {
			status := http.StatusBadGateway
			if httpclient.IsTimeout(err) {
				status = http.StatusGatewayTimeout
			}
			log.Printf("スクレイパーからの請求書取得に失敗: resource=%s, request_id=%s, error=%v", r, requestID, err)
			c.JSON(status, gin.H{"error": http.StatusText(status)})
			return
		}

		c.Data(http.StatusOK, "application/json; charset=utf-8", body)
	}
}
