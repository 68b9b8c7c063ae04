package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nao1215/openclaw/pkg/bill"
	"github.com/nao1215/openclaw/pkg/httpserver"
	"github.com/nao1215/openclaw/pkg/middleware"
)

// Server はスクレイパーサービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
}

// NewServer は新しいスクレイパーサーバーを生成する。
func NewServer(port string) (*Server, error) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())

	s := &Server{
		router: router,
		port:   port,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動し、ctxがキャンセルされるまで処理を続ける。
func (s *Server) Run(ctx context.Context) error {
	return httpserver.ListenAndServe(ctx, fmt.Sprintf(":%s", s.port), s.router)
}

// Handler はルーティング済みのHTTPハンドラを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	for _, r := range bill.Resources() {
		s.router.GET("/"+string(r), s.handleGetBill(r))
		s.router.HEAD("/"+string(r), s.handleGetBill(r))
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "scraper"})
	})
}

// handleGetBill は指定リソースのモック請求書を返すハンドラを返す。
// rはbill.Resources()の要素に限られるため、bill.Mockは常に成功する。
func (s *Server) handleGetBill(r bill.Resource) gin.HandlerFunc {
	return func(c *gin.Context) {
		record, _ := bill.Mock(r)
		c.JSON(http.StatusOK, record)
	}
}
