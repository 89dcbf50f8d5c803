package steamproxy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/steamproxy/pkg/config"
	"github.com/nao1215/steamproxy/pkg/middleware"
)

// shutdownTimeout はグレースフルシャットダウンの待ち時間。
const shutdownTimeout = 10 * time.Second

// Server は中継サービスのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// apiKey はSteam Web APIキー。空の場合は全リクエストに500を返す。
	apiKey string
	// upstreamBaseURL はSteam Web APIのベースURL。
	upstreamBaseURL string
	// upstream は上流APIを呼び出すHTTPクライアント。タイムアウトは設定しない。
	upstream *http.Client
}

// NewServer は新しい中継サーバーを生成する。
// 設定値は構築時に一度だけ読み取り、以降は変更しない。
func NewServer(cfg *config.Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("設定がnilです")
	}
	if err := validateBaseURL(cfg.SteamAPIBaseURL); err != nil {
		return nil, err
	}

	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	s := &Server{
		router:          router,
		port:            cfg.Port,
		apiKey:          cfg.SteamAPIKey,
		upstreamBaseURL: cfg.SteamAPIBaseURL,
		upstream:        &http.Client{},
	}
	s.setupRoutes()

	if !cfg.HasSteamAPIKey() {
		log.Printf("警告: %v。全てのリクエストに500を返します", ErrMissingAPIKey)
	}
	return s, nil
}

// Handler はサーバーのHTTPハンドラを返す。
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run はHTTPサーバーを起動し、ctxがキャンセルされるとグレースフルに停止する。
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", s.port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("シャットダウンに失敗: %w", err)
	}
	return nil
}

// setupRoutes はルーティングを設定する。
// /health 以外は全てのパス、全てのメソッドを中継ハンドラで処理する。
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "steamproxy"})
	})
	s.router.NoRoute(s.handleOwnedGames())
}

// validateBaseURL は上流APIのベースURLが絶対URLであることを確認する。
func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("steam_api_base_urlが不正です: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("steam_api_base_urlのスキームが不正です: %q", u.Scheme)
	}
	if u.Host == "" {
		return errors.New("steam_api_base_urlにホストがありません")
	}
	return nil
}
