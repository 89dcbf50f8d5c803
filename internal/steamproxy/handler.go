package steamproxy

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nao1215/steamproxy/pkg/middleware"
	"github.com/nao1215/steamproxy/pkg/steam"
)

// contentTypeJSON は全てのレスポンスに設定するContent-Type。
const contentTypeJSON = "application/json"

// handleOwnedGames はsteamidを検証してGetOwnedGamesを中継するハンドラを返す。
func (s *Server) handleOwnedGames() gin.HandlerFunc {
	return func(c *gin.Context) {
		steamID := c.Query("steamid")
		if !steam.ValidSteamID(steamID) {
			respondEmpty(c, ErrInvalidSteamID)
			return
		}
		if s.apiKey == "" {
			respondEmpty(c, ErrMissingAPIKey)
			return
		}

		status, body, err := s.fetchOwnedGames(c.Request.Context(), steamID)
		if err != nil {
			log.Printf("[UPSTREAM] request_id=%s steamid=%s: %s", middleware.GetRequestID(c), steamID, redact(err, s.apiKey))
			respondEmpty(c, ErrUpstream)
			return
		}

		// 上流のステータスとボディは解釈せずにそのまま返す
		c.Data(status, contentTypeJSON, body)
	}
}

// fetchOwnedGames は上流APIを1回だけ呼び出し、ステータスコードと生のボディを返す。
// リトライは行わない。
func (s *Server) fetchOwnedGames(ctx context.Context, steamID string) (int, []byte, error) {
	upstreamURL := steam.OwnedGamesURL(s.upstreamBaseURL, s.apiKey, steamID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, upstreamURL, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: リクエストの作成に失敗: %w", ErrUpstream, err)
	}

	resp, err := s.upstream.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: レスポンスの読み取りに失敗: %w", ErrUpstream, err)
	}
	return resp.StatusCode, body, nil
}

// respondEmpty はゲームが0件の固定ボディでエラーを返す。
func respondEmpty(c *gin.Context, err error) {
	c.Data(statusForError(err), contentTypeJSON, steam.EmptyOwnedGamesBody())
}
