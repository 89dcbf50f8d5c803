package steamproxy

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
)

var (
	// ErrInvalidSteamID はsteamidが無い、または数字以外を含む場合のエラー。
	ErrInvalidSteamID = errors.New("steamidは1文字以上のASCII数字である必要があります")
	// ErrMissingAPIKey はSteam Web APIキーが設定されていない場合のエラー。
	ErrMissingAPIKey = errors.New("環境変数STEAM_WEB_API_KEYが設定されていません")
	// ErrUpstream は上流APIとの通信に失敗した場合のエラー。
	ErrUpstream = errors.New("上流のSteam Web APIとの通信に失敗しました")
)

// statusForError はエラーに対応するHTTPステータスコードを返す。
func statusForError(err error) int {
	switch {
	case errors.Is(err, ErrInvalidSteamID):
		return http.StatusBadRequest
	case errors.Is(err, ErrMissingAPIKey):
		return http.StatusInternalServerError
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// redactedPlaceholder はマスク後の文字列。
const redactedPlaceholder = "[REDACTED]"

// redact はエラーメッセージからAPIキーを取り除く。
// *url.Error はリクエストURL（APIキーを含む）を保持しているため、URLを捨てて原因だけを残す。
func redact(err error, apiKey string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		msg = urlErr.Op + ": " + urlErr.Err.Error()
	}
	if apiKey != "" {
		msg = strings.ReplaceAll(msg, url.QueryEscape(apiKey), redactedPlaceholder)
		msg = strings.ReplaceAll(msg, apiKey, redactedPlaceholder)
	}
	return msg
}
