// Package httpclient は中継サーバーを呼び出すHTTPクライアントを提供する。
//
// APIキーを持たないクライアント（CLIなど）が、中継サーバー経由で
// Steamの所有ゲーム一覧を取得する際に使用する。
package httpclient
