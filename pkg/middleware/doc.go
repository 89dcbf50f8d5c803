// Package middleware は中継サーバーで使用するGinミドルウェアを提供する。
//
// パニックリカバリ、リクエストIDの付与、ブラウザから呼び出す場合の
// CORS設定を含む。
package middleware
