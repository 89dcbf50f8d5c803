// Package config は中継サーバーの設定を読み込む。
//
// 環境変数を優先し、カレントディレクトリに config.yaml があれば
// それも読み込む。Steam Web APIキーはこのパッケージ経由でのみ取得し、
// ハンドラには構築時に注入する。
package config
