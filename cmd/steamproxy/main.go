// Steam所有ゲーム一覧の中継サービスのエントリポイント。
// Steam Web APIキーをサーバー側で保持し、クライアントにはキーを渡さずに
// GetOwnedGamesの結果を返す。
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nao1215/steamproxy/internal/steamproxy"
	"github.com/nao1215/steamproxy/pkg/config"
)

func main() {
	// .env はローカル開発用。無ければ環境変数だけを使う
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf(".envの読み込みに失敗: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗: %v", err)
	}

	server, err := steamproxy.NewServer(cfg)
	if err != nil {
		log.Fatalf("中継サーバーの初期化に失敗: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("中継サービスを起動します: :%s", cfg.Port)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("中継サービスの起動に失敗: %v", err)
	}
	log.Printf("中継サービスを停止しました")
}
