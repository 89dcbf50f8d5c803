// 中継サービス経由でSteamの所有ゲーム一覧を表示するCLIのエントリポイント。
package main

import (
	"os"

	"github.com/nao1215/steamproxy/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
