package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// defaultProxyURL は中継サービスのデフォルトURL。
const defaultProxyURL = "http://localhost:8080"

// envProxyURL は中継サービスのURLを指定する環境変数。
const envProxyURL = "STEAMPROXY_URL"

// newRootCmd はルートコマンドを生成する。
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          "steamlib",
		Short:        "中継サービス経由でSteamライブラリを表示する",
		SilenceUsage: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.CompletionOptions.DisableDefaultCmd = true

	proxy := os.Getenv(envProxyURL)
	if proxy == "" {
		proxy = defaultProxyURL
	}
	root.PersistentFlags().String("proxy", proxy, "中継サービスのURL（環境変数 "+envProxyURL+" でも指定可能）")

	root.AddCommand(newGamesCmd())
	return root
}

// Execute はコマンドを実行する。
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).Execute()
}
