package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nao1215/steamproxy/pkg/httpclient"
	"github.com/nao1215/steamproxy/pkg/steam"
)

// gamesOptions はgamesコマンドのオプション。
type gamesOptions struct {
	recent     bool
	jsonOutput bool
}

// newGamesCmd はgamesコマンドを生成する。
func newGamesCmd() *cobra.Command {
	opts := &gamesOptions{}

	cmd := &cobra.Command{
		Use:   "games <steamid>",
		Short: "所有ゲームの一覧を表示する",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steamID := args[0]
			if !steam.ValidSteamID(steamID) {
				return fmt.Errorf("SteamIDは数字のみで指定してください: %q", steamID)
			}

			proxyURL, err := cmd.Flags().GetString("proxy")
			if err != nil {
				return err
			}

			ctx := httpclient.WithRequestID(cmd.Context(), uuid.New().String())
			resp, err := httpclient.New(proxyURL).OwnedGames(ctx, steamID)
			if err != nil {
				var statusErr *httpclient.StatusError
				if errors.As(err, &statusErr) {
					return fmt.Errorf("中継サービスがエラーを返しました（status=%d）", statusErr.StatusCode)
				}
				return fmt.Errorf("所有ゲームの取得に失敗: %w", err)
			}

			games := resp.Response.Games
			if opts.recent {
				games = steam.RecentlyPlayed(games)
			}
			if opts.jsonOutput {
				return writeGamesJSON(cmd.OutOrStdout(), games)
			}
			return writeGamesTable(cmd.OutOrStdout(), games)
		},
	}

	cmd.Flags().BoolVar(&opts.recent, "recent", false, "プレイ済みのゲームだけをプレイ時間の長い順に表示する")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "JSON形式で出力する")
	return cmd
}

// gameView はJSON出力用のゲーム情報。
type gameView struct {
	AppID           int    `json:"appid"`
	Name            string `json:"name"`
	PlaytimeMinutes int64  `json:"playtime_minutes"`
	HeaderImageURL  string `json:"header_image_url"`
}

// writeGamesJSON はゲーム一覧をJSONで出力する。
func writeGamesJSON(w io.Writer, games []steam.Game) error {
	views := make([]gameView, 0, len(games))
	for _, g := range games {
		views = append(views, gameView{
			AppID:           g.AppID,
			Name:            g.DisplayName(),
			PlaytimeMinutes: g.PlaytimeForever,
			HeaderImageURL:  g.HeaderImageURL(),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(views)
}

// writeGamesTable はゲーム一覧を表形式で出力する。
func writeGamesTable(w io.Writer, games []steam.Game) error {
	if len(games) == 0 {
		_, err := fmt.Fprintln(w, "ゲームが見つかりませんでした（プロフィールが非公開の可能性があります）")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "APPID\tNAME\tPLAYTIME")
	for _, g := range games {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", g.AppID, g.DisplayName(), g.PlaytimeLabel())
	}
	return tw.Flush()
}
