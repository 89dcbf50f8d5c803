package steam

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"
)

// DefaultBaseURL はSteam Web APIのベースURL。
const DefaultBaseURL = "https://api.steampowered.com"

// ownedGamesPath はGetOwnedGamesエンドポイントのパス。
const ownedGamesPath = "/IPlayerService/GetOwnedGames/v0001/"

// headerImageURLFormat はゲームのヘッダー画像URLのフォーマット。
const headerImageURLFormat = "https://cdn.cloudflare.steamstatic.com/steam/apps/%d/header.jpg"

// emptyOwnedGames はゲームが0件のレスポンスボディ。
const emptyOwnedGames = `{"response":{"games":[]}}`

// steamIDPattern はSteamIDとして受け付ける形式（ASCII数字のみ）。
var steamIDPattern = regexp.MustCompile(`^[0-9]+$`)

// ValidSteamID はSteamIDが1文字以上のASCII数字のみで構成されているかを返す。
func ValidSteamID(steamID string) bool {
	return steamIDPattern.MatchString(steamID)
}

// OwnedGamesURL はGetOwnedGamesを呼び出すURLを組み立てる。
// APIキーはクエリ用にエスケープする。steamIDは検証済みであること。
func OwnedGamesURL(baseURL, apiKey, steamID string) string {
	return strings.TrimRight(baseURL, "/") + ownedGamesPath +
		"?key=" + url.QueryEscape(apiKey) +
		"&steamid=" + steamID +
		"&format=json&include_appinfo=1"
}

// EmptyOwnedGamesBody はゲームが0件のレスポンスボディを返す。
// 呼び出しごとに新しいスライスを返す。
func EmptyOwnedGamesBody() []byte {
	return []byte(emptyOwnedGames)
}

// OwnedGamesResponse はGetOwnedGamesのレスポンス全体。
type OwnedGamesResponse struct {
	// Response はレスポンス本体。
	Response OwnedGames `json:"response"`
}

// OwnedGames は所有ゲームの一覧。
type OwnedGames struct {
	// GameCount は所有ゲーム数。非公開プロフィールの場合は0。
	GameCount int `json:"game_count"`
	// Games は所有ゲーム。
	Games []Game `json:"games"`
}

// Game は所有ゲーム1件分の情報。
type Game struct {
	// AppID はSteamのアプリケーションID。
	AppID int `json:"appid"`
	// Name はゲーム名。include_appinfo=1の場合のみ設定される。
	Name string `json:"name"`
	// PlaytimeForever は累計プレイ時間（分）。
	PlaytimeForever int64 `json:"playtime_forever"`
	// ImgIconURL はアイコン画像のハッシュ。
	ImgIconURL string `json:"img_icon_url"`
	// ImgLogoURL はロゴ画像のハッシュ。
	ImgLogoURL string `json:"img_logo_url"`
}

// DisplayName は表示用のゲーム名を返す。名前が無い場合は "App <appid>" を返す。
func (g Game) DisplayName() string {
	if g.Name == "" {
		return fmt.Sprintf("App %d", g.AppID)
	}
	return g.Name
}

// HeaderImageURL はストアのヘッダー画像URLを返す。
func (g Game) HeaderImageURL() string {
	return fmt.Sprintf(headerImageURLFormat, g.AppID)
}

// PlaytimeLabel はプレイ時間の表示文字列を返す。
// 60分以上は時間単位（切り捨て）、それ未満は分単位で表す。
func (g Game) PlaytimeLabel() string {
	if g.PlaytimeForever >= 60 {
		return fmt.Sprintf("%d h", g.PlaytimeForever/60)
	}
	return fmt.Sprintf("%d min", g.PlaytimeForever)
}

// RecentlyPlayedMax はRecentlyPlayedが返す最大件数。
const RecentlyPlayedMax = 10

// RecentlyPlayed はプレイ時間が1分以上のゲームをプレイ時間の降順で
// 最大RecentlyPlayedMax件返す。引数のスライスは変更しない。
func RecentlyPlayed(games []Game) []Game {
	played := make([]Game, 0, len(games))
	for _, g := range games {
		if g.PlaytimeForever > 0 {
			played = append(played, g)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].PlaytimeForever > played[j].PlaytimeForever
	})
	if len(played) > RecentlyPlayedMax {
		played = played[:RecentlyPlayedMax]
	}
	return played
}
