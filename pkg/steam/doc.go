// Package steam はSteam Web APIのGetOwnedGamesエンドポイントに関する定義を提供する。
//
// 中継サーバーが使用するURL組み立てとSteamIDの検証、クライアント側で
// 使用するレスポンス型と表示用のヘルパーを含む。中継サーバー自身は
// レスポンスボディを解釈せず、そのまま返す。
package steam
