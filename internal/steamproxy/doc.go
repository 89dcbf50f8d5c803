// Package steamproxy はSteam所有ゲーム一覧の中継サーバーを提供する。
//
// クライアントから受け取ったsteamidを検証し、サーバー側で保持する
// Steam Web APIキーを付けてGetOwnedGamesを1回だけ呼び出し、
// 上流のステータスコードとボディをそのまま返す。APIキーを
// クライアントアプリに持たせないことが唯一の目的であり、
// キャッシュ、リトライ、レート制限、クライアント認証は行わない。
package steamproxy
