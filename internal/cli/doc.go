// Package cli はsteamlibコマンドを実装する。
//
// 中継サービスに所有ゲーム一覧を問い合わせ、表またはJSONで表示する。
// APIキーは中継サービス側にあるため、このコマンドはキーを必要としない。
package cli
