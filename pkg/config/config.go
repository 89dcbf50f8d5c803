package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/nao1215/steamproxy/pkg/steam"
)

// 設定キー。環境変数名はキーを大文字にしたもの（例: STEAM_WEB_API_KEY）。
const (
	keyPort            = "port"
	keySteamAPIKey     = "steam_web_api_key"
	keySteamAPIBaseURL = "steam_api_base_url"
	keyAllowedOrigins  = "allowed_origins"
)

// Config は中継サーバーの設定。
type Config struct {
	// Port はサーバーのリッスンポート。
	Port string `mapstructure:"port"`
	// SteamAPIKey はSteam Web APIキー。ログやレスポンスに出力してはならない。
	SteamAPIKey string `mapstructure:"steam_web_api_key"`
	// SteamAPIBaseURL はSteam Web APIのベースURL。
	SteamAPIBaseURL string `mapstructure:"steam_api_base_url"`
	// AllowedOrigins はCORSで許可するオリジン。
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load は環境変数と任意の config.yaml から設定を読み込む。
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault(keyPort, "8080")
	v.SetDefault(keySteamAPIKey, "")
	v.SetDefault(keySteamAPIBaseURL, steam.DefaultBaseURL)
	v.SetDefault(keyAllowedOrigins, []string{})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("設定ファイルの読み込みに失敗: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("設定のデコードに失敗: %w", err)
	}
	return &cfg, nil
}

// HasSteamAPIKey はSteam Web APIキーが設定されているかを返す。
func (c *Config) HasSteamAPIKey() bool {
	return c.SteamAPIKey != ""
}
