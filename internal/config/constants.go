// internal/config/constants.go
package config

import "time"

// アプリケーション情報
const (
	AppName    = "DojoPath"
	AppVersion = "1.0.0"
)

// デフォルト設定値
const (
	DefaultServerPort           = ":8080"
	DefaultLogLevel             = "info"
	DefaultWaiverVersion        = "2024-01"
	DefaultAccessTokenTTL       = 24 * time.Hour
	DefaultLocalStorageDir      = "./uploads"
	DefaultMaxUploadMB          = 5
	DefaultNavigationMaxHistory = 50
	DefaultNavigationTTL        = 7 * 24 * time.Hour
)

// プロフィール画像として受け付けるContent-Type
var AllowedAvatarContentTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/jpg":  "jpg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/webp": "webp",
}
