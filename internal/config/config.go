package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// 用于管理应用配置

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

const (
	ModeRelease = "release"

	DefaultMaxPhotoPixels = 40_000_000

	HashSHA256 = "sha256"
	HashBcrypt = "bcrypt"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Session  SessionConfig  `mapstructure:"session"`
	Security SecurityConfig `mapstructure:"security"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Map      MapConfig      `mapstructure:"map"`
	Log      LogConfig      `mapstructure:"log"`
}

type ServerConfig struct {
	Port               string `mapstructure:"port"`
	Mode               string `mapstructure:"mode"`
	MaxBodyMB          int    `mapstructure:"max_body_mb"`
	StaticCacheControl string `mapstructure:"static_cache_control"`
	TrustedProxies     string `mapstructure:"trusted_proxies"` // 逗号分隔，为空时不信任任何代理
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type SessionConfig struct {
	Secret        string `mapstructure:"secret"`
	CookieName    string `mapstructure:"cookie_name"`
	MaxAgeSeconds int    `mapstructure:"max_age_seconds"`
}

type SecurityConfig struct {
	PasswordHash string          `mapstructure:"password_hash"` // sha256, bcrypt
	RateLimit    RateLimitConfig `mapstructure:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type UploadConfig struct {
	MaxPhotoMB     int `mapstructure:"max_photo_mb"`
	MaxPhotoPixels int `mapstructure:"max_photo_pixels"` // 宽 x 高上限，解码前检查
	JPEGQuality    int `mapstructure:"jpeg_quality"`
}

type MapConfig struct {
	Zoom        int    `mapstructure:"zoom"`
	TileURL     string `mapstructure:"tile_url"`
	Attribution string `mapstructure:"attribution"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	Dir   string `mapstructure:"dir"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceSessionSecretSafety()
	log.Println("✅ 配置加载成功")
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.max_body_mb", 2)
	v.SetDefault("server.static_cache_control", "public, max-age=3600")
	v.SetDefault("server.trusted_proxies", "")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "restaurant_reviews.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "root")
	v.SetDefault("database.name", "restaurant_reviews")
	v.SetDefault("database.ssl", false)
	v.SetDefault("session.secret", "")
	v.SetDefault("session.cookie_name", "restaurant_review")
	v.SetDefault("session.max_age_seconds", 86400)
	v.SetDefault("security.password_hash", HashSHA256)
	v.SetDefault("security.rate_limit.enabled", false)
	v.SetDefault("security.rate_limit.rps", 5)
	v.SetDefault("security.rate_limit.burst", 10)
	v.SetDefault("upload.max_photo_mb", 10)
	v.SetDefault("upload.max_photo_pixels", DefaultMaxPhotoPixels)
	v.SetDefault("upload.jpeg_quality", 90)
	v.SetDefault("map.zoom", 12)
	v.SetDefault("map.tile_url", "https://tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("map.attribution", "&copy; OpenStreetMap contributors")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.dir", "")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 RESTAURANT_REVIEW_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 RESTAURANT_REVIEW_SERVER_PORT
	v.SetEnvPrefix("RESTAURANT_REVIEW")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	normalize(&tempConfig)

	// 安全检查
	if tempConfig.Server.Mode == ModeRelease {
		if tempConfig.Session.Secret == "" {
			log.Println("❌ [安全严重错误] 生产模式(release)下必须设置 Session Secret！")
		}
	} else if tempConfig.Session.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 Session Secret，将使用进程内随机密钥，重启后登录态失效")
		tempConfig.Session.Secret = strings.ReplaceAll(uuid.NewString()+uuid.NewString(), "-", "")
	}

	if tempConfig.Security.PasswordHash == HashSHA256 {
		log.Println("⚠️ [安全提示] 当前口令摘要为无盐 SHA-256，仅用于兼容旧库，建议设置 security.password_hash=bcrypt")
	}

	appConfig.Store(&tempConfig)
	log.Println("✅ 配置已更新")
}

// normalize 修正非法或缺失的取值
func normalize(c *Config) {
	c.Database.Type = strings.ToLower(strings.TrimSpace(c.Database.Type))
	c.Security.PasswordHash = strings.ToLower(strings.TrimSpace(c.Security.PasswordHash))
	if c.Security.PasswordHash != HashBcrypt {
		c.Security.PasswordHash = HashSHA256
	}
	if c.Upload.JPEGQuality < 1 || c.Upload.JPEGQuality > 100 {
		c.Upload.JPEGQuality = 90
	}
	if c.Upload.MaxPhotoMB <= 0 {
		c.Upload.MaxPhotoMB = 10
	}
	if c.Upload.MaxPhotoPixels <= 0 {
		c.Upload.MaxPhotoPixels = DefaultMaxPhotoPixels
	}
	if c.Server.MaxBodyMB <= 0 {
		c.Server.MaxBodyMB = 2
	}
	if c.Map.Zoom <= 0 {
		c.Map.Zoom = 12
	}
	if c.Session.MaxAgeSeconds <= 0 {
		c.Session.MaxAgeSeconds = 86400
	}
	if c.Session.CookieName == "" {
		c.Session.CookieName = "restaurant_review"
	}
}

func enforceSessionSecretSafety() {
	// 首次启动安全检查：release 模式下拒绝空的 Session Secret
	curr := Get()
	if curr.Server.Mode == ModeRelease && curr.Session.Secret == "" {
		log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置 Session Secret！\n请设置环境变量 RESTAURANT_REVIEW_SESSION_SECRET 或在配置文件中指定 session.secret")
	}
}
