// Package locale 界面文案的多语言支持，语言由 lang Cookie 或 Accept-Language 决定。
package locale

import (
	"embed"
	"io/fs"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"restaurant-review-server/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed translation/*.toml
var translationFS embed.FS

const (
	localizerKey = "localizer"
	langKey      = "lang"
	cookieName   = "lang"
)

// Supported 可切换的语言
var Supported = []string{"en", "zh-CN"}

var (
	bundle     *i18n.Bundle
	bundleOnce sync.Once
	bundleErr  error
)

// Init 解析内嵌的翻译文件，可重复调用
func Init() error {
	bundleOnce.Do(func() {
		b := i18n.NewBundle(language.English)
		b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		bundleErr = fs.WalkDir(translationFS, "translation", func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			data, err := translationFS.ReadFile(path)
			if err != nil {
				return err
			}
			_, err = b.ParseMessageFileBytes(data, path)
			return err
		})
		bundle = b
	})
	return bundleErr
}

// Middleware 为每个请求创建独立的 Localizer
func Middleware() gin.HandlerFunc {
	if err := Init(); err != nil {
		logger.Warning("i18n 加载失败: ", err)
	}
	return func(c *gin.Context) {
		lang := c.GetHeader("Accept-Language")
		if ck, err := c.Cookie(cookieName); err == nil && ck != "" {
			lang = ck
		}
		c.Set(localizerKey, i18n.NewLocalizer(bundle, lang))
		c.Set(langKey, resolve(lang))
		c.Next()
	}
}

// T 翻译 id；没有对应文案时原样返回 id
func T(c *gin.Context, id string, params ...map[string]any) string {
	v, ok := c.Get(localizerKey)
	if !ok {
		return id
	}
	localizer, ok := v.(*i18n.Localizer)
	if !ok || localizer == nil {
		return id
	}
	cfg := &i18n.LocalizeConfig{MessageID: id}
	if len(params) > 0 {
		cfg.TemplateData = params[0]
	}
	msg, err := localizer.Localize(cfg)
	if err != nil || msg == "" {
		return id
	}
	return msg
}

// Translator 供模板调用的翻译函数
func Translator(c *gin.Context) func(string) string {
	return func(id string) string {
		return T(c, id)
	}
}

// Lang 当前请求生效的语言标签
func Lang(c *gin.Context) string {
	if v, ok := c.Get(langKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return Supported[0]
}

// SwitchHandler 设置语言 Cookie 并返回来源页面
func SwitchHandler(c *gin.Context) {
	code := c.Param("code")
	if !isSupported(code) {
		code = Supported[0]
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cookieName, code, 365*24*3600, "/", "", false, true)

	c.Redirect(http.StatusFound, backTarget(c.Request.Referer()))
}

// backTarget 只保留来源地址的路径部分，避免跳转到站外
func backTarget(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") || strings.HasPrefix(u.Path, "//") {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}

func isSupported(code string) bool {
	for _, s := range Supported {
		if s == code {
			return true
		}
	}
	return false
}

var matcher = language.NewMatcher([]language.Tag{language.English, language.SimplifiedChinese})

func resolve(lang string) string {
	tags, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(tags) == 0 {
		return Supported[0]
	}
	_, idx, _ := matcher.Match(tags...)
	return Supported[idx]
}
