// Package web 内嵌的页面模板与静态资源，以及统一的页面渲染入口。
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"restaurant-review-server/internal/locale"
	"restaurant-review-server/internal/session"

	"github.com/gin-gonic/gin"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Flash 页面提示，按级别展示
type Flash struct {
	Success string
	Info    string
	Warning string
	Error   string
}

type taskItem struct {
	Task   session.Task
	Label  string
	Active bool
}

// Templates 解析全部页面模板
func Templates() (*template.Template, error) {
	return template.New("").ParseFS(templateFS, "templates/*.html")
}

// MustTemplates 解析失败时 panic，用于启动阶段
func MustTemplates() *template.Template {
	return template.Must(Templates())
}

// Static 静态资源文件系统，根目录即 static/
func Static() http.FileSystem {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

// HTML 渲染页面，附带翻译函数、当前用户、任务菜单和提示信息
func HTML(c *gin.Context, status int, name string, flash Flash, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	T := locale.Translator(c)
	data["T"] = T
	data["Lang"] = locale.Lang(c)
	data["Languages"] = locale.Supported
	data["Flash"] = Flash{
		Success: translate(T, flash.Success),
		Info:    translate(T, flash.Info),
		Warning: translate(T, flash.Warning),
		Error:   translate(T, flash.Error),
	}

	if user := session.GetLoginUser(c); user != nil {
		data["User"] = user
		data["LoggedInAs"] = locale.T(c, "Logged In as {{.Username}}", map[string]any{"Username": user.Username})

		current := session.TaskNone
		if sc, ok := session.From(c); ok {
			current = sc.Task
		}
		items := make([]taskItem, 0, len(session.Tasks))
		for _, task := range session.Tasks {
			items = append(items, taskItem{Task: task, Label: T(task.Label()), Active: task == current})
		}
		data["Tasks"] = items
	}

	c.HTML(status, name, data)
}

func translate(T func(string) string, msg string) string {
	if msg == "" {
		return ""
	}
	return T(msg)
}
