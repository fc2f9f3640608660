package handler

import (
	"net/http"

	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/web"

	"github.com/gin-gonic/gin"
)

const MsgChooseTask = "Choose a task from the menu."

type Handler struct{}

func New() *Handler {
	return &Handler{}
}

// Index 菜单页；带合法 task 参数时跳转到对应页面
func (h *Handler) Index(c *gin.Context) {
	if task := session.ParseTask(c.Query("task")); task != session.TaskNone {
		c.Redirect(http.StatusSeeOther, task.Path())
		return
	}
	web.HTML(c, http.StatusOK, "panel.html", web.Flash{Info: MsgChooseTask}, nil)
}
