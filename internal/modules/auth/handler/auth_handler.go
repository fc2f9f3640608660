package handler

import (
	"net/http"

	"restaurant-review-server/internal/logger"
	moduledto "restaurant-review-server/internal/modules/auth/dto"
	"restaurant-review-server/internal/modules/common/httpx"
	"restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/web"

	"github.com/gin-gonic/gin"
)

const MsgSignupSuccess = "You have successfully created an account. Go to the Login Menu to login."

func (h *Handler) LoginPage(c *gin.Context) {
	if session.StateOf(c, false) == session.StateAuthenticated {
		c.Redirect(http.StatusFound, "/panel")
		return
	}
	web.HTML(c, http.StatusOK, "login.html", web.Flash{}, gin.H{})
}

func (h *Handler) Login(c *gin.Context) {
	var req moduledto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warning("解析登录表单失败: ", err)
		web.HTML(c, http.StatusBadRequest, "login.html", web.Flash{Error: httpx.MsgBadRequest}, gin.H{})
		return
	}

	user, err := h.authService.LoginUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		web.HTML(c, status, "login.html", web.Flash{Warning: msg}, gin.H{"Username": req.Username})
		return
	}

	if err := session.SetLoginUser(c, user); err != nil {
		logger.Warning("保存登录会话失败: ", err)
		web.HTML(c, http.StatusInternalServerError, "login.html", web.Flash{Error: service.MsgInternal}, gin.H{"Username": req.Username})
		return
	}

	logger.Infof("用户 %s 登录成功", user.Username)
	c.Redirect(http.StatusSeeOther, "/panel")
}

func (h *Handler) SignupPage(c *gin.Context) {
	if session.StateOf(c, true) == session.StateAuthenticated {
		c.Redirect(http.StatusFound, "/panel")
		return
	}
	web.HTML(c, http.StatusOK, "signup.html", web.Flash{}, gin.H{})
}

// Signup 注册成功后仍停留在匿名状态，由用户自行前往登录页
func (h *Handler) Signup(c *gin.Context) {
	var req moduledto.SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		logger.Warning("解析注册表单失败: ", err)
		web.HTML(c, http.StatusBadRequest, "signup.html", web.Flash{Error: httpx.MsgBadRequest}, gin.H{})
		return
	}

	if _, err := h.authService.CreateUser(c.Request.Context(), req.Username, req.Password); err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		web.HTML(c, status, "signup.html", web.Flash{Warning: msg}, gin.H{"Username": req.Username})
		return
	}

	logger.Infof("新用户 %s 注册成功", req.Username)
	web.HTML(c, http.StatusOK, "signup.html", web.Flash{Success: MsgSignupSuccess}, gin.H{})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		logger.Warning("清除会话失败: ", err)
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
