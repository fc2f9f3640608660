package session

import "github.com/gin-gonic/gin"

// State 会话状态机
type State int

const (
	StateAnonymousLogin State = iota
	StateAnonymousSignup
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateAnonymousSignup:
		return "AnonymousSignup"
	case StateAuthenticated:
		return "Authenticated"
	default:
		return "AnonymousLogin"
	}
}

// StateOf 根据会话与当前所处的入口页面推导状态；已登录时入口页面不影响结果
func StateOf(c *gin.Context, signup bool) State {
	if IsLogin(c) {
		return StateAuthenticated
	}
	if signup {
		return StateAnonymousSignup
	}
	return StateAnonymousLogin
}
