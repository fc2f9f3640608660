package httpx

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"restaurant-review-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证各类 ServiceError 映射到对应的 HTTP 状态码。
func TestStatusOf(t *testing.T) {
	cases := map[service.ErrorCode]int{
		service.ErrorCodeValidation:   http.StatusBadRequest,
		service.ErrorCodeUnauthorized: http.StatusUnauthorized,
		service.ErrorCodeConflict:     http.StatusConflict,
		service.ErrorCodeNotFound:     http.StatusNotFound,
		service.ErrorCodeInternal:     http.StatusInternalServerError,
		service.ErrorCode("unknown"):  http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusOf(code); got != want {
			t.Fatalf("code=%s 期望 %d，实际为 %d", code, want, got)
		}
	}
}

// 测试内容：验证 WriteServiceError 对 ServiceError 与普通错误的响应。
func TestWriteServiceError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	WriteServiceError(c, service.NewNotFoundError("评价不存在"), "fallback")
	if w.Code != http.StatusNotFound || !strings.Contains(w.Body.String(), "评价不存在") {
		t.Fatalf("期望 404 与错误信息，实际为 %d body=%s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	WriteServiceError(c, errors.New("boom"), "内部错误")
	if w.Code != http.StatusInternalServerError || !strings.Contains(w.Body.String(), "内部错误") {
		t.Fatalf("期望 500 与兜底信息，实际为 %d body=%s", w.Code, w.Body.String())
	}
}
