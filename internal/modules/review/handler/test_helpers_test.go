package handler

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	authrepo "restaurant-review-server/internal/modules/auth/repo"
	authservice "restaurant-review-server/internal/modules/auth/service"
	restaurantdto "restaurant-review-server/internal/modules/restaurant/dto"
	restaurantrepo "restaurant-review-server/internal/modules/restaurant/repo"
	restaurantservice "restaurant-review-server/internal/modules/restaurant/service"
	"restaurant-review-server/internal/modules/review/repo"
	reviewservice "restaurant-review-server/internal/modules/review/service"
	platformservice "restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

type env struct {
	r           *gin.Engine
	svc         *reviewservice.Service
	users       *authservice.Service
	restaurants *restaurantservice.Service
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	gdb := testutils.SetupDB(t)
	app := platformservice.NewStaticAppService(testutils.TestConfig())
	users := authservice.New(app, authrepo.NewUserRepository(gdb))
	restaurants := restaurantservice.New(app, restaurantrepo.NewRestaurantRepository(gdb))
	svc := reviewservice.New(app, repo.NewReviewRepository(gdb), restaurants, users)
	h := New(svc)

	r := testutils.NewEngine(t)
	panel := r.Group("/panel", session.RequireLogin())
	panel.GET("/reviews/new", h.NewPage)
	panel.POST("/reviews/new", h.Create)
	panel.GET("/reviews", h.List)
	panel.GET("/reviews/edit", h.EditPage)
	panel.POST("/reviews/edit", h.Update)
	panel.GET("/reviews/delete", h.DeletePage)
	panel.POST("/reviews/delete", h.Delete)
	panel.GET("/reviews/:id/photo", h.Photo)

	return &env{r: r, svc: svc, users: users, restaurants: restaurants}
}

func (e *env) login(t *testing.T, username string) (uint, []*http.Cookie) {
	t.Helper()
	u, err := e.users.CreateUser(context.Background(), username, "pw")
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u.ID, loginCookies(t, e.r, u.ID, username)
}

// loginCookies 每次注册独立的测试登录路由，避免重复注册同一路径
func loginCookies(t *testing.T, r *gin.Engine, id uint, username string) []*http.Cookie {
	t.Helper()
	path := "/__login/" + username
	r.GET(path, func(c *gin.Context) {
		if err := session.SetLoginUserID(c, id, username); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.Status(http.StatusOK)
	})
	w := testutils.Do(r, http.MethodGet, path, nil, nil)
	return w.Result().Cookies()
}

func (e *env) restaurant(t *testing.T, name string) uint {
	t.Helper()
	r, err := e.restaurants.AddRestaurant(context.Background(), restaurantdto.AddRestaurantRequest{
		Name: name, Address: "1 Main St", City: "Springfield", Latitude: 10, Longitude: 20,
	})
	if err != nil {
		t.Fatalf("创建餐厅失败: %v", err)
	}
	return r.ID
}

func multipartRequest(t *testing.T, target string, fields map[string]string, photo []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	if photo != nil {
		fw, err := mw.CreateFormFile("photo", "dish.png")
		if err != nil {
			t.Fatalf("创建文件字段失败: %v", err)
		}
		_, _ = fw.Write(photo)
	}
	_ = mw.Close()

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	for i := 0; i < 12; i++ {
		img.Set(i, i, color.RGBA{R: 255, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("编码 PNG 失败: %v", err)
	}
	return buf.Bytes()
}
