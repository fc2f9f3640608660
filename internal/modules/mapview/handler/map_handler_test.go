package handler

import (
	"context"
	"net/http"
	"strings"
	"testing"

	mapviewservice "restaurant-review-server/internal/modules/mapview/service"
	restaurantdto "restaurant-review-server/internal/modules/restaurant/dto"
	restaurantrepo "restaurant-review-server/internal/modules/restaurant/repo"
	restaurantservice "restaurant-review-server/internal/modules/restaurant/service"
	platformservice "restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

func setupMap(t *testing.T) (*gin.Engine, *restaurantservice.Service, []*http.Cookie) {
	t.Helper()
	gdb := testutils.SetupDB(t)
	app := platformservice.NewStaticAppService(testutils.TestConfig())
	restaurants := restaurantservice.New(app, restaurantrepo.NewRestaurantRepository(gdb))
	h := New(mapviewservice.New(app, restaurants))

	r := testutils.NewEngine(t)
	cookies := testutils.LoginAs(t, r, 1, "alice")
	r.GET("/panel/map", session.RequireLogin(), session.MarkTask(session.TaskViewMap), h.Show)
	return r, restaurants, cookies
}

// 测试内容：没有餐厅时显示占位提示且不加载地图脚本。
func TestShowMap_Empty(t *testing.T) {
	r, _, cookies := setupMap(t)

	w := testutils.Do(r, http.MethodGet, "/panel/map", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "No restaurants to display on the map.") {
		t.Fatalf("期望占位提示，body=%s", body)
	}
	if strings.Contains(body, "leaflet.js") || strings.Contains(body, `id="map"`) {
		t.Fatalf("期望空地图不加载 Leaflet")
	}
}

// 测试内容：存在餐厅时地图容器携带中心坐标、缩放级别和标记数据。
func TestShowMap_WithRestaurants(t *testing.T) {
	r, restaurants, cookies := setupMap(t)
	if _, err := restaurants.AddRestaurant(context.Background(), restaurantdto.AddRestaurantRequest{
		Name: "Cafe X", Address: "1 Main St", City: "Springfield", Latitude: 10.5, Longitude: 20.25,
	}); err != nil {
		t.Fatalf("新增餐厅失败: %v", err)
	}

	w := testutils.Do(r, http.MethodGet, "/panel/map", nil, cookies)
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{`id="map"`, `data-lat="10.5"`, `data-lng="20.25"`, `data-zoom="12"`, "leaflet.js", "Cafe X"} {
		if !strings.Contains(body, want) {
			t.Fatalf("期望页面包含 %q，body=%s", want, body)
		}
	}
}
