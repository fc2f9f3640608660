package service

import (
	"context"
	"testing"

	moduledto "restaurant-review-server/internal/modules/restaurant/dto"
	"restaurant-review-server/internal/modules/restaurant/repo"
	platformservice "restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/testutils"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return New(platformservice.NewStaticAppService(testutils.TestConfig()), repo.NewRestaurantRepository(gdb))
}

// 测试内容：验证新增餐厅后两种列表形态都按插入顺序返回。
func TestAddRestaurantAndList(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	first, err := s.AddRestaurant(ctx, moduledto.AddRestaurantRequest{Name: "Cafe X", Address: "1 Main St", City: "Springfield", Latitude: 10.0, Longitude: 20.0})
	if err != nil {
		t.Fatalf("新增餐厅失败: %v", err)
	}
	if _, err := s.AddRestaurant(ctx, moduledto.AddRestaurantRequest{Name: "Diner Y", Address: "2 Elm St", City: "Shelbyville", Latitude: -33.5, Longitude: 151.2}); err != nil {
		t.Fatalf("新增餐厅失败: %v", err)
	}

	options, err := s.ListRestaurants(ctx)
	if err != nil {
		t.Fatalf("列出餐厅失败: %v", err)
	}
	if len(options) != 2 || options[0].ID != first.ID || options[0].Name != "Cafe X" || options[1].Name != "Diner Y" {
		t.Fatalf("下拉选项不符合预期: %+v", options)
	}

	locations, err := s.ListLocations(ctx)
	if err != nil {
		t.Fatalf("列出坐标失败: %v", err)
	}
	if len(locations) != 2 || locations[0].Latitude != 10.0 || locations[0].Longitude != 20.0 || locations[1].Name != "Diner Y" {
		t.Fatalf("坐标列表不符合预期: %+v", locations)
	}
}

// 测试内容：验证任一字段缺失时拒绝写入，且坐标为 0.0 同样视为缺失。
func TestAddRestaurant_RequiresAllFields(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	valid := moduledto.AddRestaurantRequest{Name: "A", Address: "B", City: "C", Latitude: 1, Longitude: 2}
	cases := map[string]func(r *moduledto.AddRestaurantRequest){
		"name":      func(r *moduledto.AddRestaurantRequest) { r.Name = "" },
		"address":   func(r *moduledto.AddRestaurantRequest) { r.Address = "" },
		"city":      func(r *moduledto.AddRestaurantRequest) { r.City = "" },
		"latitude":  func(r *moduledto.AddRestaurantRequest) { r.Latitude = 0 },
		"longitude": func(r *moduledto.AddRestaurantRequest) { r.Longitude = 0 },
	}
	for name, mutate := range cases {
		req := valid
		mutate(&req)
		_, err := s.AddRestaurant(ctx, req)
		se, ok := platformservice.AsServiceError(err)
		if !ok || se.Code != platformservice.ErrorCodeValidation || se.Message != MsgFillAllFields {
			t.Fatalf("字段 %s 缺失时期望校验错误，实际为 %v", name, err)
		}
	}

	options, _ := s.ListRestaurants(ctx)
	if len(options) != 0 {
		t.Fatalf("期望校验失败时不写入，实际有 %d 条", len(options))
	}
}

// 测试内容：验证按 ID 查询不存在的餐厅返回 not_found。
func TestFindByID_NotFound(t *testing.T) {
	s := newTestService(t)
	_, err := s.FindByID(context.Background(), 42)
	se, ok := platformservice.AsServiceError(err)
	if !ok || se.Code != platformservice.ErrorCodeNotFound {
		t.Fatalf("期望 not_found，实际为 %v", err)
	}
}
