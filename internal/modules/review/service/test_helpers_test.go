package service

import (
	"context"
	"testing"
	"time"

	authrepo "restaurant-review-server/internal/modules/auth/repo"
	authservice "restaurant-review-server/internal/modules/auth/service"
	restaurantdto "restaurant-review-server/internal/modules/restaurant/dto"
	restaurantrepo "restaurant-review-server/internal/modules/restaurant/repo"
	restaurantservice "restaurant-review-server/internal/modules/restaurant/service"
	"restaurant-review-server/internal/modules/review/repo"
	platformservice "restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/testutils"
)

type fixture struct {
	svc         *Service
	users       *authservice.Service
	restaurants *restaurantservice.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := testutils.SetupDB(t)
	app := platformservice.NewStaticAppService(testutils.TestConfig())
	users := authservice.New(app, authrepo.NewUserRepository(gdb))
	restaurants := restaurantservice.New(app, restaurantrepo.NewRestaurantRepository(gdb))
	svc := New(app, repo.NewReviewRepository(gdb), restaurants, users)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }
	return &fixture{svc: svc, users: users, restaurants: restaurants}
}

func (f *fixture) user(t *testing.T, name string) uint {
	t.Helper()
	u, err := f.users.CreateUser(context.Background(), name, "pw-"+name)
	if err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	return u.ID
}

func (f *fixture) restaurant(t *testing.T, name string) uint {
	t.Helper()
	r, err := f.restaurants.AddRestaurant(context.Background(), restaurantdto.AddRestaurantRequest{
		Name: name, Address: "1 Main St", City: "Springfield", Latitude: 10.0, Longitude: 20.0,
	})
	if err != nil {
		t.Fatalf("创建餐厅失败: %v", err)
	}
	return r.ID
}

func assertCode(t *testing.T, err error, code platformservice.ErrorCode) {
	t.Helper()
	se, ok := platformservice.AsServiceError(err)
	if !ok {
		t.Fatalf("期望 ServiceError(%s)，实际为 %v", code, err)
	}
	if se.Code != code {
		t.Fatalf("期望错误码 %s，实际为 %s (%s)", code, se.Code, se.Message)
	}
}
