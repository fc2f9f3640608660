package service

import (
	"testing"

	"restaurant-review-server/internal/modules/auth/repo"
	platformservice "restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/testutils"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	gdb := testutils.SetupDB(t)
	return New(platformservice.NewStaticAppService(testutils.TestConfig()), repo.NewUserRepository(gdb))
}
