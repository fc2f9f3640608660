package router

import (
	"restaurant-review-server/internal/middleware"
	"restaurant-review-server/internal/modules"
	"restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/session"

	"github.com/gin-gonic/gin"
)

const addReviewPath = "/panel/reviews/new"

func registerPanelRoutes(r *gin.Engine, m *modules.AppModules, appService *service.AppService) {
	panel := r.Group("/panel", session.RequireLogin())
	panel.GET("", m.Panel.Handler.Index)

	restaurants := m.Restaurant.Handler
	withTask := panel.Group("", session.MarkTask(session.TaskAddRestaurant))
	withTask.GET("/restaurants/new", restaurants.NewPage)
	withTask.POST("/restaurants/new", restaurants.Create)

	reviews := m.Review.Handler
	add := panel.Group("", session.MarkTask(session.TaskAddReview))
	add.GET("/reviews/new", reviews.NewPage)
	add.POST("/reviews/new", middleware.UploadBodyLimitMiddleware(appService), reviews.Create)

	view := panel.Group("", session.MarkTask(session.TaskViewReviews))
	view.GET("/reviews", reviews.List)
	view.GET("/reviews/:id/photo", reviews.Photo)

	edit := panel.Group("", session.MarkTask(session.TaskEditReview))
	edit.GET("/reviews/edit", reviews.EditPage)
	edit.POST("/reviews/edit", reviews.Update)

	del := panel.Group("", session.MarkTask(session.TaskDeleteReview))
	del.GET("/reviews/delete", reviews.DeletePage)
	del.POST("/reviews/delete", reviews.Delete)

	panel.GET("/map", session.MarkTask(session.TaskViewMap), m.MapView.Handler.Show)
}
