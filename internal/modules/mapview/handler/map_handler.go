package handler

import (
	"net/http"

	"restaurant-review-server/internal/modules/common/httpx"
	mapviewservice "restaurant-review-server/internal/modules/mapview/service"
	"restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/web"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Show(c *gin.Context) {
	view, err := h.mapService.ViewMap(c.Request.Context())
	if err == nil {
		var markers string
		if markers, err = mapviewservice.MarkersJSON(view); err == nil {
			web.HTML(c, http.StatusOK, "map.html", web.Flash{}, gin.H{
				"Map":         !view.Empty,
				"View":        view,
				"MarkersJSON": markers,
			})
			return
		}
	}

	status, msg := httpx.Describe(err, service.MsgInternal)
	web.HTML(c, status, "map.html", web.Flash{Error: msg}, nil)
}
