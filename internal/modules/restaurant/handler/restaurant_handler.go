package handler

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"restaurant-review-server/internal/logger"
	"restaurant-review-server/internal/modules/common/httpx"
	moduledto "restaurant-review-server/internal/modules/restaurant/dto"
	restaurantservice "restaurant-review-server/internal/modules/restaurant/service"
	"restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/web"

	"github.com/gin-gonic/gin"
)

const MsgCoordinatesNotNumbers = "Latitude and longitude must be numbers."

func (h *Handler) NewPage(c *gin.Context) {
	web.HTML(c, http.StatusOK, "restaurant_new.html", web.Flash{}, gin.H{"Form": moduledto.AddRestaurantForm{}})
}

func (h *Handler) Create(c *gin.Context) {
	var form moduledto.AddRestaurantForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Warning("解析餐厅表单失败: ", err)
		web.HTML(c, http.StatusBadRequest, "restaurant_new.html", web.Flash{Error: httpx.MsgBadRequest}, gin.H{"Form": moduledto.AddRestaurantForm{}})
		return
	}

	req, ok := parseForm(form)
	if !ok {
		web.HTML(c, http.StatusBadRequest, "restaurant_new.html", web.Flash{Error: MsgCoordinatesNotNumbers}, gin.H{"Form": form})
		return
	}

	restaurant, err := h.restaurantService.AddRestaurant(c.Request.Context(), req)
	if err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		web.HTML(c, status, "restaurant_new.html", web.Flash{Error: msg}, gin.H{"Form": form})
		return
	}

	logger.Infof("新增餐厅 #%d %s", restaurant.ID, restaurant.Name)
	web.HTML(c, http.StatusOK, "restaurant_new.html", web.Flash{Success: restaurantservice.MsgRestaurantAdded}, gin.H{"Form": moduledto.AddRestaurantForm{}})
}

// parseForm 空坐标按 0 处理，交由服务层判定为缺失
func parseForm(form moduledto.AddRestaurantForm) (moduledto.AddRestaurantRequest, bool) {
	lat, ok := parseCoordinate(form.Latitude)
	if !ok {
		return moduledto.AddRestaurantRequest{}, false
	}
	lon, ok := parseCoordinate(form.Longitude)
	if !ok {
		return moduledto.AddRestaurantRequest{}, false
	}
	return moduledto.AddRestaurantRequest{
		Name:      form.Name,
		Address:   form.Address,
		City:      form.City,
		Latitude:  lat,
		Longitude: lon,
	}, true
}

func parseCoordinate(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
