package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"restaurant-review-server/internal/logger"
	"restaurant-review-server/internal/modules/common/httpx"
	moduledto "restaurant-review-server/internal/modules/review/dto"
	reviewservice "restaurant-review-server/internal/modules/review/service"
	"restaurant-review-server/internal/platform/service"
	"restaurant-review-server/internal/session"
	"restaurant-review-server/internal/web"

	"github.com/gin-gonic/gin"
)

const (
	MsgInvalidRestaurant = "Invalid restaurant."
	MsgInvalidReviewID   = "Invalid review id."
	MsgPhotoTooLarge     = "Photo is too large."
)

func (h *Handler) NewPage(c *gin.Context) {
	h.renderNew(c, http.StatusOK, web.Flash{}, h.emptyForm())
}

func (h *Handler) Create(c *gin.Context) {
	sc, _ := session.From(c)

	form := moduledto.AddReviewForm{
		Date:        c.PostForm("date"),
		DishName:    c.PostForm("dish_name"),
		Description: c.PostForm("description"),
		Rating:      parseRating(c.PostForm("rating")),
	}

	restaurantID, err := strconv.ParseUint(c.PostForm("restaurant_id"), 10, 64)
	if err != nil || restaurantID == 0 {
		h.renderNew(c, http.StatusBadRequest, web.Flash{Error: MsgInvalidRestaurant}, form)
		return
	}
	form.RestaurantID = uint(restaurantID)

	photo, err := h.readPhoto(c)
	if err != nil {
		h.renderNew(c, http.StatusBadRequest, web.Flash{Error: err.Error()}, form)
		return
	}

	review, err := h.reviewService.AddReview(c.Request.Context(), moduledto.AddReviewRequest{
		RestaurantID: form.RestaurantID,
		UserID:       sc.UserID,
		Date:         form.Date,
		DishName:     form.DishName,
		Description:  form.Description,
		Rating:       form.Rating,
		Photo:        photo,
	})
	if err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		h.renderNew(c, status, web.Flash{Error: msg}, form)
		return
	}

	logger.Infof("用户 %d 新增点评 #%d", sc.UserID, review.ID)
	h.renderNew(c, http.StatusOK, web.Flash{Success: reviewservice.MsgReviewAdded}, h.emptyForm())
}

// List 查看点评；缺省的筛选条件使用默认值
func (h *Handler) List(c *gin.Context) {
	sc, _ := session.From(c)

	filter := h.reviewService.DefaultFilter(sc.UserID)
	if v := c.Query("start"); v != "" {
		filter.StartDate = v
	}
	if v := c.Query("end"); v != "" {
		filter.EndDate = v
	}
	if v := c.Query("restaurant"); v != "" {
		filter.Restaurant = v
	}

	restaurants, err := h.reviewService.Restaurants(c.Request.Context())
	if err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		web.HTML(c, status, "reviews.html", web.Flash{Error: msg}, gin.H{"Filter": filter})
		return
	}

	reviews, err := h.reviewService.ViewReviews(c.Request.Context(), filter)
	if err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		web.HTML(c, status, "reviews.html", web.Flash{Error: msg}, gin.H{"Filter": filter, "Restaurants": restaurants})
		return
	}

	web.HTML(c, http.StatusOK, "reviews.html", web.Flash{}, gin.H{
		"Filter":      filter,
		"Restaurants": restaurants,
		"Reviews":     reviews,
	})
}

// EditPage 未指定 id 时默认选中第一条
func (h *Handler) EditPage(c *gin.Context) {
	var selectedID uint
	if raw := c.Query("id"); raw != "" {
		id, ok := parseID(raw)
		if !ok {
			h.renderEdit(c, http.StatusBadRequest, web.Flash{Error: MsgInvalidReviewID}, 0)
			return
		}
		selectedID = id
	}
	h.renderEdit(c, http.StatusOK, web.Flash{}, selectedID)
}

func (h *Handler) Update(c *gin.Context) {
	sc, _ := session.From(c)

	id, ok := parseID(c.PostForm("id"))
	if !ok {
		h.renderEdit(c, http.StatusBadRequest, web.Flash{Error: MsgInvalidReviewID}, 0)
		return
	}

	err := h.reviewService.EditReview(c.Request.Context(), sc.UserID, id, moduledto.EditReviewRequest{
		DishName:    c.PostForm("dish_name"),
		Description: c.PostForm("description"),
		Rating:      parseRating(c.PostForm("rating")),
	})
	if err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		h.renderEdit(c, status, web.Flash{Error: msg}, id)
		return
	}

	logger.Infof("用户 %d 更新点评 #%d", sc.UserID, id)
	h.renderEdit(c, http.StatusOK, web.Flash{Success: reviewservice.MsgReviewUpdated}, id)
}

func (h *Handler) DeletePage(c *gin.Context) {
	h.renderDelete(c, http.StatusOK, web.Flash{})
}

func (h *Handler) Delete(c *gin.Context) {
	sc, _ := session.From(c)

	id, ok := parseID(c.PostForm("id"))
	if !ok {
		h.renderDelete(c, http.StatusBadRequest, web.Flash{Error: MsgInvalidReviewID})
		return
	}

	if err := h.reviewService.DeleteReview(c.Request.Context(), sc.UserID, id); err != nil {
		status, msg := httpx.Describe(err, service.MsgInternal)
		h.renderDelete(c, status, web.Flash{Error: msg})
		return
	}

	logger.Infof("用户 %d 删除点评 #%d", sc.UserID, id)
	h.renderDelete(c, http.StatusOK, web.Flash{Success: reviewservice.MsgReviewDeleted})
}

// Photo 输出本人点评的照片
func (h *Handler) Photo(c *gin.Context) {
	sc, _ := session.From(c)

	id, ok := parseID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": MsgInvalidReviewID})
		return
	}

	photo, err := h.reviewService.GetPhoto(c.Request.Context(), sc.UserID, id)
	if err != nil {
		httpx.WriteServiceError(c, err, service.MsgInternal)
		return
	}

	c.Header("Cache-Control", "private, max-age=300")
	c.Data(http.StatusOK, "image/jpeg", photo)
}

func (h *Handler) emptyForm() moduledto.AddReviewForm {
	return moduledto.AddReviewForm{
		Date:   h.reviewService.Today(),
		Rating: reviewservice.DefaultRating,
	}
}

func (h *Handler) renderNew(c *gin.Context, status int, flash web.Flash, form moduledto.AddReviewForm) {
	restaurants, err := h.reviewService.Restaurants(c.Request.Context())
	if err != nil {
		status, flash.Error = httpx.Describe(err, service.MsgInternal)
	}
	web.HTML(c, status, "review_new.html", flash, gin.H{
		"Form":        form,
		"Restaurants": restaurants,
	})
}

func (h *Handler) renderEdit(c *gin.Context, status int, flash web.Flash, selectedID uint) {
	sc, _ := session.From(c)
	ctx := c.Request.Context()

	reviews, err := h.reviewService.ListOwnReviews(ctx, sc.UserID)
	if err != nil {
		status, flash.Error = httpx.Describe(err, service.MsgInternal)
	}
	if selectedID == 0 && len(reviews) > 0 {
		selectedID = reviews[0].ID
	}

	var selected *moduledto.ReviewDetail
	if selectedID != 0 {
		detail, err := h.reviewService.GetOwnReview(ctx, sc.UserID, selectedID)
		if err != nil {
			if flash.Error == "" {
				status, flash.Error = httpx.Describe(err, service.MsgInternal)
			}
		} else {
			selected = detail
		}
	}

	web.HTML(c, status, "review_edit.html", flash, gin.H{
		"Reviews":    reviews,
		"SelectedID": selectedID,
		"Selected":   selected,
	})
}

func (h *Handler) renderDelete(c *gin.Context, status int, flash web.Flash) {
	sc, _ := session.From(c)

	reviews, err := h.reviewService.ListOwnReviews(c.Request.Context(), sc.UserID)
	if err != nil {
		status, flash.Error = httpx.Describe(err, service.MsgInternal)
	}
	web.HTML(c, status, "review_delete.html", flash, gin.H{"Reviews": reviews})
}

// readPhoto 未上传文件或非 multipart 表单时返回 nil
func (h *Handler) readPhoto(c *gin.Context) ([]byte, error) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, errors.New(MsgPhotoTooLarge)
		}
		return nil, errors.New(reviewservice.MsgUnsupportedImage)
	}

	limit := int64(h.reviewService.Config().Upload.MaxPhotoMB) * 1024 * 1024
	if fileHeader.Size > limit {
		return nil, errors.New(MsgPhotoTooLarge)
	}

	f, err := fileHeader.Open()
	if err != nil {
		return nil, errors.New(reviewservice.MsgUnsupportedImage)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.New(reviewservice.MsgUnsupportedImage)
	}
	if int64(len(data)) > limit {
		return nil, errors.New(MsgPhotoTooLarge)
	}
	return data, nil
}

// parseRating 缺省或非法时取默认值，越界由服务层限制
func parseRating(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return reviewservice.DefaultRating
	}
	return v
}

func parseID(s string) (uint, bool) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}
