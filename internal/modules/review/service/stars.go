package service

import "strings"

const (
	MinRating     = 0
	MaxRating     = 5
	DefaultRating = 3
)

// ClampRating 将评分限制在 [0,5]
func ClampRating(rating int) int {
	if rating < MinRating {
		return MinRating
	}
	if rating > MaxRating {
		return MaxRating
	}
	return rating
}

// Stars 评分显示为对应数量的星形字符
func Stars(rating int) string {
	return strings.Repeat("⭐", ClampRating(rating))
}
