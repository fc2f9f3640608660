package dto

type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type SignupRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}
