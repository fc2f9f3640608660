package consts

const (
	ApplicationName    = "Restaurant Review Server"
	ApplicationVersion = "v1.0.0"
)
