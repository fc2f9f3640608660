package model

// User 账号。password 列保存口令摘要（默认 SHA-256 十六进制）
type User struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"column:username;unique;not null"`
	Password string `json:"-" gorm:"column:password;not null"`
}

func (User) TableName() string {
	return "users"
}
