package service

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"restaurant-review-server/internal/config"

	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher 口令摘要算法。调用方只依赖该接口，切换算法不影响调用点
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// SHA256Hasher 无盐单轮 SHA-256，输出 64 位小写十六进制。
// 仅为兼容既有数据库保留，属于已知的弱口令存储方案。
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:]), nil
}

func (h SHA256Hasher) Verify(hash, password string) bool {
	computed, _ := h.Hash(password)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// BcryptHasher 加盐的 bcrypt 摘要
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func (BcryptHasher) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// HasherFor 按配置名选择算法，未知取值使用 SHA-256
func HasherFor(name string) PasswordHasher {
	if name == config.HashBcrypt {
		return BcryptHasher{}
	}
	return SHA256Hasher{}
}
