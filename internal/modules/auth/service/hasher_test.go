package service

import (
	"strings"
	"testing"

	"restaurant-review-server/internal/config"
)

// 测试内容：验证 SHA-256 摘要与已知向量一致，且为 64 位小写十六进制。
func TestSHA256Hasher_KnownVectors(t *testing.T) {
	cases := map[string]string{
		"pw1":      "c592df4a86933b92addc9842402ddf198c638ea9be58916ee6e3734e1e3152f8",
		"":         "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		"pässwörd": "46970bef70aced8123f0d5d094717e2a5cd412041e03b26376049fe65b2834a4",
	}
	h := SHA256Hasher{}
	for in, want := range cases {
		got, err := h.Hash(in)
		if err != nil {
			t.Fatalf("Hash(%q) 返回错误: %v", in, err)
		}
		if got != want {
			t.Fatalf("Hash(%q) 期望 %s，实际为 %s", in, want, got)
		}
		if !h.Verify(want, in) {
			t.Fatalf("期望 Verify 通过: %q", in)
		}
	}
	if h.Verify(cases["pw1"], "pw2") {
		t.Fatalf("期望错误口令校验失败")
	}
}

// 测试内容：验证 bcrypt 摘要带盐（同一口令两次结果不同）且可校验。
func TestBcryptHasher(t *testing.T) {
	h := BcryptHasher{Cost: 4}
	a, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash 返回错误: %v", err)
	}
	b, _ := h.Hash("secret")
	if a == b {
		t.Fatalf("期望两次摘要不同")
	}
	if !strings.HasPrefix(a, "$2") {
		t.Fatalf("期望 bcrypt 格式，实际为 %s", a)
	}
	if !h.Verify(a, "secret") || h.Verify(a, "other") {
		t.Fatalf("bcrypt 校验结果不符合预期")
	}
}

// 测试内容：验证按配置名选择摘要算法。
func TestHasherFor(t *testing.T) {
	if _, ok := HasherFor(config.HashBcrypt).(BcryptHasher); !ok {
		t.Fatalf("期望 bcrypt 配置得到 BcryptHasher")
	}
	if _, ok := HasherFor(config.HashSHA256).(SHA256Hasher); !ok {
		t.Fatalf("期望 sha256 配置得到 SHA256Hasher")
	}
	if _, ok := HasherFor("unknown").(SHA256Hasher); !ok {
		t.Fatalf("期望未知配置回退为 SHA256Hasher")
	}
}
