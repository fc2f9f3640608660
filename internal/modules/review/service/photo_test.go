package service

import (
	"bytes"
	"context"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"
	"unicode/utf8"

	moduledto "restaurant-review-server/internal/modules/review/dto"
	platformservice "restaurant-review-server/internal/platform/service"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.NRGBA{R: uint8(x * 10), G: uint8(y * 10), B: 128, A: uint8(100 + x)})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("编码 PNG 失败: %v", err)
	}
	return buf.Bytes()
}

// 测试内容：PNG 与 GIF 上传被重新编码为可解码的 JPEG，尺寸保持不变。
func TestEncodeJPEG_ReencodesSupportedFormats(t *testing.T) {
	out, err := EncodeJPEG(pngBytes(t, 16, 9), 90, 0)
	if err != nil {
		t.Fatalf("重新编码 PNG 失败: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("期望输出为 JPEG: %v", err)
	}
	if img.Bounds().Dx() != 16 || img.Bounds().Dy() != 9 {
		t.Fatalf("期望尺寸 16x9，实际为 %v", img.Bounds())
	}

	pal := image.NewPaletted(image.Rect(0, 0, 4, 4), []color.Color{color.Black, color.White})
	var gbuf bytes.Buffer
	if err := gif.Encode(&gbuf, pal, nil); err != nil {
		t.Fatalf("编码 GIF 失败: %v", err)
	}
	out, err = EncodeJPEG(gbuf.Bytes(), 75, 0)
	if err != nil {
		t.Fatalf("重新编码 GIF 失败: %v", err)
	}
	if _, err := jpeg.Decode(bytes.NewReader(out)); err != nil {
		t.Fatalf("期望输出为 JPEG: %v", err)
	}
}

// hugeCanvasPNG 只包含文件头与 IHDR，声明 width x height 的画布
func hugeCanvasPNG(width, height uint32) []byte {
	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")

	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:4], width)
	binary.BigEndian.PutUint32(ihdr[4:8], height)
	ihdr[8] = 8 // 位深
	ihdr[9] = 6 // RGBA

	chunk := append([]byte("IHDR"), ihdr...)
	_ = binary.Write(&buf, binary.BigEndian, uint32(len(ihdr)))
	buf.Write(chunk)
	_ = binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk))
	return buf.Bytes()
}

// 测试内容：声明超大画布的图片在解码前被拒绝，像素上限按配置生效。
func TestEncodeJPEG_RejectsOversizedCanvas(t *testing.T) {
	_, err := EncodeJPEG(hugeCanvasPNG(8000, 8000), 90, 40_000_000)
	assertCode(t, err, platformservice.ErrorCodeValidation)

	_, err = EncodeJPEG(hugeCanvasPNG(100000, 100000), 90, 40_000_000)
	assertCode(t, err, platformservice.ErrorCodeValidation)

	small := pngBytes(t, 16, 9)
	_, err = EncodeJPEG(small, 90, 100)
	assertCode(t, err, platformservice.ErrorCodeValidation)
	if _, err := EncodeJPEG(small, 90, 144); err != nil {
		t.Fatalf("期望恰好等于上限的图片可以通过，实际为 %v", err)
	}
}

// 测试内容：非图片内容与被截断的图片返回校验错误。
func TestEncodeJPEG_RejectsInvalidContent(t *testing.T) {
	_, err := EncodeJPEG([]byte("definitely not an image"), 90, 0)
	assertCode(t, err, platformservice.ErrorCodeValidation)

	truncated := pngBytes(t, 8, 8)[:40]
	_, err = EncodeJPEG(truncated, 90, 0)
	assertCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：带照片的点评存取往返后仍可解码，未上传照片时存储为空。
func TestAddReview_PhotoRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	cafe := f.restaurant(t, "Cafe X")

	withPhoto, err := f.svc.AddReview(ctx, moduledto.AddReviewRequest{
		RestaurantID: cafe, UserID: alice, Date: "2023-05-01", DishName: "Soup", Description: "Hot", Rating: 4,
		Photo: pngBytes(t, 20, 10),
	})
	if err != nil {
		t.Fatalf("添加点评失败: %v", err)
	}
	noPhoto, err := f.svc.AddReview(ctx, moduledto.AddReviewRequest{
		RestaurantID: cafe, UserID: alice, Date: "2023-05-02", DishName: "Tea", Description: "Green", Rating: 3,
	})
	if err != nil {
		t.Fatalf("添加点评失败: %v", err)
	}

	photo, err := f.svc.GetPhoto(ctx, alice, withPhoto.ID)
	if err != nil {
		t.Fatalf("读取照片失败: %v", err)
	}
	img, err := jpeg.Decode(bytes.NewReader(photo))
	if err != nil {
		t.Fatalf("期望照片可解码: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Fatalf("期望尺寸 20x10，实际为 %v", img.Bounds())
	}

	_, err = f.svc.GetPhoto(ctx, alice, noPhoto.ID)
	assertCode(t, err, platformservice.ErrorCodeNotFound)
	_, err = f.svc.GetPhoto(ctx, bob, withPhoto.ID)
	assertCode(t, err, platformservice.ErrorCodeNotFound)

	views, err := f.svc.ViewReviews(ctx, f.svc.DefaultFilter(alice))
	if err != nil || len(views) != 2 {
		t.Fatalf("期望 2 条点评，实际为 %d err=%v", len(views), err)
	}
	if !views[0].HasPhoto || views[1].HasPhoto {
		t.Fatalf("照片标记不符合预期: %+v", views)
	}

	_, err = f.svc.AddReview(ctx, moduledto.AddReviewRequest{
		RestaurantID: cafe, UserID: alice, Date: "2023-05-03", DishName: "Bad", Description: "x", Photo: []byte("garbage"),
	})
	assertCode(t, err, platformservice.ErrorCodeValidation)
}

// 测试内容：评分 3 显示为恰好 3 个星形字符，越界评分被限制。
func TestStars(t *testing.T) {
	if s := Stars(3); utf8.RuneCountInString(s) != 3 || s != "⭐⭐⭐" {
		t.Fatalf("期望 3 颗星，实际为 %q", s)
	}
	if Stars(0) != "" {
		t.Fatalf("期望 0 分无星")
	}
	if utf8.RuneCountInString(Stars(10)) != 5 || Stars(-1) != "" {
		t.Fatalf("期望越界评分被限制")
	}
}
