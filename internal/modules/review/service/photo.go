package service

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"

	platformservice "restaurant-review-server/internal/platform/service"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

const MsgUnsupportedImage = "Unsupported or unreadable image."

var allowedPhotoTypes = map[string]bool{
	"image/jpeg":     true,
	"image/png":      true,
	"image/gif":      true,
	"image/webp":     true,
	"image/bmp":      true,
	"image/x-ms-bmp": true,
}

// EncodeJPEG 校验真实类型后解码上传内容，并重新编码为 JPEG。
// 只读文件头即可得到画布尺寸，宽 x 高超过 maxPixels 时在解码前拒绝。
// 带透明通道的图片先铺白底，动图只取第一帧。
func EncodeJPEG(data []byte, quality int, maxPixels int) ([]byte, error) {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	if !allowedPhotoTypes[http.DetectContentType(head)] {
		return nil, platformservice.NewValidationError(MsgUnsupportedImage)
	}

	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, platformservice.NewValidationError(MsgUnsupportedImage)
	}
	if maxPixels > 0 && int64(cfg.Width)*int64(cfg.Height) > int64(maxPixels) {
		return nil, platformservice.NewValidationError(MsgUnsupportedImage)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, platformservice.NewValidationError(MsgUnsupportedImage)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, flatten(img), &jpeg.Options{Quality: quality}); err != nil {
		return nil, platformservice.WrapInternal(err)
	}
	return buf.Bytes(), nil
}

func flatten(img image.Image) image.Image {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(b)
	draw.Draw(dst, b, image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, b, img, b.Min, draw.Over)
	return dst
}
