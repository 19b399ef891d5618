package storage

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

const (
	thumbnailMaxDim = 1280
	webpQuality     = 80
)

// CompressImage re-encoda fotos de documentos (JPEG/PNG) em WebP,
// redimensionando para no máximo 1280px no maior lado. Conteúdo que não é
// imagem suportada volta intacto, com o content-type original.
func CompressImage(data []byte, contentType string) ([]byte, string) {
	if contentType != "image/jpeg" && contentType != "image/png" {
		return data, contentType
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, contentType
	}

	img = shrink(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return data, contentType
	}

	return buf.Bytes(), "image/webp"
}

func shrink(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	if w <= thumbnailMaxDim && h <= thumbnailMaxDim {
		return img
	}

	if w >= h {
		h = h * thumbnailMaxDim / w
		w = thumbnailMaxDim
	} else {
		w = w * thumbnailMaxDim / h
		h = thumbnailMaxDim
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
