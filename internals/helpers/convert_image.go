// file: internals/helpers/convert_image.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"lesku_backend/internals/configs"
)

const (
	webpQuality = 80
	maxImageW   = 1280
	maxImageH   = 1280
)

/* =======================================================================
   Decode gambar (jpeg/png/webp) dari []byte dengan sniff MIME
======================================================================= */

func decodeImage(all []byte, filename string) (image.Image, error) {
	if len(all) == 0 {
		return nil, fmt.Errorf("empty file")
	}
	head := all
	if len(head) > 512 {
		head = head[:512]
	}
	ct := http.DetectContentType(head)

	var (
		img image.Image
		err error
	)
	switch {
	case strings.Contains(ct, "jpeg"):
		img, err = jpeg.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "png"):
		img, err = png.Decode(bytes.NewReader(all))
	case strings.Contains(ct, "webp"):
		img, err = webp.Decode(bytes.NewReader(all))
	default:
		// fallback by extension
		ext := strings.ToLower(filepath.Ext(filename))
		switch ext {
		case ".jpg", ".jpeg":
			img, err = jpeg.Decode(bytes.NewReader(all))
		case ".png":
			img, err = png.Decode(bytes.NewReader(all))
		case ".webp":
			img, err = webp.Decode(bytes.NewReader(all))
		default:
			return nil, fmt.Errorf("format tidak didukung: %s / %s", ct, ext)
		}
	}
	return img, err
}

/* =======================================================================
   Simpan upload sebagai WebP (downscale kalau perlu)
======================================================================= */

// SaveImageAsWebP: baca multipart file → decode → fit ke batas → encode webp →
// simpan di UPLOAD_DIR/<folder>/. Mengembalikan path relatif untuk disimpan di DB.
func SaveImageAsWebP(folder string, fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file gambar: %w", err)
	}
	defer src.Close()

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("gagal membaca file gambar: %w", err)
	}

	img, err := decodeImage(buf.Bytes(), fileHeader.Filename)
	if err != nil {
		return "", fmt.Errorf("decode gambar gagal: %w", err)
	}

	// keep aspect, jangan upscale
	img = imaging.Fit(img, maxImageW, maxImageH, imaging.CatmullRom)

	out := new(bytes.Buffer)
	if err := webp.Encode(out, img, &webp.Options{Lossless: false, Quality: webpQuality}); err != nil {
		return "", fmt.Errorf("encode webp gagal: %w", err)
	}

	rel := GenerateUniqueFilename(folder, fileHeader.Filename) + ".webp"
	full := filepath.Join(configs.UploadDir, rel)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}
	if err := os.WriteFile(full, out.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan file: %w", err)
	}
	return rel, nil
}

/* =======================================================================
   Nama file unik
======================================================================= */

func sanitizeFilename(filename string) string {
	// Hapus karakter selain huruf, angka, titik, dash, underscore
	re := regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
	return re.ReplaceAllString(filename, "_")
}

func GenerateUniqueFilename(folder, originalFilename string) string {
	timestamp := time.Now().Format("20060102")
	base := strings.TrimSuffix(originalFilename, filepath.Ext(originalFilename))
	return fmt.Sprintf("%s/%s-%s-%s", folder, timestamp, uuid.New().String(), sanitizeFilename(base))
}
