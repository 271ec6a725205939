package utils

import (
	"fmt"
	"hospital-service/internal/pkg/constvars"
	"time"

	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.New().String()
}

func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}

func GenerateFileName(prefix, userID, fileExtension string) string {
	timestamp := time.Now().UTC().Format("20060102_150405.000000000")
	return fmt.Sprintf("%s/%s_%s%s", prefix, userID, timestamp, fileExtension)
}

func FileExtensionFromContentType(contentType string) string {
	switch contentType {
	case constvars.MIMEImageJPEG:
		return ".jpg"
	case constvars.MIMEImagePNG:
		return ".png"
	case constvars.MIMEImageWEBP:
		return ".webp"
	default:
		return ""
	}
}
