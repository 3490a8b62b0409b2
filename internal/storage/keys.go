// Package storage stores campaign artifacts in an S3-compatible bucket
// (Cloudflare R2) under a fixed key layout:
//
//	campaigns/{campaignID}/uploads/{filename}
//	campaigns/{campaignID}/edited/{editID}{ext}
//	campaigns/{campaignID}/generated_files/{artifactID}{ext}
package storage

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"
)

// EditedKey returns the object key for the result of an image edit.
func EditedKey(campaignID, editID uuid.UUID, contentType string) string {
	return fmt.Sprintf("campaigns/%s/edited/%s%s", campaignID, editID, ExtForContentType(contentType))
}

// GeneratedKey returns the object key for a generated artifact.
func GeneratedKey(campaignID, artifactID uuid.UUID, contentType string) string {
	return fmt.Sprintf("campaigns/%s/generated_files/%s%s", campaignID, artifactID, ExtForContentType(contentType))
}

// UploadKey returns the object key for a user-uploaded source file. The
// filename is reduced to its base name so keys cannot escape the campaign
// prefix.
func UploadKey(campaignID uuid.UUID, filename string) string {
	name := path.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == "" {
		name = "upload"
	}
	return fmt.Sprintf("campaigns/%s/uploads/%s", campaignID, name)
}

// ExtForContentType maps a MIME type to a file extension. Unknown types get
// ".bin".
func ExtForContentType(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "text/plain":
		return ".txt"
	case "application/json":
		return ".json"
	default:
		return ".bin"
	}
}
