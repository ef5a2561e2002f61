package domain

import (
	"strings"
	"time"
)

// ImageDocument is the searchable record of an uploaded image.
type ImageDocument struct {
	ID          string
	FileName    string
	ObjectName  string
	FileURL     string
	ContentType string
	FileSize    int64
	Description string
	Tags        []string
	UploadedAt  time.Time
}

func NewImageDocument(
	id, fileName, objectName, fileURL, contentType string,
	fileSize int64,
	description string,
	tags []string,
	uploadedAt time.Time,
) (*ImageDocument, error) {
	if id == "" {
		return nil, NewValidationError("id", "image ID is required")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, NewValidationError("file_name", "file name is required")
	}
	if objectName == "" {
		return nil, NewValidationError("object_name", "object name is required")
	}
	if fileSize <= 0 {
		return nil, NewValidationError("file", "file cannot be empty")
	}

	return &ImageDocument{
		ID:          id,
		FileName:    fileName,
		ObjectName:  objectName,
		FileURL:     fileURL,
		ContentType: contentType,
		FileSize:    fileSize,
		Description: strings.TrimSpace(description),
		Tags:        NormalizeTags(tags),
		UploadedAt:  uploadedAt,
	}, nil
}

// NormalizeTags trims every tag, drops empty ones and removes duplicates
// while keeping the first-seen order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// ParseTags splits a comma separated tag list.
func ParseTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	return NormalizeTags(strings.Split(raw, ","))
}
