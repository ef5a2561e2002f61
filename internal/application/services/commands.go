package services

type UploadImageCommand struct {
	FileName    string
	ContentType string
	Data        []byte
	Description string
	Tags        []string
}
