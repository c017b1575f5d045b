package dto

import "io"

// UploadFile wraps one multipart file for the service layer.
type UploadFile struct {
	Reader   io.Reader
	FileName string
	Size     int64
}
