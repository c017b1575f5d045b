package storage

import (
	"errors"
	"testing"
)

func TestConstraintsCheck(t *testing.T) {
	tests := []struct {
		name     string
		c        Constraints
		size     int64
		fileName string
		wantErr  error
	}{
		{"image ok", ImageConstraints, 1024, "photo.jpg", nil},
		{"uppercase extension", ImageConstraints, 1024, "PHOTO.PNG", nil},
		{"image too large", ImageConstraints, 6 << 20, "photo.jpg", ErrFileTooLarge},
		{"wrong type", ImageConstraints, 1024, "malware.exe", ErrWrongType},
		{"no extension", ImageConstraints, 1024, "photo", ErrWrongType},
		{"pdf not an image", ImageConstraints, 1024, "resume.pdf", ErrWrongType},
		{"resume accepts pdf", ResumeConstraints, 1024, "resume.pdf", nil},
		{"receipt accepts pdf", ReceiptConstraints, 1024, "receipt.pdf", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.c.Check(tt.size, tt.fileName)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Check() error = %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
