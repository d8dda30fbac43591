package service

import (
	"context"
	"io"
)

// FileUpload is a file received from a client, ready to be stored.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// ObjectStorage stores uploaded media and hands back a public URL.
type ObjectStorage interface {
	// Upload stores the file under prefix and returns its public URL.
	Upload(ctx context.Context, prefix string, file *FileUpload) (string, error)

	// Delete removes an object previously returned by Upload. Unknown URLs are ignored.
	Delete(ctx context.Context, url string) error
}
