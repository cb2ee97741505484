package storage

import "context"

// Service abstracts where room photos end up. Upload takes a local file path
// and returns the persisted reference (a URL or a relative path) that gets
// embedded into room records.
type Service interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, ref string) error
}
