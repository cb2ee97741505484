package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalService stores uploads on the local filesystem under a base directory.
type LocalService struct {
	baseDir string
}

// NewLocalService creates a LocalService rooted at baseDir, creating the
// directory if needed.
func NewLocalService(baseDir string) (*LocalService, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", baseDir, err)
	}
	return &LocalService{baseDir: baseDir}, nil
}

// UploadFile copies the file into the base directory under a fresh name and
// returns its relative path.
func (s *LocalService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	dir := filepath.Join(s.baseDir, destFolder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", dir, err)
	}

	src, err := os.Open(localFilePath)
	if err != nil {
		return "", fmt.Errorf("failed to open upload source: %w", err)
	}
	defer src.Close()

	name := uuid.NewString() + filepath.Ext(localFilePath)
	destPath := filepath.Join(dir, name)
	dst, err := os.Create(destPath)
	if err != nil {
		return "", fmt.Errorf("failed to create upload target: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	return destPath, nil
}

// DeleteFile removes a stored file. Refs outside the base directory are refused.
func (s *LocalService) DeleteFile(ctx context.Context, ref string) error {
	rel, err := filepath.Rel(s.baseDir, ref)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fmt.Errorf("ref %s is outside the upload dir", ref)
	}
	if err := os.Remove(ref); err != nil {
		return fmt.Errorf("failed to delete %s: %w", ref, err)
	}
	return nil
}
