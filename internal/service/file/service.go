package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/storage"
)

type FileService interface {
	// Resume uploads
	UploadResume(ctx context.Context, studentID string, file io.Reader, filename string) (string, error)

	// Job attachment uploads
	UploadJobAttachment(ctx context.Context, jobID string, file io.Reader, filename string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadResume uploads a student resume. PDFs only.
func (s *fileServiceImpl) UploadResume(ctx context.Context, studentID string, file io.Reader, filename string) (string, error) {
	if err := requirePDF(filename); err != nil {
		return "", err
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s.pdf", studentID, uniqueID)
	path := filepath.Join("resumes", studentID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}

	return uploadedPath, nil
}

// UploadJobAttachment uploads a job posting attachment. PDFs only.
func (s *fileServiceImpl) UploadJobAttachment(ctx context.Context, jobID string, file io.Reader, filename string) (string, error) {
	if err := requirePDF(filename); err != nil {
		return "", err
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s.pdf", jobID, uniqueID)
	path := filepath.Join("jobs", jobID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/pdf")
	if err != nil {
		return "", fmt.Errorf("failed to upload job attachment: %w", err)
	}

	return uploadedPath, nil
}

// DeleteFile deletes a file from storage
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL returns an accessible URL for a file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

func requirePDF(filename string) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext != ".pdf" {
		return fmt.Errorf("invalid file type: only pdf allowed")
	}
	return nil
}
