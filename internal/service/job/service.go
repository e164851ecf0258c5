package job

import (
	"context"
	"fmt"
	"io"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/job"
	"github.com/ojt-portal/ojt-backend-go/internal/service/file"
)

type JobServiceImpl struct {
	job.JobRepository
	fileService file.FileService
}

func NewJobService(jobRepository job.JobRepository, fileService file.FileService) job.JobService {
	return &JobServiceImpl{
		JobRepository: jobRepository,
		fileService:   fileService,
	}
}

// Create implements job.JobService.
func (s *JobServiceImpl) Create(ctx context.Context, req job.CreateRequest) (job.Response, error) {
	if err := req.Validate(); err != nil {
		return job.Response{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	posting := job.JobPosting{
		Title:          req.Title,
		Project:        req.Project,
		Description:    req.Description,
		Location:       req.Location,
		AvailableSlots: req.AvailableSlots,
		IsActive:       isActive,
	}
	if req.CreatedBy != "" {
		posting.CreatedBy = &req.CreatedBy
	}

	created, err := s.JobRepository.Create(ctx, posting)
	if err != nil {
		return job.Response{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return job.ToResponse(created), nil
}

// GetByID implements job.JobService.
func (s *JobServiceImpl) GetByID(ctx context.Context, id string) (job.Response, error) {
	posting, err := s.JobRepository.GetByID(ctx, id)
	if err != nil {
		return job.Response{}, err
	}
	return job.ToResponse(posting), nil
}

// List implements job.JobService.
func (s *JobServiceImpl) List(ctx context.Context, filter job.Filter) ([]job.Response, int64, error) {
	postings, total, err := s.JobRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job postings: %w", err)
	}

	responses := make([]job.Response, len(postings))
	for i, posting := range postings {
		responses[i] = job.ToResponse(posting)
	}

	return responses, total, nil
}

// Update implements job.JobService.
func (s *JobServiceImpl) Update(ctx context.Context, req job.UpdateRequest) error {
	if req.AvailableSlots != nil && *req.AvailableSlots < 1 {
		return fmt.Errorf("available_slots must be at least 1")
	}
	return s.JobRepository.Update(ctx, req)
}

// Delete implements job.JobService.
func (s *JobServiceImpl) Delete(ctx context.Context, id string) error {
	return s.JobRepository.Delete(ctx, id)
}

// UploadAttachment implements job.JobService.
func (s *JobServiceImpl) UploadAttachment(ctx context.Context, id string, f io.Reader, filename string) (string, error) {
	// 404 before touching storage
	if _, err := s.JobRepository.GetByID(ctx, id); err != nil {
		return "", err
	}

	path, err := s.fileService.UploadJobAttachment(ctx, id, f, filename)
	if err != nil {
		return "", err
	}

	if err := s.JobRepository.SetAttachmentURL(ctx, id, path); err != nil {
		return "", fmt.Errorf("failed to record attachment url: %w", err)
	}

	return path, nil
}
