package student

import (
	"context"
	"fmt"
	"io"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
	"github.com/ojt-portal/ojt-backend-go/internal/service/file"
)

type StudentServiceImpl struct {
	student.StudentRepository
	fileService file.FileService
}

func NewStudentService(studentRepository student.StudentRepository, fileService file.FileService) student.StudentService {
	return &StudentServiceImpl{
		StudentRepository: studentRepository,
		fileService:       fileService,
	}
}

// Create implements student.StudentService.
func (s *StudentServiceImpl) Create(ctx context.Context, req student.CreateRequest) (student.Response, error) {
	if err := req.Validate(); err != nil {
		return student.Response{}, err
	}

	exists, err := s.StudentRepository.ExistsByOJTNumber(ctx, req.OJTNumber)
	if err != nil {
		return student.Response{}, fmt.Errorf("failed to check ojt number: %w", err)
	}
	if exists {
		return student.Response{}, student.ErrOJTNumberExists
	}

	exists, err = s.StudentRepository.ExistsByScanCode(ctx, req.ScanCode)
	if err != nil {
		return student.Response{}, fmt.Errorf("failed to check scan code: %w", err)
	}
	if exists {
		return student.Response{}, student.ErrScanCodeExists
	}

	created, err := s.StudentRepository.Create(ctx, student.Student{
		UserID:    req.UserID,
		Name:      req.Name,
		Email:     req.Email,
		OJTNumber: req.OJTNumber,
		ScanCode:  req.ScanCode,
		Project:   req.Project,
	})
	if err != nil {
		return student.Response{}, fmt.Errorf("failed to create student: %w", err)
	}

	return student.ToResponse(created), nil
}

// GetByID implements student.StudentService.
func (s *StudentServiceImpl) GetByID(ctx context.Context, id string) (student.Response, error) {
	found, err := s.StudentRepository.GetByID(ctx, id)
	if err != nil {
		return student.Response{}, err
	}
	return student.ToResponse(found), nil
}

// List implements student.StudentService.
func (s *StudentServiceImpl) List(ctx context.Context, filter student.Filter) ([]student.Response, int64, error) {
	students, total, err := s.StudentRepository.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}

	responses := make([]student.Response, len(students))
	for i, st := range students {
		responses[i] = student.ToResponse(st)
	}

	return responses, total, nil
}

// Update implements student.StudentService.
func (s *StudentServiceImpl) Update(ctx context.Context, req student.UpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if req.ScanCode != nil {
		exists, err := s.StudentRepository.ExistsByScanCode(ctx, *req.ScanCode)
		if err != nil {
			return fmt.Errorf("failed to check scan code: %w", err)
		}
		if exists {
			return student.ErrScanCodeExists
		}
	}

	return s.StudentRepository.Update(ctx, req)
}

// Delete implements student.StudentService.
func (s *StudentServiceImpl) Delete(ctx context.Context, id string) error {
	return s.StudentRepository.Delete(ctx, id)
}

// UploadResume implements student.StudentService.
func (s *StudentServiceImpl) UploadResume(ctx context.Context, id string, f io.Reader, filename string) (string, error) {
	if _, err := s.StudentRepository.GetByID(ctx, id); err != nil {
		return "", err
	}

	path, err := s.fileService.UploadResume(ctx, id, f, filename)
	if err != nil {
		return "", err
	}

	if err := s.StudentRepository.SetResumeURL(ctx, id, path); err != nil {
		return "", fmt.Errorf("failed to record resume url: %w", err)
	}

	return path, nil
}
