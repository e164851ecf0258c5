package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/application"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/database"
)

type applicationRepository struct {
	db *database.DB
}

func NewApplicationRepository(db *database.DB) application.ApplicationRepository {
	return &applicationRepository{db: db}
}

const applicationColumns = `
	a.id, a.job_id, a.student_id, a.status, a.resume_url, a.applied_at,
	a.reviewed_at, a.reviewed_by, a.review_notes, a.rejection_reason,
	a.interview_date, a.interview_time, a.interview_location, a.interview_type, a.interview_notes,
	a.created_at, a.updated_at,
	s.name AS student_name, s.email AS student_email,
	j.title AS job_title, j.project AS job_project
`

func scanApplication(row pgx.Row) (application.Application, error) {
	var app application.Application
	err := row.Scan(
		&app.ID, &app.JobID, &app.StudentID, &app.Status, &app.ResumeURL, &app.AppliedAt,
		&app.ReviewedAt, &app.ReviewedBy, &app.ReviewNotes, &app.RejectionReason,
		&app.InterviewDate, &app.InterviewTime, &app.InterviewLocation, &app.InterviewType, &app.InterviewNotes,
		&app.CreatedAt, &app.UpdatedAt,
		&app.StudentName, &app.StudentEmail,
		&app.JobTitle, &app.JobProject,
	)
	return app, err
}

// Create implements application.ApplicationRepository.
func (r *applicationRepository) Create(ctx context.Context, app application.Application) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO applications (job_id, student_id, status, resume_url, applied_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		app.JobID,
		app.StudentID,
		app.Status,
		app.ResumeURL,
		app.AppliedAt,
	).Scan(&app.ID, &app.CreatedAt, &app.UpdatedAt)

	if err != nil {
		return application.Application{}, fmt.Errorf("failed to create application: %w", err)
	}

	return app, nil
}

// GetByID implements application.ApplicationRepository.
func (r *applicationRepository) GetByID(ctx context.Context, id string) (application.Application, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN job_postings j ON j.id = a.job_id
		WHERE a.id = $1
	`

	app, err := scanApplication(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return application.Application{}, application.ErrApplicationNotFound
		}
		return application.Application{}, fmt.Errorf("failed to get application: %w", err)
	}

	return app, nil
}

// List implements application.ApplicationRepository.
func (r *applicationRepository) List(ctx context.Context, filter application.Filter) ([]application.Application, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.JobID != nil {
		conditions = append(conditions, fmt.Sprintf("a.job_id = $%d", argPos))
		args = append(args, *filter.JobID)
		argPos++
	}
	if filter.StudentID != nil {
		conditions = append(conditions, fmt.Sprintf("a.student_id = $%d", argPos))
		args = append(args, *filter.StudentID)
		argPos++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argPos))
		args = append(args, *filter.Status)
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	countQuery := `SELECT COUNT(*) FROM applications a WHERE ` + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count applications: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := `
		SELECT ` + applicationColumns + `
		FROM applications a
		JOIN students s ON s.id = a.student_id
		JOIN job_postings j ON j.id = a.job_id
		WHERE ` + where + `
		ORDER BY a.applied_at DESC
		LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list applications: %w", err)
	}
	defer rows.Close()

	var apps []application.Application
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan application: %w", err)
		}
		apps = append(apps, app)
	}

	return apps, total, rows.Err()
}

// UpdateStatus implements application.ApplicationRepository.
func (r *applicationRepository) UpdateStatus(ctx context.Context, update application.StatusUpdate) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE applications
		SET status = $2,
			reviewed_at = $3,
			reviewed_by = $4,
			review_notes = COALESCE($5, review_notes),
			rejection_reason = COALESCE($6, rejection_reason),
			interview_date = COALESCE($7, interview_date),
			interview_time = COALESCE($8, interview_time),
			interview_location = COALESCE($9, interview_location),
			interview_type = COALESCE($10, interview_type),
			interview_notes = COALESCE($11, interview_notes),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		update.ID,
		update.Status,
		update.ReviewedAt,
		update.ReviewedBy,
		update.ReviewNotes,
		update.RejectionReason,
		update.InterviewDate,
		update.InterviewTime,
		update.InterviewLocation,
		update.InterviewType,
		update.InterviewNotes,
	)
	if err != nil {
		return fmt.Errorf("failed to update application status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrApplicationNotFound
	}

	return nil
}

// Delete implements application.ApplicationRepository.
func (r *applicationRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM applications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrApplicationNotFound
	}

	return nil
}

// ExistsByEmailAndProject implements application.ApplicationRepository.
func (r *applicationRepository) ExistsByEmailAndProject(ctx context.Context, email, project string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM applications a
			JOIN students s ON s.id = a.student_id
			JOIN job_postings j ON j.id = a.job_id
			WHERE s.email = $1 AND j.project = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, email, project).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check duplicate application: %w", err)
	}

	return exists, nil
}
