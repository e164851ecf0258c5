package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/job"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/database"
)

type jobRepository struct {
	db *database.DB
}

func NewJobRepository(db *database.DB) job.JobRepository {
	return &jobRepository{db: db}
}

const jobColumns = `
	id, title, project, description, location,
	available_slots, filled_slots, is_active, attachment_url, created_by,
	created_at, updated_at
`

func scanJob(row pgx.Row) (job.JobPosting, error) {
	var j job.JobPosting
	err := row.Scan(
		&j.ID, &j.Title, &j.Project, &j.Description, &j.Location,
		&j.AvailableSlots, &j.FilledSlots, &j.IsActive, &j.AttachmentURL, &j.CreatedBy,
		&j.CreatedAt, &j.UpdatedAt,
	)
	return j, err
}

// Create implements job.JobRepository.
func (r *jobRepository) Create(ctx context.Context, posting job.JobPosting) (job.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO job_postings (title, project, description, location, available_slots, filled_slots, is_active, created_by)
		VALUES ($1, $2, $3, $4, $5, 0, $6, $7)
		RETURNING id, filled_slots, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		posting.Title,
		posting.Project,
		posting.Description,
		posting.Location,
		posting.AvailableSlots,
		posting.IsActive,
		posting.CreatedBy,
	).Scan(&posting.ID, &posting.FilledSlots, &posting.CreatedAt, &posting.UpdatedAt)

	if err != nil {
		return job.JobPosting{}, fmt.Errorf("failed to create job posting: %w", err)
	}

	return posting, nil
}

// GetByID implements job.JobRepository.
func (r *jobRepository) GetByID(ctx context.Context, id string) (job.JobPosting, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE id = $1`

	posting, err := scanJob(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return job.JobPosting{}, job.ErrJobNotFound
		}
		return job.JobPosting{}, fmt.Errorf("failed to get job posting: %w", err)
	}

	return posting, nil
}

// List implements job.JobRepository.
func (r *jobRepository) List(ctx context.Context, filter job.Filter) ([]job.JobPosting, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Project != nil {
		conditions = append(conditions, fmt.Sprintf("project = $%d", argPos))
		args = append(args, *filter.Project)
		argPos++
	}
	if filter.ActiveOnly {
		conditions = append(conditions, "is_active = TRUE")
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM job_postings WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count job postings: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := `SELECT ` + jobColumns + ` FROM job_postings WHERE ` + where +
		` ORDER BY created_at DESC LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list job postings: %w", err)
	}
	defer rows.Close()

	var postings []job.JobPosting
	for rows.Next() {
		posting, err := scanJob(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan job posting: %w", err)
		}
		postings = append(postings, posting)
	}

	return postings, total, rows.Err()
}

// Update implements job.JobRepository.
func (r *jobRepository) Update(ctx context.Context, req job.UpdateRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET title = COALESCE($2, title),
			project = COALESCE($3, project),
			description = COALESCE($4, description),
			location = COALESCE($5, location),
			available_slots = COALESCE($6, available_slots),
			is_active = COALESCE($7, is_active),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Title, req.Project, req.Description, req.Location, req.AvailableSlots, req.IsActive)
	if err != nil {
		return fmt.Errorf("failed to update job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// Delete implements job.JobRepository.
func (r *jobRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM job_postings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job posting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// SetAttachmentURL implements job.JobRepository.
func (r *jobRepository) SetAttachmentURL(ctx context.Context, id string, url string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE job_postings SET attachment_url = $2, updated_at = NOW() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("failed to set attachment url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}

// IncrementFilledSlots implements job.JobRepository.
// The write is conditional so that concurrent hires cannot push filled_slots
// past available_slots: the database applies the check and the increment in
// one statement.
func (r *jobRepository) IncrementFilledSlots(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET filled_slots = filled_slots + 1, updated_at = NOW()
		WHERE id = $1 AND filled_slots < available_slots
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment filled slots: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Either the job is gone or it is full; disambiguate for the caller.
		var exists bool
		if err := q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM job_postings WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check job posting: %w", err)
		}
		if !exists {
			return job.ErrJobNotFound
		}
		return job.ErrNoAvailableSlots
	}

	return nil
}

// DecrementFilledSlots implements job.JobRepository.
func (r *jobRepository) DecrementFilledSlots(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE job_postings
		SET filled_slots = GREATEST(filled_slots - 1, 0), updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to decrement filled slots: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return job.ErrJobNotFound
	}

	return nil
}
