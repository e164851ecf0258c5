package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/database"
)

type studentRepository struct {
	db *database.DB
}

func NewStudentRepository(db *database.DB) student.StudentRepository {
	return &studentRepository{db: db}
}

const studentColumns = `
	id, user_id, name, email, ojt_number, scan_code, project, resume_url, created_at, updated_at
`

func scanStudent(row pgx.Row) (student.Student, error) {
	var s student.Student
	err := row.Scan(
		&s.ID, &s.UserID, &s.Name, &s.Email, &s.OJTNumber,
		&s.ScanCode, &s.Project, &s.ResumeURL, &s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Create implements student.StudentRepository.
func (r *studentRepository) Create(ctx context.Context, s student.Student) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO students (user_id, name, email, ojt_number, scan_code, project)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		s.UserID,
		s.Name,
		s.Email,
		s.OJTNumber,
		s.ScanCode,
		s.Project,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)

	if err != nil {
		return student.Student{}, fmt.Errorf("failed to create student: %w", err)
	}

	return s, nil
}

// GetByID implements student.StudentRepository.
func (r *studentRepository) GetByID(ctx context.Context, id string) (student.Student, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	s, err := scanStudent(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return student.Student{}, student.ErrStudentNotFound
		}
		return student.Student{}, fmt.Errorf("failed to get student: %w", err)
	}

	return s, nil
}

// FindByScanCode implements student.StudentRepository.
func (r *studentRepository) FindByScanCode(ctx context.Context, code string) ([]student.Student, error) {
	q := GetQuerier(ctx, r.db)

	// A scan code may be the dedicated scan_code, the OJT number, or the
	// student id itself. Badge printers have used all three over time.
	query := `
		SELECT ` + studentColumns + `
		FROM students
		WHERE scan_code = $1 OR ojt_number = $1 OR id::text = $1
	`

	rows, err := q.Query(ctx, query, code)
	if err != nil {
		return nil, fmt.Errorf("failed to find students by scan code: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, rows.Err()
}

// List implements student.StudentRepository.
func (r *studentRepository) List(ctx context.Context, filter student.Filter) ([]student.Student, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"1=1"}
	args := []interface{}{}
	argPos := 1

	if filter.Project != nil {
		conditions = append(conditions, fmt.Sprintf("project = $%d", argPos))
		args = append(args, *filter.Project)
		argPos++
	}
	if filter.Search != nil {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR ojt_number ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	where := strings.Join(conditions, " AND ")

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM students WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count students: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := `SELECT ` + studentColumns + ` FROM students WHERE ` + where +
		` ORDER BY name ASC LIMIT $` + fmt.Sprint(argPos) + ` OFFSET $` + fmt.Sprint(argPos+1)
	args = append(args, limit, (page-1)*limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list students: %w", err)
	}
	defer rows.Close()

	var students []student.Student
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan student: %w", err)
		}
		students = append(students, s)
	}

	return students, total, rows.Err()
}

// Update implements student.StudentRepository.
func (r *studentRepository) Update(ctx context.Context, req student.UpdateRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE students
		SET name = COALESCE($2, name),
			email = COALESCE($3, email),
			scan_code = COALESCE($4, scan_code),
			project = COALESCE($5, project),
			updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, req.ID, req.Name, req.Email, req.ScanCode, req.Project)
	if err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// Delete implements student.StudentRepository.
func (r *studentRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// SetResumeURL implements student.StudentRepository.
func (r *studentRepository) SetResumeURL(ctx context.Context, id string, url string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE students SET resume_url = $2, updated_at = NOW() WHERE id = $1`, id, url)
	if err != nil {
		return fmt.Errorf("failed to set resume url: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return student.ErrStudentNotFound
	}

	return nil
}

// ExistsByOJTNumber implements student.StudentRepository.
func (r *studentRepository) ExistsByOJTNumber(ctx context.Context, ojtNumber string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE ojt_number = $1)`, ojtNumber).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check ojt number: %w", err)
	}

	return exists, nil
}

// ExistsByScanCode implements student.StudentRepository.
func (r *studentRepository) ExistsByScanCode(ctx context.Context, scanCode string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM students WHERE scan_code = $1)`, scanCode).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check scan code: %w", err)
	}

	return exists, nil
}
