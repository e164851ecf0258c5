package attendance

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/attendance"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/notification"
	"github.com/ojt-portal/ojt-backend-go/internal/domain/student"
)

// ============= fakes =============

type fakeAttendanceRepo struct {
	records []attendance.Record
	nextID  int
}

func (f *fakeAttendanceRepo) Create(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("rec-%d", f.nextID)
	rec.CreatedAt = time.Now()
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) GetLatestByStudent(_ context.Context, studentID string) (*attendance.Record, error) {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].StudentID == studentID {
			rec := f.records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) ListSince(_ context.Context, since time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if !rec.Timestamp.Before(since) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, _ attendance.Filter) ([]attendance.Record, int64, error) {
	return f.records, int64(len(f.records)), nil
}

type fakeStudentRepo struct {
	students []student.Student
}

func (f *fakeStudentRepo) Create(_ context.Context, s student.Student) (student.Student, error) {
	f.students = append(f.students, s)
	return s, nil
}

func (f *fakeStudentRepo) GetByID(_ context.Context, id string) (student.Student, error) {
	for _, s := range f.students {
		if s.ID == id {
			return s, nil
		}
	}
	return student.Student{}, student.ErrStudentNotFound
}

func (f *fakeStudentRepo) FindByScanCode(_ context.Context, code string) ([]student.Student, error) {
	var out []student.Student
	for _, s := range f.students {
		if s.ScanCode == code || s.OJTNumber == code || s.ID == code {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeStudentRepo) List(_ context.Context, _ student.Filter) ([]student.Student, int64, error) {
	return nil, 0, nil
}

func (f *fakeStudentRepo) Update(_ context.Context, _ student.UpdateRequest) error { return nil }
func (f *fakeStudentRepo) Delete(_ context.Context, _ string) error                { return nil }
func (f *fakeStudentRepo) SetResumeURL(_ context.Context, _ string, _ string) error {
	return nil
}
func (f *fakeStudentRepo) ExistsByOJTNumber(_ context.Context, _ string) (bool, error) {
	return false, nil
}
func (f *fakeStudentRepo) ExistsByScanCode(_ context.Context, _ string) (bool, error) {
	return false, nil
}

type fakeQueuer struct {
	queued []notification.CreateNotificationRequest
}

func (f *fakeQueuer) QueueNotification(_ context.Context, req notification.CreateNotificationRequest) error {
	f.queued = append(f.queued, req)
	return nil
}

func newTestService() (attendance.AttendanceService, *fakeAttendanceRepo, *fakeStudentRepo, *fakeQueuer) {
	attRepo := &fakeAttendanceRepo{}
	stuRepo := &fakeStudentRepo{}
	queuer := &fakeQueuer{}
	return NewAttendanceService(attRepo, stuRepo, queuer), attRepo, stuRepo, queuer
}

func scanRequest(studentID string) attendance.RecordRequest {
	return attendance.RecordRequest{
		StudentID:   studentID,
		StudentName: "Juan Dela Cruz",
		OJTNumber:   "OJT-2025-0007",
		Project:     "Mobile App",
	}
}

// ============= Record =============

func TestRecord(t *testing.T) {
	t.Run("first scan is a time in", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		resp, err := svc.Record(context.Background(), scanRequest("stu-1"))

		require.NoError(t, err)
		assert.Equal(t, attendance.ActionTimeIn, resp.Action)
		assert.Equal(t, attendance.StatusIn, resp.Status)
	})

	t.Run("scans alternate strictly", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		ctx := context.Background()

		want := []attendance.Action{
			attendance.ActionTimeIn,
			attendance.ActionTimeOut,
			attendance.ActionTimeIn,
			attendance.ActionTimeOut,
		}
		for i, expected := range want {
			resp, err := svc.Record(ctx, scanRequest("stu-1"))
			require.NoError(t, err, "scan %d", i)
			assert.Equal(t, expected, resp.Action, "scan %d", i)
		}
	})

	t.Run("students toggle independently", func(t *testing.T) {
		svc, _, _, _ := newTestService()
		ctx := context.Background()

		first, err := svc.Record(ctx, scanRequest("stu-1"))
		require.NoError(t, err)
		second, err := svc.Record(ctx, scanRequest("stu-2"))
		require.NoError(t, err)

		assert.Equal(t, attendance.ActionTimeIn, first.Action)
		assert.Equal(t, attendance.ActionTimeIn, second.Action)
	})

	t.Run("records are appended not rewritten", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		ctx := context.Background()

		_, err := svc.Record(ctx, scanRequest("stu-1"))
		require.NoError(t, err)
		_, err = svc.Record(ctx, scanRequest("stu-1"))
		require.NoError(t, err)

		require.Len(t, repo.records, 2)
		assert.Equal(t, attendance.StatusIn, repo.records[0].Status)
		assert.Equal(t, attendance.StatusOut, repo.records[1].Status)
	})

	t.Run("linked student gets a notification", func(t *testing.T) {
		svc, _, stuRepo, queuer := newTestService()
		userID := "user-7"
		stuRepo.students = append(stuRepo.students, student.Student{
			ID:     "stu-1",
			UserID: &userID,
		})

		_, err := svc.Record(context.Background(), scanRequest("stu-1"))

		require.NoError(t, err)
		require.Len(t, queuer.queued, 1)
		assert.Equal(t, notification.TypeAttendanceCheckIn, queuer.queued[0].Type)
		assert.Equal(t, "user-7", queuer.queued[0].RecipientID)
	})

	t.Run("missing student id rejected", func(t *testing.T) {
		svc, repo, _, _ := newTestService()

		_, err := svc.Record(context.Background(), attendance.RecordRequest{
			StudentName: "Juan Dela Cruz",
		})

		require.Error(t, err)
		assert.Empty(t, repo.records)
	})
}

// ============= ValidateIdentifier =============

func TestValidateIdentifier(t *testing.T) {
	svcWith := func(students ...student.Student) attendance.AttendanceService {
		svc, _, stuRepo, _ := newTestService()
		stuRepo.students = students
		return svc
	}

	t.Run("exactly one match is valid", func(t *testing.T) {
		svc := svcWith(student.Student{
			ID:        "stu-1",
			Name:      "Juan Dela Cruz",
			OJTNumber: "OJT-2025-0007",
			ScanCode:  "JDC0007",
			Project:   "Mobile App",
		})

		resp, err := svc.ValidateIdentifier(context.Background(), "JDC0007")

		require.NoError(t, err)
		assert.True(t, resp.IsValid)
		assert.Equal(t, "stu-1", resp.StudentID)
		assert.Equal(t, "Juan Dela Cruz", resp.StudentName)
	})

	t.Run("unknown code is invalid", func(t *testing.T) {
		svc := svcWith()

		resp, err := svc.ValidateIdentifier(context.Background(), "NOPE")

		require.NoError(t, err)
		assert.False(t, resp.IsValid)
		assert.Empty(t, resp.StudentID)
	})

	t.Run("ambiguous code is invalid", func(t *testing.T) {
		svc := svcWith(
			student.Student{ID: "stu-1", ScanCode: "DUP"},
			student.Student{ID: "stu-2", ScanCode: "DUP"},
		)

		resp, err := svc.ValidateIdentifier(context.Background(), "DUP")

		require.NoError(t, err)
		assert.False(t, resp.IsValid)
	})

	t.Run("no records written", func(t *testing.T) {
		svc, repo, stuRepo, _ := newTestService()
		stuRepo.students = []student.Student{{ID: "stu-1", ScanCode: "JDC0007"}}

		_, err := svc.ValidateIdentifier(context.Background(), "JDC0007")

		require.NoError(t, err)
		assert.Empty(t, repo.records)
	})
}

// ============= TodayStats =============

func TestTodayStats(t *testing.T) {
	now := time.Now().UTC()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	yesterday := startOfDay.Add(-time.Hour)

	seed := func(repo *fakeAttendanceRepo, studentID string, ts time.Time, action attendance.Action, status attendance.Status) {
		repo.records = append(repo.records, attendance.Record{
			ID:        fmt.Sprintf("rec-%d", len(repo.records)+1),
			StudentID: studentID,
			Timestamp: ts,
			Action:    action,
			Status:    status,
		})
	}

	t.Run("counts today's scans", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		seed(repo, "stu-1", startOfDay.Add(8*time.Hour), attendance.ActionTimeIn, attendance.StatusIn)
		seed(repo, "stu-1", startOfDay.Add(12*time.Hour), attendance.ActionTimeOut, attendance.StatusOut)
		seed(repo, "stu-2", startOfDay.Add(9*time.Hour), attendance.ActionTimeIn, attendance.StatusIn)

		stats, err := svc.TodayStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 3, stats.TotalScans)
		assert.Equal(t, 2, stats.CheckedIn)
		assert.Equal(t, 1, stats.CheckedOut)
		// stu-1 already checked out but was on site today, so both count
		assert.Equal(t, 2, stats.ActiveStudents)
	})

	t.Run("checked-out student still counts as active", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		seed(repo, "stu-1", startOfDay.Add(8*time.Hour), attendance.ActionTimeIn, attendance.StatusIn)
		seed(repo, "stu-1", startOfDay.Add(12*time.Hour), attendance.ActionTimeOut, attendance.StatusOut)

		stats, err := svc.TodayStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, stats.ActiveStudents)
	})

	t.Run("yesterday's open check-in is not active today", func(t *testing.T) {
		svc, repo, _, _ := newTestService()
		seed(repo, "stu-1", yesterday, attendance.ActionTimeIn, attendance.StatusIn)

		stats, err := svc.TodayStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 0, stats.TotalScans)
		assert.Equal(t, 0, stats.ActiveStudents)
	})

	t.Run("empty day", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		stats, err := svc.TodayStats(context.Background())

		require.NoError(t, err)
		assert.Equal(t, attendance.TodayStats{}, stats)
	})
}
