package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ojt-portal/ojt-backend-go/internal/domain/user"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/jwt"
)

// stubHandlers satisfies every handler interface with a 204 response so the
// tests can tell "request reached the handler" apart from a middleware
// rejection.
type stubHandlers struct{}

func (stubHandlers) ok(w http.ResponseWriter) { w.WriteHeader(http.StatusNoContent) }

func (s stubHandlers) Register(w http.ResponseWriter, _ *http.Request)            { s.ok(w) }
func (s stubHandlers) Login(w http.ResponseWriter, _ *http.Request)               { s.ok(w) }
func (s stubHandlers) LoginWithGoogle(w http.ResponseWriter, _ *http.Request)     { s.ok(w) }
func (s stubHandlers) OAuthCallbackGoogle(w http.ResponseWriter, _ *http.Request) { s.ok(w) }
func (s stubHandlers) Logout(w http.ResponseWriter, _ *http.Request)              { s.ok(w) }
func (s stubHandlers) RefreshToken(w http.ResponseWriter, _ *http.Request)        { s.ok(w) }
func (s stubHandlers) Submit(w http.ResponseWriter, _ *http.Request)              { s.ok(w) }
func (s stubHandlers) UpdateStatus(w http.ResponseWriter, _ *http.Request)        { s.ok(w) }
func (s stubHandlers) ScheduleInterview(w http.ResponseWriter, _ *http.Request)   { s.ok(w) }
func (s stubHandlers) Delete(w http.ResponseWriter, _ *http.Request)              { s.ok(w) }
func (s stubHandlers) GetByID(w http.ResponseWriter, _ *http.Request)             { s.ok(w) }
func (s stubHandlers) List(w http.ResponseWriter, _ *http.Request)                { s.ok(w) }
func (s stubHandlers) Create(w http.ResponseWriter, _ *http.Request)              { s.ok(w) }
func (s stubHandlers) Update(w http.ResponseWriter, _ *http.Request)              { s.ok(w) }
func (s stubHandlers) UploadAttachment(w http.ResponseWriter, _ *http.Request)    { s.ok(w) }
func (s stubHandlers) UploadResume(w http.ResponseWriter, _ *http.Request)        { s.ok(w) }
func (s stubHandlers) Scan(w http.ResponseWriter, _ *http.Request)                { s.ok(w) }
func (s stubHandlers) Validate(w http.ResponseWriter, _ *http.Request)            { s.ok(w) }
func (s stubHandlers) TodayStats(w http.ResponseWriter, _ *http.Request)          { s.ok(w) }
func (s stubHandlers) UnreadCount(w http.ResponseWriter, _ *http.Request)         { s.ok(w) }
func (s stubHandlers) MarkAsRead(w http.ResponseWriter, _ *http.Request)          { s.ok(w) }
func (s stubHandlers) MarkAllAsRead(w http.ResponseWriter, _ *http.Request)       { s.ok(w) }
func (s stubHandlers) GetSSEToken(w http.ResponseWriter, _ *http.Request)         { s.ok(w) }
func (s stubHandlers) Stream(w http.ResponseWriter, _ *http.Request)              { s.ok(w) }

func newTestRouter(t *testing.T) (http.Handler, jwt.Service) {
	t.Helper()
	jwtService := jwt.NewJWTService("test-secret", "1h", "168h")
	stub := stubHandlers{}
	router := NewRouter(jwtService, []string{"*"}, Handlers{
		Auth:         stub,
		Application:  stub,
		Job:          stub,
		Student:      stub,
		Attendance:   stub,
		Notification: stub,
	})
	return router, jwtService
}

func bearerToken(t *testing.T, jwtService jwt.Service, role user.Role) string {
	t.Helper()
	token, _, err := jwtService.GenerateAccessToken("user-1", "user@example.com", role)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestNewRouter_RegistersEveryResourceOnce(t *testing.T) {
	// Construction itself is the assertion: chi panics on a pattern
	// mounted twice
	require.NotPanics(t, func() {
		router, _ := newTestRouter(t)
		_ = router
	})
}

func TestRouter_PublicEndpointsNeedNoToken(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/jobs"},
		{http.MethodGet, "/api/v1/jobs/job-1"},
		{http.MethodPost, "/api/v1/applications"},
		{http.MethodPost, "/api/v1/attendance/scan"},
		{http.MethodPost, "/api/v1/attendance/validate"},
		{http.MethodGet, "/api/v1/notifications/stream"},
		{http.MethodPost, "/api/v1/auth/login"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

func TestRouter_ProtectedEndpointsRejectMissingToken(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/jobs"},
		{http.MethodPatch, "/api/v1/jobs/job-1"},
		{http.MethodGet, "/api/v1/applications"},
		{http.MethodPatch, "/api/v1/applications/app-1/status"},
		{http.MethodGet, "/api/v1/students"},
		{http.MethodGet, "/api/v1/attendance"},
		{http.MethodGet, "/api/v1/attendance/today-stats"},
		{http.MethodGet, "/api/v1/notifications"},
		{http.MethodGet, "/api/v1/notifications/sse-token"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_AdminEndpointsRejectStudentRole(t *testing.T) {
	router, jwtService := newTestRouter(t)
	studentAuth := bearerToken(t, jwtService, user.RoleStudent)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs", nil)
	req.Header.Set("Authorization", studentAuth)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Plain authed endpoints still work for a student
	req = httptest.NewRequest(http.MethodGet, "/api/v1/notifications", nil)
	req.Header.Set("Authorization", studentAuth)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRouter_AdminEndpointsAcceptAdminRole(t *testing.T) {
	router, jwtService := newTestRouter(t)
	adminAuth := bearerToken(t, jwtService, user.RoleAdmin)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/jobs"},
		{http.MethodGet, "/api/v1/applications"},
		{http.MethodGet, "/api/v1/students"},
		{http.MethodGet, "/api/v1/attendance/today-stats"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", adminAuth)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusNoContent, rec.Code)
		})
	}
}

// The public job listing must stay reachable even though admin job
// management lives under the same path prefix.
func TestRouter_PublicJobListingNotShadowedByAdminRoutes(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/jobs", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/jobs", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
