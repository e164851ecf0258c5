package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/ojt-portal/ojt-backend-go/internal/config"
	appHTTP "github.com/ojt-portal/ojt-backend-go/internal/handler/http"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/database"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/email"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/jwt"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/oauth"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/sse"
	"github.com/ojt-portal/ojt-backend-go/internal/pkg/storage"
	"github.com/ojt-portal/ojt-backend-go/internal/repository/postgresql"
	applicationService "github.com/ojt-portal/ojt-backend-go/internal/service/application"
	attendanceService "github.com/ojt-portal/ojt-backend-go/internal/service/attendance"
	serviceAuth "github.com/ojt-portal/ojt-backend-go/internal/service/auth"
	"github.com/ojt-portal/ojt-backend-go/internal/service/file"
	jobService "github.com/ojt-portal/ojt-backend-go/internal/service/job"
	notificationService "github.com/ojt-portal/ojt-backend-go/internal/service/notification"
	studentService "github.com/ojt-portal/ojt-backend-go/internal/service/student"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	JWTRepository := postgresql.NewJWTRepository(db)
	applicationRepo := postgresql.NewApplicationRepository(db)
	jobRepo := postgresql.NewJobRepository(db)
	studentRepo := postgresql.NewStudentRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	hub := sse.NewHub()
	notificationSvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{})
	defer notificationSvc.Stop()

	authService := serviceAuth.NewAuthService(db, userRepo, JWTService, JWTRepository)
	applicationSvc := applicationService.NewApplicationService(applicationRepo, jobRepo, studentRepo, emailService, notificationSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, studentRepo, notificationSvc)
	jobSvc := jobService.NewJobService(jobRepo, fileService)
	studentSvc := studentService.NewStudentService(studentRepo, fileService)

	router := appHTTP.NewRouter(JWTService, cfg.App.CORSOrigins, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(JWTService, authService, GoogleService, cfg.App.FrontendURL),
		Application:  appHTTP.NewApplicationHandler(applicationSvc, studentSvc, fileService),
		Job:          appHTTP.NewJobHandler(jobSvc),
		Student:      appHTTP.NewStudentHandler(studentSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc),
		Notification: appHTTP.NewNotificationHandler(notificationSvc, JWTService),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
