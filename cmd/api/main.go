package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rangeops/backoffice-go/internal/config"
	"github.com/rangeops/backoffice-go/internal/domain/payroll"
	appHTTP "github.com/rangeops/backoffice-go/internal/handler/http"
	"github.com/rangeops/backoffice-go/internal/pkg/compliance"
	"github.com/rangeops/backoffice-go/internal/pkg/cron"
	"github.com/rangeops/backoffice-go/internal/pkg/database"
	"github.com/rangeops/backoffice-go/internal/pkg/email"
	"github.com/rangeops/backoffice-go/internal/pkg/jwt"
	"github.com/rangeops/backoffice-go/internal/pkg/oauth"
	"github.com/rangeops/backoffice-go/internal/pkg/sse"
	"github.com/rangeops/backoffice-go/internal/repository/postgresql"
	authService "github.com/rangeops/backoffice-go/internal/service/auth"
	bulletinService "github.com/rangeops/backoffice-go/internal/service/bulletin"
	certificationService "github.com/rangeops/backoffice-go/internal/service/certification"
	employeeService "github.com/rangeops/backoffice-go/internal/service/employee"
	inventoryService "github.com/rangeops/backoffice-go/internal/service/inventory"
	payrollService "github.com/rangeops/backoffice-go/internal/service/payroll"
	reportService "github.com/rangeops/backoffice-go/internal/service/report"
	scheduleService "github.com/rangeops/backoffice-go/internal/service/schedule"
	timeclockService "github.com/rangeops/backoffice-go/internal/service/timeclock"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	eventRepo := postgresql.NewEventRepository(db)
	balanceRepo := postgresql.NewBalanceRepository(db)
	reconRepo := postgresql.NewReconciliationRepository(db)
	salesRepo := postgresql.NewSalesRepository(db)
	postRepo := postgresql.NewPostRepository(db)
	certRepo := postgresql.NewCertificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	emailService, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}
	complianceClient := compliance.NewClient(cfg.Compliance)
	hub := sse.NewHub()

	periods, err := payroll.NewPeriodGenerator(cfg.Payroll.AnchorDate, cfg.Payroll.PeriodDays)
	if err != nil {
		log.Fatal("Invalid pay period configuration:", err)
	}

	authSvc := authService.NewAuthService(userRepo, employeeRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(shiftRepo, employeeRepo, emailService, hub, cfg.SMTP)
	timeClockSvc := timeclockService.NewTimeClockService(eventRepo, employeeRepo)
	payrollSvc := payrollService.NewPayrollService(db, periods, balanceRepo, reconRepo, eventRepo, shiftRepo, employeeRepo, cfg.Payroll)
	reportSvc := reportService.NewReportService(salesRepo)
	bulletinSvc := bulletinService.NewBulletinService(postRepo, hub)
	certificationSvc := certificationService.NewCertificationService(certRepo, employeeRepo)
	inventorySvc := inventoryService.NewInventoryService(complianceClient)

	scheduler := cron.NewScheduler()
	alertJobs := cron.NewAlertJobs(eventRepo, certRepo, emailService, cfg.SMTP, cfg.Payroll)
	alertJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:          appHTTP.NewAuthHandler(jwtService, authSvc, googleService),
		Employee:      appHTTP.NewEmployeeHandler(employeeSvc),
		Schedule:      appHTTP.NewScheduleHandler(scheduleSvc),
		TimeClock:     appHTTP.NewTimeClockHandler(timeClockSvc),
		Payroll:       appHTTP.NewPayrollHandler(payrollSvc),
		Report:        appHTTP.NewReportHandler(reportSvc),
		Bulletin:      appHTTP.NewBulletinHandler(bulletinSvc),
		Certification: appHTTP.NewCertificationHandler(certificationSvc),
		Inventory:     appHTTP.NewInventoryHandler(inventorySvc),
		Events:        appHTTP.NewEventsHandler(jwtService, hub),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		fmt.Println("Forced shutdown:", err)
	}
}
