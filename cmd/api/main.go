package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/girnar-group/staffops-backend-go/internal/config"
	"github.com/girnar-group/staffops-backend-go/internal/domain/user"
	appHTTP "github.com/girnar-group/staffops-backend-go/internal/handler/http"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/database"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/jwt"
	"github.com/girnar-group/staffops-backend-go/internal/pkg/oauth"
	"github.com/girnar-group/staffops-backend-go/internal/repository/postgresql"
	advanceService "github.com/girnar-group/staffops-backend-go/internal/service/advance"
	attendanceService "github.com/girnar-group/staffops-backend-go/internal/service/attendance"
	authService "github.com/girnar-group/staffops-backend-go/internal/service/auth"
	creditService "github.com/girnar-group/staffops-backend-go/internal/service/credit"
	dispatchService "github.com/girnar-group/staffops-backend-go/internal/service/dispatch"
	reportService "github.com/girnar-group/staffops-backend-go/internal/service/report"
	salaryService "github.com/girnar-group/staffops-backend-go/internal/service/salary"
	salesService "github.com/girnar-group/staffops-backend-go/internal/service/sales"
	staffService "github.com/girnar-group/staffops-backend-go/internal/service/staff"
	"golang.org/x/crypto/bcrypt"
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

	staffRepo := postgresql.NewStaffRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	advanceRepo := postgresql.NewAdvanceRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	creditRepo := postgresql.NewCreditRepository(db)
	salesRepo := postgresql.NewSalesRepository(db)
	dispatchRepo := postgresql.NewDispatchRepository(db)
	userRepo := postgresql.NewUserRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	GoogleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	staffSvc := staffService.NewStaffService(staffRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, staffRepo)
	advanceSvc := advanceService.NewAdvanceService(advanceRepo, staffRepo)
	salarySvc := salaryService.NewSalaryService(db, salaryRepo, staffRepo, attendanceRepo, advanceRepo)
	creditSvc := creditService.NewCreditService(creditRepo)
	salesSvc := salesService.NewSalesService(salesRepo, creditRepo)
	dispatchSvc := dispatchService.NewDispatchService(dispatchRepo, staffRepo)
	reportSvc := reportService.NewReportService(salarySvc, creditSvc, salesSvc, cfg.Export.Dir)
	authSvc := authService.NewAuthService(userRepo, JWTService)

	if err := seedAdmin(context.Background(), cfg, userRepo); err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}

	router := appHTTP.NewRouter(appHTTP.RouterConfig{
		JWTService:         JWTService,
		GoogleLoginEnabled: cfg.GoogleLoginEnabled(),

		AuthHandler:       appHTTP.NewAuthHandler(JWTService, authSvc, GoogleService),
		StaffHandler:      appHTTP.NewStaffHandler(staffSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		AdvanceHandler:    appHTTP.NewAdvanceHandler(advanceSvc),
		SalaryHandler:     appHTTP.NewSalaryHandler(salarySvc),
		CreditHandler:     appHTTP.NewCreditHandler(creditSvc),
		SalesHandler:      appHTTP.NewSalesHandler(salesSvc),
		DispatchHandler:   appHTTP.NewDispatchHandler(dispatchSvc),
		ReportHandler:     appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin creates the bootstrap admin account on an empty users table so a
// fresh deployment can log in at all.
func seedAdmin(ctx context.Context, cfg *config.Config, userRepo user.UserRepository) error {
	count, err := userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.Seed.AdminEmail == "" || cfg.Seed.AdminPassword == "" {
		fmt.Println("Users table is empty and no seed admin configured; skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = userRepo.Create(ctx, user.User{
		Email:        cfg.Seed.AdminEmail,
		Name:         cfg.Seed.AdminName,
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		return err
	}

	fmt.Println("Seeded admin user", cfg.Seed.AdminEmail)
	return nil
}
