package main

import (
	"context"
	"fmt"
	"time"

	"go-ehs/internal/common/models"
	"go-ehs/internal/config"
	"go-ehs/internal/database"
	"go-ehs/internal/features/inspection"
	"go-ehs/internal/features/report"
	"go-ehs/internal/features/user"
	"go-ehs/internal/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// demoMonths is how many months of demo reports get created, counting
// backwards from the current month.
const demoMonths = 6

func seedAdmin(ctx context.Context, userRepo user.UserRepository, logger *zap.Logger) (primitive.ObjectID, error) {
	email := "admin@example.com"

	existing, err := userRepo.FindByEmail(ctx, email)
	if err == nil {
		logger.Info("Admin user exists, skipping", zap.String("email", email))
		return existing.ID, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return primitive.NilObjectID, err
	}

	admin := models.User{
		Name:       "EHS Admin",
		Email:      email,
		Password:   string(hashed),
		Role:       models.RoleAdmin,
		Department: "HSE",
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	if err := userRepo.Create(ctx, &admin); err != nil {
		return primitive.NilObjectID, err
	}
	logger.Info("Admin user created", zap.String("email", email))
	return admin.ID, nil
}

func demoReport(createdBy primitive.ObjectID, date time.Time, n int) *report.Report {
	trainingCompleted := 80.0 + float64(n%4)*5

	r := &report.Report{
		CompanyName:  "Acme Manufacturing",
		ReportPeriod: date.Format("January 2006"),
		ReportType:   report.ReportMonthly,
		ReportDate:   date,
		CreatedBy:    createdBy,
		Metrics: report.Metrics{
			Lagging: report.LaggingMetrics{
				IncidentCount:         n % 3,
				NearMissCount:         4 + n%5,
				FirstAidCount:         n % 2,
				MedicalTreatmentCount: n % 2,
				LostTimeIncidents:     0,
			},
			Leading: report.LeadingMetrics{
				InspectionsCompleted: 6 + n%3,
				InspectionsPlanned:   8,
				TrainingCompleted:    &trainingCompleted,
				SafetyObservations:   20 + n*2,
				SafetyMeetings:       4,
				HazardsIdentified:    10 + n,
				HazardsClosed:        8 + n,
			},
		},
		KPIs: report.NewDefaultKPIs(date.Year()),
		Compliance: report.Compliance{
			Status:     report.FullyCompliant,
			OhsmsScore: 85 + float64(n%10),
		},
		CriticalRisks: report.DefaultCriticalRisks,
		RiskAssessment: []report.RiskAssessment{
			{Risk: "Forklift traffic in warehouse", Probability: 3, Severity: 4},
			{Risk: "Manual handling in packing", Probability: 3, Severity: 2},
			{Risk: "Chemical storage ventilation", Probability: 2, Severity: 4},
		},
	}
	r.ApplyRiskRatings()
	return r
}

func demoInspection(inspector primitive.ObjectID, date time.Time, n int) *inspection.Inspection {
	findings := []inspection.Finding{
		{
			Category:    inspection.CategoryHousekeeping,
			Description: "Pallets blocking emergency exit route",
			Severity:    inspection.SeverityHigh,
			Status:      inspection.FindingOpen,
		},
		{
			Category:    inspection.CategoryPPE,
			Description: "Two operators without hearing protection",
			Severity:    inspection.SeverityMedium,
			Status:      inspection.FindingClosed,
		},
	}

	types := []inspection.InspectionType{
		inspection.TypeSafetyWalk,
		inspection.TypeWorkplaceInspection,
		inspection.TypeEquipmentInspection,
	}

	return &inspection.Inspection{
		InspectionDate: date,
		InspectionType: types[n%len(types)],
		Location:       fmt.Sprintf("Production Hall %c", 'A'+rune(n%3)),
		Inspector:      inspector,
		Findings:       findings,
		Status:         inspection.StatusSubmitted,
	}
}

// Seed runs the database seeding
func Seed(
	lc fx.Lifecycle,
	cfg *config.Config,
	userRepo user.UserRepository,
	reportRepo report.ReportRepository,
	inspectionRepo inspection.InspectionRepository,
	logger *zap.Logger,
	shutdowner fx.Shutdowner,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer func() {
					if err := shutdowner.Shutdown(); err != nil {
						logger.Error("Failed to shutdown", zap.Error(err))
					}
				}()

				if cfg.Environment == "production" {
					logger.Error("Refusing to seed a production database")
					return
				}

				logger.Info("Starting database seeding...")

				adminID, err := seedAdmin(ctx, userRepo, logger)
				if err != nil {
					logger.Error("Failed to seed admin user", zap.Error(err))
					return
				}

				// Skip demo data when reports already exist
				if _, total, err := reportRepo.List(ctx, 1, 1); err == nil && total > 0 {
					logger.Info("Reports exist, skipping demo data", zap.Int64("count", total))
					return
				}

				now := time.Now()
				for n := 0; n < demoMonths; n++ {
					date := time.Date(now.Year(), now.Month(), 15, 0, 0, 0, 0, time.UTC).AddDate(0, -n, 0)

					if err := reportRepo.Create(ctx, demoReport(adminID, date, n)); err != nil {
						logger.Error("Failed to seed report", zap.Error(err))
						return
					}
					if err := inspectionRepo.Create(ctx, demoInspection(adminID, date.AddDate(0, 0, 3), n)); err != nil {
						logger.Error("Failed to seed inspection", zap.Error(err))
						return
					}
				}

				logger.Info("Database seeding completed",
					zap.Int("reports", demoMonths),
					zap.Int("inspections", demoMonths),
				)
			}()
			return nil
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			database.NewDatabase,
			user.NewUserRepository,
			report.NewReportRepository,
			inspection.NewInspectionRepository,
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(Seed),
	)

	app.Run()
}
