package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dental-clinic/internal/config"
	"github.com/BruksfildServices01/dental-clinic/internal/domain/analytics"
	"github.com/BruksfildServices01/dental-clinic/internal/domain/patient"
	"github.com/BruksfildServices01/dental-clinic/internal/domain/visit"
	"github.com/BruksfildServices01/dental-clinic/internal/handlers"
	infraRepo "github.com/BruksfildServices01/dental-clinic/internal/infra/repository"
	"github.com/BruksfildServices01/dental-clinic/internal/infra/storage"
	"github.com/BruksfildServices01/dental-clinic/internal/metrics"
	"github.com/BruksfildServices01/dental-clinic/internal/middleware"
	ucAnalytics "github.com/BruksfildServices01/dental-clinic/internal/usecase/analytics"
	ucAppointment "github.com/BruksfildServices01/dental-clinic/internal/usecase/appointment"
	ucAudit "github.com/BruksfildServices01/dental-clinic/internal/usecase/audit"
	ucPatient "github.com/BruksfildServices01/dental-clinic/internal/usecase/patient"
	ucVisit "github.com/BruksfildServices01/dental-clinic/internal/usecase/visit"
)

// Deps are the singletons built by the serve command. Photos and
// Payments stay nil when their integration is not configured.
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Logger
	Cache  analytics.Cache

	Photos   patient.PhotoStore
	Payments visit.PaymentGateway
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestLogger(d.Log),
		gin.Recovery(),
		middleware.Metrics(),
		middleware.CORSMiddleware(cfg.CORSOrigins),
	)

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	patientRepo := infraRepo.NewPatientGormRepository(d.DB)
	visitRepo := infraRepo.NewVisitGormRepository(d.DB)
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	workingHoursRepo := infraRepo.NewWorkingHoursGormRepository(d.DB)
	analyticsRepo := infraRepo.NewAnalyticsGormRepository(d.DB)
	auditRepo := infraRepo.NewAuditGormRepository(d.DB)

	encoder := storage.WebPEncoder{
		MaxDimension: cfg.PhotoMaxDimension,
		MaxPixels:    cfg.PhotoMaxPixels,
	}

	settings := ucAppointment.Settings{
		SlotMinutes:       cfg.SlotMinutes,
		MinAdvanceMinutes: cfg.MinAdvanceMinutes,
	}

	// ======================================================
	// 🧠 USE CASES + 🧩 HANDLERS
	// ======================================================
	patientHandler := handlers.NewPatientHandler(
		ucPatient.NewCreatePatient(patientRepo, d.Cache),
		ucPatient.NewGetPatient(patientRepo),
		ucPatient.NewUpdatePatient(patientRepo, d.Cache),
		ucPatient.NewDeletePatient(patientRepo, d.Cache),
		ucPatient.NewListPatients(patientRepo),
		ucPatient.NewUploadPatientPhoto(patientRepo, d.Photos, encoder, cfg.PhotoMaxBytes),
		ucPatient.NewGetMedicalHistory(patientRepo),
		ucPatient.NewUpsertMedicalHistory(patientRepo),
		ucVisit.NewListPatientVisits(visitRepo),
		cfg.PhotoMaxBytes,
	)

	visitHandler := handlers.NewVisitHandler(
		ucVisit.NewCreateVisit(visitRepo, d.Cache),
		ucVisit.NewGetVisit(visitRepo),
		ucVisit.NewUpdateVisit(visitRepo, d.Cache),
		ucVisit.NewDeleteVisit(visitRepo, d.Cache),
		ucVisit.NewListVisits(visitRepo),
		ucVisit.NewCreatePaymentLink(visitRepo, d.Payments, cfg.PaymentCurrency),
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(appointmentRepo, d.Cache, settings),
		ucAppointment.NewGetAppointment(appointmentRepo),
		ucAppointment.NewUpdateAppointment(appointmentRepo),
		ucAppointment.NewChangeAppointmentStatus(appointmentRepo, d.Cache),
		ucAppointment.NewRescheduleAppointment(appointmentRepo, d.Cache, settings),
		ucAppointment.NewDeleteAppointment(appointmentRepo, d.Cache),
		ucAppointment.NewListAppointmentsByDate(appointmentRepo),
		ucAppointment.NewListAppointmentsByMonth(appointmentRepo),
		ucAppointment.NewSearchAppointments(appointmentRepo),
		ucAppointment.NewListUpcomingAppointments(appointmentRepo),
		ucAppointment.NewGetAvailability(appointmentRepo, settings),
	)

	workingHoursHandler := handlers.NewWorkingHoursHandler(
		ucAppointment.NewGetWorkingHours(workingHoursRepo),
		ucAppointment.NewUpdateWorkingHours(workingHoursRepo),
	)

	analyticsHandler := handlers.NewAnalyticsHandler(
		ucAnalytics.NewDashboard(analyticsRepo, d.Cache, cfg.AnalyticsCacheTTL),
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(
		ucAudit.NewListEvents(auditRepo),
		ucAudit.NewGetEvent(auditRepo),
		ucAudit.NewRecordHistory(auditRepo),
		ucAudit.NewListTables(auditRepo),
	)

	meHandler := handlers.NewMeHandler(cfg.AdminRoles)
	healthHandler := handlers.NewHealthHandler(d.DB)

	// ======================================================
	// 🌍 OPERATIONS
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	// ======================================================
	// 🔐 API
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))

	admin := middleware.RequireRole(cfg.AdminRoles...)

	api.GET("/me", meHandler.GetMe)

	// ------------------------------
	// PATIENTS
	// ------------------------------
	api.GET("/patients", patientHandler.List)
	api.POST("/patients", patientHandler.Create)
	api.GET("/patients/:id", patientHandler.Get)
	api.PUT("/patients/:id", patientHandler.Update)
	api.DELETE("/patients/:id", admin, patientHandler.Delete)
	api.POST("/patients/:id/photo", patientHandler.UploadPhoto)
	api.GET("/patients/:id/visits", patientHandler.ListVisits)
	api.GET("/patients/:id/medical-history", patientHandler.GetMedicalHistory)
	api.PUT("/patients/:id/medical-history", patientHandler.UpsertMedicalHistory)

	// ------------------------------
	// VISITS
	// ------------------------------
	api.GET("/visits", visitHandler.List)
	api.POST("/visits", visitHandler.Create)
	api.GET("/visits/:id", visitHandler.Get)
	api.PUT("/visits/:id", visitHandler.Update)
	api.DELETE("/visits/:id", admin, visitHandler.Delete)
	api.POST("/visits/:id/payment-link", visitHandler.CreatePaymentLink)

	// ------------------------------
	// APPOINTMENTS
	// ------------------------------
	api.POST("/appointments", appointmentHandler.Create)
	api.GET("/appointments", appointmentHandler.ListByDate)
	api.GET("/appointments/month", appointmentHandler.ListByMonth)
	api.GET("/appointments/search", appointmentHandler.Search)
	api.GET("/appointments/upcoming", appointmentHandler.Upcoming)
	api.GET("/appointments/availability", appointmentHandler.Availability)
	api.GET("/appointments/:id", appointmentHandler.Get)
	api.PUT("/appointments/:id", appointmentHandler.Update)
	api.PATCH("/appointments/:id/status", appointmentHandler.ChangeStatus)
	api.PATCH("/appointments/:id/reschedule", appointmentHandler.Reschedule)
	api.DELETE("/appointments/:id", admin, appointmentHandler.Delete)

	api.GET("/working-hours", workingHoursHandler.Get)
	api.PUT("/working-hours", admin, workingHoursHandler.Update)

	// ------------------------------
	// ANALYTICS
	// ------------------------------
	api.GET("/analytics/summary", analyticsHandler.Summary)
	api.GET("/analytics/patients", analyticsHandler.Patients)
	api.GET("/analytics/visits", analyticsHandler.Visits)
	api.GET("/analytics/appointments", analyticsHandler.Appointments)
	api.GET("/analytics/revenue", analyticsHandler.Revenue)
	api.GET("/analytics/years", analyticsHandler.Years)

	// ------------------------------
	// AUDIT
	// ------------------------------
	auditAPI := api.Group("/audit", admin)
	{
		auditAPI.GET("/events", auditLogsHandler.List)
		auditAPI.GET("/events/:id", auditLogsHandler.Get)
		auditAPI.GET("/records/:table/:id", auditLogsHandler.RecordHistory)
		auditAPI.GET("/tables", auditLogsHandler.Tables)
	}
}
