package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"mediconnect/internal/delivery/http/handler"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/domain/entity"
	"mediconnect/pkg/response"
)

// RouterConfig wires handlers and middleware into the /api/v1 surface.
type RouterConfig struct {
	AuthHandler          *handler.AuthHandler
	AppointmentHandler   *handler.AppointmentHandler
	ConversationHandler  *handler.ConversationHandler
	NotificationHandler  *handler.NotificationHandler
	PrescriptionHandler  *handler.PrescriptionHandler
	MedicalReportHandler *handler.MedicalReportHandler
	PaymentHandler       *handler.PaymentHandler
	DoctorHandler        *handler.DoctorHandler
	ProfileHandler       *handler.ProfileHandler
	AdminHandler         *handler.AdminHandler
	AuthMiddleware       *middleware.AuthMiddleware
	CORSOrigin           string
}

func NewRouter(cfg *RouterConfig) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.CORS(cfg.CORSOrigin))

	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, http.StatusOK, "ok", nil)
	}).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/auth/register", cfg.AuthHandler.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", cfg.AuthHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/doctors", cfg.DoctorHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/doctors/{id}", cfg.DoctorHandler.Get).Methods(http.MethodGet)

	// Authenticated routes
	authed := api.NewRoute().Subrouter()
	authed.Use(cfg.AuthMiddleware.Handle)

	authed.HandleFunc("/auth/logout", cfg.AuthHandler.Logout).Methods(http.MethodPost)
	authed.HandleFunc("/auth/me", cfg.AuthHandler.Me).Methods(http.MethodGet)
	authed.HandleFunc("/users/me", cfg.ProfileHandler.UpdateUser).Methods(http.MethodPut)

	patientOnly := middleware.RequirePatient()
	doctorOnly := middleware.RequireDoctor()
	adminOnly := middleware.RequireAdmin()

	// Appointments
	authed.Handle("/appointments", patientOnly(http.HandlerFunc(cfg.AppointmentHandler.Create))).Methods(http.MethodPost)
	authed.HandleFunc("/appointments", cfg.AppointmentHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}", cfg.AppointmentHandler.Get).Methods(http.MethodGet)
	authed.HandleFunc("/appointments/{id}", cfg.AppointmentHandler.Update).Methods(http.MethodPatch)
	authed.Handle("/appointments/{id}/confirm", doctorOnly(http.HandlerFunc(cfg.AppointmentHandler.Confirm))).Methods(http.MethodPost)
	authed.HandleFunc("/appointments/{id}/cancel", cfg.AppointmentHandler.Cancel).Methods(http.MethodPost)
	authed.Handle("/appointments/{id}/complete", doctorOnly(http.HandlerFunc(cfg.AppointmentHandler.Complete))).Methods(http.MethodPost)

	// Messaging
	authed.HandleFunc("/conversations", cfg.ConversationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/conversations", cfg.ConversationHandler.Start).Methods(http.MethodPost)
	authed.HandleFunc("/conversations/{id}/messages", cfg.ConversationHandler.Messages).Methods(http.MethodGet)
	authed.HandleFunc("/conversations/{id}/messages", cfg.ConversationHandler.Send).Methods(http.MethodPost)

	// Notifications
	authed.HandleFunc("/notifications", cfg.NotificationHandler.List).Methods(http.MethodGet)
	authed.HandleFunc("/notifications/{id}/read", cfg.NotificationHandler.MarkRead).Methods(http.MethodPost)
	authed.HandleFunc("/notifications/read-all", cfg.NotificationHandler.MarkAllRead).Methods(http.MethodPost)

	// Prescriptions
	authed.Handle("/prescriptions", doctorOnly(http.HandlerFunc(cfg.PrescriptionHandler.Create))).Methods(http.MethodPost)
	authed.Handle("/prescriptions", middleware.RequireRole(entity.RolePatient, entity.RoleDoctor)(http.HandlerFunc(cfg.PrescriptionHandler.List))).Methods(http.MethodGet)

	// Medical reports
	authed.Handle("/medical-reports", patientOnly(http.HandlerFunc(cfg.MedicalReportHandler.Create))).Methods(http.MethodPost)
	authed.Handle("/medical-reports", middleware.RequireRole(entity.RolePatient, entity.RoleDoctor)(http.HandlerFunc(cfg.MedicalReportHandler.List))).Methods(http.MethodGet)
	authed.HandleFunc("/medical-reports/{id}", cfg.MedicalReportHandler.Delete).Methods(http.MethodDelete)

	// Payments
	authed.Handle("/payments", middleware.RequireRole(entity.RolePatient, entity.RoleDoctor)(http.HandlerFunc(cfg.PaymentHandler.List))).Methods(http.MethodGet)
	authed.HandleFunc("/payments/{id}/settle", cfg.PaymentHandler.Settle).Methods(http.MethodPost)

	// Role profiles
	authed.Handle("/profile/patient", patientOnly(http.HandlerFunc(cfg.ProfileHandler.GetPatientProfile))).Methods(http.MethodGet)
	authed.Handle("/profile/patient", patientOnly(http.HandlerFunc(cfg.ProfileHandler.UpdatePatientProfile))).Methods(http.MethodPut)
	authed.Handle("/profile/doctor", doctorOnly(http.HandlerFunc(cfg.ProfileHandler.GetDoctorProfile))).Methods(http.MethodGet)
	authed.Handle("/profile/doctor", doctorOnly(http.HandlerFunc(cfg.ProfileHandler.UpdateDoctorProfile))).Methods(http.MethodPut)
	authed.Handle("/doctor/patients", doctorOnly(http.HandlerFunc(cfg.ProfileHandler.ListPatients))).Methods(http.MethodGet)

	// Admin
	authed.Handle("/admin/users", adminOnly(http.HandlerFunc(cfg.AdminHandler.ListUsers))).Methods(http.MethodGet)
	authed.Handle("/admin/users/{id}/status", adminOnly(http.HandlerFunc(cfg.AdminHandler.SetUserActive))).Methods(http.MethodPatch)
	authed.Handle("/admin/doctors/{id}/verify", adminOnly(http.HandlerFunc(cfg.AdminHandler.SetDoctorVerified))).Methods(http.MethodPatch)
	authed.Handle("/admin/audit-logs", adminOnly(http.HandlerFunc(cfg.AdminHandler.ListAuditLogs))).Methods(http.MethodGet)

	return router
}
