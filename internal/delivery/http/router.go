package http

import (
	"net/http"

	"truedoc-admin/internal/delivery/http/handler"
	"truedoc-admin/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handlers groups every HTTP handler the router mounts
type Handlers struct {
	Auth          *handler.AuthHandler
	Moderation    *handler.ModerationHandler
	Doctor        *handler.DoctorHandler
	InsurancePlan *handler.ReferenceHandler
	University    *handler.ReferenceHandler
	Institution   *handler.ReferenceHandler
	Specialty     *handler.SpecialtyHandler
	Lead          *handler.LeadHandler
	Dashboard     *handler.DashboardHandler
	AuditLog      *handler.AuditLogHandler
}

type Router struct {
	router         *mux.Router
	handlers       Handlers
	authMiddleware *middleware.AuthMiddleware
	corsMiddleware *middleware.CORSMiddleware
	gatherer       prometheus.Gatherer
}

func NewRouter(
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	gatherer prometheus.Gatherer,
) *Router {
	return &Router{
		router:         mux.NewRouter(),
		handlers:       handlers,
		authMiddleware: authMiddleware,
		corsMiddleware: corsMiddleware,
		gatherer:       gatherer,
	}
}

func (r *Router) Setup() *mux.Router {
	h := r.handlers

	r.router.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)
	r.router.Handle("/metrics", promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	// Auth routes (any live session)
	session := api.PathPrefix("/auth").Subrouter()
	session.Use(r.authMiddleware.Authenticate)
	session.HandleFunc("/logout", h.Auth.Logout).Methods(http.MethodPost)

	// Auth routes (moderator)
	moderatorAuth := api.PathPrefix("/auth").Subrouter()
	moderatorAuth.Use(r.authMiddleware.RequireModerator)
	moderatorAuth.HandleFunc("/me", h.Auth.Me).Methods(http.MethodGet)

	// Admin routes (moderator, gate runs on every request)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.RequireModerator)

	admin.HandleFunc("/dashboard", h.Dashboard.GetOverview).Methods(http.MethodGet)

	// Doctors
	admin.HandleFunc("/doctors", h.Doctor.GetAllDoctors).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", h.Doctor.GetDoctor).Methods(http.MethodGet)
	admin.HandleFunc("/doctors/{id}", h.Doctor.UpdateDoctor).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/approval", h.Moderation.SetDoctorApproval).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/insurance-plans", h.Moderation.ReplaceInsurancePlans).Methods(http.MethodPut)
	admin.HandleFunc("/doctors/{id}/locations/{locationId}", h.Doctor.UpdateLocation).Methods(http.MethodPut)

	// Claims
	admin.HandleFunc("/claims/specialty/{id}/institution", h.Doctor.UpdateSpecialtyInstitution).Methods(http.MethodPut)
	admin.HandleFunc("/claims/{kind}/{id}/approval", h.Moderation.SetClaimApproval).Methods(http.MethodPut)
	admin.HandleFunc("/claims/{kind}/{id}/visibility", h.Moderation.SetClaimVisibility).Methods(http.MethodPut)

	// Reference data
	r.mountReference(admin, "/insurance-plans", h.InsurancePlan)
	r.mountReference(admin, "/universities", h.University)
	r.mountReference(admin, "/institutions", h.Institution)
	admin.HandleFunc("/specialties", h.Specialty.GetAll).Methods(http.MethodGet)

	// Leads
	admin.HandleFunc("/leads", h.Lead.GetAllLeads).Methods(http.MethodGet)
	admin.HandleFunc("/leads", h.Lead.CreateLead).Methods(http.MethodPost)
	admin.HandleFunc("/leads/sources", h.Lead.GetSources).Methods(http.MethodGet)
	admin.HandleFunc("/leads/{id:[0-9]+}", h.Lead.UpdateLead).Methods(http.MethodPut)
	admin.HandleFunc("/leads/{id:[0-9]+}", h.Lead.DeleteLead).Methods(http.MethodDelete)

	// Audit log
	admin.HandleFunc("/audit-logs", h.AuditLog.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", h.AuditLog.GetAuditLog).Methods(http.MethodGet)

	// Preflight requests match no API route; the CORS middleware answers them
	r.router.PathPrefix("/").Methods(http.MethodOptions).HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) mountReference(admin *mux.Router, path string, h *handler.ReferenceHandler) {
	admin.HandleFunc(path, h.GetAll).Methods(http.MethodGet)
	admin.HandleFunc(path, h.Create).Methods(http.MethodPost)
	admin.HandleFunc(path+"/{id}", h.Update).Methods(http.MethodPut)
	admin.HandleFunc(path+"/{id}", h.Delete).Methods(http.MethodDelete)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
