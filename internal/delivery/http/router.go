package http

import (
	"net/http"

	"clinic-records-api/internal/delivery/http/handler"
	"clinic-records-api/internal/delivery/http/middleware"
	"clinic-records-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	departmentHandler   *handler.DepartmentHandler
	doctorHandler       *handler.DoctorHandler
	patientHandler      *handler.PatientHandler
	appointmentHandler  *handler.AppointmentHandler
	userHandler         *handler.UserHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
	rateLimitMiddleware *middleware.RateLimitMiddleware
}

func NewRouter(
	departmentHandler *handler.DepartmentHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
	rateLimitMiddleware *middleware.RateLimitMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		departmentHandler:   departmentHandler,
		doctorHandler:       doctorHandler,
		patientHandler:      patientHandler,
		appointmentHandler:  appointmentHandler,
		userHandler:         userHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
		rateLimitMiddleware: rateLimitMiddleware,
	}
}

// Setup registers every route. CORS and request logging wrap the router
// itself so preflights and unmatched paths pass through them too.
func (r *Router) Setup() http.Handler {
	r.router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "")
	})
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	// Health check
	r.router.HandleFunc("/up", r.healthCheck).Methods(http.MethodGet)

	// Session routes, registered before /users/{id}
	r.router.Handle("/users/login", r.rateLimitMiddleware.Limit(http.HandlerFunc(r.userHandler.Login))).Methods(http.MethodPost)
	r.router.Handle("/users/me", r.authMiddleware.Authenticate(http.HandlerFunc(r.userHandler.GetCurrentUser))).Methods(http.MethodGet)
	r.router.Handle("/users/logout", r.authMiddleware.Authenticate(http.HandlerFunc(r.userHandler.Logout))).Methods(http.MethodPost)

	// Departments
	r.router.HandleFunc("/departments", r.departmentHandler.GetAllDepartments).Methods(http.MethodGet)
	r.router.HandleFunc("/departments", r.departmentHandler.CreateDepartment).Methods(http.MethodPost)
	r.router.HandleFunc("/departments/{id}", r.departmentHandler.GetDepartment).Methods(http.MethodGet)
	r.router.HandleFunc("/departments/{id}", r.departmentHandler.UpdateDepartment).Methods(http.MethodPut, http.MethodPatch)
	r.router.HandleFunc("/departments/{id}", r.departmentHandler.DeleteDepartment).Methods(http.MethodDelete)

	// Doctors
	r.router.HandleFunc("/doctors", r.doctorHandler.GetAllDoctors).Methods(http.MethodGet)
	r.router.HandleFunc("/doctors", r.doctorHandler.CreateDoctor).Methods(http.MethodPost)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.GetDoctor).Methods(http.MethodGet)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.UpdateDoctor).Methods(http.MethodPut, http.MethodPatch)
	r.router.HandleFunc("/doctors/{id}", r.doctorHandler.DeleteDoctor).Methods(http.MethodDelete)

	// Patients
	r.router.HandleFunc("/patients", r.patientHandler.GetAllPatients).Methods(http.MethodGet)
	r.router.HandleFunc("/patients", r.patientHandler.CreatePatient).Methods(http.MethodPost)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.GetPatient).Methods(http.MethodGet)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut, http.MethodPatch)
	r.router.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Appointments
	r.router.HandleFunc("/appointments", r.appointmentHandler.GetAllAppointments).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments", r.appointmentHandler.CreateAppointment).Methods(http.MethodPost)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.GetAppointment).Methods(http.MethodGet)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.UpdateAppointment).Methods(http.MethodPut, http.MethodPatch)
	r.router.HandleFunc("/appointments/{id}", r.appointmentHandler.DeleteAppointment).Methods(http.MethodDelete)

	// Users
	r.router.HandleFunc("/users", r.userHandler.GetAllUsers).Methods(http.MethodGet)
	r.router.HandleFunc("/users", r.userHandler.CreateUser).Methods(http.MethodPost)
	r.router.HandleFunc("/users/{id}", r.userHandler.GetUser).Methods(http.MethodGet)
	r.router.HandleFunc("/users/{id}", r.userHandler.UpdateUser).Methods(http.MethodPut, http.MethodPatch)
	r.router.HandleFunc("/users/{id}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "", map[string]string{"status": "ok"})
}
