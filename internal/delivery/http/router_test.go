package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"clinic-records-api/config"
	"clinic-records-api/internal/delivery/http/handler"
	"clinic-records-api/internal/delivery/http/middleware"
	"clinic-records-api/internal/repository"
	"clinic-records-api/internal/service"
	"clinic-records-api/internal/testutil"
	"clinic-records-api/internal/usecase"
	"clinic-records-api/pkg/jwt"
	"clinic-records-api/pkg/validator"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Errors  []string        `json:"errors"`
}

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	db := testutil.NewDB(t)
	log := testutil.NewLogger()
	validate := validator.NewValidator()

	departmentRepo := repository.NewDepartmentRepository()
	doctorRepo := repository.NewDoctorRepository()
	patientRepo := repository.NewPatientRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	userRepo := repository.NewUserRepository()

	jwtService := jwt.NewJWTService(config.JWTConfig{Secret: "test-secret", AccessExpiry: time.Hour})
	sessions := service.NewMemorySessionStore()

	router := NewRouter(
		handler.NewDepartmentHandler(usecase.NewDepartmentUsecase(db, log, validate, departmentRepo, doctorRepo, appointmentRepo)),
		handler.NewDoctorHandler(usecase.NewDoctorUsecase(db, log, validate, doctorRepo, departmentRepo, appointmentRepo)),
		handler.NewPatientHandler(usecase.NewPatientUsecase(db, log, validate, patientRepo, appointmentRepo)),
		handler.NewAppointmentHandler(usecase.NewAppointmentUsecase(db, log, validate, time.Now, appointmentRepo, patientRepo, doctorRepo, departmentRepo)),
		handler.NewUserHandler(usecase.NewUserUsecase(db, log, validate, userRepo, jwtService, sessions)),
		middleware.NewAuthMiddleware(jwtService, sessions, log),
		middleware.NewCORSMiddleware(),
		middleware.NewLoggingMiddleware(log),
		middleware.NewRateLimitMiddleware(config.RateLimitConfig{LoginPerSecond: 100, LoginBurst: 100}),
	)
	return router.Setup()
}

func call(t *testing.T, h http.Handler, method, path string, body interface{}, headers ...string) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec.Code, env
}

func dataField(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v (%s)", err, env.Data)
	}
}

type idOnly struct {
	ID string `json:"id"`
}

func TestClinicScenario(t *testing.T) {
	h := newTestServer(t)

	code, env := call(t, h, http.MethodPost, "/departments", map[string]interface{}{
		"department": map[string]string{"name": "Cardiology"},
	})
	if code != http.StatusCreated {
		t.Fatalf("create department: %d %+v", code, env)
	}
	var department idOnly
	dataField(t, env, &department)

	code, env = call(t, h, http.MethodPost, "/doctors", map[string]interface{}{
		"doctor": map[string]string{
			"name": "A", "email": "a@x.com", "phone": "1",
			"specialization": "Cardio", "department_id": department.ID,
		},
	})
	if code != http.StatusCreated {
		t.Fatalf("create doctor: %d %+v", code, env)
	}
	var doctor struct {
		ID         string `json:"id"`
		Department struct {
			Name string `json:"name"`
		} `json:"department"`
	}
	dataField(t, env, &doctor)
	if doctor.Department.Name != "Cardiology" {
		t.Errorf("expected doctor to embed department, got %s", env.Data)
	}

	code, env = call(t, h, http.MethodPost, "/patients", map[string]interface{}{
		"patient": map[string]string{"name": "P", "email": "p@x.com"},
	})
	if code != http.StatusCreated {
		t.Fatalf("create patient: %d %+v", code, env)
	}
	var patient idOnly
	dataField(t, env, &patient)

	code, env = call(t, h, http.MethodPost, "/appointments", map[string]interface{}{
		"appointment": map[string]string{
			"appointment_date": time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
			"status":           "scheduled",
			"patient_id":       patient.ID,
			"doctor_id":        doctor.ID,
			"department_id":    department.ID,
		},
	})
	if code != http.StatusCreated {
		t.Fatalf("create appointment: %d %+v", code, env)
	}
	var appointment struct {
		ID      string `json:"id"`
		Status  string `json:"status"`
		Patient *struct {
			Name string `json:"name"`
		} `json:"patient"`
		Doctor *struct {
			Name           string `json:"name"`
			Specialization string `json:"specialization"`
		} `json:"doctor"`
		Department *struct {
			Name string `json:"name"`
		} `json:"department"`
	}
	dataField(t, env, &appointment)
	if appointment.Patient == nil || appointment.Doctor == nil || appointment.Department == nil {
		t.Fatalf("expected embedded relations, got %s", env.Data)
	}
	if appointment.Patient.Name != "P" || appointment.Doctor.Specialization != "Cardio" || appointment.Department.Name != "Cardiology" {
		t.Errorf("unexpected embeds %s", env.Data)
	}

	code, env = call(t, h, http.MethodPatch, "/appointments/"+appointment.ID, map[string]interface{}{
		"appointment": map[string]string{"status": "completed"},
	})
	if code != http.StatusOK {
		t.Fatalf("update appointment: %d %+v", code, env)
	}
	dataField(t, env, &appointment)
	if appointment.Status != "completed" {
		t.Errorf("expected completed, got %q", appointment.Status)
	}

	code, env = call(t, h, http.MethodPost, "/appointments", map[string]interface{}{
		"appointment": map[string]string{
			"appointment_date": time.Now().Add(72 * time.Hour).UTC().Format(time.RFC3339),
			"status":           "urgent",
			"patient_id":       patient.ID,
			"doctor_id":        doctor.ID,
			"department_id":    department.ID,
		},
	})
	if code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d %+v", code, env)
	}
	if env.Success || len(env.Errors) != 1 || env.Errors[0] != "Status is not included in the list" {
		t.Errorf("unexpected validation envelope %+v", env)
	}

	code, env = call(t, h, http.MethodGet, "/appointments", nil)
	if code != http.StatusOK {
		t.Fatalf("list appointments: %d", code)
	}
	var list []json.RawMessage
	dataField(t, env, &list)
	if len(list) != 1 {
		t.Errorf("expected 1 appointment, got %d", len(list))
	}

	code, _ = call(t, h, http.MethodDelete, "/departments/"+department.ID, nil)
	if code != http.StatusNoContent {
		t.Fatalf("delete department: %d", code)
	}
	code, env = call(t, h, http.MethodGet, "/doctors/"+doctor.ID, nil)
	if code != http.StatusNotFound || env.Error != "Doctor not found" {
		t.Errorf("expected doctor cascade, got %d %+v", code, env)
	}
	code, _ = call(t, h, http.MethodGet, "/appointments/"+appointment.ID, nil)
	if code != http.StatusNotFound {
		t.Errorf("expected appointment cascade, got %d", code)
	}
}

func TestRequestErrors(t *testing.T) {
	h := newTestServer(t)

	cases := []struct {
		name    string
		method  string
		path    string
		body    interface{}
		code    int
		message string
	}{
		{"missing wrapper", http.MethodPost, "/departments", map[string]interface{}{"name": "X"}, http.StatusBadRequest, "Parameter missing: department"},
		{"empty wrapper", http.MethodPost, "/patients", map[string]interface{}{"patient": map[string]string{}}, http.StatusBadRequest, "Parameter missing: patient"},
		{"malformed json", http.MethodPost, "/doctors", `{"doctor":`, http.StatusBadRequest, "Invalid request body"},
		{"unknown id", http.MethodGet, "/patients/3f2b1f8e-8a5e-4b7a-9a57-0c6f0a3c1b11", nil, http.StatusNotFound, "Patient not found"},
		{"non uuid id", http.MethodGet, "/departments/42", nil, http.StatusNotFound, "Department not found"},
		{"update unknown", http.MethodPut, "/doctors/3f2b1f8e-8a5e-4b7a-9a57-0c6f0a3c1b11", map[string]interface{}{"doctor": map[string]string{"name": "B"}}, http.StatusNotFound, "Doctor not found"},
		{"delete unknown", http.MethodDelete, "/appointments/3f2b1f8e-8a5e-4b7a-9a57-0c6f0a3c1b11", nil, http.StatusNotFound, "Appointment not found"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			code, env := call(t, h, c.method, c.path, c.body)
			if code != c.code {
				t.Fatalf("expected %d, got %d %+v", c.code, code, env)
			}
			if env.Success || env.Error != c.message {
				t.Errorf("expected error %q, got %+v", c.message, env)
			}
		})
	}
}

func TestLoginAndCurrentUser(t *testing.T) {
	h := newTestServer(t)

	code, env := call(t, h, http.MethodPost, "/users", map[string]interface{}{
		"user": map[string]string{"email": "admin@clinic.test", "password": "secret123", "password_confirmation": "secret123"},
	})
	if code != http.StatusCreated {
		t.Fatalf("create user: %d %+v", code, env)
	}
	if bytes.Contains(env.Data, []byte("password")) {
		t.Errorf("user response must not expose the password: %s", env.Data)
	}

	for _, body := range []map[string]string{
		{"email": "admin@clinic.test", "password": "wrong"},
		{"email": "nobody@clinic.test", "password": "secret123"},
		{},
	} {
		code, env := call(t, h, http.MethodPost, "/users/login", body)
		if code != http.StatusUnauthorized || env.Error != "Invalid email or password" {
			t.Errorf("expected 401 for %v, got %d %+v", body, code, env)
		}
	}

	code, env = call(t, h, http.MethodPost, "/users/login", map[string]string{"email": "admin@clinic.test", "password": "secret123"})
	if code != http.StatusOK || env.Message != "Login successful" {
		t.Fatalf("login: %d %+v", code, env)
	}
	var login struct {
		User struct {
			Email string `json:"email"`
		} `json:"user"`
		AccessToken string `json:"access_token"`
	}
	dataField(t, env, &login)
	if login.User.Email != "admin@clinic.test" || login.AccessToken == "" {
		t.Fatalf("unexpected login data %s", env.Data)
	}

	bearer := "Bearer " + login.AccessToken
	code, env = call(t, h, http.MethodGet, "/users/me", nil, "Authorization", bearer)
	if code != http.StatusOK {
		t.Fatalf("me: %d %+v", code, env)
	}
	var me struct {
		Email string `json:"email"`
	}
	dataField(t, env, &me)
	if me.Email != "admin@clinic.test" {
		t.Errorf("unexpected current user %s", env.Data)
	}

	if code, _ := call(t, h, http.MethodPost, "/users/logout", nil, "Authorization", bearer); code != http.StatusOK {
		t.Fatalf("logout: %d", code)
	}
	if code, _ := call(t, h, http.MethodGet, "/users/me", nil, "Authorization", bearer); code != http.StatusUnauthorized {
		t.Errorf("expected revoked token to be rejected, got %d", code)
	}
}

func TestHealthCheck(t *testing.T) {
	h := newTestServer(t)

	code, env := call(t, h, http.MethodGet, "/up", nil)
	if code != http.StatusOK || !env.Success {
		t.Errorf("expected healthy, got %d %+v", code, env)
	}
}
