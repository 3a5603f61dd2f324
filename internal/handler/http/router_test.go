package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	handler "github.com/zeecare/hms-backend/internal/handler/http"
	"github.com/zeecare/hms-backend/internal/handler/http/middleware"
	mocks "github.com/zeecare/hms-backend/internal/handler/http/mocks"
	"github.com/zeecare/hms-backend/internal/infrastructure/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...interface{}) {}
func (nopLogger) Infof(string, ...interface{})  {}
func (nopLogger) Warnf(string, ...interface{})  {}
func (nopLogger) Errorf(string, ...interface{}) {}
func (nopLogger) Fatalf(string, ...interface{}) {}

type testServer struct {
	engine       *gin.Engine
	users        *mocks.MockUserUsecase
	appointments *mocks.MockAppointmentUsecase
	messages     *mocks.MockMessageUsecase
	frontendDir  string
	dashboardDir string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{
		users:        mocks.NewMockUserUsecase(),
		appointments: mocks.NewMockAppointmentUsecase(),
		messages:     &mocks.MockMessageUsecase{},
		frontendDir:  t.TempDir(),
		dashboardDir: t.TempDir(),
	}
	require.NoError(t, os.WriteFile(filepath.Join(ts.frontendDir, "index.html"), []byte("<html>frontend</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ts.dashboardDir, "index.html"), []byte("<html>dashboard</html>"), 0o644))

	cfg := &config.Config{
		FrontendURL:        "http://localhost:5173",
		DashboardURL:       "http://localhost:5174",
		CookieExpiry:       7 * 24 * time.Hour,
		CookieSecure:       true,
		FrontendDist:       ts.frontendDir,
		DashboardDist:      ts.dashboardDir,
		UploadTempDir:      t.TempDir(),
		MaxUploadBytes:     1 << 20,
		RateLimitPerSecond: 1000,
	}
	ts.engine = gin.New()
	handler.NewRouter(ts.users, ts.appointments, ts.messages, cfg, nopLogger{}).SetupRoutes(ts.engine)
	return ts
}

func (ts *testServer) do(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func jsonRequest(method, target string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withCookie(req *http.Request, name, value string) *http.Request {
	req.AddCookie(&http.Cookie{Name: name, Value: value})
	return req
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range w.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestRegisterPatient(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(jsonRequest(http.MethodPost, "/api/v1/user/patient/register", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "phone": "0123456789",
		"nic": "12345", "dob": "1990-01-01", "gender": "Female", "password": "supersecret",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "mock_session_token", body["token"])
	assert.NotContains(t, w.Body.String(), "password")
	assert.Equal(t, "supersecret", ts.users.LastRegisterInput.Password)
	assert.Equal(t, "1990-01-01", ts.users.LastRegisterInput.DOB)

	ck := findCookie(w, middleware.PatientCookie)
	require.NotNil(t, ck)
	assert.Equal(t, "mock_session_token", ck.Value)
	assert.True(t, ck.HttpOnly)
	assert.True(t, ck.Secure)
	assert.Equal(t, http.SameSiteNoneMode, ck.SameSite)
	assert.Equal(t, 7*24*60*60, ck.MaxAge)
}

func TestRegisterPatient_Fail(t *testing.T) {
	ts := newTestServer(t)
	ts.users.ShouldFailRegister = true

	ts.users.FailWith = entity.NewConflictError("User already Registered!")
	w := ts.do(jsonRequest(http.MethodPost, "/api/v1/user/patient/register", map[string]string{"email": "jane@example.com"}))
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, map[string]interface{}{"success": false, "message": "User already Registered!"}, decode(t, w))

	verr := &entity.ValidationError{}
	verr.Set("firstName", "First Name Must Contain At Least 3 Characters!")
	ts.users.FailWith = verr
	w = ts.do(jsonRequest(http.MethodPost, "/api/v1/user/patient/register", map[string]string{"firstName": "Jo"}))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "First Name Must Contain At Least 3 Characters!", decode(t, w)["message"])

	ts.users.FailWith = nil
	w = ts.do(jsonRequest(http.MethodPost, "/api/v1/user/patient/register", map[string]string{}))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", decode(t, w)["message"])
}

func TestRegisterPatient_MalformedJSON(t *testing.T) {
	ts := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/patient/register", strings.NewReader(`{"email":`))
	req.Header.Set("Content-Type", "application/json")

	w := ts.do(req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, false, decode(t, w)["success"])
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(jsonRequest(http.MethodPost, "/api/v1/user/login", map[string]string{
		"email": "admin@example.com", "password": "supersecret", "confirmPassword": "supersecret", "role": "Admin",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, entity.UserRoleAdmin, ts.users.LastLoginRole)
	assert.NotNil(t, findCookie(w, middleware.AdminCookie))
	assert.Nil(t, findCookie(w, middleware.PatientCookie))
	assert.Contains(t, w.Body.String(), "User Logged In Successfully!")
}

func TestLogin_Fail(t *testing.T) {
	ts := newTestServer(t)
	ts.users.ShouldFailLogin = true
	ts.users.FailWith = entity.NewAuthError("User Not Found With This Role!")

	w := ts.do(jsonRequest(http.MethodPost, "/api/v1/user/login", map[string]string{
		"email": "jane@example.com", "password": "supersecret", "confirmPassword": "supersecret", "role": "Admin",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "User Not Found With This Role!", decode(t, w)["message"])
	assert.Nil(t, findCookie(w, middleware.AdminCookie))
}

func TestAdminRoutes_RequireAdminSession(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/user/admin/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Admin Not Authenticated!", decode(t, w)["message"])

	// the mock user is a patient
	w = ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/api/v1/message/getall", nil), middleware.AdminCookie, "tok"))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "Patient not authorized for this resource!", decode(t, w)["message"])
}

func TestGetCurrentUser(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/api/v1/user/patient/me", nil), middleware.PatientCookie, "tok"))

	assert.Equal(t, http.StatusOK, w.Code)
	user := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, "mock-user-id", user["_id"])
	assert.NotContains(t, user, "password")
}

func TestUpdateCurrentUser(t *testing.T) {
	ts := newTestServer(t)

	req := jsonRequest(http.MethodPut, "/api/v1/user/patient/me", map[string]string{"firstName": "Janet", "password": "newsecret1"})
	w := ts.do(withCookie(req, middleware.PatientCookie, "tok"))

	assert.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, ts.users.LastPatch.FirstName)
	assert.Equal(t, "Janet", *ts.users.LastPatch.FirstName)
	require.NotNil(t, ts.users.LastPatch.Password)
	assert.Equal(t, "newsecret1", *ts.users.LastPatch.Password)
	assert.Nil(t, ts.users.LastPatch.Email)
}

func TestLogoutPatient(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/api/v1/user/patient/logout", nil), middleware.PatientCookie, "tok"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tok", ts.users.LoggedOutToken)
	ck := findCookie(w, middleware.PatientCookie)
	require.NotNil(t, ck)
	assert.Equal(t, "", ck.Value)
	assert.True(t, ck.MaxAge < 0)
}

func TestAddNewDoctor(t *testing.T) {
	ts := newTestServer(t)
	ts.users.MockUser.Role = entity.UserRoleAdmin

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range map[string]string{"firstName": "Gregory", "lastName": "House", "doctorDepartment": "Cardiology"} {
		require.NoError(t, mw.WriteField(k, v))
	}
	part, err := mw.CreateFormFile("docAvatar", "house.png")
	require.NoError(t, err)
	_, _ = part.Write([]byte("avatar"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/doctor/addnew", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := ts.do(withCookie(req, middleware.AdminCookie, "tok"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Cardiology", ts.users.LastRegisterInput.DoctorDepartment)
	require.NotNil(t, ts.users.LastAvatar)
	assert.Equal(t, "house.png", ts.users.LastAvatar.FileName)
}

func TestAddNewDoctor_RequiresAvatar(t *testing.T) {
	ts := newTestServer(t)
	ts.users.MockUser.Role = entity.UserRoleAdmin

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("firstName", "Gregory"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/user/doctor/addnew", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := ts.do(withCookie(req, middleware.AdminCookie, "tok"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Doctor Avatar Required!", decode(t, w)["message"])
}

func TestGetDoctors_EmptyList(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/user/doctors", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"doctors":[]}`, w.Body.String())
}

func TestAppointments(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(withCookie(jsonRequest(http.MethodPost, "/api/v1/appointment/post", map[string]interface{}{
		"firstName": "Jane", "department": "Cardiology", "doctor_firstName": "Gregory", "doctor_lastName": "House", "hasVisited": true,
	}), middleware.PatientCookie, "tok"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "mock-user-id", ts.appointments.LastPatientID)
	assert.Equal(t, "Gregory", ts.appointments.LastInput.DoctorFirstName)
	assert.True(t, ts.appointments.LastInput.HasVisited)

	ts.appointments.ShouldFailBook = true
	ts.appointments.FailWith = entity.NewConflictError("Doctors Conflict! Please Contact Through Email Or Phone!")
	w = ts.do(withCookie(jsonRequest(http.MethodPost, "/api/v1/appointment/post", map[string]string{}), middleware.PatientCookie, "tok"))
	assert.Equal(t, http.StatusConflict, w.Code)

	ts.users.MockUser.Role = entity.UserRoleAdmin
	w = ts.do(withCookie(jsonRequest(http.MethodPut, "/api/v1/appointment/update/a1", map[string]string{"status": "Accepted"}), middleware.AdminCookie, "tok"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a1", ts.appointments.LastUpdateID)
	require.NotNil(t, ts.appointments.LastUpdate.Status)
	assert.Equal(t, entity.AppointmentAccepted, *ts.appointments.LastUpdate.Status)
	assert.Nil(t, ts.appointments.LastUpdate.HasVisited)

	w = ts.do(withCookie(httptest.NewRequest(http.MethodDelete, "/api/v1/appointment/delete/a1", nil), middleware.AdminCookie, "tok"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "a1", ts.appointments.DeletedID)

	w = ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/api/v1/appointment/getall", nil), middleware.AdminCookie, "tok"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["appointments"], 1)
}

func TestMessages(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(jsonRequest(http.MethodPost, "/api/v1/message/send", map[string]string{
		"firstName": "Jane", "lastName": "Doe", "email": "jane@example.com", "phone": "0123456789", "message": "Please call me back",
	}))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Message Sent!", decode(t, w)["message"])
	require.Len(t, ts.messages.Sent, 1)
	assert.Equal(t, "Please call me back", ts.messages.Sent[0].Message)

	ts.users.MockUser.Role = entity.UserRoleAdmin
	w = ts.do(withCookie(httptest.NewRequest(http.MethodGet, "/api/v1/message/getall", nil), middleware.AdminCookie, "tok"))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["messages"], 1)
}

func TestUnknownAPIRoute(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/api/v1/nope", "/api/v1/user/nope", "/api"} {
		w := ts.do(httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusNotFound, w.Code, target)
		assert.Equal(t, false, decode(t, w)["success"])
	}

	w := ts.do(httptest.NewRequest(http.MethodPost, "/some/page", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSPAFallback(t *testing.T) {
	ts := newTestServer(t)
	require.NoError(t, os.MkdirAll(filepath.Join(ts.frontendDir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(ts.frontendDir, "assets", "app.js"), []byte("console.log(1)"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ts.dashboardDir, "logo.svg"), []byte("<svg/>"), 0o644))

	cases := []struct {
		target string
		body   string
	}{
		{"/", "<html>frontend</html>"},
		{"/appointment", "<html>frontend</html>"},
		{"/some/deep/route", "<html>frontend</html>"},
		{"/assets/app.js", "console.log(1)"},
		{"/dashboard", "<html>dashboard</html>"},
		{"/dashboard/doctors", "<html>dashboard</html>"},
		{"/dashboard/logo.svg", "<svg/>"},
		{"/dashboardx", "<html>frontend</html>"},
	}
	for _, tc := range cases {
		w := ts.do(httptest.NewRequest(http.MethodGet, tc.target, nil))
		assert.Equal(t, http.StatusOK, w.Code, tc.target)
		got, _ := io.ReadAll(w.Body)
		assert.Equal(t, tc.body, string(got), tc.target)
	}
}

func TestCORS_DisallowedOriginThroughRouter(t *testing.T) {
	ts := newTestServer(t)

	for _, target := range []string{"/api/v1/user/doctors", "/", "/dashboard"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		req.Header.Set("Origin", "http://evil.example")
		w := ts.do(req)

		assert.Equal(t, http.StatusForbidden, w.Code, target)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), target)
		assert.Empty(t, w.Body.String(), target)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/user/doctors", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := ts.do(req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewPipeline_StageOrder(t *testing.T) {
	cfg := &config.Config{
		FrontendURL:    "http://localhost:5173",
		DashboardURL:   "http://localhost:5174",
		UploadTempDir:  t.TempDir(),
		MaxUploadBytes: 1 << 20,
	}

	names := handler.NewPipeline(cfg, nopLogger{}).Names()

	assert.Equal(t, []string{"recovery", "logger", "metrics", "errors", "cors", "cookies", "json", "urlencoded", "upload"}, names)
	index := make(map[string]int, len(names))
	for i, name := range names {
		index[name] = i
	}
	for _, later := range []string{"cors", "cookies", "json", "urlencoded", "upload"} {
		assert.Less(t, index["errors"], index[later], later)
	}
	for _, later := range []string{"cookies", "json", "urlencoded", "upload"} {
		assert.Less(t, index["cors"], index[later], later)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	ts := newTestServer(t)
	ts.do(httptest.NewRequest(http.MethodGet, "/api/v1/user/doctors", nil))

	w := ts.do(httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "hms_http_requests_total")
}
