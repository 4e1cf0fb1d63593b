package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"doctorsportal/controllers"
	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/repository"
	"doctorsportal/routes"
	"doctorsportal/services"
)

type fakeVerifier struct {
	emails map[string]string
}

func (f *fakeVerifier) Verify(_ context.Context, token string) (string, error) {
	if email, ok := f.emails[token]; ok {
		return email, nil
	}
	return "", errors.New("invalid token")
}

type fakeGateway struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string) (string, error) {
	f.lastAmount = amount
	f.lastCurrency = currency
	if f.err != nil {
		return "", f.err
	}
	return "pi_test_secret", nil
}

type testEnv struct {
	router   *gin.Engine
	users    *repository.MemoryUserRepository
	gateway  *fakeGateway
	verifier *fakeVerifier
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:    repository.NewMemoryUserRepository(),
		gateway:  &fakeGateway{},
		verifier: &fakeVerifier{emails: map[string]string{}},
	}
	env.router = gin.New()
	routes.Register(env.router,
		controllers.NewAppointmentController(services.NewAppointmentService(repository.NewMemoryAppointmentRepository())),
		controllers.NewDoctorController(services.NewDoctorService(repository.NewMemoryDoctorRepository())),
		controllers.NewUserController(services.NewUserService(env.users)),
		controllers.NewPaymentController(services.NewPaymentService(env.gateway)),
		middleware.VerifyToken(env.verifier),
	)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func booking(email, date string) map[string]any {
	return map[string]any{
		"patientName": "Jordan Doe",
		"email":       email,
		"date":        date,
		"time":        "10.05 AM - 10.25 AM",
		"treatment":   "Teeth Orthodontics",
		"price":       50.0,
	}
}

func (e *testEnv) book(t *testing.T, email, date string) string {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/appointments", booking(email, date), nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp struct {
		InsertedID string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.InsertedID)
	return resp.InsertedID
}

func TestGreeting(t *testing.T) {
	env := newEnv(t)
	rec := env.do(t, http.MethodGet, "/", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Hello Doctors Portal!", rec.Body.String())
}

func TestBookAndListAppointments(t *testing.T) {
	env := newEnv(t)
	env.book(t, "patient@example.com", "May 14, 2026")

	rec := env.do(t, http.MethodGet, "/appointments?email=patient@example.com&date=May+14,+2026", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list []models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "patient@example.com", list[0].Email)
	assert.Equal(t, "May 14, 2026", list[0].Date)
	assert.Equal(t, "Teeth Orthodontics", list[0].Treatment)

	// both fields filter; a different date matches nothing
	rec = env.do(t, http.MethodGet, "/appointments?email=patient@example.com&date=May+15,+2026", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestBookAppointmentValidation(t *testing.T) {
	env := newEnv(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"patientName": "X", "date": "d", "time": "t", "treatment": "s"}},
		{"bad email", map[string]any{"patientName": "X", "email": "not-an-email", "date": "d", "time": "t", "treatment": "s"}},
		{"missing date", map[string]any{"patientName": "X", "email": "a@b.com", "time": "t", "treatment": "s"}},
		{"missing time", map[string]any{"patientName": "X", "email": "a@b.com", "date": "d", "treatment": "s"}},
		{"missing treatment", map[string]any{"patientName": "X", "email": "a@b.com", "date": "d", "time": "t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/appointments", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestFetchAppointment(t *testing.T) {
	env := newEnv(t)
	id := env.book(t, "fetch@example.com", "Jun 1, 2026")

	rec := env.do(t, http.MethodGet, "/appointments/"+id, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "fetch@example.com", got.Email)
	assert.Equal(t, id, got.ID.Hex())

	// malformed id is a client error, not a crash
	rec = env.do(t, http.MethodGet, "/appointments/not-a-hex-id", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// a well-formed id that matches nothing is a null body
	rec = env.do(t, http.MethodGet, "/appointments/"+primitive.NewObjectID().Hex(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", rec.Body.String())
}

func TestAttachPayment(t *testing.T) {
	env := newEnv(t)
	id := env.book(t, "pay@example.com", "Jul 2, 2026")

	payment := map[string]any{"transactionId": "pi_1", "amount": 50.0, "created": 1700000000}
	rec := env.do(t, http.MethodPut, "/appointments/"+id, payment, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result repository.UpdateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(1), result.MatchedCount)

	rec = env.do(t, http.MethodGet, "/appointments/"+id, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.NotNil(t, got.Payment)
	assert.Equal(t, "pi_1", got.Payment.TransactionID)

	// re-attaching overwrites, nothing enforces idempotency
	rec = env.do(t, http.MethodPut, "/appointments/"+id, map[string]any{"transactionId": "pi_2"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = env.do(t, http.MethodGet, "/appointments/"+id, nil, nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "pi_2", got.Payment.TransactionID)

	rec = env.do(t, http.MethodPut, "/appointments/bad-id", payment, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodPut, "/appointments/"+id, map[string]any{"amount": 1.0}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "transactionId is required")
}

func multipartDoctor(t *testing.T, name, email string, image []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if name != "" {
		require.NoError(t, writer.WriteField("name", name))
	}
	if email != "" {
		require.NoError(t, writer.WriteField("email", email))
	}
	if image != nil {
		part, err := writer.CreateFormFile("image", "portrait.png")
		require.NoError(t, err)
		_, err = part.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestCreateAndListDoctors(t *testing.T) {
	env := newEnv(t)
	image := []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x01, 0x02}

	body, contentType := multipartDoctor(t, "Dr. Caulfield", "caulfield@example.com", image)
	req := httptest.NewRequest(http.MethodPost, "/doctors", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	listRec := env.do(t, http.MethodGet, "/doctors", nil, nil)
	require.Equal(t, http.StatusOK, listRec.Code)
	var doctors []models.Doctor
	require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &doctors))
	require.Len(t, doctors, 1)
	assert.Equal(t, "Dr. Caulfield", doctors[0].Name)
	assert.Equal(t, image, doctors[0].Image, "stored image bytes must survive the round trip intact")
}

func TestCreateDoctorMissingParts(t *testing.T) {
	env := newEnv(t)

	// no image part
	body, contentType := multipartDoctor(t, "Dr. Noimage", "noimage@example.com", nil)
	req := httptest.NewRequest(http.MethodPost, "/doctors", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// no name field
	body, contentType = multipartDoctor(t, "", "anon@example.com", []byte{0x1})
	req = httptest.NewRequest(http.MethodPost, "/doctors", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminStatus(t *testing.T) {
	env := newEnv(t)

	// unknown email is non-admin, never an error
	rec := env.do(t, http.MethodGet, "/users/nobody@example.com", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin": false}`, rec.Body.String())

	_, err := env.users.Insert(context.Background(), &models.User{Email: "boss@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = env.users.Insert(context.Background(), &models.User{Email: "plain@example.com"})
	require.NoError(t, err)

	rec = env.do(t, http.MethodGet, "/users/boss@example.com", nil, nil)
	assert.JSONEq(t, `{"admin": true}`, rec.Body.String())
	rec = env.do(t, http.MethodGet, "/users/plain@example.com", nil, nil)
	assert.JSONEq(t, `{"admin": false}`, rec.Body.String())
}

func TestCreateUser(t *testing.T) {
	env := newEnv(t)
	rec := env.do(t, http.MethodPost, "/users", map[string]any{
		"email": "new@example.com", "displayName": "New User",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		InsertedID string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.InsertedID)

	rec = env.do(t, http.MethodPost, "/users", map[string]any{"displayName": "No Email"}, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpsertUser(t *testing.T) {
	env := newEnv(t)

	rec := env.do(t, http.MethodPut, "/users", map[string]any{
		"email": "up@example.com", "displayName": "First",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var result repository.UpdateResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.UpsertedID)

	rec = env.do(t, http.MethodPut, "/users", map[string]any{
		"email": "up@example.com", "displayName": "Second",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, int64(1), result.MatchedCount)
	assert.Equal(t, 1, env.users.Count(), "upsert must never duplicate a record")

	got, err := env.users.FindByEmail(context.Background(), "up@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Second", got.DisplayName)
}

func TestUpsertPreservesRole(t *testing.T) {
	env := newEnv(t)
	_, err := env.users.Insert(context.Background(), &models.User{Email: "boss@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	rec := env.do(t, http.MethodPut, "/users", map[string]any{
		"email": "boss@example.com", "displayName": "Still Boss",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodGet, "/users/boss@example.com", nil, nil)
	assert.JSONEq(t, `{"admin": true}`, rec.Body.String(), "an upsert without a role must not demote")
}

func TestMakeAdmin(t *testing.T) {
	env := newEnv(t)
	ctx := context.Background()
	_, err := env.users.Insert(ctx, &models.User{Email: "boss@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)
	_, err = env.users.Insert(ctx, &models.User{Email: "plain@example.com"})
	require.NoError(t, err)
	_, err = env.users.Insert(ctx, &models.User{Email: "target@example.com"})
	require.NoError(t, err)

	env.verifier.emails["boss-token"] = "boss@example.com"
	env.verifier.emails["plain-token"] = "plain@example.com"
	env.verifier.emails["ghost-token"] = "ghost@example.com"

	body := map[string]any{"email": "target@example.com"}

	// anonymous requester
	rec := env.do(t, http.MethodPut, "/users/admin", body, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// token that fails verification still means anonymous
	rec = env.do(t, http.MethodPut, "/users/admin", body, map[string]string{"Authorization": "Bearer bogus"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// authenticated but not an admin
	rec = env.do(t, http.MethodPut, "/users/admin", body, map[string]string{"Authorization": "Bearer plain-token"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// authenticated but no user record
	rec = env.do(t, http.MethodPut, "/users/admin", body, map[string]string{"Authorization": "Bearer ghost-token"})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	target, err := env.users.FindByEmail(ctx, "target@example.com")
	require.NoError(t, err)
	assert.Empty(t, target.Role, "refused promotions must not touch the target")

	// admin requester succeeds
	rec = env.do(t, http.MethodPut, "/users/admin", body, map[string]string{"Authorization": "Bearer boss-token"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	target, err = env.users.FindByEmail(ctx, "target@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, target.Role)
}

func TestCreatePaymentIntent(t *testing.T) {
	env := newEnv(t)

	rec := env.do(t, http.MethodPost, "/create-payment-intent", map[string]any{"price": 50.0}, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, int64(5000), env.gateway.lastAmount)
	assert.Equal(t, "usd", env.gateway.lastCurrency)
	var resp struct {
		ClientSecret string `json:"clientSecret"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ClientSecret)

	rec = env.do(t, http.MethodPost, "/create-payment-intent", map[string]any{"price": 19.99}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1999), env.gateway.lastAmount)
}

func TestCreatePaymentIntentFailures(t *testing.T) {
	env := newEnv(t)

	for _, body := range []map[string]any{{}, {"price": 0}, {"price": -5}} {
		rec := env.do(t, http.MethodPost, "/create-payment-intent", body, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}

	env.gateway.err = errors.New("card network down")
	rec := env.do(t, http.MethodPost, "/create-payment-intent", map[string]any{"price": 10.0}, nil)
	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
