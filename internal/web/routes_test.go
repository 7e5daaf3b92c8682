package web_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"bitbucket.org/planbgroup/booking-notifier/internal/config"
	"bitbucket.org/planbgroup/booking-notifier/internal/notifier"
	"bitbucket.org/planbgroup/booking-notifier/internal/schema"
	"bitbucket.org/planbgroup/booking-notifier/internal/simplybook"
	"bitbucket.org/planbgroup/booking-notifier/internal/twilio"
	"bitbucket.org/planbgroup/booking-notifier/internal/web"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)

	out := &bytes.Buffer{}
	log := zerolog.New(out)

	scheduling := simplybook.New(cfg, &log)
	messenger := twilio.New(cfg, &log)
	dispatcher := notifier.NewDispatcher(messenger, cfg.MessagingFrom, cfg.MessagingMediaURL, cfg.ReminderHours)
	service := notifier.NewService(cfg, scheduling, dispatcher, nil)

	return web.SetupRouter(&log, service, cfg)
}

func testConfiguration(schedulingURL string, messagingURL string) *config.Config {
	return &config.Config{
		CompanyLogin:        "planb",
		APIKey:              "test-api-key",
		SecretKey:           "test-secret",
		UserLogin:           "operator",
		UserPassword:        "hunter2",
		APIURL:              schedulingURL,
		MessagingAccountSID: "AC00000000000000000000000000000000",
		MessagingAuthToken:  "auth-token",
		MessagingAPIURL:     messagingURL,
		MessagingFrom:       "whatsapp:+35679999999",
		ReminderHours:       24,
		Timeout:             time.Second,
	}
}

func TestRouter(t *testing.T) {
	t.Run("should answer status", func(t *testing.T) {
		router := testRouter(t, testConfiguration("http://localhost:0", "http://localhost:0"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/status", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "uptime")
	})

	t.Run("should reject a wrong method with 405", func(t *testing.T) {
		router := testRouter(t, testConfiguration("http://localhost:0", "http://localhost:0"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/api/booking-events", nil))

		assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Method Not Allowed")
	})

	t.Run("should reject a malformed booking event with 400", func(t *testing.T) {
		router := testRouter(t, testConfiguration("http://localhost:0", "http://localhost:0"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/booking-events", strings.NewReader(`{"booking_id":"42"}`)))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("should surface an upstream failure as a 500 envelope", func(t *testing.T) {
		testServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer testServer.Close()

		router := testRouter(t, testConfiguration(testServer.URL, "http://localhost:0"))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/booking-events", strings.NewReader(`{"booking_id":"42","booking_hash":"hash"}`)))

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "error")
	})

	t.Run("should process a booking event end to end", func(t *testing.T) {
		messagingCalled := false
		messagingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			messagingCalled = true

			assert.Nil(t, r.ParseForm())
			assert.Equal(t, "whatsapp:+35679000001", r.PostForm.Get("To"))

			w.WriteHeader(http.StatusCreated)
		}))
		defer messagingServer.Close()

		schedulingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var call struct {
				Method string `json:"method"`
				ID     string `json:"id"`
			}
			require.Nil(t, json.NewDecoder(r.Body).Decode(&call))

			switch call.Method {
			case "getToken":
				fmt.Fprintf(w, `{"result":"company-token","id":%q}`, call.ID)
			case "getBookingDetails":
				fmt.Fprintf(w, `{"result":{"id":"42","client_name":"Maria","client_phone":"+35679000001","start_date_time":"2025-01-01 10:00:00","location":"Plan B - Sliema"},"id":%q}`, call.ID)
			default:
				t.Errorf("unexpected rpc method %s", call.Method)
			}
		}))
		defer schedulingServer.Close()

		router := testRouter(t, testConfiguration(schedulingServer.URL, messagingServer.URL))

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/booking-events", strings.NewReader(`{"booking_id":"42","booking_hash":"hash","notification_type":"create"}`)))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, messagingCalled)
		assert.Contains(t, recorder.Body.String(), "Booking received successfully")
		assert.Contains(t, recorder.Body.String(), "Maria")
	})
}

func TestTriggerAuth(t *testing.T) {
	cfg := testConfiguration("http://localhost:0", "http://localhost:0")
	cfg.TriggerSecret = "trigger-secret"

	t.Run("should reject a trigger without a token", func(t *testing.T) {
		router := testRouter(t, cfg)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/api/reminder-scan", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("should reject a trigger signed with the wrong secret", func(t *testing.T) {
		router := testRouter(t, cfg)

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Minute).Unix(),
		}).SignedString([]byte("some-other-secret"))
		require.Nil(t, err)

		request := httptest.NewRequest(http.MethodPost, "/api/reminder-scan", nil)
		request.Header.Set("Authorization", "Bearer "+signed)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("should let a signed trigger through to the scan", func(t *testing.T) {
		schedulingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var call struct {
				Method string `json:"method"`
				ID     string `json:"id"`
			}
			require.Nil(t, json.NewDecoder(r.Body).Decode(&call))

			switch call.Method {
			case "getUserToken":
				fmt.Fprintf(w, `{"result":"user-token","id":%q}`, call.ID)
			case "getBookings":
				fmt.Fprintf(w, `{"result":[],"id":%q}`, call.ID)
			default:
				t.Errorf("unexpected rpc method %s", call.Method)
			}
		}))
		defer schedulingServer.Close()

		authedCfg := testConfiguration(schedulingServer.URL, "http://localhost:0")
		authedCfg.TriggerSecret = "trigger-secret"

		router := testRouter(t, authedCfg)

		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"exp": time.Now().Add(time.Minute).Unix(),
		}).SignedString([]byte("trigger-secret"))
		require.Nil(t, err)

		request := httptest.NewRequest(http.MethodPost, "/api/reminder-scan", nil)
		request.Header.Set("Authorization", "Bearer "+signed)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response struct {
			Message string             `json:"message"`
			Summary schema.ScanSummary `json:"summary"`
		}
		require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "Success", response.Message)
		assert.Equal(t, 0, response.Summary.Bookings)
	})
}
