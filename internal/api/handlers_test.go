package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SuchitArtal/virtual-lab/internal/app"
	"github.com/SuchitArtal/virtual-lab/internal/config"
	"github.com/SuchitArtal/virtual-lab/internal/store"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	a := app.New(config.Config{
		AdminUsername: "admin",
		AdminPassword: "admin123",
	}, store.NewMemory())
	return SetupRouter(a)
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w.Code, payload
}

func TestPortal_FullApprovalFlow(t *testing.T) {
	router := newTestRouter(t)

	// student submits a request
	code, resp := doJSON(t, router, http.MethodPost, "/api/request",
		`{"name":"Ann","email":"Ann@x.com","labName":"NLP-Lab"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Request submitted successfully", resp["message"])
	requestID, _ := resp["requestId"].(string)
	require.NotEmpty(t, requestID)

	// status is pending, url withheld
	code, resp = doJSON(t, router, http.MethodGet, "/api/status?email=ann%40x.com", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["found"])
	assert.Equal(t, "pending", resp["status"])
	assert.Nil(t, resp["labUrl"])

	// admin sees it in the queue
	code, resp = doJSON(t, router, http.MethodGet,
		"/api/admin/requests?username=admin&password=admin123", "")
	require.Equal(t, http.StatusOK, code)
	list, ok := resp["requests"].([]any)
	require.True(t, ok)
	require.Len(t, list, 1)

	// admin approves with surrounding whitespace in the url
	code, resp = doJSON(t, router, http.MethodPost, "/api/admin/approve/"+requestID,
		`{"username":"admin","password":"admin123","labUrl":" https://lab.example/ann "}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Request approved successfully", resp["message"])

	// student now sees the trimmed url
	code, resp = doJSON(t, router, http.MethodGet, "/api/status?email=ann%40x.com", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, resp["found"])
	assert.Equal(t, "approved", resp["status"])
	assert.Equal(t, "https://lab.example/ann", resp["labUrl"])
}

func TestSubmit_ValidationAndConflict(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doJSON(t, router, http.MethodPost, "/api/request",
		`{"name":"","email":"ann@x.com","labName":"NLP-Lab"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "All fields are required", resp["error"])

	code, _ = doJSON(t, router, http.MethodPost, "/api/request",
		`{"name":"Ann","email":"ann@x.com","labName":"NLP-Lab"}`)
	require.Equal(t, http.StatusOK, code)

	code, resp = doJSON(t, router, http.MethodPost, "/api/request",
		`{"name":"Ann","email":"ANN@x.com","labName":"Vision-Lab"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "You already have an active request. Please check your status.", resp["error"])
}

func TestStatus_MissingEmailAndNoRequest(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doJSON(t, router, http.MethodGet, "/api/status", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Email is required", resp["error"])

	code, resp = doJSON(t, router, http.MethodGet, "/api/status?email=nobody%40x.com", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, false, resp["found"])
}

func TestAdmin_RejectsBadCredentials(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doJSON(t, router, http.MethodGet,
		"/api/admin/requests?username=admin&password=nope", "")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", resp["error"])

	code, resp = doJSON(t, router, http.MethodPost, "/api/admin/approve/some-id",
		`{"username":"root","password":"admin123","labUrl":"https://lab.example/x"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid credentials", resp["error"])
}

func TestAdmin_ApproveErrorSurfaces(t *testing.T) {
	router := newTestRouter(t)

	code, resp := doJSON(t, router, http.MethodPost, "/api/request",
		`{"name":"Ann","email":"ann@x.com","labName":"NLP-Lab"}`)
	require.Equal(t, http.StatusOK, code)
	requestID := resp["requestId"].(string)

	code, resp = doJSON(t, router, http.MethodPost, "/api/admin/approve/"+requestID,
		`{"username":"admin","password":"admin123","labUrl":"   "}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Lab URL is required", resp["error"])

	code, resp = doJSON(t, router, http.MethodPost, "/api/admin/approve/unknown-id",
		`{"username":"admin","password":"admin123","labUrl":"https://lab.example/x"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Request not found", resp["error"])
}

func TestAdmin_ListIsNewestFirst(t *testing.T) {
	router := newTestRouter(t)

	for _, body := range []string{
		`{"name":"Ann","email":"ann@x.com","labName":"NLP-Lab"}`,
		`{"name":"Bob","email":"bob@x.com","labName":"Vision-Lab"}`,
	} {
		code, _ := doJSON(t, router, http.MethodPost, "/api/request", body)
		require.Equal(t, http.StatusOK, code)
	}

	code, resp := doJSON(t, router, http.MethodGet,
		"/api/admin/requests?username=admin&password=admin123", "")
	require.Equal(t, http.StatusOK, code)
	list := resp["requests"].([]any)
	require.Len(t, list, 2)

	first := list[0].(map[string]any)
	second := list[1].(map[string]any)
	firstAt, err := time.Parse(time.RFC3339Nano, first["createdAt"].(string))
	require.NoError(t, err)
	secondAt, err := time.Parse(time.RFC3339Nano, second["createdAt"].(string))
	require.NoError(t, err)
	assert.False(t, firstAt.Before(secondAt))
	// pending entries expose a null labUrl, never a fabricated one
	assert.Nil(t, first["labUrl"])
}
