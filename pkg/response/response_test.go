package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func record(t *testing.T, send func(c *gin.Context)) (*httptest.ResponseRecorder, Response) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	send(c)

	var body Response
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return rec, body
}

func TestSuccessEnvelope(t *testing.T) {
	rec, body := record(t, func(c *gin.Context) {
		Success(c, map[string]int{"total_checkins": 3})
	})

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
	if body.Code != 0 || body.Message != "success" {
		t.Errorf("envelope = %+v, want code 0 / success", body)
	}
	if body.Data == nil {
		t.Error("expected data in the envelope")
	}
}

func TestErrorHelpers(t *testing.T) {
	tests := []struct {
		name string
		send func(c *gin.Context)
		want int
	}{
		{"bad request", func(c *gin.Context) { BadRequest(c, "bad") }, http.StatusBadRequest},
		{"unauthorized", func(c *gin.Context) { Unauthorized(c, "no session") }, http.StatusUnauthorized},
		{"not found", func(c *gin.Context) { NotFound(c, "missing") }, http.StatusNotFound},
		{"too many requests", func(c *gin.Context) { TooManyRequests(c, "slow down") }, http.StatusTooManyRequests},
		{"internal", func(c *gin.Context) { InternalError(c, "boom") }, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := record(t, tt.send)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			// Error envelopes repeat the HTTP status in the body.
			if body.Code != tt.want {
				t.Errorf("body code = %d, want %d", body.Code, tt.want)
			}
			if body.Data != nil {
				t.Errorf("error envelope should carry no data: %+v", body)
			}
		})
	}
}
