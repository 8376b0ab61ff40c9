package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/requestdata"
)

const testSecret = "test-secret"

func probe(t *testing.T, secret string, claims jwt.MapClaims) *requestdata.Caller {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	var captured *requestdata.Caller
	r := gin.New()
	r.Use(NewAuthMiddleware(log, testSecret).OptionalAuth())
	r.GET("/probe", func(c *gin.Context) {
		captured = requestdata.GetCaller(c.Request.Context())
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if claims != nil {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
		signed, err := token.SignedString([]byte(secret))
		if err != nil {
			t.Fatalf("sign token: %v", err)
		}
		req.Header.Set("Authorization", "Bearer "+signed)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("probe status: want=200 got=%d", w.Code)
	}
	return captured
}

func TestOptionalAuthValidToken(t *testing.T) {
	caller := probe(t, testSecret, jwt.MapClaims{
		"sub":  "42",
		"name": "Ada",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	if caller == nil {
		t.Fatalf("valid token: want caller got nil")
	}
	if caller.UserID != 42 || caller.Name != "Ada" {
		t.Fatalf("caller: want id=42 name=Ada got=%+v", caller)
	}
}

func TestOptionalAuthNoHeader(t *testing.T) {
	caller := probe(t, testSecret, nil)
	if caller != nil {
		t.Fatalf("no header: want anonymous got %+v", caller)
	}
}

func TestOptionalAuthWrongSecret(t *testing.T) {
	caller := probe(t, "other-secret", jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if caller != nil {
		t.Fatalf("wrong secret: want anonymous got %+v", caller)
	}
}

func TestOptionalAuthExpiredToken(t *testing.T) {
	caller := probe(t, testSecret, jwt.MapClaims{
		"sub": "42",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})
	if caller != nil {
		t.Fatalf("expired token: want anonymous got %+v", caller)
	}
}

func TestOptionalAuthNonNumericSubject(t *testing.T) {
	caller := probe(t, testSecret, jwt.MapClaims{
		"sub": "not-a-number",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	if caller != nil {
		t.Fatalf("non-numeric subject: want anonymous got %+v", caller)
	}
}

func TestExtractBearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cases := []struct {
		header string
		want   string
	}{
		{header: "Bearer abc123", want: "abc123"},
		{header: "bearer abc123", want: "abc123"},
		{header: "Basic abc123", want: ""},
		{header: "Bearer", want: ""},
		{header: "", want: ""},
	}
	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			c.Request.Header.Set("Authorization", tc.header)
		}
		if got := extractBearerToken(c); got != tc.want {
			t.Fatalf("extractBearerToken(%q): want=%q got=%q", tc.header, tc.want, got)
		}
	}
}
