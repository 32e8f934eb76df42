package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	assert.NotNil(t, r)
	assert.Equal(t, "v1", r.apiVersion)
	assert.Empty(t, r.registrars)
}

func TestRouterWithAPIVersion(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v2"))

	assert.Equal(t, "v2", r.apiVersion)
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine, WithAPIVersion("v1"))

	group := NewDomainGroup("procurement", "/purchases")
	group.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	r.Register(group)
	r.Setup()

	req := httptest.NewRequest("GET", "/api/v1/purchases/ping", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pong", w.Body.String())
}

func TestDomainGroup(t *testing.T) {
	t.Run("creates group with a name", func(t *testing.T) {
		g := NewDomainGroup("catalog", "/raw-materials")
		assert.Equal(t, "catalog", g.Name())
	})

	t.Run("registers routes for each method", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("trade", "/sales-orders")
		g.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.POST("", func(c *gin.Context) { c.Status(http.StatusCreated) })
		g.PUT("/:id", func(c *gin.Context) { c.Status(http.StatusOK) })
		g.DELETE("/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		tests := []struct {
			method   string
			path     string
			expected int
		}{
			{"GET", "/api/v1/sales-orders", http.StatusOK},
			{"POST", "/api/v1/sales-orders", http.StatusCreated},
			{"PUT", "/api/v1/sales-orders/123", http.StatusOK},
			{"DELETE", "/api/v1/sales-orders/123", http.StatusNoContent},
		}

		for _, tt := range tests {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, tt.expected, w.Code, "%s %s", tt.method, tt.path)
		}
	})

	t.Run("applies group middleware before handlers", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("logistics", "/shipments")
		g.Use(func(c *gin.Context) {
			c.Header("X-Handled-By", "logistics")
			c.Next()
		})
		g.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })

		api := engine.Group("/api/v1")
		g.RegisterRoutes(api)

		req := httptest.NewRequest("GET", "/api/v1/shipments", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "logistics", w.Header().Get("X-Handled-By"))
	})
}
