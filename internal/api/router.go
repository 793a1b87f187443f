package api

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/SuchitArtal/virtual-lab/internal/app"
)

// SetupRouter wires every HTTP endpoint, using thin closure wrappers so
// each handler receives the running *app.App instance.
func SetupRouter(a *app.App) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(a.Logger()))

	/* ---------- student endpoints ---------- */
	r.POST("/api/request", func(c *gin.Context) { handleSubmitRequest(a, c) })
	r.GET("/api/status", func(c *gin.Context) { handleStatusLookup(a, c) })

	/* ---------- admin endpoints ---------- */
	admin := r.Group("/api/admin")
	{
		admin.GET("/requests", func(c *gin.Context) { handleAdminListRequests(a, c) })
		admin.POST("/approve/:id", func(c *gin.Context) { handleAdminApprove(a, c) })
	}

	/* ---------- static portal pages ---------- */
	if dir := a.GetConfig().StaticDir; dirExists(dir) {
		r.StaticFile("/", filepath.Join(dir, "index.html"))
		r.StaticFile("/status", filepath.Join(dir, "status.html"))
		r.StaticFile("/admin", filepath.Join(dir, "admin.html"))
	}

	return r
}

func dirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
