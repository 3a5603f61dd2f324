package http

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/entity"
)

const dashboardPrefix = "/dashboard"

// SPAHandler serves the two single-page application builds. Paths without a
// matching file fall back to the build's index.html so client-side routing works.
type SPAHandler struct {
	frontendDir  string
	dashboardDir string
}

func NewSPAHandler(frontendDir, dashboardDir string) *SPAHandler {
	return &SPAHandler{frontendDir: filepath.Clean(frontendDir), dashboardDir: filepath.Clean(dashboardDir)}
}

// Handle is meant to be the engine's NoRoute handler.
func (h *SPAHandler) Handle(c *gin.Context) {
	p := c.Request.URL.Path
	if (c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead) || p == "/api" || strings.HasPrefix(p, "/api/") {
		ErrorHandler(c, entity.NewNotFoundError("Route Not Found!"))
		return
	}

	if p == dashboardPrefix || strings.HasPrefix(p, dashboardPrefix+"/") {
		h.serve(c, h.dashboardDir, strings.TrimPrefix(p, dashboardPrefix))
		return
	}
	h.serve(c, h.frontendDir, p)
}

func (h *SPAHandler) serve(c *gin.Context, root, rel string) {
	clean := path.Clean("/" + rel)
	if clean != "/" && path.Base(clean) != "index.html" {
		target := filepath.Join(root, filepath.FromSlash(clean))
		if info, err := os.Stat(target); err == nil && !info.IsDir() {
			c.File(target)
			return
		}
	}

	index := filepath.Join(root, "index.html")
	f, err := os.Open(index)
	if err != nil {
		ErrorHandler(c, entity.NewNotFoundError("Route Not Found!"))
		return
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		ErrorHandler(c, entity.NewInternalError("index unavailable", err))
		return
	}
	c.Status(http.StatusOK)
	http.ServeContent(c.Writer, c.Request, "index.html", info.ModTime(), f)
}
