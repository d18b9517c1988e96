package controllers

import (
	"context"
	"io"
	"mime"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/zhaygo/backend/pkg/response"
	"github.com/zhaygo/backend/pkg/storage"
)

// PagesController serves the restaurant site's static pages and assets,
// plus uploaded profile images. No business logic lives here.
type PagesController struct {
	templateDir string
	pingDB      func(ctx context.Context) error
}

func NewPagesController(templateDir string, pingDB func(ctx context.Context) error) *PagesController {
	return &PagesController{templateDir: templateDir, pingDB: pingDB}
}

// Page serves a fixed HTML file from the template directory.
func (c *PagesController) Page(file string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		full := filepath.Join(c.templateDir, file)
		if _, err := os.Stat(full); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, full)
	}
}

// Asset serves a file from a template sub-directory (css, js, images,
// video). The path parameter is reduced to its base name so a crafted
// {file} can never escape the directory.
func (c *PagesController) Asset(subdir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file := filepath.Base(chi.URLParam(r, "file"))
		full := filepath.Join(c.templateDir, subdir, file)
		if _, err := os.Stat(full); err != nil {
			http.NotFound(w, r)
			return
		}
		http.ServeFile(w, r, full)
	}
}

// Upload streams an uploaded profile image from the storage disk.
func (c *PagesController) Upload(w http.ResponseWriter, r *http.Request) {
	file := path.Base(chi.URLParam(r, "file"))

	rc, err := storage.GetStream(path.Join("uploads", file))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer rc.Close()

	if ctype := mime.TypeByExtension(path.Ext(file)); ctype != "" {
		w.Header().Set("Content-Type", ctype)
	}
	_, _ = io.Copy(w, rc)
}

// Health handles GET /healthz.
func (c *PagesController) Health(w http.ResponseWriter, r *http.Request) {
	if err := c.pingDB(r.Context()); err != nil {
		response.Error(w, http.StatusServiceUnavailable, "Database unreachable")
		return
	}
	response.Success(w, map[string]string{"status": "ok"})
}
