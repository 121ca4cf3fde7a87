package main

import (
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"

	"github.com/melissaiman/portfolio/internal/content"
)

// exportPages lists the routes written by a static export and the file each
// one lands in, relative to the output directory.
func exportPages() map[string]string {
	pages := map[string]string{
		"/":         "index.html",
		"/missing/": "404.html",
	}
	for _, s := range sections {
		pages[sectionPath(s)] = path.Join("sections", s+".html")
	}
	return pages
}

// exportSite renders every page through the router, copies the static assets
// and returns the number of files written.
func exportSite(site content.Portfolio, basePath, outDir string) (int, error) {
	basePath = normalizeBasePath(basePath)
	r, err := newRouter(site, basePath)
	if err != nil {
		return 0, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", outDir, err)
	}

	written := 0
	for route, file := range exportPages() {
		req := httptest.NewRequest(http.MethodGet, basePath+route, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		want := http.StatusOK
		if file == "404.html" {
			want = http.StatusNotFound
		}
		if rec.Code != want {
			return written, fmt.Errorf("render %s: status %d", route, rec.Code)
		}
		if err := writeFile(filepath.Join(outDir, filepath.FromSlash(file)), rec.Body.Bytes()); err != nil {
			return written, err
		}
		written++
	}

	err = fs.WalkDir(staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := staticFS.ReadFile(p)
		if err != nil {
			return err
		}
		if err := writeFile(filepath.Join(outDir, filepath.FromSlash(p)), data); err != nil {
			return err
		}
		written++
		return nil
	})
	if err != nil {
		return written, fmt.Errorf("failed to copy static assets: %w", err)
	}

	// GitHub Pages would otherwise skip underscore-prefixed paths.
	if err := writeFile(filepath.Join(outDir, ".nojekyll"), nil); err != nil {
		return written, err
	}
	return written + 1, nil
}

func writeFile(name string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(name), err)
	}
	if err := os.WriteFile(name, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
