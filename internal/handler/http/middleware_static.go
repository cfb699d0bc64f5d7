// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

const indexFile = "index.html"

// withStatic serves files from the public directory for GET and HEAD
// requests. Paths that do not name a regular file, or a directory holding
// index.html, fall through to routing. Dotfiles are never served.
func (h *Handler) withStatic(next http.Handler) http.Handler {
	if h.staticDir == "" {
		return next
	}
	root := http.Dir(h.staticDir)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			next.ServeHTTP(w, r)
			return
		}

		name := path.Clean("/" + r.URL.Path)
		if hasDotSegment(name) {
			next.ServeHTTP(w, r)
			return
		}

		file, info, ok := openStatic(root, name)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}
		defer file.Close()

		http.ServeContent(w, r, info.Name(), info.ModTime(), file)
	})
}

func openStatic(root http.FileSystem, name string) (http.File, fs.FileInfo, bool) {
	file, err := root.Open(name)
	if err != nil {
		return nil, nil, false
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, false
	}

	if info.IsDir() {
		file.Close()
		return openStatic(root, path.Join(name, indexFile))
	}
	if !info.Mode().IsRegular() {
		file.Close()
		return nil, nil, false
	}

	return file, info, true
}

func hasDotSegment(name string) bool {
	for _, segment := range strings.Split(name, "/") {
		if strings.HasPrefix(segment, ".") {
			return true
		}
	}
	return false
}
