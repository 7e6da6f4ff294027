// ABOUTME: HTTP handler methods for all server endpoints.
// ABOUTME: Covers the editor page, browser events, slot export, markdown import, and health.
package editor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/2389-research/quill/controller"
	"github.com/2389-research/quill/document"
	"github.com/2389-research/quill/store"
)

const profileCookie = "quill_profile"

// maxBodySize bounds event, import, and upload bodies.
const maxBodySize = 10 << 20

// profileFromRequest returns the browser's profile id, issuing a new one when
// the cookie is missing or malformed.
func profileFromRequest(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(profileCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	profile := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     profileCookie,
		Value:    profile,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().AddDate(1, 0, 0),
	})
	return profile
}

// handleEditorPage renders the editor with the ribbon built from the controller's command table.
func (s *Server) handleEditorPage(w http.ResponseWriter, r *http.Request) {
	profile := profileFromRequest(w, r)
	sess := s.sessions.Open(profile)
	ribbon := sess.Controller().Ribbon()

	data := TemplateData{
		Ribbon:   ribbon,
		Groups:   groupRibbon(ribbon),
		Settings: sess.Controller().Settings(),
	}

	var buf bytes.Buffer
	if err := s.pageTmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, fmt.Sprintf("template error: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "sessions": s.sessions.Len()})
}

// handleEvent decodes a browser event, dispatches it to the profile's session,
// and returns the recorded effects.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	var ev Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		if isMaxBytesError(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large (max 10MB)")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid event body")
		return
	}

	profile := profileFromRequest(w, r)
	sess := s.sessions.Open(profile)

	resp, err := sess.Dispatch(ev)
	if err != nil {
		log.Printf("editor event rejected profile=%s type=%q err=%v", profile, ev.Type, err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleExport returns the profile's explicitly saved document as a .doc download.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	profile := profileFromRequest(w, r)

	markup, ok, err := s.backend.Get(profile, store.KeyDoc)
	if err != nil {
		log.Printf("editor export failed profile=%s err=%v", profile, err)
		writeError(w, http.StatusInternalServerError, "storage unavailable")
		return
	}
	if !ok || document.IsBlank(markup) {
		writeError(w, http.StatusNotFound, controller.StatusNoDocument)
		return
	}

	filename := sanitizeFilename(s.settings.ExportFilename)
	w.Header().Set("Content-Type", document.ExportMIME)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.WriteHeader(http.StatusOK)
	w.Write(document.ExportShell(markup))
}

// handleImport converts posted markdown into markup and replaces the profile's document.
// Accepts a "markdown" form field or a "file" upload.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)

	if err := r.ParseMultipartForm(maxBodySize); err != nil {
		if isMaxBytesError(err) {
			writeError(w, http.StatusRequestEntityTooLarge, "upload too large (max 10MB)")
			return
		}
		// Fall back to regular form parsing
		if err := r.ParseForm(); err != nil {
			writeError(w, http.StatusBadRequest, "failed to parse form")
			return
		}
	}

	source := r.FormValue("markdown")

	// Try file upload if no field content
	if source == "" {
		file, _, err := r.FormFile("file")
		if err == nil {
			defer file.Close()
			content, err := io.ReadAll(file)
			if err != nil {
				writeError(w, http.StatusRequestEntityTooLarge, "upload too large (max 10MB)")
				return
			}
			source = string(content)
		}
	}

	if strings.TrimSpace(source) == "" {
		writeError(w, http.StatusUnprocessableEntity, "markdown is required")
		return
	}

	markup, err := document.FromMarkdown(source)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	profile := profileFromRequest(w, r)
	resp := s.sessions.Open(profile).Import(markup)
	writeJSON(w, http.StatusOK, resp)
}

// groupRibbon splits the ribbon into consecutive runs of the same group.
func groupRibbon(ribbon []controller.Control) []RibbonGroup {
	var groups []RibbonGroup
	for _, c := range ribbon {
		if n := len(groups); n > 0 && groups[n-1].Name == c.Group {
			groups[n-1].Controls = append(groups[n-1].Controls, c)
			continue
		}
		groups = append(groups, RibbonGroup{Name: c.Group, Controls: []controller.Control{c}})
	}
	return groups
}

// sanitizeFilename strips path separators, control chars, and quotes from a name
// to produce a safe filename. Falls back to the default export name if the result is empty.
func sanitizeFilename(name string) string {
	var b strings.Builder
	for _, r := range name {
		if r == '/' || r == '\\' || r == '"' || r == '\'' || r < 32 || r == 127 {
			continue
		}
		b.WriteRune(r)
	}

	sanitized := strings.TrimSpace(b.String())
	if sanitized == "" {
		return document.ExportFilename
	}
	return sanitized
}

func isMaxBytesError(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
