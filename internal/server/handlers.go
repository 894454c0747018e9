package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/joseph-ayodele/homepage/internal/common"
	"github.com/joseph-ayodele/homepage/internal/guestbook"
	"github.com/joseph-ayodele/homepage/internal/profiles"
)

func (s *Server) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusFound)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	entries, err := s.guestbook.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list entries", "error", err)
		entries = nil
	}

	var buf bytes.Buffer
	if err := s.renderer.Home(&buf, s.profiles.Current(), entries); err != nil {
		s.logger.Error("failed to render home page", "error", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

func (s *Server) handleSign(w http.ResponseWriter, r *http.Request) {
	req := guestbook.SignRequest{
		SenderName: r.PostFormValue("sender_name"),
		Message:    r.PostFormValue("message"),
	}
	if _, err := s.guestbook.Sign(r.Context(), req); err != nil && !errors.Is(err, common.ErrValidation) {
		s.logger.Error("failed to sign guestbook", "error", err)
	}
	s.redirectHome(w, r)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	if err := s.authorize(r); err != nil {
		s.logger.Warn("rejected delete", "entry_id", id, "error", err)
		s.redirectHome(w, r)
		return
	}
	if err := s.guestbook.Delete(r.Context(), id); err != nil {
		s.logger.Error("failed to delete entry", "entry_id", id, "error", err)
	}
	s.redirectHome(w, r)
}

func (s *Server) handleEdit(w http.ResponseWriter, r *http.Request) {
	if err := s.authorize(r); err != nil {
		s.logger.Warn("rejected profile edit", "error", err)
		s.redirectHome(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		s.logger.Warn("failed to parse profile form", "error", err)
		s.redirectHome(w, r)
		return
	}
	s.profiles.Edit(profiles.EditRequest{
		Name:  formValue(r, "name"),
		Title: formValue(r, "title"),
		About: formValue(r, "about"),
	})
	s.redirectHome(w, r)
}

func (s *Server) handleAbout(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := s.renderer.About(&buf, s.profiles.Current()); err != nil {
		s.logger.Error("failed to render about page", "error", err)
		http.Error(w, "Error rendering page", http.StatusInternalServerError)
		return
	}
	writeHTML(w, buf.Bytes())
}

// handleHealth always reports status "ok" while the process is serving; the
// storage field carries the backend mode, including degraded and memory.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"storage": string(s.storage.Mode()),
	})
}

// formValue distinguishes an absent form key (nil) from an empty one.
func formValue(r *http.Request, key string) *string {
	values, ok := r.PostForm[key]
	if !ok || len(values) == 0 {
		return nil
	}
	return &values[0]
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
