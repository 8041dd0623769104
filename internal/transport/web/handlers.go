package web

import (
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/sandevgo/csvrepl/internal/core"
	"github.com/sandevgo/csvrepl/internal/service/session"
	"github.com/sandevgo/csvrepl/pkg/log"
)

type visitor struct {
	cookie   *sessions.Session
	id       string
	loggedIn bool
	mode     session.Mode
}

func (s *Server) visitor(r *http.Request) visitor {
	sess, _ := r.Context().Value(sessionCtxKey{}).(*sessions.Session)
	v := visitor{cookie: sess, mode: s.defaultMode, loggedIn: !s.app.IsLoginRequired()}
	if sess == nil {
		return v
	}

	v.id, _ = sess.Values["id"].(string)
	if auth, ok := sess.Values["auth"].(bool); ok && auth {
		v.loggedIn = true
	}
	if raw, ok := sess.Values["mode"].(string); ok {
		if mode, err := session.ParseMode(raw); err == nil {
			v.mode = mode
		}
	}
	return v
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	v := s.visitor(r)
	data := pageData{
		Title:        core.AppName,
		LoggedIn:     v.loggedIn,
		RequireLogin: s.app.IsLoginRequired(),
		Verbose:      v.mode == session.ModeVerbose,
	}
	// Viewing never creates a session; the first submit does
	if repl, ok := s.sessions.Lookup(v.id); v.loggedIn && ok {
		data.Count = repl.Len()
		data.Entries = newPageEntries(repl.Recent())
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to render page")
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	s.setAuth(w, r, true)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if v := s.visitor(r); v.id != "" {
		s.sessions.Drop(v.id)
	}
	s.setAuth(w, r, false)
}

func (s *Server) setAuth(w http.ResponseWriter, r *http.Request, auth bool) {
	v := s.visitor(r)
	if v.cookie == nil {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}
	v.cookie.Values["auth"] = auth
	if !s.save(w, r, v.cookie) {
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	v := s.visitor(r)
	if !v.loggedIn {
		http.Error(w, "login required", http.StatusForbidden)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	line := r.PostForm.Get("command")
	repl := s.sessions.Get(v.id)
	repl.Submit(r.Context(), line)

	name, _ := session.Tokenize(line, s.app.IsQuotedArgs())
	label := "unknown"
	for _, cmd := range repl.Commands() {
		if cmd == name {
			label = name
			break
		}
	}
	s.metrics.commandsTotal.WithLabelValues(label).Inc()

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleMode(w http.ResponseWriter, r *http.Request) {
	v := s.visitor(r)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	mode, err := session.ParseMode(r.PostForm.Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if v.cookie == nil {
		http.Error(w, "no session", http.StatusInternalServerError)
		return
	}
	v.cookie.Values["mode"] = string(mode)
	if !s.save(w, r, v.cookie) {
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) save(w http.ResponseWriter, r *http.Request, sess *sessions.Session) bool {
	if err := sess.Save(r, w); err != nil {
		log.FromCtx(r.Context()).Error().Err(err).Msg("failed to save session cookie")
		http.Error(w, "failed to save session", http.StatusInternalServerError)
		return false
	}
	return true
}
