package app

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/JaimeStill/chargepoint/internal/sessions"
	"github.com/JaimeStill/chargepoint/internal/stations"
	"github.com/JaimeStill/chargepoint/internal/users"
	"github.com/JaimeStill/chargepoint/pkg/web"
)

const defaultMaxFormSize = 64 << 10

type handler struct {
	ts     *web.TemplateSet
	deps   Deps
	logger *slog.Logger
}

func newHandler(ts *web.TemplateSet, deps Deps) *handler {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if deps.MaxFormSize <= 0 {
		deps.MaxFormSize = defaultMaxFormSize
	}
	return &handler{
		ts:     ts,
		deps:   deps,
		logger: logger.With("module", "app"),
	}
}

type credentialsForm struct {
	Email       string
	DisplayName string
	Redirect    string
}

type stationsView struct {
	Stations []stations.Station
	Filters  stations.Filters
}

func (h *handler) route(name string) web.RouteDef {
	r, _ := Routes.ByName(name)
	return r
}

func (h *handler) url(name string) string {
	u, _ := Routes.URL(h.ts.BasePath(), name)
	return u
}

func (h *handler) page(r *http.Request, name string) web.PageData {
	data := h.ts.Data(h.route(name))
	signedIn(r, &data)
	return data
}

func signedIn(r *http.Request, data *web.PageData) {
	_, data.SignedIn = sessions.FromContext(r.Context())
}

func (h *handler) render(w http.ResponseWriter, status int, name string, data web.PageData) {
	if err := h.ts.Render(w, status, layout, h.route(name).Template, data); err != nil {
		h.logger.Error("render failed", "route", name, "error", err)
		h.fail(w, err)
	}
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	h.logger.Error("request failed", "error", err)
	data := web.PageData{Title: "Something went wrong", BasePath: h.ts.BasePath()}
	if rerr := h.ts.Render(w, http.StatusInternalServerError, layout, errorTemplate, data); rerr != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *handler) loginForm(w http.ResponseWriter, r *http.Request) {
	data := h.page(r, "login")
	data.Data = credentialsForm{Redirect: r.URL.Query().Get(web.RedirectParam)}
	h.render(w, http.StatusOK, "login", data)
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	form := credentialsForm{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Redirect: r.PostFormValue(web.RedirectParam),
	}

	user, err := h.deps.Users.Authenticate(r.Context(), form.Email, r.PostFormValue("password"))
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			data := h.page(r, "login")
			data.Data = form
			data.Error = err.Error()
			h.render(w, users.MapHTTPStatus(err), "login", data)
			return
		}
		h.fail(w, err)
		return
	}

	if err := h.signIn(w, user); err != nil {
		h.fail(w, err)
		return
	}

	target := web.SafeRedirect(form.Redirect, h.route("stations").Path)
	http.Redirect(w, r, web.JoinPath(h.ts.BasePath(), target), http.StatusSeeOther)
}

func (h *handler) registerForm(w http.ResponseWriter, r *http.Request) {
	data := h.page(r, "register")
	data.Data = credentialsForm{}
	h.render(w, http.StatusOK, "register", data)
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	if !h.parseForm(w, r) {
		return
	}

	cmd := users.RegisterCommand{
		Email:       r.PostFormValue("email"),
		DisplayName: r.PostFormValue("display_name"),
		Password:    r.PostFormValue("password"),
	}

	user, err := h.deps.Users.Register(r.Context(), cmd)
	if err != nil {
		status := users.MapHTTPStatus(err)
		if status == http.StatusInternalServerError {
			h.fail(w, err)
			return
		}
		data := h.page(r, "register")
		data.Data = credentialsForm{Email: cmd.Email, DisplayName: cmd.DisplayName}
		data.Error = err.Error()
		h.render(w, status, "register", data)
		return
	}

	if err := h.signIn(w, user); err != nil {
		h.fail(w, err)
		return
	}
	http.Redirect(w, r, h.url("profile"), http.StatusSeeOther)
}

// parseForm reads a size-limited form body, answering 413 or 400 on failure.
func (h *handler) parseForm(w http.ResponseWriter, r *http.Request) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.deps.MaxFormSize)
	if err := r.ParseForm(); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "form too large", http.StatusRequestEntityTooLarge)
			return false
		}
		http.Error(w, "invalid form", http.StatusBadRequest)
		return false
	}
	return true
}

func (h *handler) signIn(w http.ResponseWriter, user *users.User) error {
	token, sess, err := h.deps.Sessions.Create(user.ID)
	if err != nil {
		return err
	}
	h.deps.Sessions.SetCookie(w, token, sess.ExpiresAt)
	return nil
}

func (h *handler) logout(w http.ResponseWriter, r *http.Request) {
	if token := h.deps.Sessions.Token(r); token != "" {
		h.deps.Sessions.Delete(token)
	}
	h.deps.Sessions.ClearCookie(w)
	http.Redirect(w, r, h.url("home"), http.StatusSeeOther)
}

func (h *handler) profile(w http.ResponseWriter, r *http.Request) {
	id, ok := sessions.UserID(r.Context())
	if !ok {
		http.Redirect(w, r, web.LoginRedirect(h.url("login"), r.URL.RequestURI()), http.StatusSeeOther)
		return
	}

	user, err := h.deps.Users.Find(r.Context(), id)
	if errors.Is(err, users.ErrNotFound) {
		h.deps.Sessions.Delete(h.deps.Sessions.Token(r))
		h.deps.Sessions.ClearCookie(w)
		http.Redirect(w, r, h.url("login"), http.StatusSeeOther)
		return
	}
	if err != nil {
		h.fail(w, err)
		return
	}

	data := h.page(r, "profile")
	data.User = user
	h.render(w, http.StatusOK, "profile", data)
}

func (h *handler) stations(w http.ResponseWriter, r *http.Request) {
	filters := stations.FiltersFromQuery(r.URL.Query())

	list, err := h.deps.Stations.List(r.Context(), filters)
	if err != nil {
		h.fail(w, err)
		return
	}

	data := h.page(r, "stations")
	data.Data = stationsView{Stations: list, Filters: filters}
	h.render(w, http.StatusOK, "stations", data)
}
