package web

import (
	"net/http"
	"strings"

	"textlens/internal/apiclient"
)

type loginData struct {
	baseData
	Email             string
	Error             string
	NeedsConfirmation bool
	ResendMessage     string
}

type registerData struct {
	baseData
	Email    string
	FullName string
	Error    string
}

// LoginForm renders the sign-in screen, or redirects home when a user is
// already signed in.
func (h *Handler) LoginForm(w http.ResponseWriter, r *http.Request) {
	if h.Store.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "login", loginData{baseData: h.base("Sign in")})
}

// LoginSubmit runs the login operation. A 400 whose detail mentions email
// confirmation additionally offers the resend-confirmation affordance.
func (h *Handler) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	if err := h.Store.Login(r.Context(), email, password); err != nil {
		data := loginData{
			baseData:          h.base("Sign in"),
			Email:             email,
			Error:             apiclient.UserMessage(err),
			NeedsConfirmation: apiclient.NeedsEmailConfirmation(err),
		}
		h.render(w, http.StatusOK, "login", data)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ResendConfirmation asks the collaborator to resend the confirmation
// email and re-renders the login screen with the outcome.
func (h *Handler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))

	data := loginData{baseData: h.base("Sign in"), Email: email}
	if err := h.Client.ResendConfirmation(r.Context(), email); err != nil {
		data.ResendMessage = "Could not send the confirmation email. Please try again"
	} else {
		data.ResendMessage = "Confirmation email sent. Check your inbox"
	}
	h.render(w, http.StatusOK, "login", data)
}

// RegisterForm renders the registration screen, or redirects home when a
// user is already signed in.
func (h *Handler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if h.Store.IsAuthenticated() {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}
	h.render(w, http.StatusOK, "register", registerData{baseData: h.base("Register")})
}

// RegisterSubmit runs the register operation and signs the user in on
// success.
func (h *Handler) RegisterSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	fullName := strings.TrimSpace(r.PostFormValue("full_name"))

	if err := h.Store.Register(r.Context(), email, password, fullName); err != nil {
		data := registerData{
			baseData: h.base("Register"),
			Email:    email,
			FullName: fullName,
			Error:    apiclient.UserMessage(err),
		}
		h.render(w, http.StatusOK, "register", data)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout clears the session and goes home. The collaborator call inside
// the store is best effort.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.Store.Logout(r.Context())
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
