package app

import (
	"bistro/internal/domain"
	"bistro/internal/service"
)

// ============================================================
// Profile / Session
// ============================================================
//
// Validation errors reject the frontend promise with the message to show.

func (a *App) GetSession() domain.SessionState {
	return a.svc.Session.State()
}

func (a *App) Register(in service.RegisterInput) (domain.SessionState, error) {
	return a.svc.Session.Register(a.ctx, in)
}

func (a *App) Login(email, password string) (domain.SessionState, error) {
	return a.svc.Session.Login(a.ctx, email, password)
}

func (a *App) Logout() domain.SessionState {
	return a.svc.Session.Logout(a.ctx)
}

func (a *App) GetAuthForm() service.AuthForm {
	return a.svc.Session.Form()
}

func (a *App) SetAuthForm(form service.AuthForm) service.AuthForm {
	return a.svc.Session.SetForm(form)
}

func (a *App) SwitchAuthMode() service.AuthForm {
	return a.svc.Session.SwitchMode()
}

func (a *App) SubmitAuthForm() (domain.SessionState, error) {
	return a.svc.Session.SubmitForm(a.ctx)
}
