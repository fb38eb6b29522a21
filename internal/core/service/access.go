package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/catalogadmin/console/internal/core/domain"
	"github.com/catalogadmin/console/internal/core/ports"
	"github.com/catalogadmin/console/internal/pkg/metrics"
	"github.com/catalogadmin/console/internal/pkg/validation"
)

const loginPath = "/auth/login"

// Access drives the unauthenticated forms: login and registration.
type Access struct {
	api     ports.Requester
	session *Session
	view    ports.View
	valid   *validation.Validator
	catalog *Catalog
	logger  zerolog.Logger
}

func NewAccess(api ports.Requester, session *Session, view ports.View, valid *validation.Validator, catalog *Catalog, logger zerolog.Logger) *Access {
	return &Access{
		api:     api,
		session: session,
		view:    view,
		valid:   valid,
		catalog: catalog,
		logger:  logger.With().Str("component", "access").Logger(),
	}
}

// Login exchanges the credentials for a token, stores it in the session,
// switches to the catalog panel and loads every list.
func (a *Access) Login(ctx context.Context, form domain.LoginForm) error {
	form = form.Trimmed()
	if err := a.valid.Form(domain.FormLogin, form); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(domain.FormLogin), "invalid").Inc()
		a.view.ShowError(domain.FormLogin, invalidMessage(domain.FormLogin, err))
		return err
	}

	resp, err := a.api.Do(ctx, ports.Request{
		Method: http.MethodPost,
		Path:   loginPath,
		Body:   form.Payload(),
	})
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(domain.FormLogin), "failed").Inc()
		a.logger.Warn().Str("username", form.Username).Msg("login failed")
		a.view.ShowError(domain.FormLogin, failureMessage(err, msgLoginRejected))
		return err
	}
	defer resp.Body.Close()

	var tok domain.TokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		derr := &domain.DecodeError{Path: loginPath, Err: err}
		metrics.SubmissionsTotal.WithLabelValues(string(domain.FormLogin), "failed").Inc()
		a.logger.Error().Err(derr).Msg("login response unreadable")
		a.view.ShowError(domain.FormLogin, msgUnexpected)
		return derr
	}
	if tok.Token == "" {
		derr := &domain.DecodeError{Path: loginPath, Err: errors.New("response carries no token")}
		metrics.SubmissionsTotal.WithLabelValues(string(domain.FormLogin), "failed").Inc()
		a.logger.Error().Err(derr).Msg("login response without token")
		a.view.ShowError(domain.FormLogin, msgTokenMissing)
		return derr
	}

	cred := a.session.SetCredential(tok.Token)
	metrics.SubmissionsTotal.WithLabelValues(string(domain.FormLogin), "success").Inc()
	a.logger.Info().
		Str("username", form.Username).
		Str("subject", cred.Subject).
		Time("expires_at", cred.ExpiresAt).
		Msg("logged in")

	a.view.ShowSuccess(msgLoggedIn)
	a.view.SwitchPanel(domain.PanelCatalog)
	if err := a.catalog.RefreshAll(ctx); err != nil {
		a.logger.Debug().Err(err).Msg("initial load incomplete")
	}
	return nil
}

// Register creates an account and sends the user back to the login panel.
// No list is refreshed.
func (a *Access) Register(ctx context.Context, form domain.RegisterForm) error {
	form = form.Trimmed()
	if err := a.valid.Form(domain.FormRegister, form); err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(domain.FormRegister), "invalid").Inc()
		a.view.ShowError(domain.FormRegister, invalidMessage(domain.FormRegister, err))
		return err
	}

	resp, err := a.api.Do(ctx, ports.Request{
		Method: http.MethodPost,
		Path:   domain.KindUser.Path(),
		Body:   form.Payload(),
	})
	if err != nil {
		metrics.SubmissionsTotal.WithLabelValues(string(domain.FormRegister), "failed").Inc()
		a.view.ShowError(domain.FormRegister, failureMessage(err, msgRegisterRejected))
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	metrics.SubmissionsTotal.WithLabelValues(string(domain.FormRegister), "success").Inc()
	a.logger.Info().Str("username", form.Username).Msg("registered")
	a.view.ShowSuccess(msgRegistered)
	a.view.SwitchPanel(domain.PanelLogin)
	return nil
}
