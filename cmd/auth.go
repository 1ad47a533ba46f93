package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/urfave/cli/v3"

	"filmoteca/internal/server"
	"filmoteca/internal/shared"
)

// ConfigInit writes a starter config.toml for the user to fill in.
func (r *Runner) ConfigInit(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.writePlain("✓ Created %s\n", path)
	r.writePlain("Fill in your identity provider credentials before logging in.\n")
	return nil
}

// AuthLogin runs the login redirect: a temporary localhost server receives the
// provider's callback while the browser handles the actual login.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	if r.provider == nil {
		return fmt.Errorf("%w: set auth.domain and auth.client_id in config.toml", shared.ErrMissingCredentials)
	}

	state := shared.GenerateState()
	authURL := r.provider.AuthURL(state)

	handler := server.NewCallbackHandler(r.provider.OAuthConfig(), state)
	router := server.NewBasicRouter()
	router.Handler(handler)

	serverAddr := fmt.Sprintf("%s:%d", r.config.Server.Host, r.config.Server.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	serverErrors := make(chan error, 1)
	go func() {
		r.logger.Infof("starting callback server at %v", serverAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	time.Sleep(100 * time.Millisecond)

	r.writePlain("→ Opening browser for login...\n")
	if err := shared.OpenBrowser(authURL); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlainln("⚠ Could not open browser automatically.")
		r.writePlain("Please open this URL in your browser:\n%s\n\n", authURL)
	}

	r.writePlain("→ Waiting for login (2 minute timeout)...\n")

	timeout := time.NewTimer(2 * time.Minute)
	defer timeout.Stop()

	var result server.CallbackResult

	select {
	case result = <-handler.Result():
		// Got result from callback
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-timeout.C:
		return fmt.Errorf("%w: login timed out after 2 minutes", shared.ErrTimeout)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		r.logger.Warn("error shutting down server", "error", err)
	}

	if result.Error() != nil {
		return fmt.Errorf("%w: %v", shared.ErrAuthFailed, result.Error())
	}

	if result.Token == nil {
		return fmt.Errorf("%w: no token received", shared.ErrAuthFailed)
	}

	if err := r.provider.SaveToken(result.Token); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	r.writePlainln("✓ Login successful")
	r.writePlain("You can now use: filmoteca movies list\n")

	return nil
}

// AuthLogout clears the persisted session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	if r.provider == nil {
		return fmt.Errorf("%w: set auth.domain and auth.client_id in config.toml", shared.ErrMissingCredentials)
	}

	if err := r.provider.Logout(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	return r.writePlain("✓ Logged out\n")
}

// AuthStatus reports the current session state and user identity.
func (r *Runner) AuthStatus(ctx context.Context, cmd *cli.Command) error {
	if r.provider == nil {
		return fmt.Errorf("%w: set auth.domain and auth.client_id in config.toml", shared.ErrMissingCredentials)
	}

	sess := r.provider.Current(ctx)

	if !sess.Authenticated {
		r.writePlain("Session: ✗ Not authenticated\n")
		r.writePlain("Run: filmoteca auth login\n")
		return nil
	}

	r.writePlain("Session: ✓ Authenticated\n")
	if sess.User != nil {
		r.writePlain("User: %s\n", sess.User.Name)
		r.writePlain("Email: %s\n", sess.User.Email)
	}
	if sess.Err != nil {
		r.writePlain("Warning: %v\n", sess.Err)
	}

	return nil
}
