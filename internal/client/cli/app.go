// Package cli is the interactive presentation layer. It renders
// whatever state the session controller produces and never interprets
// announcement bodies.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vimarshsub/schoolstatus-cli/internal/client/backend"
	"github.com/vimarshsub/schoolstatus-cli/internal/client/config"
	"github.com/vimarshsub/schoolstatus-cli/internal/client/session"
	"github.com/vimarshsub/schoolstatus-cli/internal/logging"
)

type App struct {
	config     *config.Config
	controller *session.Controller
	log        logging.Logger
	reader     *bufio.Reader
	out        io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) *App {
	api := backend.NewHTTPClient(cfg.BackendBaseURL, cfg.RequestTimeout, log)
	controller := session.NewController(api, api, log)

	return &App{
		config:     cfg,
		controller: controller,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
	}
}

// Run shows the landing banner, leaves the landing state, and hands
// control to the REPL until EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "SchoolStatus Workflow Interface (type 'help' for commands)")
	a.controller.Proceed()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.controller.View() == session.ViewAuthenticated
}

func (a *App) getStatus() string {
	if username := a.controller.Username(); username != "" {
		return fmt.Sprintf("(%s)", username)
	}
	return ""
}
