package menu

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/etrade-cli/internal/domain"
	"github.com/bnema/etrade-cli/internal/ports"
	"github.com/pkg/browser"
	log "github.com/sirupsen/logrus"
)

const unknownOption = "Unknown Option Selected!"

// TerminalPrompter asks for the environment and verification code on the
// terminal and opens the authorization page in a browser.
type TerminalPrompter struct {
	input       *Input
	out         io.Writer
	openBrowser func(string) error
	logger      log.FieldLogger
}

var _ ports.Prompter = (*TerminalPrompter)(nil)

func NewTerminalPrompter(input *Input, out io.Writer, logger log.FieldLogger) *TerminalPrompter {
	if logger == nil {
		logger = log.StandardLogger()
	}

	return &TerminalPrompter{
		input:       input,
		out:         out,
		openBrowser: browser.OpenURL,
		logger:      logger,
	}
}

func (p *TerminalPrompter) SelectEnvironment(ctx context.Context) (domain.Environment, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		_, _ = fmt.Fprintln(p.out)
		p.input.printOptions("Sandbox Consumer Key", "Live Consumer Key", "Exit")
		selection, err := p.input.Ask("Please select Consumer Key Type: ")
		if err != nil {
			return "", err
		}

		switch selection {
		case "1":
			return domain.EnvironmentSandbox, nil
		case "2":
			return domain.EnvironmentLive, nil
		case "3":
			return "", domain.ErrExitRequested
		default:
			_, _ = fmt.Fprintln(p.out, unknownOption)
		}
	}
}

func (p *TerminalPrompter) VerificationCode(ctx context.Context, authorizationURL string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := p.openBrowser(authorizationURL); err != nil {
		p.logger.WithError(err).Warn("could not open browser")
	}

	_, _ = fmt.Fprintf(p.out, "\nOpen this URL to authorize the application:\n%s\n\n", authorizationURL)
	_, _ = fmt.Fprintln(p.out, "Please accept agreement and enter verification code from browser.")
	return p.input.Ask("Verification Code: ")
}
