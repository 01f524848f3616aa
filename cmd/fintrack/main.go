// Command fintrack drives the finance services from the terminal. Every
// command prints a JSON result envelope on stdout.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nikkjke/finance-tracker/internal/app"
	"github.com/nikkjke/finance-tracker/internal/config"
	"github.com/nikkjke/finance-tracker/internal/logging"
	"github.com/nikkjke/finance-tracker/internal/models"
	"github.com/nikkjke/finance-tracker/internal/service"
)

// errFailed signals that the printed envelope reports a failure.
var errFailed = errors.New("operation failed")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errFailed) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	c := &cli{in: stdin, out: stdout, errOut: stderr}
	defer c.close()

	root := newRootCmd(c)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.ExecuteContext(ctx)
}

// cli carries the streams and the lazily opened application.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	envFile  string
	logLevel string

	cfg config.Config
	app *app.App
}

func newRootCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fintrack",
		Short: "Personal finance tracker",
		Long: `fintrack manages expenses, budgets and the signed-in session.
Configuration comes from FINTRACK_* environment variables and an optional
.env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.envFile)
			if err != nil {
				return err
			}
			if c.logLevel != "" {
				cfg.LogLevel = c.logLevel
			}
			logging.Setup(c.errOut, cfg.LogLevel)
			c.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&c.envFile, "env-file", ".env", "Path to an optional .env file")
	cmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Override FINTRACK_LOG_LEVEL")

	cmd.AddCommand(
		newLoginCmd(c),
		newRegisterCmd(c),
		newLogoutCmd(c),
		newWhoamiCmd(c),
		newRoleCmd(c),
		newExpensesCmd(c),
		newBudgetsCmd(c),
		newThemeCmd(c),
	)
	return cmd
}

// open returns the application, opening the store on first use.
func (c *cli) open(ctx context.Context) (*app.App, error) {
	if c.app != nil {
		return c.app, nil
	}
	a, err := app.Open(ctx, c.cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	c.app = a
	return a, nil
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	if err := c.app.Close(); err != nil {
		logging.Warnf("close store: %v", err)
	}
	c.app = nil
}

// currentUser returns the signed-in principal.
func (c *cli) currentUser(ctx context.Context) (models.User, error) {
	a, err := c.open(ctx)
	if err != nil {
		return models.User{}, err
	}
	u, ok := a.Auth.RestoreSession(ctx)
	if !ok {
		return models.User{}, &service.Error{
			Kind:    service.KindAuthentication,
			Op:      "session",
			Message: "Not signed in. Run 'fintrack login' first.",
		}
	}
	return u, nil
}

// emit prints the envelope for v and err. A failed envelope yields
// errFailed so the process exits non-zero.
func emit[T any](c *cli, v T, err error) error {
	if err != nil && service.KindOf(err) == "" {
		return err
	}
	return printResult(c, service.NewResult(v, err))
}

// emitDone is emit for operations without a payload.
func emitDone(c *cli, err error) error {
	if err != nil && service.KindOf(err) == "" {
		return err
	}
	return printResult(c, service.Done(err))
}

func printResult[T any](c *cli, res service.Result[T]) error {
	enc := json.NewEncoder(c.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return err
	}
	if !res.Success {
		return errFailed
	}
	return nil
}

// readPassword prompts on the error stream and reads one line. Terminal
// input is not echoed.
func readPassword(stdin io.Reader, prompt io.Writer) (string, error) {
	fmt.Fprint(prompt, "Password: ")
	defer fmt.Fprintln(prompt)

	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		b, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(b), nil
	}

	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
