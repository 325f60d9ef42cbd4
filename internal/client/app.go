package client

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-ledger-keeper/internal/adapter"
	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// connectFunc builds the adapter once flags are parsed.
type connectFunc func(address, password string, timeout time.Duration, logger *logger.Logger) (adapter.LedgerClient, error)

type App struct {
	root *cobra.Command

	address  string
	password string
	timeout  time.Duration

	buildInfo models.AppBuildInfo
	connect   connectFunc
	logger    *logger.Logger
}

// NewApp builds ledgerctl. Flag defaults come from cfg, so LEDGER_ADDRESS and
// LEDGER_PASSWORD apply unless overridden on the command line.
func NewApp(cfg *config.Client, buildInfo models.AppBuildInfo, logger *logger.Logger) *App {
	a := &App{
		buildInfo: buildInfo,
		connect:   adapter.NewHTTPLedgerClient,
		logger:    logger,
	}

	a.root = &cobra.Command{
		Use:   "ledgerctl",
		Short: "Read and replace the document stored by a ledger server",
		Long: `ledgerctl talks to a ledger server over HTTP. It can check that the
server is alive, download the stored ledger document and upload a
replacement for it.`,
		SilenceUsage: true,
	}

	flags := a.root.PersistentFlags()
	flags.StringVar(&a.address, "address", cfg.Address, "ledger server base URL (env LEDGER_ADDRESS)")
	flags.StringVar(&a.password, "password", cfg.Password, "shared password (env LEDGER_PASSWORD)")
	flags.DurationVar(&a.timeout, "timeout", cfg.Timeout, "per-request timeout")

	a.root.AddCommand(a.pingCmd(), a.pullCmd(), a.pushCmd(), a.versionCmd())

	return a
}

// Run executes the command line of the current process.
func (a *App) Run() error {
	return a.run(context.Background(), os.Args[1:], os.Stdin, os.Stdout)
}

func (a *App) run(ctx context.Context, args []string, in io.Reader, out io.Writer) error {
	a.root.SetArgs(args)
	a.root.SetIn(in)
	a.root.SetOut(out)

	return a.root.ExecuteContext(ctx)
}

func (a *App) ledgerClient() (adapter.LedgerClient, error) {
	return a.connect(a.address, a.password, a.timeout, a.logger)
}
