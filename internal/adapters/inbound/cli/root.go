package cli

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/abdidvp/storefront/internal/adapters/outbound/config"
	"github.com/abdidvp/storefront/internal/adapters/outbound/logging"
	"github.com/abdidvp/storefront/internal/adapters/outbound/metrics"
	"github.com/abdidvp/storefront/internal/application"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
)

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	path        string
	logLevel    string
	metricsAddr string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "A small retail store in your terminal",
		Long:  "Storefront manages a catalog of products with optional promotions and turns baskets into orders. Run without a subcommand for the interactive menu.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShop(cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.path, "path", ".", "Directory containing "+config.FileName)
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", logging.LevelOff, "Log level written to stderr (off, debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while running (e.g. :9090)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newShopCmd(opts))
	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newTotalCmd(opts))
	cmd.AddCommand(newOrderCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newMCPCmd(opts))
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
		return err
	}
	return nil
}

// runtime is the wired application for one command invocation.
type runtime struct {
	svc           *application.ShopService
	logger        *zap.Logger
	metricsServer *http.Server
}

func openRuntime(opts *rootOptions) (*runtime, error) {
	env := os.Getenv("STOREFRONT_ENV")
	if env == "" {
		env = "dev"
	}

	logger, err := logging.New("storefront", env, opts.logLevel)
	if err != nil {
		return nil, err
	}

	recorder := metrics.New()
	rt := &runtime{logger: logger}

	if opts.metricsAddr != "" {
		srv, err := recorder.Serve(opts.metricsAddr)
		if err != nil {
			return nil, fmt.Errorf("starting metrics server: %w", err)
		}
		rt.metricsServer = srv
		logger.Info("metrics_server_start", zap.String("addr", opts.metricsAddr))
	}

	svc, err := application.OpenShop(config.New(), opts.path, recorder, logger)
	if err != nil {
		rt.close()
		return nil, err
	}
	rt.svc = svc
	return rt, nil
}

func (r *runtime) close() {
	if err := metrics.Shutdown(r.metricsServer, 5*time.Second); err != nil {
		r.logger.Error("metrics_server_shutdown_error", zap.Error(err))
	}
	_ = r.logger.Sync()
}
