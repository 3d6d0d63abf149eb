package command

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-lambda-go/lambdaurl"
	"github.com/dmorgan81/logoforge/internal/config"
	"github.com/dmorgan81/logoforge/internal/log"
	"github.com/dmorgan81/logoforge/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newServeCommand(root *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the logo generator web page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, injector, err := setup(cmd, root)
			if err != nil {
				return err
			}
			defer func() { _ = injector.Shutdown() }()

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			gin.SetMode(gin.ReleaseMode)
			srv, err := do.Invoke[*server.Server](injector)
			if err != nil {
				return err
			}

			if os.Getenv("AWS_LAMBDA_RUNTIME_API") != "" {
				log.FromContextOrDiscard(ctx).Info("serving lambda function url")
				lambdaurl.Start(srv.Handler(), lambda.WithContext(ctx), lambda.WithEnableSIGTERM(func() {
					_ = injector.Shutdown()
				}))
				return nil
			}

			cfg := do.MustInvoke[*config.Config](injector)
			return srv.ListenAndServe(ctx, lo.Ternary(addr != "", addr, cfg.ListenAddr))
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides LISTEN_ADDR")
	return cmd
}
