package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/doorap-lab/doorap/pkg/cli/config"
	"github.com/doorap-lab/doorap/pkg/usecase"
	"github.com/doorap-lab/doorap/pkg/utils/logging"
	"github.com/doorap-lab/doorap/pkg/utils/safe"
)

// cmdEvaluate runs the alert rules once against the configured backend.
// Useful from cron or for debugging rule behavior against a live database.
func cmdEvaluate() *cli.Command {
	var repoCfg config.Repository
	var engineCfg config.Engine

	var flags []cli.Flag
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, engineCfg.Flags()...)

	return &cli.Command{
		Name:    "evaluate",
		Aliases: []string{"e"},
		Usage:   "Run the alert rules once and store newly derived notifications",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := engineCfg.Load(); err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			uc := usecase.New(repo, engineCfg.UseCaseOptions()...)

			derived, err := uc.RefreshNotifications(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to evaluate alert rules")
			}

			logging.Default().Info("Evaluation completed", "derived", len(derived))
			for _, n := range derived {
				logging.Default().Info("derived notification",
					"type", n.Type,
					"parent", n.ParentID,
					"message", n.Message,
				)
			}
			return nil
		},
	}
}
