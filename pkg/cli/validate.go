package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/privacy-lab/tikun13/pkg/cli/config"
)

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog

	return &cli.Command{
		Name:  "validate",
		Usage: "Validate a question catalog without running an assessment",
		Flags: catalogCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}

			fmt.Printf("Catalog is valid: %d sections, %d questions, max score %d\n",
				len(cat.Sections()), len(cat.AllQuestions()), cat.MaxScore())
			return nil
		},
	}
}
