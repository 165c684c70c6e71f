package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/privacy-lab/tikun13/pkg/cli/config"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/report"
	"github.com/privacy-lab/tikun13/pkg/scoring"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
	"github.com/privacy-lab/tikun13/pkg/utils/safe"
)

func cmdEvaluate() *cli.Command {
	var answersPath string
	var format string
	var outputPath string
	var catalogCfg config.Catalog

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "answers",
			Aliases:     []string{"a"},
			Usage:       "Path to a JSON file of question answers",
			Required:    true,
			Sources:     cli.EnvVars("TIKUN13_ANSWERS"),
			Destination: &answersPath,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Report format (text, json, html)",
			Value:       "text",
			Sources:     cli.EnvVars("TIKUN13_FORMAT"),
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Write the report to a file instead of stdout",
			Sources:     cli.EnvVars("TIKUN13_OUTPUT"),
			Destination: &outputPath,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)

	return &cli.Command{
		Name:    "evaluate",
		Aliases: []string{"eval"},
		Usage:   "Evaluate questionnaire answers and print a compliance report",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			cat, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}

			// #nosec G304 - path is expected to be provided by CLI argument
			data, err := os.ReadFile(answersPath)
			if err != nil {
				return goerr.Wrap(err, "failed to read answers file", goerr.V("path", answersPath))
			}

			var answers model.AnswerSet
			if err := json.Unmarshal(data, &answers); err != nil {
				return goerr.Wrap(err, "failed to parse answers file", goerr.V("path", answersPath))
			}

			result := scoring.Evaluate(answers, cat)
			logging.Default().Info("Evaluated answers",
				"answered", result.AnsweredCount,
				"questions", result.QuestionCount,
				"score", result.Score,
				"risk_level", result.Classification.Level,
			)

			out := os.Stdout
			if outputPath != "" {
				f, err := os.Create(outputPath)
				if err != nil {
					return goerr.Wrap(err, "failed to create output file", goerr.V("path", outputPath))
				}
				defer safe.Close(ctx, f)
				out = f
			}

			switch format {
			case "text":
				report.RenderText(out, result)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return goerr.Wrap(err, "failed to encode result")
				}
			case "html":
				if err := report.RenderHTML(out, result); err != nil {
					return goerr.Wrap(err, "failed to render HTML report")
				}
			default:
				return goerr.New("unknown report format", goerr.V("format", format))
			}

			return nil
		},
	}
}
