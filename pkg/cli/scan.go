package cli

import (
	"context"
	"encoding/json"
	"os"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/privacy-lab/tikun13/pkg/report"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
	"github.com/privacy-lab/tikun13/pkg/utils/safe"
	"github.com/privacy-lab/tikun13/pkg/webscan"
)

func cmdScan() *cli.Command {
	var format string
	var outputPath string
	var timeout time.Duration
	var proxy string

	return &cli.Command{
		Name:      "scan",
		Usage:     "Scan a website for privacy compliance signals",
		ArgsUsage: "<url>",
		Flags: []cli.Flag{
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
			&cli.DurationFlag{
				Name:        "timeout",
				Usage:       "Timeout for each HTTP request",
				Value:       15 * time.Second,
				Sources:     cli.EnvVars("TIKUN13_SCAN_TIMEOUT"),
				Destination: &timeout,
			},
			&cli.StringFlag{
				Name:        "proxy",
				Usage:       "HTTP proxy URL used for the scan",
				Sources:     cli.EnvVars("TIKUN13_SCAN_PROXY"),
				Destination: &proxy,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			target := c.Args().First()
			if target == "" {
				return goerr.New("a target URL is required")
			}

			opts := []webscan.FetcherOption{webscan.WithTimeout(timeout)}
			if proxy != "" {
				opts = append(opts, webscan.WithProxy(proxy))
			}

			result := webscan.NewFetcher(opts...).Scan(ctx, target)
			if result.Failed {
				logging.Default().Warn("Scan did not complete",
					"url", result.URL,
					"error", result.Error,
				)
			} else {
				logging.Default().Info("Scan completed",
					"url", result.URL,
					"score", result.Score,
					"violations", len(result.Violations),
				)
			}

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
				report.RenderScanText(out, result)
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return goerr.Wrap(err, "failed to encode scan result")
				}
			case "html":
				if err := report.RenderScanHTML(out, result); err != nil {
					return goerr.Wrap(err, "failed to render HTML report")
				}
			default:
				return goerr.New("unknown report format", goerr.V("format", format))
			}

			return nil
		},
	}
}
