package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/privacy-lab/tikun13/pkg/catalog"
	"github.com/privacy-lab/tikun13/pkg/domain/model"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Catalog holds CLI flags for rule catalog configuration
type Catalog struct {
	path string
}

// catalogFile is the TOML layout of a catalog override file
type catalogFile struct {
	Sections []model.Section `toml:"section"`
}

// Flags returns CLI flags for catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "Path to a TOML catalog file replacing the built-in questionnaire",
			Sources:     cli.EnvVars("TIKUN13_CATALOG"),
			Destination: &c.path,
		},
	}
}

// Configure loads and validates the catalog: the built-in questionnaire by
// default, or a TOML override when a path is given
func (c *Catalog) Configure() (*catalog.Catalog, error) {
	if c.path == "" {
		cat := catalog.Default()
		if err := cat.Validate(); err != nil {
			return nil, goerr.Wrap(err, "built-in catalog is invalid")
		}
		return cat, nil
	}

	// #nosec G304 - path is expected to be provided by CLI argument
	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file", goerr.V("path", c.path))
	}

	var file catalogFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, goerr.Wrap(err, "failed to parse TOML catalog", goerr.V("path", c.path))
	}
	if len(file.Sections) == 0 {
		return nil, goerr.New("catalog file has no sections", goerr.V("path", c.path))
	}

	cat := catalog.New(file.Sections)
	if err := cat.Validate(); err != nil {
		return nil, goerr.Wrap(err, "catalog validation failed", goerr.V("path", c.path))
	}

	logging.Default().Info("Loaded catalog override",
		"path", c.path,
		"sections", len(file.Sections),
		"questions", len(cat.AllQuestions()),
	)
	return cat, nil
}
