package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/privacy-lab/tikun13/pkg/domain/interfaces"
	"github.com/privacy-lab/tikun13/pkg/repository/localfile"
	"github.com/privacy-lab/tikun13/pkg/repository/memory"
	"github.com/privacy-lab/tikun13/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
	dir     string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory or localfile)",
			Value:       "memory",
			Sources:     cli.EnvVars("TIKUN13_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "storage-dir",
			Usage:       "Directory for the localfile backend",
			Value:       ".tikun13",
			Sources:     cli.EnvVars("TIKUN13_STORAGE_DIR"),
			Destination: &r.dir,
		},
	}
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "memory", "":
		logging.Default().Info("Using in-memory repository (state is lost on exit)")
		return memory.New(), nil

	case "localfile":
		repo, err := localfile.New(r.dir)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize localfile repository")
		}
		logging.Default().Info("Using localfile repository", "dir", r.dir)
		return repo, nil

	default:
		return nil, goerr.New("unknown repository backend", goerr.V("backend", r.backend))
	}
}
