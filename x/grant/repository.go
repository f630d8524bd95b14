package grant

import (
	"context"
	"os"

	"github.com/go-yaml/yaml"
	"github.com/pkg/errors"

	"github.com/stewardhq/steward/core"
	"github.com/stewardhq/steward/util"
)

// Repository loads the externally authored grant specification document.
type Repository interface {
	Load(ctx context.Context) (core.GrantSpecification, error)
}

type repository struct {
	config util.Config
}

// NewRepository creates a new grant repository
func NewRepository(config util.Config) Repository {
	return &repository{config}
}

// Load reads the specification from the configured path. Called once at
// process start; a failure here must prevent the process from accepting
// traffic.
func (r *repository) Load(ctx context.Context) (core.GrantSpecification, error) {
	ctx, span := tracer.Start(ctx, "Grant.Repository.Load")
	defer span.End()

	f, err := os.Open(r.config.Steward.GrantsPath)
	if err != nil {
		span.RecordError(err)
		return core.GrantSpecification{}, errors.Wrap(err, "failed to open grant specification")
	}
	defer f.Close()

	var spec core.GrantSpecification
	err = yaml.NewDecoder(f).Decode(&spec)
	if err != nil {
		span.RecordError(err)
		return core.GrantSpecification{}, errors.Wrap(err, "failed to decode grant specification")
	}

	return spec, nil
}
