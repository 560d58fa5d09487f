package pipeline

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/forgeworks/glyphgen/errors"
	"github.com/forgeworks/glyphgen/logger"
)

// validate type-checks the consuming project with the installed artifact in
// place. No code is generated and nothing is linked; this is the cheapest
// check that proves the artifact coexists with the hand-written sources.
//
// On failure the artifact stays where it is. The diagnostics point at it, so
// removing it would destroy the evidence.
func (r *Runner) validate(ctx context.Context) (string, error) {
	root := r.cfg.Project.Root
	if root == "" {
		root = "."
	}

	cfg := &packages.Config{
		Context: ctx,
		Mode:    packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes | packages.NeedDeps | packages.NeedImports,
		Dir:     root,
	}

	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return "", errors.Wrapf(errors.ErrValidationFailed,
			"cannot load project %s: %v", root, err)
	}

	var diags []string
	packages.Visit(pkgs, nil, func(p *packages.Package) {
		for _, e := range p.Errors {
			diags = append(diags, e.Error())
		}
	})

	if len(diags) > 0 {
		output := strings.Join(diags, "\n")
		return output, errors.WithDetail(
			errors.Wrapf(errors.ErrValidationFailed,
				"project %s has %d diagnostic(s)", root, len(diags)),
			output)
	}

	logger.ComponentLogger("pipeline.validate").Debugw("project type-checks",
		logger.FieldPath, root,
		logger.FieldCount, len(pkgs))
	return fmt.Sprintf("%d package(s) type-checked", len(pkgs)), nil
}
