package hcl

import (
	"context"
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/volsweep/internal/config"
	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/fsutil"
)

const fileExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct {
	environ func() []string
}

// NewLoader creates a new HCL sweep file loader.
func NewLoader() *Loader {
	return &Loader{environ: defaultEnviron}
}

// Load parses every .hcl file under paths and merges them into one plan.
// A path may be a single file or a directory, which is searched
// recursively. The renderer and output blocks may each appear only once
// across all files; image, sweep and sink blocks accumulate in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.CollectFiles(paths, fileExtension)
	if err != nil {
		return nil, fmt.Errorf("failed to find sweep files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s files found in %s", fileExtension, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	parser := hclparse.NewParser()
	evalCtx := newEvalContext(l.environ())
	plan := &config.Plan{}
	var rendererFile, outputFile string

	for _, file := range files {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		if diags := gohcl.DecodeBody(hclFile.Body, evalCtx, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, b := range root.Renderers {
			if rendererFile != "" {
				return nil, fmt.Errorf("%s: renderer block already defined in %s", file, rendererFile)
			}
			r, err := translateRenderer(b)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			plan.Renderer = r
			rendererFile = file
		}
		for _, b := range root.Images {
			plan.Images = append(plan.Images, translateImage(b))
		}
		for _, b := range root.Sweeps {
			s, err := translateSweep(ctx, b)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			plan.Sweeps = append(plan.Sweeps, s)
		}
		for _, b := range root.Outputs {
			if outputFile != "" {
				return nil, fmt.Errorf("%s: output block already defined in %s", file, outputFile)
			}
			plan.Output = config.Output{Dir: b.Dir}
			outputFile = file
		}
		for _, b := range root.Sinks {
			s, err := translateSink(b, evalCtx)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", file, err)
			}
			plan.Sinks = append(plan.Sinks, s)
		}
	}

	plan.ApplyDefaults()
	logger.Debug("HCL loading complete.",
		"images", len(plan.Images),
		"sweeps", len(plan.Sweeps),
		"sinks", len(plan.Sinks),
	)
	return plan, nil
}

var _ config.Loader = (*Loader)(nil)
