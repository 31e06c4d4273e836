package hcl

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
)

// fileRoot decodes every top-level block a sweep file may contain.
type fileRoot struct {
	Renderers []*rendererBlock `hcl:"renderer,block"`
	Images    []*imageBlock    `hcl:"image,block"`
	Sweeps    []*sweepBlock    `hcl:"sweep,block"`
	Outputs   []*outputBlock   `hcl:"output,block"`
	Sinks     []*sinkBlock     `hcl:"sink,block"`
}

type rendererBlock struct {
	Path         string            `hcl:"path,optional"`
	WorkDir      string            `hcl:"workdir,optional"`
	Width        int               `hcl:"width,optional"`
	Height       int               `hcl:"height,optional"`
	Frames       int               `hcl:"frames,optional"`
	Timeout      string            `hcl:"timeout,optional"`
	Args         []string          `hcl:"args,optional"`
	Env          map[string]string `hcl:"env,optional"`
	GradientTest bool              `hcl:"gradient_test,optional"`
}

type imageBlock struct {
	Label string  `hcl:"label,label"`
	File  string  `hcl:"file"`
	IMin  float64 `hcl:"imin"`
	IMax  float64 `hcl:"imax"`
	GMin  float64 `hcl:"gmin,optional"`
	GMax  float64 `hcl:"gmax,optional"`
}

type sweepBlock struct {
	// SkipMode is either a number or a mode name, so it is decoded raw.
	SkipMode   cty.Value `hcl:"skip_mode"`
	BlockSizes []int     `hcl:"block_sizes,optional"`
}

type outputBlock struct {
	Dir string `hcl:"dir,optional"`
}

type sinkBlock struct {
	Kind   string   `hcl:"kind,label"`
	Config hcl.Body `hcl:",remain"`
}
