// This file translates decoded HCL blocks into the format-agnostic
// config model.

package hcl

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/volsweep/internal/config"
	"github.com/vk/volsweep/internal/ctxlog"
	"github.com/vk/volsweep/internal/model"
)

func translateRenderer(b *rendererBlock) (config.Renderer, error) {
	r := config.Renderer{
		Path:         b.Path,
		WorkDir:      b.WorkDir,
		Width:        b.Width,
		Height:       b.Height,
		Frames:       b.Frames,
		Args:         b.Args,
		Env:          b.Env,
		GradientTest: b.GradientTest,
	}
	if b.Timeout != "" {
		d, err := time.ParseDuration(b.Timeout)
		if err != nil {
			return r, fmt.Errorf("renderer: invalid timeout %q: %w", b.Timeout, err)
		}
		r.Timeout = d
	}
	return r, nil
}

func translateImage(b *imageBlock) model.ImageSpec {
	return model.ImageSpec{
		File:         b.File,
		Label:        b.Label,
		IntensityMin: b.IMin,
		IntensityMax: b.IMax,
		GradientMin:  b.GMin,
		GradientMax:  b.GMax,
	}
}

func translateSweep(ctx context.Context, b *sweepBlock) (config.Sweep, error) {
	logger := ctxlog.FromContext(ctx)

	mode, err := skipModeFromValue(b.SkipMode)
	if err != nil {
		return config.Sweep{}, fmt.Errorf("sweep: %w", err)
	}

	sizes := b.BlockSizes
	if sizes == nil {
		logger.Debug("Sweep has no block_sizes, using defaults.", "skipmode", mode)
		sizes = append([]int(nil), config.DefaultBlockSizes...)
	}
	return config.Sweep{SkipMode: mode, BlockSizes: sizes}, nil
}

// skipModeFromValue accepts `skip_mode = 2`, `skip_mode = skip.distance`
// and `skip_mode = "distance"`.
func skipModeFromValue(v cty.Value) (model.SkipMode, error) {
	if v.IsNull() || !v.IsKnown() {
		return 0, fmt.Errorf("skip_mode must be set")
	}
	switch v.Type() {
	case cty.Number:
		bf := v.AsBigFloat()
		n, acc := bf.Int64()
		if acc != big.Exact {
			return 0, fmt.Errorf("skip_mode %s is not an integer", bf.String())
		}
		m := model.SkipMode(n)
		if !m.Valid() {
			return 0, fmt.Errorf("skip mode %d out of range 0..3", n)
		}
		return m, nil
	case cty.String:
		return model.ParseSkipMode(v.AsString())
	default:
		return 0, fmt.Errorf("skip_mode must be a number or a name, got %s", v.Type().FriendlyName())
	}
}

// translateSink evaluates every attribute of a sink block to a string.
func translateSink(b *sinkBlock, evalCtx *hcl.EvalContext) (config.Sink, error) {
	attrs, diags := b.Config.JustAttributes()
	if diags.HasErrors() {
		return config.Sink{}, fmt.Errorf("sink %q: %w", b.Kind, diags)
	}

	settings := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(evalCtx)
		if diags.HasErrors() {
			return config.Sink{}, fmt.Errorf("sink %q: %w", b.Kind, diags)
		}
		str, err := convert.Convert(val, cty.String)
		if err != nil {
			return config.Sink{}, fmt.Errorf("sink %q: attribute %q: %w", b.Kind, name, err)
		}
		if str.IsNull() {
			continue
		}
		settings[name] = str.AsString()
	}

	name := settings["name"]
	if name == "" {
		name = b.Kind
	}
	return config.Sink{Kind: b.Kind, Name: name, Settings: settings}, nil
}
