package hcl

import (
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"

	"github.com/vk/volsweep/internal/model"
)

// newEvalContext exposes skip.<name>, env.<NAME> and a handful of
// functions to sweep files.
func newEvalContext(environ []string) *hcl.EvalContext {
	skip := make(map[string]cty.Value, len(model.AllSkipModes))
	for _, m := range model.AllSkipModes {
		skip[m.String()] = cty.NumberIntVal(int64(m))
	}

	env := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			continue
		}
		env[k] = cty.StringVal(v)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"skip": cty.ObjectVal(skip),
			"env":  cty.ObjectVal(env),
		},
		Functions: map[string]function.Function{
			"range":  stdlib.RangeFunc,
			"concat": stdlib.ConcatFunc,
			"upper":  stdlib.UpperFunc,
			"lower":  stdlib.LowerFunc,
		},
	}
}

func defaultEnviron() []string {
	return os.Environ()
}
