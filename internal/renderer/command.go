package renderer

import (
	"sort"
	"strconv"
	"strings"

	"github.com/vk/volsweep/internal/model"
)

// Args returns the argument vector for job, without the executable.
func (r *Renderer) Args(job Job) []string {
	s := r.settings
	args := make([]string, 0, len(s.Args)+11)
	args = append(args, s.Args...)
	args = append(args,
		"--width="+strconv.Itoa(s.Width),
		"--height="+strconv.Itoa(s.Height),
		"--benchmark="+strconv.Itoa(s.Frames),
		"--imin="+model.FormatFloat(job.Image.IntensityMin),
		"--imax="+model.FormatFloat(job.Image.IntensityMax),
		"--gmin="+model.FormatFloat(job.Image.GradientMin),
		"--gmax="+model.FormatFloat(job.Image.GradientMax),
		"--blocksize="+strconv.Itoa(job.Config.BlockSize),
		"--skipmode="+strconv.Itoa(int(job.Config.SkipMode)),
	)
	if s.GradientTest {
		args = append(args, "--gradient_test")
	}
	return append(args, job.Image.File)
}

// CommandLine renders the full invocation for logs and dry runs.
func (r *Renderer) CommandLine(job Job) string {
	parts := append([]string{r.settings.Path}, r.Args(job)...)
	for i, p := range parts {
		if strings.ContainsAny(p, " \t\"") {
			parts[i] = strconv.Quote(p)
		}
	}
	return strings.Join(parts, " ")
}

// environ returns the child environment: the parent's plus Settings.Env,
// in key order so repeated runs see identical environments.
func (r *Renderer) environ(base []string) []string {
	if len(r.settings.Env) == 0 {
		return base
	}
	keys := make([]string, 0, len(r.settings.Env))
	for k := range r.settings.Env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	env := make([]string, 0, len(base)+len(keys))
	env = append(env, base...)
	for _, k := range keys {
		env = append(env, k+"="+r.settings.Env[k])
	}
	return env
}
