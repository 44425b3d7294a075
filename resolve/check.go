package resolve

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danforbes/rp-hal/manifest"
	"github.com/danforbes/rp-hal/types"
)

// Scenario names one feature selection exercised by CheckWorkspace.
type Scenario struct {
	Name string
	Opts Options
}

// Scenarios lists the selections every board must resolve under: defaults,
// no defaults, each non-default feature alone, and all features.
func Scenarios(m types.Manifest) []Scenario {
	out := []Scenario{
		{Name: "default"},
		{Name: "no-default-features", Opts: Options{NoDefaultFeatures: true}},
	}
	names := make([]string, 0, len(m.Features))
	for f := range m.Features {
		if f != types.DefaultFeature {
			names = append(names, f)
		}
	}
	sort.Strings(names)
	for _, f := range names {
		out = append(out, Scenario{
			Name: "only " + f,
			Opts: Options{NoDefaultFeatures: true, Features: []string{f}},
		})
	}
	out = append(out, Scenario{Name: "all-features", Opts: Options{AllFeatures: true}})
	return out
}

// CheckResult is the outcome of one board under one scenario.
type CheckResult struct {
	Board    string
	Scenario string
	Packages int
	Err      error
}

// CheckWorkspace validates and resolves every manifest under every scenario.
// base supplies the catalog, logger and Dev flag. All failures are joined.
func CheckWorkspace(ms []types.Manifest, base Options) ([]CheckResult, error) {
	var results []CheckResult
	var errs []error
	for _, m := range ms {
		if err := manifest.Validate(m); err != nil {
			results = append(results, CheckResult{Board: m.Identity.Name, Scenario: "validate", Err: err})
			errs = append(errs, err)
			continue
		}
		for _, sc := range Scenarios(m) {
			opts := sc.Opts
			opts.Catalog, opts.Logger, opts.Dev = base.Catalog, base.Logger, base.Dev
			g, err := Resolve(m, opts)
			res := CheckResult{Board: m.Identity.Name, Scenario: sc.Name, Err: err}
			if err != nil {
				errs = append(errs, fmt.Errorf("%s [%s]: %w", m.Identity.Name, sc.Name, err))
			} else {
				res.Packages = len(g.Packages)
			}
			results = append(results, res)
		}
	}
	return results, errors.Join(errs...)
}
