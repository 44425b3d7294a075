package manifest

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/danforbes/rp-hal/errcode"
	"github.com/danforbes/rp-hal/features"
	"github.com/danforbes/rp-hal/pinmux"
	"github.com/danforbes/rp-hal/types"
	"github.com/danforbes/rp-hal/x/semverx"
)

// Validate checks a manifest's invariants and joins every problem found:
// identity, dependency requirements, the feature table, pin labels and
// default bus wiring.
func Validate(m types.Manifest) error {
	const op = "manifest.Validate"
	var errs []error
	fail := func(c errcode.Code, format string, a ...any) {
		errs = append(errs, errcode.New(c, op, m.Identity.Name+": "+fmt.Sprintf(format, a...)))
	}

	if m.Identity.Name == "" {
		fail(errcode.InvalidManifest, "package name is empty")
	}
	if _, err := semverx.ParseVersion(m.Identity.Version); err != nil {
		fail(errcode.InvalidManifest, "package version %q: %v", m.Identity.Version, err)
	}

	seenDep := map[string]bool{}
	for _, d := range m.Dependencies {
		key := string(d.Kind) + "/" + d.Name
		if seenDep[key] {
			fail(errcode.InvalidManifest, "dependency %q declared twice", d.Name)
		}
		seenDep[key] = true
		if _, err := semverx.ParseRequirement(d.Req); err != nil {
			fail(errcode.InvalidRequirement, "dependency %q: %v", d.Name, err)
		}
		if d.Optional && d.IsDev() {
			fail(errcode.InvalidManifest, "dev-dependency %q cannot be optional", d.Name)
		}
	}

	if err := features.Check(m.Features, m.Dependencies); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", m.Identity.Name, err))
	}

	exposed := map[int]bool{}
	seenLabel := map[string]string{}
	pwmOwner := map[[2]int]types.PinAlias{}
	for _, p := range m.Pins {
		key := strings.ToLower(p.Label)
		if prev, dup := seenLabel[key]; dup {
			fail(errcode.DuplicatePin, "pin label %q duplicates %q", p.Label, prev)
		} else {
			seenLabel[key] = p.Label
		}
		if p.GPIO < types.GPIOMin || p.GPIO > types.GPIOMax {
			fail(errcode.InvalidGPIO, "pin %q: GPIO%d out of range", p.Label, p.GPIO)
			continue
		}
		exposed[p.GPIO] = true
		for _, f := range p.Functions {
			if !f.Valid() {
				fail(errcode.InvalidManifest, "pin %q: unknown function %q", p.Label, f)
			}
		}
		if p.Has(types.FuncADC) {
			if _, ok := pinmux.ADC(p.GPIO); !ok {
				fail(errcode.InvalidPinMux, "pin %q: GPIO%d has no ADC input", p.Label, p.GPIO)
			}
		}
		if p.Has(types.FuncPWM) {
			slice, ch, ok := pinmux.PWM(p.GPIO)
			if !ok {
				fail(errcode.InvalidPinMux, "pin %q: GPIO%d has no PWM output", p.Label, p.GPIO)
				continue
			}
			// GPIOn and GPIOn+16 drive the same slice channel.
			key := [2]int{slice, int(ch)}
			if prev, taken := pwmOwner[key]; taken && prev.GPIO != p.GPIO {
				fail(errcode.InvalidPinMux, "pins %q and %q share PWM%d %c", prev.Label, p.Label, slice, ch)
			} else if !taken {
				pwmOwner[key] = p
			}
		}
	}

	seenBus := map[string]bool{}
	for _, b := range m.Buses {
		if seenBus[b.ID] {
			fail(errcode.InvalidManifest, "bus %q declared twice", b.ID)
		}
		seenBus[b.ID] = true
		if err := pinmux.Check(b); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", m.Identity.Name, err))
			continue
		}
		sigs := make([]string, 0, len(b.Pins))
		for sig := range b.Pins {
			sigs = append(sigs, sig)
		}
		sort.Strings(sigs)
		for _, sig := range sigs {
			if n := b.Pins[sig]; !exposed[n] {
				fail(errcode.UnknownPin, "bus %s %s uses GPIO%d which has no pin label", b.ID, sig, n)
			}
		}
	}
	if _, err := pinmux.Claim(m.Buses); err != nil {
		errs = append(errs, fmt.Errorf("%s: %w", m.Identity.Name, err))
	}

	return errors.Join(errs...)
}
