package selected

import (
	"reflect"
	"testing"

	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/resolve"
)

// Without build tags the Pico is linked with its default features.
func TestUntaggedBuild(t *testing.T) {
	b := Board()
	if b.Name() != "rp-pico" {
		t.Fatalf("board=%s", b.Name())
	}
	want := []string{boards.FeatBoot2, boards.FeatCriticalSection, boards.FeatRT}
	if got := Features(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Features()=%v want %v", got, want)
	}
}

// The tag this package is selected by is the one resolve emits first.
func TestBoardTagMatchesResolve(t *testing.T) {
	g, err := resolve.Resolve(Board().Manifest, resolve.Options{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if tag := g.Tags()[0]; tag != "board_rp_pico" {
		t.Fatalf("first tag=%s", tag)
	}
}

func TestTaggedFeaturesOverrideDefaults(t *testing.T) {
	saved := tagged
	defer func() { tagged = saved }()

	tagged = []string{boards.FeatRT}
	if got := Features(); !reflect.DeepEqual(got, []string{boards.FeatRT}) {
		t.Fatalf("Features()=%v", got)
	}
}

// --no-default-features resolves to the marker tag alone, and firmware
// built with it enables nothing.
func TestFeatureSetTagWithoutFeatures(t *testing.T) {
	g, err := resolve.Resolve(Board().Manifest, resolve.Options{NoDefaultFeatures: true})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	want := []string{"board_rp_pico", resolve.FeatureSetTag}
	if got := g.Tags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Tags()=%v want %v", got, want)
	}

	savedE, savedT := explicit, tagged
	defer func() { explicit, tagged = savedE, savedT }()
	explicit, tagged = true, nil
	if got := Features(); len(got) != 0 {
		t.Fatalf("Features()=%v want none", got)
	}
}
