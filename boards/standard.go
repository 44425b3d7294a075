package boards

import "github.com/danforbes/rp-hal/types"

// Dependency names every board shares.
const (
	HAL     = "rp2040-hal"
	Runtime = "cortex-m-rt"
	Boot2   = "rp2040-boot2"

	HALPath    = "../../rp2040-hal"
	HALVersion = "0.8.0"
)

// Feature names every board exposes.
const (
	FeatBoot2           = "boot2"
	FeatRT              = "rt"
	FeatCriticalSection = "critical-section-impl"
	FeatROMFuncCache    = "rom-func-cache"
	FeatDisableIntrin   = "disable-intrinsics"
	FeatROMV2Intrin     = "rom-v2-intrinsics"
)

// XOSCHz is the crystal fitted to every supported board.
const XOSCHz = 12_000_000

// Spec carries the board-specific parts of a manifest.
type Spec struct {
	Name        string
	Version     string
	Description string

	Pins  []types.PinAlias
	Buses []types.BusDefault

	// Extra normal dependencies beyond cortex-m, the HAL, runtime and boot2.
	Deps []types.Dependency
	// Dev dependencies for the board's examples.
	DevDeps []types.Dependency
}

// Standard builds a board manifest around the shared dependency set and the
// default = [boot2, rt, critical-section-impl] feature table.
func Standard(s Spec) types.Manifest {
	deps := []types.Dependency{
		{Name: "cortex-m", Req: "0.7.2", Kind: types.DepNormal},
		{Name: HAL, Req: HALVersion, Path: HALPath, Kind: types.DepNormal},
		{Name: Runtime, Req: "0.7", Optional: true, Kind: types.DepNormal},
		{Name: Boot2, Req: "0.2.1", Optional: true, Kind: types.DepNormal},
	}
	for _, d := range s.Deps {
		d.Kind = types.DepNormal
		deps = append(deps, d)
	}
	for _, d := range s.DevDeps {
		d.Kind = types.DepDev
		deps = append(deps, d)
	}
	return types.Manifest{
		Identity: types.Identity{
			Name:        s.Name,
			Version:     s.Version,
			License:     "MIT OR Apache-2.0",
			Description: s.Description,
			Repository:  "https://github.com/rp-rs/rp-hal-boards",
		},
		Chip:         "rp2040",
		XOSCHz:       XOSCHz,
		Dependencies: deps,
		Features: types.FeatureTable{
			types.DefaultFeature: {FeatBoot2, FeatRT, FeatCriticalSection},
			FeatBoot2:            {Boot2},
			FeatRT:               {Runtime, HAL + "/rt"},
			FeatCriticalSection:  {HAL + "/critical-section-impl"},
			FeatROMFuncCache:     {HAL + "/rom-func-cache"},
			FeatDisableIntrin:    {HAL + "/disable-intrinsics"},
			FeatROMV2Intrin:      {HAL + "/rom-v2-intrinsics"},
		},
		Pins:  s.Pins,
		Buses: s.Buses,
	}
}

// Dev dependencies the board examples draw from.
var (
	DevPanicHalt    = types.Dependency{Name: "panic-halt", Req: "0.2.0"}
	DevEmbeddedHAL  = types.Dependency{Name: "embedded-hal", Req: "0.2.5", Features: []string{"unproven"}}
	DevSmartLEDs    = types.Dependency{Name: "smart-leds", Req: "0.3.0"}
	DevWS2812PIO    = types.Dependency{Name: "ws2812-pio", Req: "0.6.0"}
	DevPIO          = types.Dependency{Name: "pio", Req: "0.2.0"}
	DevPIOProc      = types.Dependency{Name: "pio-proc", Req: "0.2.1"}
	DevNB           = types.Dependency{Name: "nb", Req: "1.0"}
	DevFugit        = types.Dependency{Name: "fugit", Req: "0.3.5"}
	DevI2CPIO       = types.Dependency{Name: "i2c-pio", Req: "0.6.0"}
	DevHeapless     = types.Dependency{Name: "heapless", Req: "0.7.9"}
	DevGraphics     = types.Dependency{Name: "embedded-graphics", Req: "0.7.1"}
	DevEPDWaveshare = types.Dependency{Name: "epd-waveshare", Req: "0.5.0"}
	DevTinyBMP      = types.Dependency{Name: "tinybmp", Req: "0.4.0"}
	DevUSBDSerial   = types.Dependency{Name: "usbd-serial", Req: "0.1.1"}
)

// Alias is shorthand for a labelled pin.
func Alias(label string, gpio int, fs ...types.Function) types.PinAlias {
	return types.PinAlias{Label: label, GPIO: gpio, Functions: fs}
}

// AliasNote is Alias with a free-form note.
func AliasNote(label string, gpio int, note string, fs ...types.Function) types.PinAlias {
	return types.PinAlias{Label: label, GPIO: gpio, Functions: fs, Note: note}
}

// I2CBus, SPIBus and UARTBus build default wirings.
func I2CBus(id string, sda, scl int, hz uint32) types.BusDefault {
	return types.BusDefault{ID: id, Kind: types.BusI2C, Pins: map[string]int{types.SigSDA: sda, types.SigSCL: scl}, Hz: hz}
}

func SPIBus(id string, sck, sdo, sdi int, hz uint32) types.BusDefault {
	pins := map[string]int{types.SigSCK: sck}
	if sdo >= 0 {
		pins[types.SigSDO] = sdo
	}
	if sdi >= 0 {
		pins[types.SigSDI] = sdi
	}
	return types.BusDefault{ID: id, Kind: types.BusSPI, Pins: pins, Hz: hz}
}

func UARTBus(id string, tx, rx int, baud uint32) types.BusDefault {
	return types.BusDefault{ID: id, Kind: types.BusUART, Pins: map[string]int{types.SigTX: tx, types.SigRX: rx}, Hz: baud}
}
