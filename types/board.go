package types

// ------------------------
// Board identity
// ------------------------

// Identity is the static metadata of one board support package.
type Identity struct {
	Name        string `json:"name" yaml:"name"`
	Version     string `json:"version" yaml:"version"`
	License     string `json:"license,omitempty" yaml:"license,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Repository  string `json:"repository,omitempty" yaml:"repository,omitempty"`
}

// ------------------------
// Pin functions
// ------------------------

// Function names what a board pin is wired or labelled for.
type Function string

const (
	FuncGPIO   Function = "gpio"
	FuncI2C    Function = "i2c"
	FuncSPI    Function = "spi"
	FuncUART   Function = "uart"
	FuncPWM    Function = "pwm"
	FuncADC    Function = "adc"
	FuncUSB    Function = "usb"
	FuncPIO    Function = "pio"
	FuncLED    Function = "led"
	FuncWS2812 Function = "ws2812"
	FuncButton Function = "button"
	FuncPower  Function = "power"
	FuncSense  Function = "sense"
)

var knownFunctions = map[Function]struct{}{
	FuncGPIO: {}, FuncI2C: {}, FuncSPI: {}, FuncUART: {}, FuncPWM: {},
	FuncADC: {}, FuncUSB: {}, FuncPIO: {}, FuncLED: {}, FuncWS2812: {},
	FuncButton: {}, FuncPower: {}, FuncSense: {},
}

// Valid reports whether f is one of the known functions.
func (f Function) Valid() bool {
	_, ok := knownFunctions[f]
	return ok
}

// RP2040 bank-0 user GPIO range.
const (
	GPIOMin = 0
	GPIOMax = 29
)

// PinAlias maps a silkscreen label to a bank-0 GPIO.
type PinAlias struct {
	Label     string     `json:"label" yaml:"label"`
	GPIO      int        `json:"gpio" yaml:"gpio"`
	Functions []Function `json:"functions,omitempty" yaml:"functions,omitempty"`
	Note      string     `json:"note,omitempty" yaml:"note,omitempty"`
}

// Has reports whether the alias is tagged with f.
func (p PinAlias) Has(f Function) bool {
	for _, x := range p.Functions {
		if x == f {
			return true
		}
	}
	return false
}

// ------------------------
// Default bus wiring
// ------------------------

// BusKind is the controller family of a default bus.
type BusKind string

const (
	BusI2C  BusKind = "i2c"
	BusSPI  BusKind = "spi"
	BusUART BusKind = "uart"
)

// Signal names used in BusDefault.Pins.
const (
	SigSDA = "sda"
	SigSCL = "scl"
	SigSCK = "sck"
	SigSDO = "sdo" // MOSI / COPI
	SigSDI = "sdi" // MISO / CIPO
	SigCS  = "cs"
	SigTX  = "tx"
	SigRX  = "rx"
)

// BusDefault is the board-recommended wiring of one controller instance.
// Hz is the clock (I2C/SPI) or baud rate (UART); zero means controller default.
type BusDefault struct {
	ID   string         `json:"id" yaml:"id"`
	Kind BusKind        `json:"kind" yaml:"kind"`
	Pins map[string]int `json:"pins" yaml:"pins"`
	Hz   uint32         `json:"hz,omitempty" yaml:"hz,omitempty"`
}
