// Package rppico is the board support package for the Raspberry Pi Pico.
package rppico

import (
	"github.com/danforbes/rp-hal/boards"
	"github.com/danforbes/rp-hal/types"
)

const (
	Name    = "rp-pico"
	Version = "0.7.0"
)

// GPIO numbers by silkscreen label.
const (
	GP0  = 0
	GP1  = 1
	GP2  = 2
	GP3  = 3
	GP4  = 4
	GP5  = 5
	GP6  = 6
	GP7  = 7
	GP8  = 8
	GP9  = 9
	GP10 = 10
	GP11 = 11
	GP12 = 12
	GP13 = 13
	GP14 = 14
	GP15 = 15
	GP16 = 16
	GP17 = 17
	GP18 = 18
	GP19 = 19
	GP20 = 20
	GP21 = 21
	GP22 = 22

	// Board-internal signals.
	BPowerSave = 23
	VBUSDetect = 24
	LED        = 25

	GP26           = 26
	GP27           = 27
	GP28           = 28
	VoltageMonitor = 29
)

func aliases() []types.PinAlias {
	return []types.PinAlias{
		boards.Alias("GP0", GP0, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP1", GP1, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP2", GP2, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP3", GP3, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP4", GP4, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP5", GP5, types.FuncGPIO, types.FuncI2C),
		boards.Alias("GP6", GP6, types.FuncGPIO),
		boards.Alias("GP7", GP7, types.FuncGPIO),
		boards.Alias("GP8", GP8, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP9", GP9, types.FuncGPIO, types.FuncUART),
		boards.Alias("GP10", GP10, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP11", GP11, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP12", GP12, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP13", GP13, types.FuncGPIO),
		boards.Alias("GP14", GP14, types.FuncGPIO),
		boards.Alias("GP15", GP15, types.FuncGPIO),
		boards.Alias("GP16", GP16, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP17", GP17, types.FuncGPIO),
		boards.Alias("GP18", GP18, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP19", GP19, types.FuncGPIO, types.FuncSPI),
		boards.Alias("GP20", GP20, types.FuncGPIO),
		boards.Alias("GP21", GP21, types.FuncGPIO),
		boards.Alias("GP22", GP22, types.FuncGPIO),
		boards.AliasNote("B_POWER_SAVE", BPowerSave, "SMPS power-save select; drive high for PWM mode", types.FuncPower),
		boards.AliasNote("VBUS_DETECT", VBUSDetect, "high while USB VBUS is present", types.FuncSense),
		boards.Alias("LED", LED, types.FuncLED, types.FuncGPIO),
		boards.Alias("GP26", GP26, types.FuncGPIO, types.FuncADC),
		boards.Alias("GP27", GP27, types.FuncGPIO, types.FuncADC),
		boards.Alias("GP28", GP28, types.FuncGPIO, types.FuncADC),
		boards.AliasNote("VOLTAGE_MONITOR", VoltageMonitor, "VSYS/3", types.FuncADC, types.FuncSense),
	}
}

// Manifest describes the Pico: 26 header GPIOs, the on-board LED and the
// SMPS/VBUS/VSYS sense lines.
func Manifest() types.Manifest {
	return boards.Standard(boards.Spec{
		Name:        Name,
		Version:     Version,
		Description: "Board support package for the Raspberry Pi Pico",
		Pins:        aliases(),
		Buses: []types.BusDefault{
			boards.I2CBus("i2c0", GP4, GP5, 400_000),
			boards.I2CBus("i2c1", GP2, GP3, 400_000),
			boards.SPIBus("spi0", GP18, GP19, GP16, 0),
			boards.SPIBus("spi1", GP10, GP11, GP12, 0),
			boards.UARTBus("uart0", GP0, GP1, 115_200),
			boards.UARTBus("uart1", GP8, GP9, 115_200),
		},
		Deps: []types.Dependency{
			{Name: "usb-device", Req: "0.2.9"},
			{Name: "fugit", Req: "0.3.5"},
		},
		DevDeps: []types.Dependency{
			boards.DevPanicHalt,
			boards.DevEmbeddedHAL,
			boards.DevSmartLEDs,
			boards.DevWS2812PIO,
			boards.DevPIOProc,
			boards.DevPIO,
			boards.DevNB,
			boards.DevI2CPIO,
			boards.DevHeapless,
			boards.DevGraphics,
			boards.DevEPDWaveshare,
			boards.DevTinyBMP,
			boards.DevUSBDSerial,
		},
	})
}

func init() { boards.Register(Manifest) }
