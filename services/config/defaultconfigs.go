package config

import "bringup-go/types"

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (same value placed in ctx via WithDevice)
// Val: bring-up settings for that board
// -----------------------------------------------------------------------------

const (
	DeviceHost      = "host"
	DeviceBlackpill = "blackpill-f411"
	DevicePico      = "pico"
)

// Fallback is used when a device has no valid entry. Every field is set so
// clock decoding and console setup never see zeros.
var Fallback = types.BringupConfig{
	IntervalMs:  500,
	ConsoleBaud: 115200,
	HSEHz:       25_000_000,
}

var embeddedConfigs = map[string]types.BringupConfig{
	// Simulated STM32F411 with a 25 MHz crystal.
	DeviceHost: {
		IntervalMs: 500,
		HSEHz:      25_000_000,
	},
	// Output goes over semihosting; give the debugger time to attach.
	DeviceBlackpill: {
		IntervalMs:  500,
		BootDelayMs: 1000,
		HSEHz:       25_000_000,
	},
	// UART0 console; clk_ref is the 12 MHz crystal.
	DevicePico: {
		IntervalMs:  500,
		BootDelayMs: 2000,
		ConsoleBaud: 115200,
		HSEHz:       12_000_000,
	},
}
