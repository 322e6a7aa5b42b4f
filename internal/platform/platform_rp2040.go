//go:build rp2040

package platform

import (
	"device/rp"
	"io"
	"machine"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"

	"bringup-go/internal/clocks"
	"bringup-go/services/bringup"
	"bringup-go/services/config"
	"bringup-go/types"
)

const deviceID = config.DevicePico

// FC0 frequency counter (RP2040 datasheet 2.15.6.2).
const (
	fc0SrcClkSys     = 0x09
	fc0StatusDone    = 1 << 4
	fc0StatusRunning = 1 << 8
	fc0MaxKHz        = 0x1FFFFFF
	fc0Interval      = 10
	fc0SpinLimit     = 1_000_000
)

// Console configures UART0 on its default pins. A Configure error is
// dropped; writes then go nowhere.
func Console(cfg types.BringupConfig) io.Writer {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: cfg.ConsoleBaud,
		TX:       machine.UART0_TX_PIN,
		RX:       machine.UART0_RX_PIN,
	})
	return u
}

func Clock(cfg types.BringupConfig) bringup.ClockSource { return fc0Clock{refKHz: cfg.HSEHz / 1000} }

type fc0Clock struct{ refKHz uint32 }

func (fc0Clock) CoreClockHz() uint32 { return machine.CPUFrequency() }

// MeasuredClockHz counts clk_sys against clk_ref. Returns 0 if the counter
// never reports done.
func (c fc0Clock) MeasuredClockHz() uint32 {
	fc := rp.CLOCKS
	for i := 0; fc.FC0_STATUS.HasBits(fc0StatusRunning); i++ {
		if i == fc0SpinLimit {
			return 0
		}
	}
	fc.FC0_REF_KHZ.Set(c.refKHz)
	fc.FC0_INTERVAL.Set(fc0Interval)
	fc.FC0_MIN_KHZ.Set(0)
	fc.FC0_MAX_KHZ.Set(fc0MaxKHz)
	fc.FC0_SRC.Set(fc0SrcClkSys)
	for i := 0; !fc.FC0_STATUS.HasBits(fc0StatusDone); i++ {
		if i == fc0SpinLimit {
			return 0
		}
	}
	return clocks.RP2FC0Result(fc.FC0_RESULT.Get())
}
