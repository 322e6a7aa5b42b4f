//go:build stm32f4

package platform

import (
	"device/stm32"
	"io"
	"machine"

	"tinygo.org/x/drivers/semihosting"

	"bringup-go/internal/clocks"
	"bringup-go/services/bringup"
	"bringup-go/services/config"
	"bringup-go/types"
)

const deviceID = config.DeviceBlackpill

// semihostConsole forwards to the debugger's stdout. Each write is a BKPT
// trap; with no debugger attached it raises a HardFault and the core halts.
type semihostConsole struct{}

func (semihostConsole) Write(p []byte) (int, error) { return semihosting.Stdout.Write(p) }

func Console(types.BringupConfig) io.Writer {
	return semihostConsole{}
}

func Clock(cfg types.BringupConfig) bringup.ClockSource { return rccClock{hseHz: cfg.HSEHz} }

type rccClock struct{ hseHz uint32 }

// CoreClockHz is the frequency the runtime configured at startup.
func (rccClock) CoreClockHz() uint32 { return machine.CPUFrequency() }

// MeasuredClockHz decodes the live RCC switch and PLL settings.
func (c rccClock) MeasuredClockHz() uint32 {
	return clocks.STM32F4SysClk(stm32.RCC.CFGR.Get(), stm32.RCC.PLLCFGR.Get(), c.hseHz)
}
