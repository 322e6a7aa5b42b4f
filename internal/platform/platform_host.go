//go:build !baremetal

package platform

import (
	"io"
	"os"

	"bringup-go/internal/clocks"
	"bringup-go/services/bringup"
	"bringup-go/services/config"
	"bringup-go/types"
)

const deviceID = config.DeviceHost

// Simulated STM32F411: 25 MHz HSE, PLL M=25 N=200 P=2, SYSCLK on PLL.
const (
	hostCoreClockHz = 100 * clocks.MHz
	hostPLLM        = 25
	hostPLLN        = 200
	hostPLLP        = 2
)

// Console returns stdout. println output goes to stderr, so the console
// stream carries only bring-up lines.
func Console(types.BringupConfig) io.Writer {
	return os.Stdout
}

// Clock returns a simulated clock source whose measured value is decoded
// from a fixed register snapshot.
func Clock(cfg types.BringupConfig) bringup.ClockSource {
	return &simClock{
		cfgr:    clocks.STM32F4CFGRSwitchPLL,
		pllcfgr: clocks.STM32F4PLLCFGR(hostPLLM, hostPLLN, hostPLLP, cfg.HSEHz != 0),
		hseHz:   cfg.HSEHz,
		varHz:   hostCoreClockHz,
	}
}

type simClock struct {
	cfgr, pllcfgr uint32
	hseHz         uint32
	varHz         uint32
}

func (c *simClock) CoreClockHz() uint32 { return c.varHz }

func (c *simClock) MeasuredClockHz() uint32 {
	return clocks.STM32F4SysClk(c.cfgr, c.pllcfgr, c.hseHz)
}
