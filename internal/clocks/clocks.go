// Package clocks decodes raw clock-configuration register words into core
// clock frequencies. It touches no hardware; platform code does the reads.
package clocks

const (
	MHz = 1_000_000

	// HSIHz is the STM32F4 internal RC oscillator.
	HSIHz = 16 * MHz

	minPlausibleHz = 1 * MHz
	maxPlausibleHz = 500 * MHz
)

// STM32F4 RCC_CFGR / RCC_PLLCFGR fields (RM0383/RM0090).
const (
	cfgrSWSPos = 2
	cfgrSWSMsk = 0x3 << cfgrSWSPos

	swsHSI = 0
	swsHSE = 1
	swsPLL = 2

	pllMMsk   = 0x3F
	pllNPos   = 6
	pllNMsk   = 0x1FF << pllNPos
	pllPPos   = 16
	pllPMsk   = 0x3 << pllPPos
	pllSrcBit = 1 << 22
)

// STM32F4SysClk returns SYSCLK in Hz from the RCC_CFGR and RCC_PLLCFGR
// words, the same way HAL_RCC_GetSysClockFreq does. hseHz is the board's
// external crystal. A PLL with PLLM=0 decodes to 0.
func STM32F4SysClk(cfgr, pllcfgr, hseHz uint32) uint32 {
	switch (cfgr & cfgrSWSMsk) >> cfgrSWSPos {
	case swsHSI:
		return HSIHz
	case swsHSE:
		return hseHz
	case swsPLL:
		m := uint64(pllcfgr & pllMMsk)
		if m == 0 {
			return 0
		}
		n := uint64((pllcfgr & pllNMsk) >> pllNPos)
		p := uint64(((pllcfgr&pllPMsk)>>pllPPos)+1) * 2
		src := uint64(HSIHz)
		if pllcfgr&pllSrcBit != 0 {
			src = uint64(hseHz)
		}
		return uint32(src * n / m / p)
	default:
		// SWS=11 is reserved on F40x/F41x.
		return 0
	}
}

// STM32F4PLLCFGR packs PLL settings into a PLLCFGR word. p must be 2, 4, 6
// or 8. Used to build register snapshots for simulated targets.
func STM32F4PLLCFGR(m, n, p uint32, hse bool) uint32 {
	w := (m & pllMMsk) | (n<<pllNPos)&pllNMsk | (((p/2)-1)<<pllPPos)&pllPMsk
	if hse {
		w |= pllSrcBit
	}
	return w
}

// STM32F4CFGRSwitchPLL is a CFGR word whose SWS field reports the PLL.
const STM32F4CFGRSwitchPLL uint32 = swsPLL << cfgrSWSPos

// RP2040 CLOCKS FC0_RESULT fields.
const (
	fc0FracMsk = 0x1F
	fc0KHzPos  = 5
	fc0KHzMsk  = 0x1FFFFFF << fc0KHzPos
)

// RP2FC0Result converts an RP2040 frequency-counter FC0_RESULT word to Hz.
// FRAC counts 1/32 kHz.
func RP2FC0Result(result uint32) uint32 {
	khz := (result & fc0KHzMsk) >> fc0KHzPos
	frac := result & fc0FracMsk
	return khz*1000 + frac*1000/32
}

// Plausible reports whether hz is a believable core clock for the
// Cortex-M parts this firmware targets.
func Plausible(hz uint32) bool {
	return hz >= minPlausibleHz && hz <= maxPlausibleHz
}
