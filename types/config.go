package types

// Bring-up configuration supplied on topic "config/bringup".

type BringupConfig struct {
	IntervalMs  uint32 `json:"interval_ms"`  // wait before each count line
	BootDelayMs uint32 `json:"boot_delay_ms"` // let USB/debugger attach
	ConsoleBaud uint32 `json:"console_baud,omitempty"`
	HSEHz       uint32 `json:"hse_hz,omitempty"` // external crystal, 0 if none
}
