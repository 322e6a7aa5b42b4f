package types

// ---- Bring-up state ----

// ClockReport is the retained snapshot of both core clock readings taken
// during Setup. The two values are independent and may differ.
type ClockReport struct {
	VarHz      uint32 `json:"var_hz"`      // cached/configured core clock
	MeasuredHz uint32 `json:"measured_hz"` // derived from clock registers
	TS         int64  `json:"ts_ms"`
}

// CountEvent mirrors one "count = N" console line.
type CountEvent struct {
	N    int32 `json:"n"`
	AtMs int64 `json:"at_ms"`
}
