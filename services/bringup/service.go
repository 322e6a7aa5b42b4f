// Package bringup is the board smoke test: a one-shot Setup that reports the
// core clock twice, then a Tick that prints a counter every interval.
package bringup

import (
	"context"
	"io"
	"time"

	"bringup-go/bus"
	"bringup-go/errcode"
	"bringup-go/services/config"
	"bringup-go/types"
	"bringup-go/x/conv"
	"bringup-go/x/timex"
)

const (
	greeting   = "Hello world!\n"
	varClkPfx  = "SystemCoreClock (Var): Clock: "
	realClkPfx = "HAL Real Freq: Clock: "
	hzSfx      = " Hz\n"
	countPfx   = "count = "

	// Longest line: the var clock prefix, a uint32 and the suffix.
	lineCap = len(varClkPfx) + 10 + len(hzSfx)

	DefaultInterval = 500 * time.Millisecond
)

var (
	TopicClock = bus.T("bringup", "clock")
	TopicCount = bus.T("bringup", "count")
)

// ClockSource supplies the two independent core clock readings.
type ClockSource interface {
	// CoreClockHz is the runtime's cached/configured value.
	CoreClockHz() uint32
	// MeasuredClockHz is derived from the clock registers at call time.
	MeasuredClockHz() uint32
}

type Option func(*Service)

// WithSleep replaces the blocking wait used by Tick.
func WithSleep(f func(time.Duration)) Option {
	return func(s *Service) { s.sleep = f }
}

// WithConnection mirrors console output onto the bus.
func WithConnection(c *bus.Connection) Option {
	return func(s *Service) { s.conn = c }
}

type Service struct {
	con      io.Writer
	clk      ClockSource
	interval time.Duration
	sleep    func(time.Duration)
	conn     *bus.Connection

	// Only Tick writes count; nothing else runs concurrently with it.
	count int32
	line  [lineCap]byte
}

// New builds the service. con must already be active.
func New(cfg types.BringupConfig, con io.Writer, clk ClockSource, opts ...Option) *Service {
	s := &Service{
		con:      con,
		clk:      clk,
		interval: timex.Ms(cfg.IntervalMs),
		sleep:    time.Sleep,
	}
	if s.interval <= 0 {
		s.interval = DefaultInterval
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Service) Interval() time.Duration { return s.interval }
func (s *Service) Count() int32            { return s.count }

// Setup writes the greeting and both clock readings, one line per Write.
// Write errors are dropped: a dead console just loses output.
func (s *Service) Setup() {
	_, _ = io.WriteString(s.con, greeting)

	varHz := s.clk.CoreClockHz()
	s.writeLine(varClkPfx, conv.AppendUint(s.line[:0], uint64(varHz)), hzSfx)

	realHz := s.clk.MeasuredClockHz()
	s.writeLine(realClkPfx, conv.AppendUint(s.line[:0], uint64(realHz)), hzSfx)

	if s.conn != nil {
		s.conn.Publish(s.conn.NewMessage(TopicClock, types.ClockReport{
			VarHz:      varHz,
			MeasuredHz: realHz,
			TS:         timex.NowMs(),
		}, true))
	}
}

// Tick waits one interval, then writes the current count and advances it.
func (s *Service) Tick() {
	s.sleep(s.interval)

	n := s.count
	s.count++ // wraps at MaxInt32

	s.writeLine(countPfx, conv.AppendInt(s.line[:0], int64(n)), "\n")

	if s.conn != nil {
		s.conn.Publish(s.conn.NewMessage(TopicCount, types.CountEvent{N: n, AtMs: timex.NowMs()}, false))
	}
}

// writeLine emits prefix+digits+suffix with a single Write so a line is
// never split. digits must live at the start of s.line.
func (s *Service) writeLine(prefix string, digits []byte, suffix string) {
	n := len(digits)
	b := s.line[:len(prefix)+n+len(suffix)]
	copy(b[len(prefix):], digits)
	copy(b, prefix)
	copy(b[len(prefix)+n:], suffix)
	_, _ = s.con.Write(b)
}

// Run calls Setup once and then Tick until ctx is cancelled. Cancellation
// is only observed between ticks; an in-progress wait always completes.
func (s *Service) Run(ctx context.Context) {
	s.Setup()
	for {
		select {
		case <-ctx.Done():
			println("[bringup] stopping at count", s.count)
			return
		default:
		}
		s.Tick()
	}
}

// AwaitConfig waits for the retained bring-up config on conn.
func AwaitConfig(ctx context.Context, conn *bus.Connection) (types.BringupConfig, error) {
	sub := conn.Subscribe(config.TopicBringup)
	defer conn.Unsubscribe(sub)

	for {
		select {
		case <-ctx.Done():
			return types.BringupConfig{}, &errcode.E{C: errcode.Timeout, Op: "bringup", Msg: "no config", Err: ctx.Err()}
		case m := <-sub.Channel():
			if cfg, ok := m.Payload.(types.BringupConfig); ok {
				return cfg, nil
			}
			println("[bringup] ignoring config payload of unexpected type")
		}
	}
}
