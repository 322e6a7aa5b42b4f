package config

import (
	"context"

	"bringup-go/bus"
	"bringup-go/errcode"
	"bringup-go/types"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
	bringupKey   = "bringup"
)

// TopicBringup carries the retained types.BringupConfig.
var TopicBringup = bus.T(configPrefix, bringupKey)

type ctxKey struct{}

// WithDevice places the device ID used for config lookup into ctx.
func WithDevice(ctx context.Context, device string) context.Context {
	return context.WithValue(ctx, ctxKey{}, device)
}

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) (types.BringupConfig, bool) {
	c, ok := embeddedConfigs[device]
	return c, ok
}

// Lookup resolves and validates the config for device.
func Lookup(device string) (types.BringupConfig, error) {
	cfg, ok := EmbeddedConfigLookup(device)
	if !ok {
		return types.BringupConfig{}, &errcode.E{C: errcode.UnknownDevice, Op: serviceName, Msg: device}
	}
	if cfg.IntervalMs == 0 {
		return types.BringupConfig{}, &errcode.E{C: errcode.InvalidConfig, Op: serviceName, Msg: "interval_ms must be > 0"}
	}
	return cfg, nil
}

// Resolve is Lookup that never fails: a missing or invalid entry yields
// Fallback.
func Resolve(device string) types.BringupConfig {
	cfg, err := Lookup(device)
	if err != nil {
		println("[config] falling back to defaults:", err.Error())
		return Fallback
	}
	return cfg
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name string
}

func NewConfigService() *ConfigService {
	return &ConfigService{Name: serviceName}
}

// publishConfig resolves the device config and publishes it as a retained message.
func (s *ConfigService) publishConfig(ctx context.Context, conn *bus.Connection) error {
	device, _ := ctx.Value(ctxKey{}).(string)
	if device == "" {
		return &errcode.E{C: errcode.UnknownDevice, Op: serviceName, Msg: "missing device ID in context"}
	}
	cfg, err := Lookup(device)
	if err != nil {
		return err
	}
	conn.Publish(conn.NewMessage(TopicBringup, cfg, true))
	return nil
}

// Start publishes the config synchronously so it is retained before any
// consumer subscribes.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) error {
	if err := s.publishConfig(ctx, conn); err != nil {
		println("[config] publish failed:", err.Error())
		return err
	}
	return nil
}
