package main

import (
	"context"
	"time"

	"bringup-go/bus"
	"bringup-go/internal/platform"
	"bringup-go/services/bringup"
	"bringup-go/services/config"
	"bringup-go/x/timex"
)

const configWait = 250 * time.Millisecond

func main() {
	ctx := context.Background()

	b := bus.NewBus(4)
	cfgConn := b.NewConnection("config")
	appConn := b.NewConnection("bringup")

	dev := platform.DeviceID()
	println("[main] device", dev)
	_ = config.NewConfigService().Start(config.WithDevice(ctx, dev), cfgConn)

	wctx, cancel := context.WithTimeout(ctx, configWait)
	cfg, err := bringup.AwaitConfig(wctx, appConn)
	cancel()
	if err != nil {
		println("[main] config not on bus:", err.Error())
		cfg = config.Resolve(dev)
	}

	// Allow USB CDC / the debugger to attach before the greeting.
	time.Sleep(timex.Ms(cfg.BootDelayMs))

	con := platform.Console(cfg)
	svc := bringup.New(cfg, con, platform.Clock(cfg), bringup.WithConnection(appConn))
	svc.Run(ctx)
}
