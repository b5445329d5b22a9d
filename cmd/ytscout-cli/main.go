package main

import (
	"context"
	"os"

	"ytscout/cmd/ytscout-cli/commands"
	"ytscout/lib/serviceutil"
	"ytscout/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	// running without a telemetry.json5 just means no export
	tel, err := telemetry.SetupFromEnv(ctx, "ytscout-cli")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to set up telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	commands.ExecuteContext(ctx)
}
