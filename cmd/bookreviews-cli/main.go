package main

import (
	"context"
	"os"

	"bookreviews-backend/cmd/bookreviews-cli/commands"
	"bookreviews-backend/lib/serviceutil"
	"bookreviews-backend/lib/telemetry"
)

func main() {
	ctx := serviceutil.SignalContext()

	tel, err := telemetry.SetupFromEnv(ctx, "bookreviews-cli")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("failed to setup telemetry", err)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)
	telemetry.InitSlog(true)

	commands.ExecuteContext(ctx)
}
