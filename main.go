package main

import (
	"context"
	"os"

	"github.com/shandysiswandi/goitems/internal/app"
)

func main() {
	application := app.New()    // Initialize the application
	wait := application.Start() // Start the application and wait for the termination signal
	<-wait                      // Wait for a termination signal or a failed listener

	ctx, cancel := context.WithTimeout(context.Background(), application.ShutdownTimeout())
	defer cancel()

	if err := application.Stop(ctx); err != nil { // Stop the application gracefully
		cancel()
		os.Exit(1)
	}
}
