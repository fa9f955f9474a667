// The mlrctl binary is the offline command-line front end of the
// compliance engine.
package main

import (
	"fmt"
	"os"

	"github.com/Nandhu1302/MLR-Content-Orchestrator-sub006/internal/interfaces/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "mlrctl: %v\n", err)
		os.Exit(1)
	}
}
