package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/notifyrules/cmd/notifyrules"
	"github.com/arthur-debert/notifyrules/pkg/logging"
	"github.com/arthur-debert/notifyrules/pkg/styles"
)

func main() {
	rootCmd := notifyrules.NewRootCmd()
	err := rootCmd.Execute()
	_ = logging.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
