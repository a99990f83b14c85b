// vegeta-test-server is a fixed, predictable HTTP target for the Vegeta
// load-testing tool. It serves two static endpoints and a 404 for anything else.
package main

import (
	"fmt"
	"os"

	"github.com/internetarchive/vegeta-test-server/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
