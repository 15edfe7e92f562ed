/**
 * Face Annotator
 * Sends local images to a cloud face detection service, draws the detected faces
 * onto a copy of each image and prints the glasses / blur / occlusion attributes.
 *
 * Requires AI_SERVICE_ENDPOINT and AI_SERVICE_KEY -- either exported or in a .env file.
 */

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gookit/color"
	cli "github.com/spf13/cobra"
)

var (
	// The Root Cli Handler
	rootCmd = &cli.Command{
		Use:   "face-annotator",
		Short: "Detect and annotate faces using a cloud face detection service",
	}
	debugMode = false
)

func init() {
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Run in debug mode. Logs the resolved font and disables the progress spinner.")
}

// remediable errors carry instructions for fixing the setup.
type remediable interface {
	Remediation() string
}

// reportFatal writes err to w and returns the exit status.
// Setup problems print their remediation steps instead of the bare error.
func reportFatal(w io.Writer, err error) int {
	var r remediable
	if errors.As(err, &r) {
		fmt.Fprintln(w, color.Red.Sprint(r.Remediation()))
		return 1
	}
	log.New(w, "", log.LstdFlags).Println("ERROR:", err)
	return 1
}

// exitWithError terminates the process.
func exitWithError(err error) {
	os.Exit(reportFatal(os.Stderr, err))
}

func main() {
	// Run the program
	if err := rootCmd.Execute(); err != nil {
		log.Fatalln("ERROR:", err)
	}
}
