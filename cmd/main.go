package main

import (
	"errors"
	"os"
	"syscall"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags: -ldflags "-X main.Version=1.0.0"
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:           "chainledger",
	Short:         "Read model for on-chain charity campaigns and their IPFS metadata",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd, campaignsCmd, statsCmd, migrateCmd)
}

// signalError carries the signal that ended the serve command so main can
// exit with the conventional 128+n code.
type signalError struct {
	sig syscall.Signal
}

func (e signalError) Error() string { return "terminated by " + e.sig.String() }

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	var sigErr signalError
	if errors.As(err, &sigErr) {
		os.Exit(128 + int(sigErr.sig))
	}
	rootCmd.PrintErrln("error:", err)
	os.Exit(1)
}
