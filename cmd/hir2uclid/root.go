package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hir2uclid",
	Short: "Translate a synchronous hardware IR into a transition-system model.",
	Long:  "hir2uclid reads a JSON-encoded register-transfer-level circuit and renders it as a transition-system module suitable for bounded model checking.",
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func main() {
	execute()
}
