package main

import (
	"fmt"
	"os"

	"github.com/ekiwi/firrtl-uclid/internal/annotate"
	"github.com/ekiwi/firrtl-uclid/internal/hirjson"
	"github.com/ekiwi/firrtl-uclid/internal/translate"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var translateCmd = &cobra.Command{
	Use:   "translate <circuit.json>",
	Short: "Translate a JSON-encoded circuit into a transition-system module.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTranslate,
}

func init() {
	translateCmd.Flags().StringP("output", "o", "", "write the rendered module to this path instead of stdout")
	translateCmd.Flags().Uint("bmc", 0, "insert or override the BMC unroll step count")
	translateCmd.Flags().StringArray("assume", nil, "reference to emit as an assumption (repeatable)")
	translateCmd.Flags().StringArray("property", nil, "reference to emit as an invariant (repeatable)")
	translateCmd.Flags().Bool("check", false, "run the structural self-check against the rendered output")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		log.SetLevel(log.DebugLevel)
	}

	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("hir2uclid: %w", err)
	}
	defer f.Close()

	circuit, annotations, err := hirjson.Load(f)
	if err != nil {
		return err
	}

	annotations = applyFlagAnnotations(cmd, annotations)

	check, _ := cmd.Flags().GetBool("check")

	rendered, err := translate.Translate(circuit, translate.Options{Annotations: annotations, Check: check})
	if err != nil {
		return err
	}

	output, _ := cmd.Flags().GetString("output")

	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	if err := os.WriteFile(output, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("hir2uclid: %w", err)
	}

	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(rendered), output)
	}

	return nil
}

func applyFlagAnnotations(cmd *cobra.Command, base *annotate.Set) *annotate.Set {
	if base == nil {
		base = annotate.NewSet()
	}

	if bmc, _ := cmd.Flags().GetUint("bmc"); bmc != 0 {
		base.WithBMC(bmc)
	}

	assumptions, _ := cmd.Flags().GetStringArray("assume")
	for _, ref := range assumptions {
		base.WithAssumption(ref)
	}

	properties, _ := cmd.Flags().GetStringArray("property")
	for _, ref := range properties {
		base.WithProperty(ref)
	}

	return base
}
