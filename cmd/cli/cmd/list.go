package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/astroparticle/alpsim/pkg/config"
	"github.com/astroparticle/alpsim/pkg/engine"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available engines and models",
	Long:  `List all registered mixing engines and the recognized model names`,
	RunE:  listEngines,
}

func listEngines(cmd *cobra.Command, args []string) error {
	names := engine.DefaultRegistry.List()
	if len(names) == 0 {
		fmt.Println("No engines registered")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ENGINE\tNAME\tDESCRIPTION")
	_, _ = fmt.Fprintln(w, "------\t----\t-----------")

	for _, name := range names {
		eng, err := engine.DefaultRegistry.Get(name)
		if err != nil {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", name, eng.Name(), eng.Describe())
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	printEnum("Propagation regions", "scenario")
	printEnum("EBL models", "ebl")
	printEnum("Galactic field models", "model")
	printEnum("Pshirkov symmetries", "model_sym")

	return nil
}

func printEnum(title, key string) {
	if param, ok := config.LookupParameter(key); ok {
		fmt.Printf("%s: %s\n", title, strings.Join(param.Options, ", "))
	}
}
