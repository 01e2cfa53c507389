package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/astroparticle/alpsim/pkg/config"
)

var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "List cataloged gamma-ray sources",
	Long:  `List the source presets usable with 'alpsim run --source'`,
	RunE:  listSources,
}

func listSources(cmd *cobra.Command, args []string) error {
	catalog, err := config.LoadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load source catalog: %w", err)
	}

	if len(catalog.Sources) == 0 {
		fmt.Println("No sources cataloged")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tZ\tRA\tDEC\tSCENARIO")
	_, _ = fmt.Fprintln(w, "----\t-\t--\t---\t--------")

	for _, src := range catalog.Sources {
		tags := make([]string, len(src.Scenario))
		for i, r := range src.Scenario {
			tags[i] = string(r)
		}
		_, _ = fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%s\n",
			src.Name, src.Z, src.RA, src.Dec, strings.Join(tags, ","))
	}

	return w.Flush()
}
