package plan

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/astroparticle/alpsim/pkg/config"
)

// Region colors for the traversal report
var (
	colorJet    = color.New(color.FgRed, color.Bold)
	colorICM    = color.New(color.FgMagenta)
	colorIGM    = color.New(color.FgBlue)
	colorGMF    = color.New(color.FgGreen)
	colorArrow  = color.New(color.FgHiBlack)
	colorDetail = color.New(color.FgCyan)
)

func regionColor(r config.Region) *color.Color {
	switch r {
	case config.RegionJet:
		return colorJet
	case config.RegionICM:
		return colorICM
	case config.RegionIGM:
		return colorIGM
	case config.RegionGMF:
		return colorGMF
	default:
		return colorDetail
	}
}

// printTraversal prints one line per region in scenario order, source
// to observer, with the parameters the mixing engine would see.
func printTraversal(cfg *config.Config) {
	for i, region := range cfg.Mixing.Scenario {
		prefix := "   "
		if i > 0 {
			prefix = colorArrow.Sprint(" → ")
		}
		fmt.Printf("%s%s  %s\n", prefix, regionColor(region).Sprintf("%-3s", string(region)), regionDetail(cfg, region))
	}
}

func regionDetail(cfg *config.Config, region config.Region) string {
	switch region {
	case config.RegionJet:
		return colorDetail.Sprintf("B=%g G at R_BLR=%g pc (p=%g), n=%g cm^-3 (s=%g), out to %g pc, Psi=%g rad",
			cfg.Jet.BJet, cfg.Jet.RBLR, cfg.Jet.PJet, cfg.Jet.NJet, cfg.Jet.SJet, cfg.Jet.RMax, cfg.Jet.Psi)
	case config.RegionICM:
		detail := colorDetail.Sprintf("B=%g µG, n=%g x 1e-3 cm^-3, Lcoh=%g kpc, r_abell=%g kpc",
			cfg.ICM.B, cfg.ICM.N, cfg.ICM.LCoh, cfg.ICM.RAbell)
		if !cfg.ICM.BnConst {
			detail += colorDetail.Sprintf(", beta-profile core %g kpc (beta=%g, eta=%g)",
				cfg.ICM.RCore, cfg.ICM.Beta, cfg.ICM.Eta)
		}
		return detail
	case config.RegionIGM:
		return colorDetail.Sprintf("B0=%g nG, L0=%g Mpc, n0=%g x 1e-7 cm^-3, EBL %s (norm %g)",
			cfg.IGM.B0, cfg.IGM.L0, cfg.IGM.N0, cfg.IGM.EBL, cfg.IGM.EBLNorm)
	case config.RegionGMF:
		density := colorDetail.Sprintf("n=%g x 1e-3 cm^-3", cfg.GMF.NGMF)
		if cfg.GMF.NE2001 {
			density = colorDetail.Sprint("NE2001 electron density")
		}
		model := string(cfg.GMF.Model)
		if cfg.GMF.Model == config.GMFPshirkov {
			model += fmt.Sprintf(" (%s)", cfg.GMF.ModelSym)
		}
		return colorDetail.Sprintf("%s model, %s", model, density)
	default:
		return ""
	}
}
