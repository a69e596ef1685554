package cmd

import (
	"fmt"

	"github.com/daylab/labmate/internal/chem"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert between concentration units",
	Long: `Convert a concentration between mass percent, molarity, and molality.

Examples:
  labmate convert --value 35 --unit percent --molar-mass 36.46 --density 1.18
  labmate convert --value 0.1 --unit molar --molar-mass 40.00`,
	RunE: func(cmd *cobra.Command, args []string) error {
		value, _ := cmd.Flags().GetFloat64("value")
		unit, _ := cmd.Flags().GetString("unit")
		molarMass, _ := cmd.Flags().GetFloat64("molar-mass")
		density, _ := cmd.Flags().GetFloat64("density")

		var u chem.Unit
		switch unit {
		case "percent", "%":
			u = chem.UnitPercent
		case "molar", "M":
			u = chem.UnitMolar
		case "normal", "N":
			u = chem.UnitNormal
		default:
			return fmt.Errorf("unknown unit %q (use percent, molar, or normal)", unit)
		}

		res := chem.Convert(chem.Input{
			Value:     value,
			Unit:      u,
			MolarMass: molarMass,
			Density:   density,
		})
		if res == nil {
			return fmt.Errorf("invalid input: value and molar mass must be positive, density non-negative")
		}

		printConcentration("Mass percent", res.Percent, "%")
		printConcentration("Molarity", res.Molarity, "M")
		printConcentration("Molality", res.Molality, "m")
		if res.DensityAssumed {
			fmt.Println("\nNote: density not given, assumed 1.0 g/mL (water).")
		}
		return nil
	},
}

func printConcentration(label string, v *float64, unit string) {
	if v == nil {
		fmt.Printf("%-14s —\n", label)
		return
	}
	fmt.Printf("%-14s %.4g %s\n", label, *v, unit)
}

func init() {
	convertCmd.Flags().Float64("value", 0, "Concentration value to convert")
	convertCmd.Flags().String("unit", "percent", "Unit of the input value: percent, molar, or normal")
	convertCmd.Flags().Float64("molar-mass", 0, "Solute molar mass in g/mol")
	convertCmd.Flags().Float64("density", 0, "Solution density in g/mL (0 = assume water)")
	_ = convertCmd.MarkFlagRequired("value")
	_ = convertCmd.MarkFlagRequired("molar-mass")
}
