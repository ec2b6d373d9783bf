package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/unitecon/internal/config"
	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/inputs"
	"github.com/davidbz/unitecon/internal/loader"
	"github.com/davidbz/unitecon/internal/render"
)

func newCalcCmd() *cobra.Command {
	var (
		entityID   string
		file       string
		historical bool
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute cost per request and plan margin for one entity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(
				l *loader.Loader,
				calculator *domain.CalculatorService,
				defaults *config.DefaultsConfig,
			) error {
				defer l.Close()

				calcInputs, _, err := resolveInputs(defaults, entityID, file)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("historical") {
					calcInputs.Usage.UseHistoricalAverage = historical
				}
				if calcInputs.EntityID == "" {
					return errors.New("an entity is required: pass --entity or set entity_id in --file")
				}

				if _, err := refreshCatalog(cmd.Context(), l); err != nil {
					return err
				}

				evaluation, err := calculator.Calculate(cmd.Context(), calcInputs)
				if err != nil {
					return err
				}

				if asJSON {
					return printJSON(cmd.OutOrStdout(), evaluation)
				}
				fmt.Fprint(cmd.OutOrStdout(), render.Report(evaluation))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&entityID, "entity", "", "entity ID as source:model")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with usage and plan assumptions")
	cmd.Flags().BoolVar(&historical, "historical", false, "prefer historical average cost when available")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the evaluation as JSON")

	return cmd
}

// resolveInputs layers the input file over the configured defaults and
// returns the file's scenario name. An explicit entity flag wins over the
// file's entity_id.
func resolveInputs(defaults *config.DefaultsConfig, entityID, file string) (domain.CalculationInputs, string, error) {
	calcInputs := defaults.Inputs(entityID)
	if file == "" {
		return calcInputs, "", nil
	}

	overlay, err := inputs.Load(file)
	if err != nil {
		return domain.CalculationInputs{}, "", err
	}

	calcInputs = overlay.Apply(calcInputs)
	if entityID != "" {
		calcInputs.EntityID = entityID
	}
	if err := calcInputs.Validate(); err != nil {
		return domain.CalculationInputs{}, "", fmt.Errorf("%s: %w", file, err)
	}
	return calcInputs, overlay.Name, nil
}
