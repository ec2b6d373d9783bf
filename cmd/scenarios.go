package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/unitecon/internal/config"
	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/loader"
	"github.com/davidbz/unitecon/internal/render"
	"github.com/davidbz/unitecon/internal/store"
)

func newScenariosCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "scenarios",
		Aliases: []string{"scenario"},
		Short:   "Manage saved what-if scenarios",
	}

	cmd.AddCommand(
		newScenariosListCmd(),
		newScenariosShowCmd(),
		newScenariosSaveCmd(),
		newScenariosDeleteCmd(),
		newScenariosCompareCmd(),
	)

	return cmd
}

// withScenarios runs fn against the scenario service and closes the store afterwards.
func withScenarios(fn func(scenarios *domain.ScenarioService) error) error {
	return buildContainer().Invoke(func(scenarios *domain.ScenarioService, kv store.Backend) error {
		defer kv.Close()
		return fn(scenarios)
	})
}

func newScenariosListCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved scenarios in the order they were saved",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withScenarios(func(scenarios *domain.ScenarioService) error {
				list, err := scenarios.List(cmd.Context())
				if err != nil {
					return err
				}

				if asJSON {
					return printJSON(cmd.OutOrStdout(), list)
				}
				fmt.Fprint(cmd.OutOrStdout(), render.Scenarios(list))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print scenarios as JSON")
	return cmd
}

func newScenariosShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a saved scenario's inputs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScenarios(func(scenarios *domain.ScenarioService) error {
				scenario, err := scenarios.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), scenario)
			})
		},
	}
}

func newScenariosSaveCmd() *cobra.Command {
	var (
		name     string
		entityID string
		file     string
	)

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save the current inputs as a named scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(
				scenarios *domain.ScenarioService,
				kv store.Backend,
				defaults *config.DefaultsConfig,
			) error {
				defer kv.Close()

				calcInputs, fileName, err := resolveInputs(defaults, entityID, file)
				if err != nil {
					return err
				}
				if calcInputs.EntityID == "" {
					return errors.New("an entity is required: pass --entity or set entity_id in --file")
				}
				if name == "" {
					name = fileName
				}

				scenario, err := scenarios.Save(cmd.Context(), name, calcInputs)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "saved scenario %s (%s)\n", scenario.Name, scenario.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "scenario name (defaults to the name in --file)")
	cmd.Flags().StringVar(&entityID, "entity", "", "entity ID as source:model")
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with usage and plan assumptions")

	return cmd
}

func newScenariosDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a saved scenario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withScenarios(func(scenarios *domain.ScenarioService) error {
				if err := scenarios.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "deleted scenario %s\n", args[0])
				return nil
			})
		},
	}
}

func newScenariosCompareCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Recompute every saved scenario against live prices and statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(
				scenarios *domain.ScenarioService,
				l *loader.Loader,
				kv store.Backend,
			) error {
				defer kv.Close()
				defer l.Close()

				if _, err := refreshCatalog(cmd.Context(), l); err != nil {
					return err
				}

				comparisons, err := scenarios.Compare(cmd.Context())
				if err != nil {
					return err
				}

				if asJSON {
					return printJSON(cmd.OutOrStdout(), comparisons)
				}
				fmt.Fprint(cmd.OutOrStdout(), render.Comparison(comparisons))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print comparisons as JSON")
	return cmd
}
