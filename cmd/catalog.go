package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidbz/unitecon/internal/domain"
	"github.com/davidbz/unitecon/internal/loader"
	"github.com/davidbz/unitecon/internal/render"
)

func newCatalogCmd() *cobra.Command {
	var (
		mediaType string
		asJSON    bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch and list priceable entities",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return buildContainer().Invoke(func(l *loader.Loader) error {
				defer l.Close()

				snapshot, err := refreshCatalog(cmd.Context(), l)
				if err != nil {
					return err
				}

				if mediaType != "" {
					parsed, ok := domain.ParseMediaType(mediaType)
					if !ok {
						return fmt.Errorf("unknown media type %q", mediaType)
					}
					snapshot.Entities = snapshot.ByMediaType(parsed)
				}

				if asJSON {
					return printJSON(cmd.OutOrStdout(), snapshot)
				}
				fmt.Fprint(cmd.OutOrStdout(), render.Catalog(snapshot))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&mediaType, "media-type", "", "only list entities of this media type (text, image, video, audio)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the snapshot as JSON")

	return cmd
}
