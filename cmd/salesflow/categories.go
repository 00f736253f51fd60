package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Veraticus/salesflow/internal/cli"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the categories of a sales spreadsheet",
		Long:  `Display the distinct product categories of a sales spreadsheet in the order they first appear, with the number of sales in each.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("file")

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			ds, err := newLoader(cfg).Load(cmd.Context(), path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			categories := ds.Categories()
			if len(categories) == 0 {
				fmt.Fprintln(out, cli.FormatInfo("No sales found in "+path))
				return nil
			}

			fmt.Fprintln(out, cli.FormatTitle(fmt.Sprintf("%d categories in %s", len(categories), path)))
			for _, category := range categories {
				fmt.Fprintf(out, "  %s %s\n",
					category,
					cli.SubtleStyle.Render(fmt.Sprintf("(%d sales)", ds.Filter(category).Len())))
			}
			return nil
		},
	}

	cmd.Flags().StringP("file", "f", "", "sales spreadsheet (.xlsx)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
