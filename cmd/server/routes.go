package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JaimeStill/chargepoint/pkg/web"
	"github.com/JaimeStill/chargepoint/web/app"
)

func newRoutesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the application route table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printRoutes(cmd.OutOrStdout(), app.Routes)
		},
	}
}

func printRoutes(w io.Writer, table *web.Table) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PATH\tNAME\tTARGET\tAUTH")
	for _, r := range table.Routes() {
		target := r.Template
		if r.IsRedirect() {
			target = "-> " + r.Redirect
		}
		name := r.Name
		if name == "" {
			name = "-"
		}
		auth := ""
		if r.Meta.RequiresAuth {
			auth = "required"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.Path, name, target, auth)
	}
	return tw.Flush()
}
