package main

import (
	"github.com/spf13/cobra"

	"github.com/tjfontaine/bdfd-catalog/pkg/catalog"
)

func newDomainCmd(domain catalog.Domain, opts *cliOptions) *cobra.Command {
	noun := "functions"
	if domain == catalog.DomainCallback {
		noun = "callbacks"
	}

	cmd := &cobra.Command{
		Use:   string(domain),
		Short: "Query catalog " + noun,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "info <partial-tag>",
			Short: "Show the first " + string(domain) + " whose tag contains the argument",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				w, err := catalog.New(domain, opts.clientOptions()...)
				if err != nil {
					return err
				}
				return runInfo(cmd, w, args[0], opts.jsonOutput)
			},
		},
		&cobra.Command{
			Use:   "list",
			Short: "List every " + string(domain),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				w, err := catalog.New(domain, opts.clientOptions()...)
				if err != nil {
					return err
				}
				return runList(cmd, w, opts.jsonOutput)
			},
		},
		&cobra.Command{
			Use:   "tags",
			Short: "List " + string(domain) + " tags in server order",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				w, err := catalog.New(domain, opts.clientOptions()...)
				if err != nil {
					return err
				}
				tags, err := w.TagList(cmd.Context())
				if err != nil {
					return catalogExit(err)
				}
				return printTags(cmd.OutOrStdout(), tags, opts.jsonOutput)
			},
		},
	)

	return cmd
}

func runInfo(cmd *cobra.Command, w *catalog.Wrapper, tag string, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if w.Target() == catalog.DomainFunction {
		functions, err := w.Functions()
		if err != nil {
			return err
		}
		fn, err := functions.Info(cmd.Context(), tag)
		if err != nil {
			return catalogExit(err)
		}
		return printFunction(out, fn, jsonOutput)
	}

	callbacks, err := w.Callbacks()
	if err != nil {
		return err
	}
	cb, err := callbacks.Info(cmd.Context(), tag)
	if err != nil {
		return catalogExit(err)
	}
	return printCallback(out, cb, jsonOutput)
}

func runList(cmd *cobra.Command, w *catalog.Wrapper, jsonOutput bool) error {
	out := cmd.OutOrStdout()
	if w.Target() == catalog.DomainFunction {
		functions, err := w.Functions()
		if err != nil {
			return err
		}
		list, err := functions.List(cmd.Context())
		if err != nil {
			return catalogExit(err)
		}
		return printFunctions(out, list, jsonOutput)
	}

	callbacks, err := w.Callbacks()
	if err != nil {
		return err
	}
	list, err := callbacks.List(cmd.Context())
	if err != nil {
		return catalogExit(err)
	}
	return printCallbacks(out, list, jsonOutput)
}
