package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tjfontaine/bdfd-catalog/pkg/catalog"
)

func writeJSON(w io.Writer, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func printTags(w io.Writer, tags []string, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, tags)
	}
	for _, tag := range tags {
		fmt.Fprintln(w, tag)
	}
	return nil
}

func printFunction(w io.Writer, fn *catalog.Function, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, fn)
	}
	fmt.Fprintf(w, "%s\n", fn.Tag)
	if fn.Description != "" {
		fmt.Fprintf(w, "  %s\n", fn.Description)
	}
	fmt.Fprintf(w, "  intents=%s premium=%t\n", fn.Intents, fn.Premium)
	for i, arg := range fn.Args {
		fmt.Fprintf(w, "  %d. %s (%s)%s\n", i+1, arg.Name, arg.Type, argumentFlags(arg.Required, arg.Repeatable, arg.Empty))
		if arg.Description != nil && *arg.Description != "" {
			fmt.Fprintf(w, "     %s\n", *arg.Description)
		}
		if arg.EnumData != nil {
			fmt.Fprintf(w, "     enum %s: %s\n", arg.EnumData.Kind, strings.Join(arg.EnumData.Labels, ", "))
		}
	}
	return nil
}

func printFunctions(w io.Writer, list []catalog.Function, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, list)
	}
	for _, fn := range list {
		fmt.Fprintf(w, "%s\t%s\n", fn.Tag, fn.Description)
	}
	return nil
}

func printCallback(w io.Writer, cb *catalog.Callback, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, cb)
	}
	fmt.Fprintf(w, "%s\n", cb.Name)
	if cb.Description != "" {
		fmt.Fprintf(w, "  %s\n", cb.Description)
	}
	fmt.Fprintf(w, "  intents=%s premium=%t\n", cb.Intents, cb.Premium)
	for i, arg := range cb.Args {
		fmt.Fprintf(w, "  %d. %s (%s)%s\n", i+1, arg.Name, arg.Type, argumentFlags(arg.Required, nil, nil))
		if arg.Description != "" {
			fmt.Fprintf(w, "     %s\n", arg.Description)
		}
	}
	return nil
}

func printCallbacks(w io.Writer, list []catalog.Callback, jsonOutput bool) error {
	if jsonOutput {
		return writeJSON(w, list)
	}
	for _, cb := range list {
		fmt.Fprintf(w, "%s\t%s\n", cb.Name, cb.Description)
	}
	return nil
}

func argumentFlags(required bool, repeatable, empty *bool) string {
	var flags []string
	if required {
		flags = append(flags, "required")
	}
	if repeatable != nil && *repeatable {
		flags = append(flags, "repeatable")
	}
	if empty != nil && *empty {
		flags = append(flags, "may be empty")
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + strings.Join(flags, ", ")
}
