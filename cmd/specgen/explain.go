package main

import (
	"fmt"
	"io"

	"github.com/mangohow/specification"
	"github.com/mangohow/specification/criteria"
	"github.com/mangohow/specification/criteria/memory"
	"github.com/mangohow/specification/internal/command"
	"github.com/mangohow/specification/internal/errors"
	"github.com/mangohow/specification/internal/log"
	"github.com/mangohow/specification/schema"
	"github.com/spf13/cobra"
)

type explainOptions struct {
	Schema  string `flag:"schema" short:"s" usage:"Schema descriptor YAML file"`
	Entity  string `flag:"entity" short:"e" usage:"Root entity of the query"`
	Path    string `flag:"path" short:"p" usage:"Dotted attribute path to resolve"`
	Join    string `flag:"join" default:"inner" usage:"Requested join type: [inner, left, right]"`
	Fetch   bool   `flag:"fetch" usage:"Create fetch joins for associations"`
	Verbose bool   `flag:"verbose" short:"v" usage:"Log join reuse and creation"`
}

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "explain how an attribute path resolves",
	Long:  "explain classifies every segment of an attribute path against a schema descriptor and prints the resolved handle and join tree",
	RunE: func(cmd *cobra.Command, args []string) error {
		options := &explainOptions{}
		if err := command.BindOptions(cmd, options); err != nil {
			return err
		}
		if options.Schema == "" || options.Entity == "" || options.Path == "" {
			return errors.Errorf("schema, entity and path are required")
		}
		joinType, ok := criteria.ParseJoinType(options.Join)
		if !ok {
			return errors.Errorf("unknown join type %q", options.Join)
		}
		if options.Verbose {
			log.SetDebug(true)
			specification.SetDebugLogger(log.Debugger{})
		}

		d, err := schema.LoadFile(options.Schema)
		if err != nil {
			return err
		}

		return explain(cmd.OutOrStdout(), d, options.Entity, specification.ParsePath(options.Path), joinType, options.Fetch)
	},
}

func init() {
	if err := command.BindCommand(explainCmd, &explainOptions{}); err != nil {
		log.Fatalf("bind command error, err: %v", err)
	}
}

func explain(w io.Writer, d *schema.Descriptor, entity string, path specification.Path, joinType criteria.JoinType, fetch bool) error {
	if err := path.Validate(); err != nil {
		return err
	}
	query, err := memory.NewQuery(d, entity)
	if err != nil {
		return err
	}

	current := entity
	for i, segment := range path {
		field, ok := d.Field(current, segment)
		if !ok {
			fmt.Fprintf(w, "%d %s.%s: unknown\n", i, current, segment)
			break
		}

		fmt.Fprintf(w, "%d %s.%s: %s", i, current, segment, field.Kind)
		if field.Target != "" {
			fmt.Fprintf(w, " -> %s", field.Target)
		}
		fmt.Fprintln(w)

		if !field.Kind.IsAssociation() {
			if i != len(path)-1 {
				fmt.Fprintf(w, "  ends the path, %s is ignored\n", path[i+1:])
			}
			break
		}
		current = field.Target
	}

	handle, err := specification.ResolvePath(d, query.Root(), path, joinType, fetch)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "handle: %s\n", handle)
	fmt.Fprint(w, query.Explain())
	return nil
}
