package main

import (
	"github.com/mangohow/specification/internal/command"
	"github.com/mangohow/specification/internal/generator"
	"github.com/mangohow/specification/internal/log"
	"github.com/spf13/cobra"
)

type genOptions struct {
	Pattern string `flag:"dir" short:"d" default:"." usage:"Package pattern of the model structs"`
	Output  string `flag:"output" short:"o" usage:"Output file, stdout when empty"`
	Format  string `flag:"format" default:"go" usage:"Output format: [go, yaml]"`
	TagName string `flag:"tag" default:"db" usage:"Struct tag carrying attribute names and mappings"`
	Package string `flag:"package" usage:"Package of the generated Go file, the model package when empty"`
	Var     string `flag:"var" default:"Schema" usage:"Variable holding the generated descriptor"`
	Verbose bool   `flag:"verbose" short:"v" usage:"Print debug output"`
}

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "generate a schema descriptor",
	Long:  "generate a schema descriptor as Go source or YAML from the tagged structs of a package",
	RunE: func(cmd *cobra.Command, args []string) error {
		options := &genOptions{}
		if err := command.BindOptions(cmd, options); err != nil {
			return err
		}
		log.SetDebug(options.Verbose)

		return generator.Run(generator.Options{
			Pattern: options.Pattern,
			Output:  options.Output,
			Format:  options.Format,
			TagName: options.TagName,
			Package: options.Package,
			Var:     options.Var,
		})
	},
}

func init() {
	if err := command.BindCommand(genCmd, &genOptions{}); err != nil {
		log.Fatalf("bind command error, err: %v", err)
	}
}
