package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Fetch and print the resolved field registry",
	Long:  "Fetches the target object's field definitions and prints the registry used for mapping, so tenant field names can be verified before enabling the webhook.",
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}
		if err := env.Resolver.Initialize(cmd.Context()); err != nil {
			return err
		}

		fields := env.Resolver.Fields()
		fmt.Printf("%s: %d updateable fields\n\n", cfg.Salesforce.Object, len(fields))
		for _, f := range fields {
			line := fmt.Sprintf("%-40s %-32s %-10s", f.ID, f.Name, f.Type)
			if f.Required {
				line += " required"
			}
			if len(f.Options) > 0 {
				line += "  [" + strings.Join(f.Options, ", ") + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}
