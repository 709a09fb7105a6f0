package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/call-sync/internal/model"
)

var processFallbacks bool

var processCmd = &cobra.Command{
	Use:   "process <event.json>",
	Short: "Run one sync pass from a call-completion event file",
	Long:  "Replays a call-completion event from a JSON file through the full pipeline. Used for debugging and for re-running events the webhook missed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		env, err := initEnv()
		if err != nil {
			return err
		}
		env.Processor.WithFallbacks = processFallbacks

		data, err := os.ReadFile(args[0])
		if err != nil {
			return eris.Wrap(err, "read event file")
		}
		var ev model.CallEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			return eris.Wrap(err, "decode event file")
		}

		result, err := env.Processor.Run(cmd.Context(), ev)
		if err != nil {
			return err
		}

		out, _ := json.MarshalIndent(result, "", "  ")
		cmd.Println(string(out))
		for _, w := range result.Warnings {
			zap.L().Warn("process: " + w)
		}
		return nil
	},
}

func init() {
	processCmd.Flags().BoolVar(&processFallbacks, "fallbacks", false, "fill unextracted core fields with fallback labels")
	rootCmd.AddCommand(processCmd)
}
