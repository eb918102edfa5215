// Command assetgen generates the village viewer's pixel-art assets with Gemini
// and writes them under ./assets.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "assetgen",
	Short: "Generate pixel-art assets with Gemini",
	Long: `assetgen requests a fixed set of pixel-art images from the Gemini image model
and writes them to ./assets/{sprites,tilesets,ui}. The API key is read from
~/.claude/settings.json (mcpServers.nanobanana.env.GEMINI_API_KEY).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd.OutOrStdout(), cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		return a.run(cmd.Context())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
