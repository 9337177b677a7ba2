package main

import (
	"encoding/json"

	"github.com/btmxh/folio/internal/media"
	"github.com/spf13/cobra"
)

var resolveKind string
var resolveParent string

func init() {
	resolveCmd.Flags().StringVarP(&resolveKind, "kind", "k", string(media.KindImage), "declared media type (image, video, pdf, ppt, pptx, doc, docx, other)")
	resolveCmd.Flags().StringVar(&resolveParent, "parent", "", "host of the embedding page, required for Twitch embeds")
	rootCmd.AddCommand(resolveCmd)
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <url>",
	Short: "Prints how a media link would be rendered",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := media.ParseKindStrict(resolveKind)
		if err != nil {
			return err
		}

		resolved := media.Resolve(media.Link{URL: args[0], Kind: kind}, media.EmbedOptions{ParentHost: resolveParent})
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		encoder.SetEscapeHTML(false)
		return encoder.Encode(resolved)
	},
}
