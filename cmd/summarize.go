package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/wgomg/sumario/internal/config"
	"github.com/wgomg/sumario/internal/digest"
	"github.com/wgomg/sumario/internal/mailbody"
)

func newSummarizeCmd() *cobra.Command {
	var (
		sentences int
		mode      string
		model     string
		format    string
		asHTML    bool
	)

	cmd := &cobra.Command{
		Use:   "summarize [file]",
		Short: "Summarize an email body read from a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if sentences < 0 {
				return fmt.Errorf("--sentences must be a positive integer")
			}
			if format != "text" && format != "json" {
				return fmt.Errorf("--format must be text or json")
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			logger := newLogger(cfg)
			defer logger.Close()

			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			req := digest.Request{Sentences: sentences, Model: model}
			if mode != "" {
				parsed, err := config.ParseMode(mode)
				if err != nil {
					return err
				}
				req.Mode = parsed
			}
			if asHTML || mailbody.LooksLikeHTML(raw) {
				req.HTML = raw
			} else {
				req.Text = raw
			}

			service, err := newDigestService(cfg, logger, nil)
			if err != nil {
				return err
			}

			result, err := service.Run(cmd.Context(), req, "cli")
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if format == "json" {
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")
				return encoder.Encode(result)
			}

			_, err = fmt.Fprintf(out, "%s\n\nMode: %s\n", result.PlainText(), result.Note)
			return err
		},
	}

	cmd.Flags().IntVarP(&sentences, "sentences", "n", 0, "number of summary sentences (default from SUMMARY_SENTENCES)")
	cmd.Flags().StringVar(&mode, "mode", "", "offline or ai (default from SUMMARY_MODE)")
	cmd.Flags().StringVar(&model, "model", "", "hosted model name (default from LLM_MODEL)")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or json")
	cmd.Flags().BoolVar(&asHTML, "html", false, "treat the input as HTML")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}
