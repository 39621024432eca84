// Package cli provides the command-line interface for the WasteNaut document generator.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/config"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/documents"
	"github.com/GabrielNunesIT/wastenaut-docs/internal/server"
	"github.com/spf13/cobra"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log        logger.ILogger
	rootCmd    *cobra.Command
	configFile string
	outputFile string
	format     string
	addr       string

	cfg  *config.Config
	docs *documents.Service
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cli := &CLI{
		log: log,
	}

	cli.rootCmd = &cobra.Command{
		Use:               "wastenaut-docs",
		Short:             "Generate WasteNaut resource documents and tax receipts",
		Long:              "A CLI tool that renders WasteNaut resource guides and donor tax receipts as PDF, Word (DOCX), Confluence (ADF) or JSON, and serves them over HTTP.",
		SilenceUsage:      true,
		PersistentPreRunE: cli.setup,
	}

	cli.rootCmd.PersistentFlags().StringVar(&cli.configFile, "config", "", "Path to a configuration file (YAML or JSON)")

	cli.rootCmd.AddCommand(
		cli.resourceCmd(),
		cli.receiptCmd(),
		cli.extractCmd(),
		cli.previewCmd(),
		cli.serveCmd(),
		cli.openapiCmd(),
	)

	return cli
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

// SetArgs overrides the arguments read by Execute.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output, which defaults to stdout.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func (c *CLI) setup(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configFile)
	if err != nil {
		return err
	}

	c.cfg = cfg
	c.docs = documents.New(cfg, c.log)

	return nil
}

func (c *CLI) resourceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resource <filename>",
		Short: "Render a resource document, e.g. food-safety-guide.pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := c.docs.ResourceAs(args[0], c.format)
			if err != nil {
				return fmt.Errorf("conversion failed: %w", err)
			}
			return c.writeDocument(doc)
		},
	}

	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (defaults to the document name)")
	cmd.Flags().StringVarP(&c.format, "format", "f", "pdf", "Output format: pdf, docx, confluence, json")

	return cmd
}

func (c *CLI) receiptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "receipt <filename>",
		Short: "Render a tax receipt named {donorId}-{taxYear}.pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			doc, err := c.docs.Receipt(args[0])
			if err != nil {
				return fmt.Errorf("receipt generation failed: %w", err)
			}
			return c.writeDocument(doc)
		},
	}

	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (defaults to the receipt name)")

	return cmd
}

func (c *CLI) extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <docType>",
		Short: "Print the content lines extracted from a document (food, checklist, receipt, ...)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.docs.Extract(args[0])
			if err != nil {
				return err
			}
			return c.writeJSON(cmd, report)
		},
	}

	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (defaults to stdout)")

	return cmd
}

func (c *CLI) previewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preview <docType>",
		Short: "Print the expected page layout of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := c.docs.Preview(args[0])
			if err != nil {
				return err
			}
			return c.writeJSON(cmd, report)
		},
	}
}

func (c *CLI) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve documents over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			serverCfg := c.cfg.Server
			if cmd.Flags().Changed("addr") {
				serverCfg.Addr = c.addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return server.New(serverCfg, c.docs, c.log).ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVar(&c.addr, "addr", ":8080", "Listen address")

	return cmd
}

func (c *CLI) openapiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI description of the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec := server.Spec(c.cfg.Server.DebugRoutes, c.docs.Formats())
			if err := spec.Validate(cmd.Context()); err != nil {
				return fmt.Errorf("invalid OpenAPI document: %w", err)
			}
			return c.writeJSON(cmd, spec)
		},
	}

	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (defaults to stdout)")

	return cmd
}

func (c *CLI) writeDocument(doc documents.Document) error {
	path := c.outputFile
	if path == "" {
		path = doc.Filename
	}

	if err := os.WriteFile(path, doc.Body, 0o644); err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	c.log.Infof("Successfully created: %s (%d bytes)", path, len(doc.Body))

	return nil
}

func (c *CLI) writeJSON(cmd *cobra.Command, v any) error {
	out := cmd.OutOrStdout()

	if c.outputFile != "" {
		f, err := os.Create(c.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	return nil
}
