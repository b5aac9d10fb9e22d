package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/juristika/zakon/pkg/citation"
	"github.com/juristika/zakon/pkg/config"
	"github.com/juristika/zakon/pkg/extract"
	"github.com/juristika/zakon/pkg/server"
	"github.com/juristika/zakon/pkg/store"
	"github.com/juristika/zakon/pkg/temporal"
	"github.com/juristika/zakon/pkg/types"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "zakon",
		Short: "Statutory citation and cross-reference resolution engine",
		Long: `Zakon gives structured, queryable access to the Slovenian statutory
corpus: it parses free-text legal citations into typed references,
extracts cross-references, EU-instrument references and amendment
annotations from provision text, and resolves a provision's text as it
stood on any date.`,
		Version: version,
	}

	rootCmd.AddCommand(citeCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(resolveCmd())
	rootCmd.AddCommand(dbCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func citeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cite",
		Short: "Parse, format and validate legal citations",
	}

	parseCmd := &cobra.Command{
		Use:   "parse [citation]",
		Short: "Parse a citation string into a typed reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(citation.Parse(args[0]))
		},
	}

	formatCmd := &cobra.Command{
		Use:   "format [citation]",
		Short: "Render a citation in a canonical style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			style, _ := cmd.Flags().GetString("style")
			fmt.Println(citation.Format(args[0], citation.Style(style)))
			return nil
		},
	}
	formatCmd.Flags().String("style", "full", "rendering style: full, short or pinpoint")

	validateCmd := &cobra.Command{
		Use:   "validate [citation]",
		Short: "Validate a citation against the corpus database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			result, err := citation.Validate(cmd.Context(), st, args[0])
			if err != nil {
				return err
			}
			return printJSON(result)
		},
	}
	validateCmd.Flags().String("db", "zakon.db", "corpus database path")

	cmd.AddCommand(parseCmd, formatCmd, validateCmd)
	return cmd
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract references from provision text",
		Long: `Extract structured references from provision text given as an
argument or on stdin.

Example:
  zakon extract refs "v skladu z 42. členom ZGD-1"
  cat provision.txt | zakon extract eu`,
	}

	refsCmd := &cobra.Command{
		Use:   "refs [text]",
		Short: "Extract article cross-references",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(args)
			if err != nil {
				return err
			}
			return printJSON(extract.ExtractCrossRefs(text))
		},
	}

	euCmd := &cobra.Command{
		Use:   "eu [text]",
		Short: "Extract EU directive/regulation references",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(args)
			if err != nil {
				return err
			}
			return printJSON(extract.ExtractForeignRefs(text))
		},
	}

	amendmentsCmd := &cobra.Command{
		Use:   "amendments [text]",
		Short: "Extract amendment annotations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := textArg(args)
			if err != nil {
				return err
			}
			return printJSON(extract.ExtractAmendments(text))
		},
	}

	cmd.AddCommand(refsCmd, euCmd, amendmentsCmd)
	return cmd
}

func resolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve [document] [provision]",
		Short: "Resolve a provision's text as it stood on a date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, _ := cmd.Flags().GetString("date")
			withAmendments, _ := cmd.Flags().GetBool("amendments")

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			resolved, err := temporal.ResolveAt(cmd.Context(), st, args[0], args[1], date, withAmendments)
			if err != nil {
				return err
			}
			return printJSON(resolved)
		},
	}
	cmd.Flags().String("db", "zakon.db", "corpus database path")
	cmd.Flags().String("date", "", "ISO date YYYY-MM-DD (default today)")
	cmd.Flags().Bool("amendments", false, "include amended_by edges")
	return cmd
}

// corpusFile is the JSON shape accepted by "zakon db load".
type corpusFile struct {
	Documents       []types.Document         `json:"documents"`
	Provisions      []types.Provision        `json:"provisions"`
	Versions        []types.ProvisionVersion `json:"versions"`
	CrossReferences []types.CrossReference   `json:"cross_references"`
}

func dbCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Create and populate the corpus database",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Create an empty corpus database",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()
			fmt.Printf("Initialized corpus database: %s\n", st.Path())
			return nil
		},
	}
	initCmd.Flags().String("db", "zakon.db", "corpus database path")

	loadCmd := &cobra.Command{
		Use:   "load [corpus.json]",
		Short: "Load a JSON corpus dump into the database",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading corpus file: %w", err)
			}
			var corpus corpusFile
			if err := json.Unmarshal(data, &corpus); err != nil {
				return fmt.Errorf("parsing corpus file: %w", err)
			}

			st, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer st.Close()

			ctx := cmd.Context()
			for _, doc := range corpus.Documents {
				if err := st.PutDocument(ctx, doc); err != nil {
					return err
				}
			}
			for _, prov := range corpus.Provisions {
				if err := st.PutProvision(ctx, prov); err != nil {
					return err
				}
			}
			for _, v := range corpus.Versions {
				if err := st.PutVersion(ctx, v); err != nil {
					return err
				}
			}
			for _, cr := range corpus.CrossReferences {
				if err := st.PutCrossReference(ctx, cr); err != nil {
					return err
				}
			}

			fmt.Printf("Loaded %d documents, %d provisions, %d versions, %d cross-references\n",
				len(corpus.Documents), len(corpus.Provisions),
				len(corpus.Versions), len(corpus.CrossReferences))
			return nil
		},
	}
	loadCmd.Flags().String("db", "zakon.db", "corpus database path")

	cmd.AddCommand(initCmd, loadCmd)
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the engine as MCP tools over stdio or HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			addr, _ := cmd.Flags().GetString("addr")
			dbPath, _ := cmd.Flags().GetString("db")

			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if dbPath != "" {
				cfg.Storage.DatabasePath = dbPath
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}

			logger, err := newLogger(cfg.Debug)
			if err != nil {
				return fmt.Errorf("initializing logger: %w", err)
			}
			defer logger.Sync() //nolint:errcheck

			st, err := store.Open(cfg.Storage.DatabasePath)
			if err != nil {
				logger.Error("failed to open corpus database", zap.Error(err))
				return err
			}
			defer st.Close()

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(st, logger)
			if cfg.Server.Addr != "" {
				return srv.RunHTTP(ctx, cfg.Server.Addr)
			}
			return srv.Run(ctx)
		},
	}
	cmd.Flags().String("config", "", "TOML config file path")
	cmd.Flags().String("db", "", "corpus database path (overrides config)")
	cmd.Flags().String("addr", "", "HTTP listen address; empty means stdio")
	return cmd
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// openStore opens the database named by the command's --db flag.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = "zakon.db"
	}
	return store.Open(dbPath)
}

// textArg returns the single positional argument or, absent one, stdin.
func textArg(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
