package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tordrt/dbsynth"
	"github.com/tordrt/dbsynth/internal/config"
)

var (
	cfgFile      string
	dbURL        string
	mysqlURL     string
	sqlitePath   string
	sqlserverURL string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:           "dbsynth",
	Short:         "Build data-synthesis namespaces from relational databases",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import a database into a data-synthesis namespace",
	Long: `import reads the tables, keys and a deterministic sample of rows from a
PostgreSQL, MySQL, SQLite or SQL Server database and writes a namespace: one
collection per table, describing how to generate fake rows of the same shape.

Settings are read from flags, DBSYNTH_* environment variables, .env files and
dbsynth.yaml, in that order of precedence.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.AddCommand(importCmd)

	flags := importCmd.Flags()
	flags.StringVar(&cfgFile, "config", "", "Config file (default: ./dbsynth.yaml)")
	flags.StringVar(&dbURL, "db-url", "", "PostgreSQL connection string")
	flags.StringVar(&mysqlURL, "mysql-url", "", "MySQL connection string")
	flags.StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	flags.StringVar(&sqlserverURL, "sqlserver-url", "", "SQL Server connection string")
	flags.StringSliceP("tables", "t", nil, "Specific tables (comma-separated, optional)")
	flags.StringSlice("exclude", nil, "Tables to leave out (comma-separated)")
	flags.StringP("schema", "s", "", "Database schema name (default: public for PostgreSQL, dbo for SQL Server)")
	flags.Uint64("sample-size", 10, "Rows sampled per table")
	flags.Float64("seed", 0.5, "Sampling seed in [-1, 1]")
	flags.Bool("strict-references", false, "Fail on self-referencing or cyclic foreign keys")
	flags.StringP("output", "o", "", "Output file (default: stdout)")
	flags.StringP("output-dir", "d", "", "Output directory, one file per collection")
	flags.StringP("format", "f", "json", "Output format: json, yaml, text or markdown")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Log every import step")
}

// bindFlags maps the flags onto the config keys so flags win over every other source
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	bindings := map[string]string{
		config.KeyTables:           "tables",
		config.KeyExclude:          "exclude",
		config.KeySchema:           "schema",
		config.KeySampleSize:       "sample-size",
		config.KeySeed:             "seed",
		config.KeyStrictReferences: "strict-references",
		config.KeyOutput:           "output",
		config.KeyOutputDir:        "output-dir",
		config.KeyFormat:           "format",
	}
	for key, flag := range bindings {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("failed to bind --%s: %w", flag, err)
		}
	}
	return nil
}

// databaseURL picks the connection from the database flags, falling back to
// the configured URL. At most one database flag may be given.
func databaseURL(configured string) (string, error) {
	var candidates []string
	if dbURL != "" {
		candidates = append(candidates, dbURL)
	}
	if mysqlURL != "" {
		u := mysqlURL
		if !strings.HasPrefix(u, "mysql://") {
			u = "mysql://" + u
		}
		candidates = append(candidates, u)
	}
	if sqlitePath != "" {
		candidates = append(candidates, "sqlite://"+sqlitePath)
	}
	if sqlserverURL != "" {
		candidates = append(candidates, sqlserverURL)
	}

	switch len(candidates) {
	case 0:
		if configured == "" {
			return "", fmt.Errorf("one of --db-url, --mysql-url, --sqlite or --sqlserver-url must be specified")
		}
		return configured, nil
	case 1:
		return candidates[0], nil
	default:
		return "", fmt.Errorf("only one of --db-url, --mysql-url, --sqlite or --sqlserver-url can be specified")
	}
}

func newLogger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	v := viper.New()
	if err := bindFlags(v, cmd); err != nil {
		return err
	}
	if err := config.Init(v, cfgFile); err != nil {
		return err
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	url, err := databaseURL(cfg.DatabaseURL)
	if err != nil {
		return err
	}

	ns, err := dbsynth.Import(ctx, url, &dbsynth.Options{
		Tables:           trimAll(cfg.Tables),
		ExcludeTables:    trimAll(cfg.Exclude),
		SchemaName:       cfg.Schema,
		SampleSize:       cfg.SampleSize,
		Seed:             &cfg.Seed,
		StrictReferences: cfg.StrictReferences,
		Logger:           newLogger(os.Stderr),
	})
	if err != nil {
		return fmt.Errorf("failed to import database: %w", err)
	}

	outOpts := &dbsynth.OutputOptions{OutputDir: cfg.OutputDir, Format: cfg.Format}
	if cfg.OutputDir == "" {
		outOpts.Writer = os.Stdout
		if cfg.Output != "" {
			f, err := os.Create(cfg.Output)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() {
				if err := f.Close(); err != nil {
					fmt.Fprintf(os.Stderr, "warning: failed to close output file: %v\n", err)
				}
			}()
			outOpts.Writer = f
		}
	}

	if err := dbsynth.WriteNamespace(ns, outOpts); err != nil {
		return fmt.Errorf("failed to write namespace: %w", err)
	}

	printSummary(os.Stderr, len(ns.CollectionNames()), cfg)
	return nil
}

func printSummary(w io.Writer, collections int, cfg *config.Config) {
	target := cfg.Output
	if cfg.OutputDir != "" {
		target = cfg.OutputDir
	}
	if target == "" {
		return
	}
	_, _ = fmt.Fprintf(w, "%s imported %s collections into %s\n",
		color.GreenString("✓"), color.CyanString("%d", collections), target)
}

// trimAll drops the blanks around comma-separated names
func trimAll(names []string) []string {
	var out []string
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
