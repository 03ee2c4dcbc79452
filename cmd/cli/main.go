package main

import (
	"context"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"laborlens/adapters/datafile"
	"laborlens/adapters/postgres"
	"laborlens/domain/labor"
	"laborlens/internal/analysis"
	"laborlens/internal/config"
	"laborlens/internal/errors"
	"laborlens/internal/export"
	"laborlens/internal/loader"
	"laborlens/internal/testkit"
	"laborlens/ports"
	"laborlens/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// .env keeps CLI runs on the same configuration as the web server
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "laborlens",
		Short: "LaborLens CLI for inspecting and exporting the BLS labor dataset",
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newCatalogCmd(),
		newSummaryCmd(),
		newCompareCmd(),
		newExportCmd(),
		newSeedCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard web server",
		Long: `Start the LaborLens dashboard on the configured port.

Configuration comes from the environment (PORT, DATA_SOURCE, DATA_FILE,
DATABASE_URL, DEFAULT_YEAR_FLOOR), optionally via a .env file.

Example: laborlens serve`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the series vocabulary and dataset coverage",
		Long: `Load the configured dataset and list the full series vocabulary with
per-series row count and observed year span. Ids in the data but
missing from the catalog are shown under the unknown-series sentinel.

Example: laborlens catalog`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCatalog(cmd.Context())
		},
	}
}

func newSummaryCmd() *cobra.Command {
	var seriesNames []string
	var fromYear, toYear int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print descriptive statistics for the filtered dataset",
		Long: `Filter the dataset by series name and year range, then print the
per-series descriptive statistics the dashboard shows.

Example: laborlens summary --series "Unemployment Rate" --from 2020 --to 2022`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd.Context(), seriesNames, fromYear, toYear)
		},
	}

	cmd.Flags().StringSliceVar(&seriesNames, "series", nil, "Series display names to include (default: all known series)")
	cmd.Flags().IntVar(&fromYear, "from", 0, "Lower year bound (default: dataset default range)")
	cmd.Flags().IntVar(&toYear, "to", 0, "Upper year bound (default: dataset default range)")

	return cmd
}

func newCompareCmd() *cobra.Command {
	var showRows int

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Join weekly hours against hourly earnings by date",
		Long: `Build the hours-vs-earnings comparison table over the full dataset
and report the linear association between the two columns. Dates
present in only one of the two series are dropped.

Example: laborlens compare --rows 5`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd.Context(), showRows)
		},
	}

	cmd.Flags().IntVar(&showRows, "rows", 0, "Print the first N joined rows")

	return cmd
}

func newExportCmd() *cobra.Command {
	var seriesNames []string
	var fromYear, toYear int

	cmd := &cobra.Command{
		Use:   "export [output-file]",
		Short: "Write the filtered dataset to a CSV file",
		Long: `Filter the dataset and write the matching rows as CSV with the
dashboard's export columns. The output path defaults to ` + export.Filename + `.

Example: laborlens export --series "Unemployment Rate" --from 2020 rates.csv`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := export.Filename
			if len(args) == 1 {
				path = args[0]
			}
			return runExport(cmd.Context(), path, seriesNames, fromYear, toYear)
		},
	}

	cmd.Flags().StringSliceVar(&seriesNames, "series", nil, "Series display names to include (default: all known series)")
	cmd.Flags().IntVar(&fromYear, "from", 0, "Lower year bound (default: dataset default range)")
	cmd.Flags().IntVar(&toYear, "to", 0, "Upper year bound (default: dataset default range)")

	return cmd
}

func newSeedCmd() *cobra.Command {
	defaults := testkit.DefaultGeneratorConfig()

	var demo bool
	var startYear, endYear int
	var seed, concurrency int64

	cmd := &cobra.Command{
		Use:   "seed [data-file]",
		Short: "Bulk-load observations into the Postgres table",
		Long: `Create the observations schema at DATABASE_URL and bulk-load it from
a CSV or XLSX data file (default: the configured DATA_FILE). With
--demo a deterministic synthetic dataset is loaded instead. Safe to
run repeatedly: rows are keyed on (series_id, obs_date).

Example: laborlens seed BLS_data.csv --concurrency 8`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) == 1 {
				file = args[0]
			}
			return runSeed(cmd.Context(), file, demo, startYear, endYear, seed, concurrency)
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "Load the synthetic demo dataset instead of a file")
	cmd.Flags().IntVar(&startYear, "start-year", defaults.StartYear, "First generated year (with --demo)")
	cmd.Flags().IntVar(&endYear, "end-year", defaults.EndYear, "Last generated year (with --demo)")
	cmd.Flags().Int64Var(&seed, "seed", defaults.Seed, "Random seed for deterministic generation (with --demo)")
	cmd.Flags().Int64Var(&concurrency, "concurrency", 4, "Concurrent insert batches")

	return cmd
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	source, err := buildSource(cfg)
	if err != nil {
		return fmt.Errorf("failed to build data source: %w", err)
	}

	app, err := ui.NewApp(ui.Config{
		Port:             cfg.Server.Port,
		DefaultYearFloor: cfg.UI.DefaultYearFloor,
	}, loader.New(source))
	if err != nil {
		return fmt.Errorf("failed to initialize server: %w", err)
	}

	return app.Start()
}

func runCatalog(ctx context.Context) error {
	ds, _, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	type seriesRow struct {
		id      labor.SeriesID
		name    string
		count   int
		minYear int
		maxYear int
	}

	rows := make(map[labor.SeriesID]*seriesRow)
	for _, obs := range ds.Observations {
		row, ok := rows[obs.SeriesID]
		if !ok {
			row = &seriesRow{id: obs.SeriesID, name: obs.SeriesName, minYear: obs.Year, maxYear: obs.Year}
			rows[obs.SeriesID] = row
		}
		row.count++
		if obs.Year < row.minYear {
			row.minYear = obs.Year
		}
		if obs.Year > row.maxYear {
			row.maxYear = obs.Year
		}
	}

	fmt.Printf("Source: %s (%d observations, years %d-%d)\n\n", ds.Source, ds.Len(), ds.MinYear, ds.MaxYear)

	// Full vocabulary in catalog order, then unmapped ids sorted by id
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES ID\tNAME\tROWS\tYEARS")
	for _, entry := range labor.KnownSeries() {
		row, ok := rows[entry.ID]
		if !ok {
			fmt.Fprintf(w, "%s\t%s\t0\t-\n", entry.ID, entry.DisplayName)
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%d-%d\n", row.id, row.name, row.count, row.minYear, row.maxYear)
		delete(rows, entry.ID)
	}
	rest := make([]*seriesRow, 0, len(rows))
	for _, row := range rows {
		rest = append(rest, row)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].id < rest[j].id })
	for _, row := range rest {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d-%d\n", row.id, row.name, row.count, row.minYear, row.maxYear)
	}
	return w.Flush()
}

func runSummary(ctx context.Context, names []string, from, to int) error {
	ds, cfg, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	sel := resolveSelection(ds, cfg, names, from, to)
	view := labor.Filter(ds, sel)

	fmt.Printf("Rows: %d of %d (years %d-%d)\n\n", view.Len(), ds.Len(), sel.Years.From, sel.Years.To)
	if view.Empty() {
		fmt.Println("No rows match the selection.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SERIES\tN\tMEAN\tSTD\tMIN\tP25\tMEDIAN\tP75\tMAX")
	for _, s := range analysis.SummaryStatistics(view) {
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.SeriesName, s.Count,
			fmtStat(s.Mean), fmtStat(s.Std), fmtStat(s.Min),
			fmtStat(s.P25), fmtStat(s.P50), fmtStat(s.P75), fmtStat(s.Max))
	}
	return w.Flush()
}

func runCompare(ctx context.Context, showRows int) error {
	ds, _, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	table := analysis.PairwiseSeriesMerge(labor.SeriesAvgWeeklyHours, labor.SeriesAvgHourlyEarnings, ds)

	fmt.Printf("Joined rows: %d\n", len(table.Rows))
	fmt.Printf("Correlation: %s\n", fmtStat(table.Correlation))
	fmt.Printf("Slope: %s\n", fmtStat(table.Slope))
	fmt.Printf("Intercept: %s\n", fmtStat(table.Intercept))

	if showRows > 0 && len(table.Rows) > 0 {
		fmt.Println()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "DATE\tAVG WEEKLY HOURS\tAVG HOURLY EARNINGS")
		for i, row := range table.Rows {
			if i >= showRows {
				break
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				row.Date.Format("2006-01-02"), fmtStat(row.AvgWeeklyHours), fmtStat(row.AvgHourlyEarnings))
		}
		return w.Flush()
	}
	return nil
}

func runExport(ctx context.Context, path string, names []string, from, to int) error {
	ds, cfg, err := loadDataset(ctx)
	if err != nil {
		return err
	}

	view := labor.Filter(ds, resolveSelection(ds, cfg, names, from, to))

	if err := export.WriteFile(path, view); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	fmt.Printf("Wrote %d rows to %s\n", view.Len(), path)
	return nil
}

func runSeed(ctx context.Context, file string, demo bool, startYear, endYear int, seed, concurrency int64) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.Database.URL == "" {
		return errors.ConfigInvalid("DATABASE_URL is required to seed")
	}

	var observations []labor.Observation
	if demo {
		observations = testkit.NewLaborDataGenerator(testkit.GeneratorConfig{
			StartYear: startYear,
			EndYear:   endYear,
			Seed:      seed,
		}).Generate()
		fmt.Printf("Generated %d synthetic observations (years %d-%d)\n", len(observations), startYear, endYear)
	} else {
		if file == "" {
			file = cfg.Data.File
		}
		observations, err = datafile.NewFileSource(file).Load(ctx)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		fmt.Printf("Read %d observations from %s\n", len(observations), file)
	}

	db, err := postgres.Connect(cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	store := postgres.NewObservationStore(db)
	if err := store.EnsureSchema(ctx); err != nil {
		return err
	}

	fmt.Printf("Importing %d observations...\n", len(observations))
	count, err := store.Import(ctx, observations, concurrency)
	if err != nil {
		return fmt.Errorf("seed import failed: %w", err)
	}
	fmt.Printf("Seeded %d observations\n", count)
	return nil
}

// loadDataset loads the configured dataset for a one-shot command
func loadDataset(ctx context.Context) (*labor.Dataset, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	source, err := buildSource(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build data source: %w", err)
	}

	ds, err := loader.New(source).Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	return ds, cfg, nil
}

// buildSource constructs the observation source selected by DATA_SOURCE
func buildSource(cfg *config.Config) (ports.ObservationSourcePort, error) {
	switch cfg.Data.Source {
	case config.SourcePostgres:
		db, err := postgres.Connect(cfg.Database)
		if err != nil {
			return nil, err
		}
		return postgres.NewObservationSource(db), nil
	case config.SourceDemo:
		return testkit.NewSyntheticSource(testkit.DefaultGeneratorConfig()), nil
	default:
		return datafile.NewFileSource(cfg.Data.File), nil
	}
}

// resolveSelection fills unset flags from the dataset defaults and
// clamps the year range to the observed span.
func resolveSelection(ds *labor.Dataset, cfg *config.Config, names []string, from, to int) labor.FilterSelection {
	if len(names) == 0 {
		names = ds.DefaultSeriesNames()
	}

	years := ds.DefaultYearRange(cfg.UI.DefaultYearFloor)
	if from != 0 {
		years.From = from
	}
	if to != 0 {
		years.To = to
	}

	return labor.FilterSelection{SeriesNames: names, Years: ds.ClampYearRange(years)}
}

// fmtStat renders one statistic, with undefined values as n/a
func fmtStat(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return strconv.FormatFloat(v, 'f', 3, 64)
}
