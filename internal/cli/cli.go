package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"trade-compliance/internal/core/config"
	"trade-compliance/internal/core/logger"
	costadapters "trade-compliance/internal/features/costs/adapters"
	costdomain "trade-compliance/internal/features/costs/domain"
	costports "trade-compliance/internal/features/costs/ports"
	costservice "trade-compliance/internal/features/costs/service"
	refadapters "trade-compliance/internal/features/reference/adapters"
	refservice "trade-compliance/internal/features/reference/service"
	reportadapters "trade-compliance/internal/features/reporting/adapters"
	reportdomain "trade-compliance/internal/features/reporting/domain"
	reportports "trade-compliance/internal/features/reporting/ports"
	reportservice "trade-compliance/internal/features/reporting/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Exit codes returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

// errUsage marks errors caused by bad input rather than the environment.
var errUsage = errors.New("usage")

// Options configures a single invocation.
type Options struct {
	// ConfigPath is the directory searched for a .env file.
	ConfigPath string
	Stdout     io.Writer
	Stderr     io.Writer
	// Now stamps exported records; nil means time.Now.
	Now func() time.Time
}

// flags holds the parsed command line.
type flags struct {
	destination string
	origin      string
	category    string
	value       float64
	shipping    float64
	format      string
	json        bool
	pretty      bool
	output      string
	csv         string
	batch       bool
	country     string
	bilateral   bool
	compare     []string
	demo        bool
	verbose     bool
}

// app bundles the wired services for one run.
type app struct {
	opts       Options
	flags      flags
	calculator costports.CostCalculator
	reference  *refservice.ReferenceService
	exporter   *reportservice.Exporter
	text       reportports.ReferenceRenderer
	json       *reportadapters.JSONRenderer
	log        *zap.Logger
}

// Run executes the command with args (without the program name) and returns an exit code.
func Run(args []string, opts Options) int {
	if opts.ConfigPath == "" {
		opts.ConfigPath = "."
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "Failed to load config: %v\n", err)
		return ExitFailure
	}

	fs, f := newFlagSet(cfg, opts.Stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return ExitOK
		}
		fmt.Fprintln(opts.Stderr, err)
		return ExitUsage
	}
	if len(fs.Args()) > 0 {
		fmt.Fprintf(opts.Stderr, "unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		return ExitUsage
	}
	// No arguments at all prints the demo scenarios.
	if len(args) == 0 {
		f.batch = true
	}

	level := cfg.LogLevel
	if f.verbose {
		level = "debug"
	}
	if err := logger.Init(cfg.Environment, level); err != nil {
		fmt.Fprintf(opts.Stderr, "Failed to init logger: %v\n", err)
		return ExitFailure
	}
	defer logger.Sync()

	a, err := wire(cfg, opts, *f)
	if err != nil {
		logger.Get().Error("Failed to load static tables", zap.Error(err))
		return ExitFailure
	}

	if err := a.run(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(opts.Stderr, err)
			return ExitUsage
		}
		a.log.Error("Command failed", zap.Error(err))
		return ExitFailure
	}
	return ExitOK
}

func newFlagSet(cfg *config.AppConfig, stderr io.Writer) (*pflag.FlagSet, *flags) {
	f := &flags{}
	fs := pflag.NewFlagSet("tradecalc", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false

	d := cfg.Defaults
	fs.StringVarP(&f.destination, "destination", "d", d.Destination, "Destination country (imports into this country): italy, india")
	fs.StringVarP(&f.origin, "origin", "o", d.Origin, "Origin country (context only)")
	fs.StringVarP(&f.category, "category", "c", d.Category, "Product category: "+joinCategories())
	fs.Float64VarP(&f.value, "value", "v", d.Value, "Declared shipment value")
	fs.Float64VarP(&f.shipping, "shipping", "s", d.Shipping, "Shipping & insurance cost")
	fs.StringVar(&f.format, "format", string(reportdomain.FormatText), "Output format: text, json, csv")
	fs.BoolVar(&f.json, "json", false, "Shorthand for --format json")
	fs.BoolVar(&f.pretty, "pretty", false, "Pretty-print JSON output and files")
	fs.StringVarP(&f.output, "output", "O", "", "Write JSON output to file (path)")
	fs.StringVar(&f.csv, "csv", "", "Write CSV output to file (path)")
	fs.BoolVar(&f.batch, "batch", false, "Run the demo batch scenarios")
	fs.StringVar(&f.country, "country", "", "Show the customs profile of a country")
	fs.BoolVar(&f.bilateral, "bilateral", false, "Show the bilateral trade context")
	fs.StringSliceVar(&f.compare, "compare", nil, "Compare two countries, e.g. italy,india")
	fs.BoolVar(&f.demo, "demo", false, "Walk through all reference data")
	fs.BoolVarP(&f.verbose, "verbose", "V", false, "Enable verbose logging")

	return fs, f
}

func joinCategories() string {
	names := make([]string, 0, len(costdomain.Categories()))
	for _, c := range costdomain.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, ", ")
}

func wire(cfg *config.AppConfig, opts Options, f flags) (*app, error) {
	rates, err := costadapters.LoadRateTable(cfg.Data.RatesFile)
	if err != nil {
		return nil, err
	}
	profiles, err := refadapters.LoadProfileStore(cfg.Data.ReferenceFile)
	if err != nil {
		return nil, err
	}

	text := reportadapters.NewTextRenderer(language.English)
	jsonRenderer := reportadapters.NewJSONRenderer(f.pretty)

	return &app{
		opts:       opts,
		flags:      f,
		calculator: costservice.NewCalculator(rates),
		reference:  refservice.NewReferenceService(profiles),
		exporter:   reportservice.NewExporter(opts.Now, text, jsonRenderer, reportadapters.NewCSVRenderer()),
		text:       text,
		json:       jsonRenderer,
		log:        logger.Get(),
	}, nil
}

func (a *app) outputFormat() (reportdomain.Format, error) {
	if a.flags.json {
		return reportdomain.FormatJSON, nil
	}
	format, err := reportdomain.ParseFormat(a.flags.format)
	if err != nil {
		return "", fmt.Errorf("%w: --format %q must be one of text, json, csv", errUsage, a.flags.format)
	}
	return format, nil
}

func (a *app) run() error {
	format, err := a.outputFormat()
	if err != nil {
		return err
	}

	f := a.flags
	if f.demo || f.country != "" || f.bilateral || len(f.compare) > 0 {
		return a.runReference(format)
	}
	if f.batch {
		a.log.Info("Running demo batch scenarios")
		return a.emit(format, a.calculator.CalculateBatch(costservice.DemoScenarios()), true)
	}
	return a.runSingle(format)
}

func (a *app) runSingle(format reportdomain.Format) error {
	f := a.flags

	if _, ok := costdomain.ParseDestination(f.destination); !ok {
		return fmt.Errorf("%w: unsupported destination %q (choose italy or india)", errUsage, f.destination)
	}
	if _, ok := costdomain.ParseCategory(f.category); !ok {
		return fmt.Errorf("%w: unsupported category %q (choose %s)", errUsage, f.category, joinCategories())
	}

	req, err := costdomain.NewShipmentRequest(f.destination, f.origin, f.category, f.value, f.shipping)
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	b := a.calculator.CalculateCosts(*req)
	a.log.Debug("Calculated costs",
		zap.String("destination", string(b.Destination)),
		zap.String("category", string(b.Category)),
		zap.Float64("total_landed_cost", b.TotalLandedCost),
		zap.Int("clearance_hours", b.EstimatedClearanceHours),
	)
	return a.emit(format, []costdomain.CostBreakdown{b}, false)
}

// emit writes the report to stdout and to any requested files.
func (a *app) emit(format reportdomain.Format, breakdowns []costdomain.CostBreakdown, batch bool) error {
	report := a.exporter.NewReport(breakdowns, batch)

	if err := a.exporter.Write(a.opts.Stdout, format, report); err != nil {
		return err
	}

	if a.flags.output != "" {
		if err := a.exporter.ExportFile(a.flags.output, reportdomain.FormatJSON, report); err != nil {
			return err
		}
	}
	if a.flags.csv != "" {
		err := a.exporter.ExportFile(a.flags.csv, reportdomain.FormatCSV, report)
		if err != nil && !errors.Is(err, reportservice.ErrNoRecords) {
			return err
		}
	}
	return nil
}

func (a *app) runReference(format reportdomain.Format) error {
	f := a.flags
	asJSON := format == reportdomain.FormatJSON
	w := a.opts.Stdout

	if f.demo {
		return a.runReferenceDemo(asJSON)
	}

	if f.country != "" {
		profile, err := a.reference.Country(f.country)
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if err := a.renderReference(asJSON, *profile, func() error { return a.text.RenderCountry(w, *profile) }); err != nil {
			return err
		}
	}

	if f.bilateral {
		bc := a.reference.Bilateral()
		if err := a.renderReference(asJSON, bc, func() error { return a.text.RenderBilateral(w, bc) }); err != nil {
			return err
		}
	}

	if len(f.compare) > 0 {
		if len(f.compare) != 2 {
			return fmt.Errorf("%w: --compare takes exactly two countries", errUsage)
		}
		cmp, err := a.reference.Compare(f.compare[0], f.compare[1])
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		if err := a.renderReference(asJSON, cmp.Metrics(), func() error { return a.text.RenderComparison(w, *cmp) }); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) renderReference(asJSON bool, v any, text func() error) error {
	if asJSON {
		return a.json.Encode(a.opts.Stdout, v)
	}
	return text()
}

// runReferenceDemo prints every profile, the bilateral context and a comparison of the first two countries.
func (a *app) runReferenceDemo(asJSON bool) error {
	countries := a.reference.Countries()
	bilateral := a.reference.Bilateral()

	if asJSON {
		return a.json.Encode(a.opts.Stdout, map[string]any{
			"countries": countries,
			"bilateral": bilateral,
		})
	}

	w := a.opts.Stdout
	fmt.Fprintln(w, "INTERNATIONAL TRADE COMPLIANCE SYSTEM")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	for _, c := range countries {
		if err := a.text.RenderCountry(w, c); err != nil {
			return err
		}
	}
	if err := a.text.RenderBilateral(w, bilateral); err != nil {
		return err
	}
	if len(countries) >= 2 {
		cmp, err := a.reference.Compare(countries[0].Key, countries[1].Key)
		if err != nil {
			return err
		}
		if err := a.text.RenderComparison(w, *cmp); err != nil {
			return err
		}
	}

	rule := strings.Repeat("=", 60)
	_, err := fmt.Fprintf(w, "\n%s\nDEMONSTRATION COMPLETED SUCCESSFULLY!\n%s\n", rule, rule)
	return err
}
