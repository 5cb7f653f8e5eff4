package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/AnkushinDaniil/newton-rings/app"
	"github.com/AnkushinDaniil/newton-rings/config"
	"github.com/AnkushinDaniil/newton-rings/entity"
	"github.com/AnkushinDaniil/newton-rings/entity/locale"
	"github.com/AnkushinDaniil/newton-rings/entity/parameters"
	"github.com/AnkushinDaniil/newton-rings/server"
)

var (
	verbose    bool
	logFormat  string
	configFile string
	lang       string
	output     string
	outFormat  string
	preset     string
	addr       string
	params     parameters.Parameters
)

var (
	warningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffaa00"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888899"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ccff"))
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "newton-rings",
		Short:         "plot the intensity of Newton's rings against ring radius",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging()
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&lang, "locale", config.DefaultLocale, "label language: ru or en")

	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "generate the intensity curve and write it out",
		Args:  cobra.NoArgs,
		RunE:  runPlot,
	}
	plotCmd.Flags().Float64Var(&params.LensRadius, "lens-radius", parameters.DefaultLensRadius, "lens radius, m")
	plotCmd.Flags().Float64Var(&params.LensIndex, "lens-index", parameters.DefaultLensIndex, "lens refractive index")
	plotCmd.Flags().Float64Var(&params.PlateIndex, "plate-index", parameters.DefaultPlateIndex, "plate refractive index")
	plotCmd.Flags().Float64Var(&params.MediumIndex, "medium-index", parameters.DefaultMediumIndex, "refractive index of the medium between lens and plate")
	plotCmd.Flags().Float64Var(&params.WavelengthNm, "wavelength", parameters.DefaultWavelengthNm, "wavelength, nm")
	plotCmd.Flags().Float64Var(&params.SourceIntensity, "intensity", parameters.DefaultSourceIntensity, "source intensity, W/m²")
	plotCmd.Flags().StringVarP(&output, "output", "o", config.DefaultOutput, `output file, "-" for stdout`)
	plotCmd.Flags().StringVarP(&outFormat, "format", "f", config.DefaultFormat, "output format: html, png, csv, json or ascii")
	plotCmd.Flags().StringVar(&preset, "preset", "", "start from a named preset")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the parameter form over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "re-plot whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if configFile == "" {
				return errors.New("watch needs --config")
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return app.Watch(ctx, configFile)
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	rootCmd.AddCommand(plotCmd, serveCmd, watchCmd, presetsCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if errors.Is(err, parameters.ErrInvalidParameters) {
			fmt.Fprintln(os.Stderr, warningStyle.Render(currentLocale().Labels().Warning))
		} else {
			log.Error(err)
		}
		os.Exit(1)
	}
}

func setupLogging() error {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	switch logFormat {
	case "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	default:
		return fmt.Errorf("invalid log format: %q", logFormat)
	}
	return nil
}

func currentLocale() locale.Locale {
	l, err := locale.UnmarshalText(lang)
	if err != nil {
		return locale.Russian
	}
	return l
}

// loadConfig returns the config file (or defaults) with changed flags applied.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if preset != "" {
		p, ok := config.Preset(preset)
		if !ok {
			return nil, fmt.Errorf("unknown preset: %q", preset)
		}
		cfg.Parameters = p
	}
	overrides := map[string]func(){
		"lens-radius":  func() { cfg.Parameters.LensRadius = params.LensRadius },
		"lens-index":   func() { cfg.Parameters.LensIndex = params.LensIndex },
		"plate-index":  func() { cfg.Parameters.PlateIndex = params.PlateIndex },
		"medium-index": func() { cfg.Parameters.MediumIndex = params.MediumIndex },
		"wavelength":   func() { cfg.Parameters.WavelengthNm = params.WavelengthNm },
		"intensity":    func() { cfg.Parameters.SourceIntensity = params.SourceIntensity },
		"output":       func() { cfg.Output = output },
		"format":       func() { cfg.Format = outFormat },
		"locale":       func() { cfg.Locale = lang },
		"addr":         func() { cfg.Addr = addr },
	}
	for name, apply := range overrides {
		if flags.Changed(name) {
			apply()
		}
	}
	return cfg, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	lang = cfg.Locale

	a, err := app.FromConfig(cfg)
	if err != nil {
		return err
	}
	if err := a.Run(cmd.Context()); err != nil {
		return err
	}
	if a.Output != app.Stdout {
		printSummary(a.Curve())
	}
	return nil
}

func printSummary(curve *entity.Curve) {
	summary := curve.Summary()
	fmt.Printf("%s %s\n", labelStyle.Render("visibility:"), valueStyle.Render(fmt.Sprintf("%.4f", summary.Visibility)))
	fmt.Printf("%s %s\n", labelStyle.Render("dark rings:"), valueStyle.Render(fmt.Sprint(len(summary.DarkRingRadii))))
	if len(summary.DarkRingRadii) > 1 {
		fmt.Printf("%s %s\n", labelStyle.Render("first dark ring, m:"), valueStyle.Render(fmt.Sprintf("%.4g", summary.DarkRingRadii[1])))
	}
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	l, err := locale.UnmarshalText(cfg.Locale)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.New(cfg.Addr, l).Run(ctx)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tWAVELENGTH, nm\tMEDIUM INDEX\tLENS RADIUS, m")
	for _, name := range config.PresetNames() {
		p, _ := config.Preset(name)
		fmt.Fprintf(w, "%s\t%g\t%g\t%g\n", name, p.WavelengthNm, p.MediumIndex, p.LensRadius)
	}
	return w.Flush()
}
