package main

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/lumet/internal/config"
	"github.com/san-kum/lumet/internal/radiative"
	"github.com/san-kum/lumet/internal/render"
	"github.com/san-kum/lumet/internal/scene"
	"github.com/san-kum/lumet/internal/units"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	outFile    string

	width    int
	height   int
	fov      float64
	distance float64
	radius   float64
	steps    int
	workers  int

	emitter       string
	metricName    string
	freqObs       float64
	opticallyThin bool
	noDoppler     bool
	polarized     bool
	quantities    []string

	specKind  string
	nsamples  int
	numin     float64
	numax     float64

	intensityUnit string
	massSun       float64
	distanceKpc   float64
)

var headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))

func main() {
	rootCmd := &cobra.Command{
		Use:   "lumet",
		Short: "relativistic radiative-transfer imager",
	}

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "scan an image of the emitting sphere",
		RunE:  runRender,
	}
	addSceneFlags(renderCmd)
	renderCmd.Flags().StringVar(&outFile, "out", "lumet.png", "output PNG path")
	renderCmd.Flags().StringSliceVar(&quantities, "quantity", nil, "observables to accumulate")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum",
		Short: "scan a single line of sight and plot its spectrum",
		RunE:  runSpectrum,
	}
	addSceneFlags(spectrumCmd)

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list available metrics, emitters and presets",
		RunE:  listModels,
	}

	initCmd := &cobra.Command{
		Use:   "init [file]",
		Short: "write a default scenario file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	rootCmd.AddCommand(renderCmd, spectrumCmd, modelsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addSceneFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "named preset scenario")
	cmd.Flags().IntVar(&width, "width", config.DefaultWidth, "image width in pixels")
	cmd.Flags().IntVar(&height, "height", config.DefaultHeight, "image height in pixels")
	cmd.Flags().Float64Var(&fov, "fov", config.DefaultFOV, "field of view (rad)")
	cmd.Flags().Float64Var(&distance, "distance", config.DefaultDistance, "observer distance")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "sphere radius")
	cmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "hits per ray crossing")
	cmd.Flags().IntVar(&workers, "workers", 0, "render workers (0 = NumCPU)")
	cmd.Flags().StringVar(&emitter, "emitter", "powerlaw", "emission model")
	cmd.Flags().StringVar(&metricName, "metric", "minkowski", "spacetime metric")
	cmd.Flags().Float64Var(&freqObs, "freq", config.DefaultFreqObs, "observed frequency (Hz)")
	cmd.Flags().BoolVar(&opticallyThin, "thin", true, "optically thin defaults")
	cmd.Flags().BoolVar(&noDoppler, "no-doppler", false, "disable the redshift factor")
	cmd.Flags().BoolVar(&polarized, "polarized", false, "polarized transport")
	cmd.Flags().StringVar(&specKind, "spectro", "uniform", "spectrometer kind")
	cmd.Flags().IntVar(&nsamples, "channels", config.DefaultChannels, "spectral channels")
	cmd.Flags().Float64Var(&numin, "numin", 1e11, "lowest channel boundary (Hz)")
	cmd.Flags().Float64Var(&numax, "numax", 1e12, "highest channel boundary (Hz)")
	cmd.Flags().StringVar(&intensityUnit, "intensity-unit", "si", "intensity output unit")
	cmd.Flags().Float64Var(&massSun, "mass", 4e6, "central mass (solar masses)")
	cmd.Flags().Float64Var(&distanceKpc, "kpc", 8, "observer distance (kpc)")
}

// loadScenario resolves the effective configuration: preset, then config
// file, then explicit CLI flags, later layers winning.
func loadScenario(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	override := func(name string, apply func()) {
		if cmd.Flags().Changed(name) {
			apply()
		}
	}
	override("width", func() { cfg.Screen.Width = width })
	override("height", func() { cfg.Screen.Height = height })
	override("fov", func() { cfg.Screen.FOV = fov })
	override("distance", func() { cfg.Screen.Distance = distance })
	override("radius", func() { cfg.Object.Radius = radius })
	override("steps", func() { cfg.Object.Steps = steps })
	override("workers", func() { cfg.Workers = workers })
	override("emitter", func() { cfg.Emitter = emitter })
	override("metric", func() { cfg.Metric = metricName })
	override("freq", func() { cfg.FreqObs = freqObs })
	override("thin", func() { cfg.OpticallyThin = opticallyThin })
	override("no-doppler", func() { cfg.Doppler = !noDoppler })
	override("polarized", func() { cfg.Polarized = polarized })
	override("quantity", func() { cfg.Quantities = quantities })
	override("spectro", func() { cfg.Spectro.Kind = specKind })
	override("channels", func() { cfg.Spectro.NSamples = nsamples })
	override("numin", func() { cfg.Spectro.NuMin = numin })
	override("numax", func() { cfg.Spectro.NuMax = numax })
	override("intensity-unit", func() { cfg.Units.Intensity = intensityUnit })
	override("mass", func() { cfg.Units.MassSun = massSun })
	override("kpc", func() { cfg.Units.DistanceKpc = distanceKpc })

	return cfg, nil
}

// buildRenderer assembles the scene components behind a configuration.
func buildRenderer(cfg *config.Config) (*render.Renderer, radiative.Quantity, error) {
	registry := scene.NewRegistry()

	metric, err := registry.Metric(cfg.Metric)
	if err != nil {
		return nil, 0, err
	}
	model, err := registry.Emitter(cfg.Emitter, cfg.EmitterParams)
	if err != nil {
		return nil, 0, err
	}
	q, err := cfg.ParseQuantities()
	if err != nil {
		return nil, 0, err
	}

	needsSpectro := q&(radiative.QuantitySpectrum|radiative.QuantityBinSpectrum|
		radiative.QuantityStokesQ|radiative.QuantityStokesU|radiative.QuantityStokesV) != 0
	var spec radiative.Spectrometer
	if needsSpectro {
		s, err := registry.Spectrometer(cfg.Spectro.Kind, cfg.Spectro.NSamples, cfg.Spectro.NuMin, cfg.Spectro.NuMax)
		if err != nil {
			return nil, 0, err
		}
		spec = s
	}

	intensityConv, err := units.IntensityConverter(cfg.Units.Intensity)
	if err != nil {
		return nil, 0, err
	}
	spectrumConv, err := units.IntensityConverter(cfg.Units.Spectrum)
	if err != nil {
		return nil, 0, err
	}
	binConv, err := units.BinSpectrumConverter(cfg.Units.BinSpectrum)
	if err != nil {
		return nil, 0, err
	}

	source := radiative.Bind(model, cfg.OpticallyThin)
	engine := radiative.NewEngine(metric)
	engine.Doppler = cfg.Doppler

	var beta [3]float64
	copy(beta[:], cfg.Object.Velocity)

	opts := render.Options{
		Width:                cfg.Screen.Width,
		Height:               cfg.Screen.Height,
		FOV:                  cfg.Screen.FOV,
		Distance:             cfg.Screen.Distance,
		Radius:               cfg.Object.Radius,
		Beta:                 beta,
		Steps:                cfg.Object.Steps,
		FreqObs:              cfg.FreqObs,
		Polarized:            cfg.Polarized,
		Workers:              cfg.Workers,
		Quantities:           q,
		IntensityConverter:   radiative.Converter(intensityConv),
		SpectrumConverter:    radiative.Converter(spectrumConv),
		BinSpectrumConverter: radiative.Converter(binConv),
	}
	return render.New(engine, source, spec, opts), q, nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	r, q, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("rendering %dx%d (%s over %s)...\n", cfg.Screen.Width, cfg.Screen.Height, cfg.Emitter, cfg.Metric)
	start := time.Now()
	frame, err := r.Render(context.Background())
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	if q&radiative.QuantityIntensity != 0 {
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := png.Encode(f, frame.GrayImage()); err != nil {
			return err
		}
	}

	fmt.Println(headerStyle.Render("render complete"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "pixels\t%d\n", frame.Width*frame.Height)
	fmt.Fprintf(w, "channels\t%d\n", frame.Channels)
	fmt.Fprintf(w, "elapsed\t%v\n", elapsed)
	if q&radiative.QuantityIntensity != 0 {
		fmt.Fprintf(w, "image\t%s\n", outFile)
	}
	return w.Flush()
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario(cmd)
	if err != nil {
		return err
	}
	// A single central line of sight carrying the spectral quantities.
	cfg.Screen.Width, cfg.Screen.Height = 1, 1
	cfg.Quantities = []string{"spectrum", "binspectrum"}
	if cfg.Polarized {
		cfg.Quantities = append(cfg.Quantities, "stokesq", "stokesu", "stokesv")
	}

	r, _, err := buildRenderer(cfg)
	if err != nil {
		return err
	}

	frame, err := r.Render(context.Background())
	if err != nil {
		return err
	}

	spectrum := frame.SpectrumAt(0, 0)
	if len(spectrum) == 0 {
		return fmt.Errorf("no spectral data")
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("spectrum: %s", cfg.Emitter)))
	graph := asciigraph.Plot(spectrum,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("I_nu, %d channels, %.2e - %.2e Hz", len(spectrum), cfg.Spectro.NuMin, cfg.Spectro.NuMax)),
	)
	fmt.Println(graph)

	binned := frame.BinSpectrumAt(0, 0)
	total := 0.0
	for _, v := range binned {
		total += v
	}
	fmt.Printf("\nband-integrated intensity: %.6e\n", total)
	return nil
}

func listModels(cmd *cobra.Command, args []string) error {
	registry := scene.NewRegistry()

	fmt.Println(headerStyle.Render("metrics"))
	for _, name := range registry.ListMetrics() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println(headerStyle.Render("emitters"))
	for _, name := range registry.ListEmitters() {
		m, err := registry.Emitter(name, nil)
		if err != nil {
			return err
		}
		src := radiative.Bind(m, true)
		fmt.Printf("  %-20s %s\n", name, src.Capabilities())
	}

	fmt.Println(headerStyle.Render("spectrometers"))
	for _, name := range registry.ListSpectrometers() {
		fmt.Printf("  %s\n", name)
	}

	fmt.Println(headerStyle.Render("presets"))
	for _, name := range config.ListPresets() {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
