package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/san-kum/wavelab/internal/audio"
	"github.com/san-kum/wavelab/internal/beats"
	"github.com/san-kum/wavelab/internal/config"
	"github.com/san-kum/wavelab/internal/rings"
)

var (
	outDir     string
	configFile string
	verbose    bool
	preset     string
	// Beat parameters
	f1        float64
	f2        float64
	a1        float64
	a2        float64
	tStart    float64
	tEnd      float64
	numPoints int
	noSweep   bool
	// Newton's rings parameters
	lambda     float64
	rLens      float64
	halfExtent float64
	resolution int
	// Analysis and playback
	numPeaks  int
	listenFor float64
	volume    float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("wavelab failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wavelab",
		Short:         "wave superposition and interference demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&outDir, "out", config.DefaultOutputDir, "output directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	beatsCmd := &cobra.Command{
		Use:   "beats",
		Short: "simulate two superposed tones and plot the beat",
		Args:  cobra.NoArgs,
		RunE:  runBeats,
	}
	addBeatFlags(beatsCmd)
	beatsCmd.Flags().BoolVar(&noSweep, "no-sweep", false, "skip the frequency and amplitude sweeps")

	sweepCmd := &cobra.Command{
		Use:   "sweep",
		Short: "run the frequency and amplitude sweeps",
		Args:  cobra.NoArgs,
		RunE:  runSweep,
	}
	sweepCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	ringsCmd := &cobra.Command{
		Use:   "rings",
		Short: "render the Newton's rings interference pattern",
		Args:  cobra.NoArgs,
		RunE:  runRings,
	}
	ringsCmd.Flags().Float64Var(&lambda, "lambda", rings.HeNeWavelength, "wavelength (m)")
	ringsCmd.Flags().Float64Var(&rLens, "r-lens", rings.DefaultLensRadius, "lens radius of curvature (m)")
	ringsCmd.Flags().Float64Var(&halfExtent, "half-extent", rings.DefaultHalfExtent, "half width of the plate (m)")
	ringsCmd.Flags().IntVar(&resolution, "resolution", rings.DefaultResolution, "samples per side")
	ringsCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "spectrum and measured beat of a simulation",
		Args:  cobra.NoArgs,
		RunE:  runAnalyze,
	}
	addBeatFlags(analyzeCmd)
	analyzeCmd.Flags().IntVar(&numPeaks, "peaks", 2, "number of spectral peaks to report")

	listenCmd := &cobra.Command{
		Use:   "listen",
		Short: "play the superposed tone",
		Args:  cobra.NoArgs,
		RunE:  runListen,
	}
	addBeatFlags(listenCmd)
	listenCmd.Flags().Float64Var(&listenFor, "seconds", 3, "playback duration")
	listenCmd.Flags().Float64Var(&volume, "volume", audio.DefaultVolume, "peak output level (0-1)")

	presetsCmd := &cobra.Command{
		Use:   "presets [experiment]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			experiments := []string{"beats", "rings"}
			if len(args) > 0 {
				experiments = args
			}
			for _, exp := range experiments {
				presets := config.ListPresets(exp)
				if len(presets) == 0 {
					fmt.Printf("no presets for experiment: %s\n", exp)
					continue
				}
				fmt.Printf("presets for %s:\n", exp)
				for _, p := range presets {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "wavelab.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("config already exists: %s", path)
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(beatsCmd, sweepCmd, ringsCmd, analyzeCmd, listenCmd, presetsCmd, configCmd)
	return rootCmd
}

func addBeatFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&f1, "f1", beats.DefaultF1, "frequency of wave 1 (Hz)")
	cmd.Flags().Float64Var(&f2, "f2", beats.DefaultF2, "frequency of wave 2 (Hz)")
	cmd.Flags().Float64Var(&a1, "a1", beats.DefaultAmplitude, "amplitude of wave 1")
	cmd.Flags().Float64Var(&a2, "a2", beats.DefaultAmplitude, "amplitude of wave 2")
	cmd.Flags().Float64Var(&tStart, "t-start", beats.DefaultTStart, "start time (s)")
	cmd.Flags().Float64Var(&tEnd, "t-end", beats.DefaultTEnd, "end time (s)")
	cmd.Flags().IntVar(&numPoints, "points", beats.DefaultNumPoints, "number of samples")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func setupLogging(debug bool) {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}
