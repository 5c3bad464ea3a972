// Package main provides the CLI entrypoint for tuircle.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/verte-zerg/tuircle/internal/canvas"
	"github.com/verte-zerg/tuircle/internal/config"
	"github.com/verte-zerg/tuircle/internal/engine"
	"github.com/verte-zerg/tuircle/internal/i18n"
	"github.com/verte-zerg/tuircle/internal/logging"
	"github.com/verte-zerg/tuircle/internal/model"
	"github.com/verte-zerg/tuircle/internal/sample"
	"github.com/verte-zerg/tuircle/internal/snapshot"
	"github.com/verte-zerg/tuircle/internal/stats"
	"github.com/verte-zerg/tuircle/internal/strokefile"
	"github.com/verte-zerg/tuircle/internal/tui"
)

const (
	defaultLogLevel      = "info"
	defaultSamplePoints  = 72
	defaultSampleRadius  = 100.0
	defaultSampleNoise   = 0.02
	defaultPreviewWidth  = 40
	defaultPreviewHeight = 12
)

var (
	playLocale      string
	playGrid        bool
	playGridSize    int
	playShareLink   string
	playLogFile     string
	playLogLevel    string
	playSnapshotDir string

	scoreLocale  string
	scorePreview bool
	scorePNG     string
	scoreScale   float64
	scoreGrid    bool

	sampleShape  string
	samplePoints int
	sampleRadius float64
	sampleNoise  float64
	sampleGap    float64
	sampleSeed   int64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuircle",
		Short:         "Draw a perfect circle in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playLocale, "locale", "", "UI locale (default: from LANG)")
	rootCmd.Flags().BoolVar(&playGrid, "grid", true, "show the guide grid")
	rootCmd.Flags().IntVar(&playGridSize, "grid-size", tui.DefaultGridSize, "grid spacing in braille dots")
	rootCmd.Flags().StringVar(&playShareLink, "share-link", engine.DefaultShareLink, "link used when sharing a score")
	rootCmd.Flags().StringVar(&playLogFile, "log-file", config.DefaultLogPath(), "log file path (empty disables logging)")
	rootCmd.Flags().StringVar(&playLogLevel, "log-level", defaultLogLevel, "log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&playSnapshotDir, "snapshot-dir", config.DefaultSnapshotDir(), "directory for PNG snapshots")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newSampleCmd())
	rootCmd.AddCommand(newLocalesCmd())

	return rootCmd
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "locale", &playLocale, fileCfg.Play.Locale)
	applyBoolConfig(cmd, "grid", &playGrid, fileCfg.Play.Grid)
	applyIntConfig(cmd, "grid-size", &playGridSize, fileCfg.Play.GridSize)
	applyStringConfig(cmd, "share-link", &playShareLink, fileCfg.Play.ShareLink)
	applyStringConfig(cmd, "log-file", &playLogFile, fileCfg.Play.LogFile)
	applyStringConfig(cmd, "log-level", &playLogLevel, fileCfg.Play.LogLevel)
	applyStringConfig(cmd, "snapshot-dir", &playSnapshotDir, fileCfg.Play.SnapshotDir)

	if err := validatePlayConfig(); err != nil {
		return err
	}

	if playLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(playLogFile), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}
	log, logCloser, err := logging.New(logging.Options{File: playLogFile, Level: playLogLevel})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() {
		if serr := log.Sync(); serr != nil {
			// Best-effort flush of the log file.
			_ = serr
		}
		if cerr := logCloser.Close(); cerr != nil {
			logErrf("failed to close log: %v\n", cerr)
		}
	}()

	loc := i18n.New(resolveLocale(playLocale))
	log.Info("session started", zap.String("locale", loc.Locale()), zap.Bool("grid", playGrid))

	m := tui.NewModel(tui.Options{
		Localizer:   loc,
		Logger:      log,
		ShowGrid:    playGrid,
		GridSize:    playGridSize,
		ShareLink:   playShareLink,
		SnapshotDir: playSnapshotDir,
	})
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	final := m.Stats()
	log.Info("session ended", zap.Int("attempts", final.Attempts), zap.Int("best", final.BestScore))
	if final.Attempts > 0 {
		if err := stats.RenderSummary(cmd.OutOrStdout(), final, loc); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Score a stroke file ('-' reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE:  runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreLocale, "locale", "", "feedback locale (default: from LANG)")
	cmd.Flags().BoolVar(&scorePreview, "preview", true, "print a braille preview of the stroke")
	cmd.Flags().StringVar(&scorePNG, "png", "", "also write a PNG snapshot to this path")
	cmd.Flags().Float64Var(&scoreScale, "scale", 1, "device pixels per logical pixel for --png")
	cmd.Flags().BoolVar(&scoreGrid, "grid", true, "draw the grid in the PNG snapshot")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	if scoreScale <= 0 {
		return fmt.Errorf("--scale must be > 0")
	}
	points, err := strokefile.Load(args[0])
	if err != nil {
		return fmt.Errorf("failed to read stroke: %w", err)
	}
	loc := i18n.New(resolveLocale(scoreLocale))
	out := cmd.OutOrStdout()

	if scorePreview && len(points) > 0 {
		for _, line := range renderPreview(points) {
			if _, err := fmt.Fprintln(out, line); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
	}
	result, err := stats.RenderEvaluation(out, points, loc)
	if err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if scorePNG != "" {
		if err := writeScorePNG(scorePNG, points, result, loc); err != nil {
			return err
		}
		logErrf("Wrote %s\n", scorePNG)
	}
	return nil
}

// renderPreview fits the stroke into a braille canvas sized to the terminal.
func renderPreview(points []model.Point) []string {
	cols, rows := defaultPreviewWidth, defaultPreviewHeight
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cols = clampInt(w/2, 10, 80)
		rows = clampInt(h/3, 4, 30)
	}
	c := canvas.New(cols, rows, 1)
	dw, dh := c.DotSize()
	fit := canvas.Fit(points, dw, dh, 1)
	fitted := make([]model.Point, len(points))
	for i, p := range points {
		fitted[i] = fit(p)
	}
	c.Polyline(0, fitted)
	return c.Rows(nil)
}

func writeScorePNG(path string, points []model.Point, result model.Result, loc *i18n.Localizer) error {
	w, h := snapshot.DefaultWidth, snapshot.DefaultHeight
	fit := canvas.Fit(points, w, h, 40)
	fitted := make([]model.Point, len(points))
	for i, p := range points {
		fitted[i] = fit(p)
	}
	frame := engine.Frame{
		State:    engine.Evaluated,
		Points:   fitted,
		ShowGrid: scoreGrid,
		Result:   &result,
	}
	frame.Stats.Record(result)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create png: %w", err)
	}
	if err := snapshot.Encode(file, frame, loc, snapshot.Options{Width: w, Height: h, Scale: scoreScale}); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close png: %w", err)
	}
	return nil
}

func newSampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a synthetic stroke",
		Args:  cobra.NoArgs,
		RunE:  runSampleCmd,
	}
	cmd.Flags().StringVar(&sampleShape, "shape", string(sample.Circle), "shape: "+strings.Join(shapeNames(), ", "))
	cmd.Flags().IntVar(&samplePoints, "points", defaultSamplePoints, "number of points")
	cmd.Flags().Float64Var(&sampleRadius, "radius", defaultSampleRadius, "radius in logical pixels")
	cmd.Flags().Float64Var(&sampleNoise, "noise", defaultSampleNoise, "radial jitter as a fraction of the radius")
	cmd.Flags().Float64Var(&sampleGap, "gap", 0, "fraction of the outline left open (0-1)")
	cmd.Flags().Int64Var(&sampleSeed, "seed", 0, "random seed (default: time based)")
	return cmd
}

func runSampleCmd(cmd *cobra.Command, _ []string) error {
	shape, err := sample.ParseShape(sampleShape)
	if err != nil {
		return err
	}
	if samplePoints <= 0 {
		return fmt.Errorf("--points must be > 0")
	}
	if sampleRadius <= 0 {
		return fmt.Errorf("--radius must be > 0")
	}
	if sampleNoise < 0 {
		return fmt.Errorf("--noise must be >= 0")
	}
	if sampleGap < 0 || sampleGap >= 1 {
		return fmt.Errorf("--gap must be between 0 and 1")
	}
	gen := sample.New()
	if cmd.Flags().Changed("seed") {
		gen = sample.NewSeeded(sampleSeed)
	}
	points := gen.Stroke(sample.Options{
		Shape:  shape,
		Points: samplePoints,
		Center: model.Pt(sampleRadius*1.5, sampleRadius*1.5),
		Radius: sampleRadius,
		Noise:  sampleNoise,
		Gap:    sampleGap,
	})
	if err := strokefile.Write(cmd.OutOrStdout(), points); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func shapeNames() []string {
	names := make([]string, len(sample.Shapes))
	for i, s := range sample.Shapes {
		names[i] = string(s)
	}
	return names
}

func newLocalesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List supported locales",
		Args:  cobra.NoArgs,
		RunE:  runLocalesCmd,
	}
}

func runLocalesCmd(cmd *cobra.Command, _ []string) error {
	detected := i18n.Match(i18n.DetectLocale())
	for _, locale := range i18n.Locales() {
		line := locale
		if locale == detected {
			line += " *"
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func resolveLocale(locale string) string {
	if strings.TrimSpace(locale) == "" {
		return i18n.DetectLocale()
	}
	return locale
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuircle configuration
# Uncomment a value to enable it. CLI flags override config values.

[play]
# locale = "es-ES"         # UI locale (default: from LANG)
# grid = true              # Show the guide grid
# grid-size = %d            # Grid spacing in braille dots
# share-link = %q
# log-file = %q
# log-level = %q         # debug, info, warn or error
# snapshot-dir = %q
`,
		tui.DefaultGridSize,
		engine.DefaultShareLink,
		config.DefaultLogPath(),
		defaultLogLevel,
		config.DefaultSnapshotDir(),
	)
}

func validatePlayConfig() error {
	if playGridSize <= 0 {
		return fmt.Errorf("--grid-size must be > 0")
	}
	if strings.TrimSpace(playShareLink) == "" {
		return fmt.Errorf("--share-link must not be empty")
	}
	if _, err := logging.ParseLevel(playLogLevel); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	return nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
