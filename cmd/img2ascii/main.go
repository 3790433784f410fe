// Command img2ascii converts raster images into ASCII art rendered back
// to PNG. Inputs are processed concurrently; each conversion is
// independent and shares only the immutable glyph atlas.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/asciipix/asciipix"
	"github.com/asciipix/asciipix/imageutil"
)

const defaultConfigPath = ".img2ascii.yaml"

type job struct {
	id     string
	input  string
	output string
}

type result struct {
	job      job
	err      error
	duration time.Duration
}

func main() {
	configPath := flag.String("config", defaultConfigPath,
		"Path to a YAML config file with converter defaults")
	columns := flag.Int("columns", 0,
		"Output grid width in characters (default 150, max 500)")
	charset := flag.String("charset", "",
		"Characters ordered from sparse to dense (default \".:-+=#@\")")
	colorMode := flag.Bool("color", false,
		"Tint each glyph with its cell's average color")
	fgHex := flag.String("fg", "",
		"Foreground hex color for monochrome output (e.g. #ffffff)")
	bgHex := flag.String("bg", "",
		"Background hex color (e.g. #000000)")
	boost := flag.Float64("boost", 0,
		"Foreground brightness multiplier (1.0 = unchanged)")
	sharpen := flag.Bool("sharpen", false,
		"Sharpen the source before sampling")
	sortCharset := flag.Bool("sort", false,
		"Reorder the charset by measured glyph ink coverage")
	text := flag.Bool("text", false,
		"Write plain .txt output instead of rendered PNG")
	scale := flag.Int("scale", 0,
		"Integer upscale factor for the rendered PNG")
	outputDir := flag.String("output", "",
		"Directory for output files (default: next to each input)")
	workers := flag.Int("workers", 0,
		"Number of concurrent conversions")
	logFile := flag.String("log", "",
		"Optional log file path (rotated)")
	verbose := flag.Bool("verbose", false,
		"Enable debug logging")
	flag.Parse()

	inputs := flag.Args()
	if len(inputs) == 0 {
		fmt.Fprintln(os.Stderr, "usage: img2ascii [flags] image [image ...]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath, *configPath != defaultConfigPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	applyFlags(&cfg, *columns, *charset, *colorMode, *fgHex, *bgHex,
		*boost, *sharpen, *sortCharset, *scale, *workers, *logFile)

	logger := newLogger(cfg.LogFile, *verbose)
	defer logger.Sync()

	conv, err := buildConverter(cfg)
	if err != nil {
		logger.Error("invalid configuration", zap.Error(err))
		os.Exit(1)
	}

	results := runJobs(conv, cfg, inputs, *outputDir, *text, logger)

	failed := 0
	for _, res := range results {
		if res.err != nil {
			failed++
			color.Red("FAIL %s: %v", res.job.input, res.err)
			continue
		}
		color.Green("OK   %s -> %s (%s)", res.job.input, res.job.output,
			res.duration.Round(time.Millisecond))
	}
	if failed > 0 {
		color.Yellow("%d of %d conversions failed", failed, len(results))
		os.Exit(1)
	}
}

// applyFlags overlays explicitly provided flag values onto the config.
func applyFlags(cfg *Config, columns int, charset string, colorMode bool,
	fgHex, bgHex string, boost float64, sharpen, sort bool,
	scale, workers int, logFile string) {
	if columns > 0 {
		cfg.Columns = columns
	}
	if charset != "" {
		cfg.Charset = charset
	}
	if colorMode {
		cfg.Color = true
	}
	if fgHex != "" {
		cfg.Foreground = fgHex
	}
	if bgHex != "" {
		cfg.Background = bgHex
	}
	if boost > 0 {
		cfg.Boost = boost
	}
	if sharpen {
		cfg.Sharpen = true
	}
	if sort {
		cfg.Sort = true
	}
	if scale > 0 {
		cfg.Scale = scale
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
}

// buildConverter translates the merged config into converter options.
func buildConverter(cfg Config) (*asciipix.Converter, error) {
	opts := []asciipix.ConverterOption{
		asciipix.WithColorMode(cfg.Color),
		asciipix.WithSharpen(cfg.Sharpen),
		asciipix.WithCoverageSort(cfg.Sort),
	}
	if cfg.Columns > 0 {
		opts = append(opts, asciipix.WithColumns(cfg.Columns))
	}
	if cfg.Boost > 0 {
		opts = append(opts, asciipix.WithBrightnessBoost(cfg.Boost))
	}
	if cfg.Charset != "" {
		cs, err := asciipix.NewCharset(cfg.Charset)
		if err != nil {
			return nil, err
		}
		opts = append(opts, asciipix.WithCharset(cs))
	}
	if cfg.Foreground != "" {
		c, err := asciipix.ParseHexColor(cfg.Foreground)
		if err != nil {
			return nil, err
		}
		opts = append(opts, asciipix.WithForeground(imageutil.RGBFromColor(c)))
	}
	if cfg.Background != "" {
		c, err := asciipix.ParseHexColor(cfg.Background)
		if err != nil {
			return nil, err
		}
		opts = append(opts, asciipix.WithBackground(imageutil.RGBFromColor(c)))
	}
	return asciipix.NewConverter(opts...), nil
}

// runJobs converts every input on a bounded worker pool. The converter is
// shared across workers; conversions carry no shared mutable state.
func runJobs(conv *asciipix.Converter, cfg Config, inputs []string,
	outputDir string, text bool, logger *zap.Logger) []result {
	jobs := make([]job, len(inputs))
	for i, input := range inputs {
		jobs[i] = job{
			id:     uuid.NewString(),
			input:  input,
			output: outputPath(input, outputDir, text),
		}
	}

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(jobs) {
		workers = len(jobs)
	}

	results := make([]result, len(jobs))
	queue := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range queue {
				results[i] = convertOne(conv, cfg, jobs[i], text, logger)
			}
		}()
	}
	for i := range jobs {
		queue <- i
	}
	close(queue)
	wg.Wait()

	return results
}

func convertOne(conv *asciipix.Converter, cfg Config, j job, text bool,
	logger *zap.Logger) result {
	log := logger.With(
		zap.String("conversion_id", j.id),
		zap.String("input", j.input),
	)
	start := time.Now()

	data, err := os.ReadFile(j.input)
	if err != nil {
		log.Error("read failed", zap.Error(err))
		return result{job: j, err: err}
	}

	if text {
		art, err := conv.Text(data)
		if err != nil {
			log.Error("conversion failed", zap.Error(err))
			return result{job: j, err: err}
		}
		if err := os.WriteFile(j.output, []byte(art+"\n"), 0644); err != nil {
			log.Error("write failed", zap.Error(err))
			return result{job: j, err: err}
		}
		log.Debug("wrote text", zap.Int("bytes", len(art)))
		return result{job: j, duration: time.Since(start)}
	}

	img, err := conv.Convert(data)
	if err != nil {
		log.Error("conversion failed", zap.Error(err))
		return result{job: j, err: err}
	}

	out := imageutil.RGBAImageFromImage(img)
	if cfg.Scale > 1 {
		out = imageutil.ScaleBy(out, cfg.Scale)
	}
	if err := imageutil.SavePNG(out.RGBA, j.output); err != nil {
		log.Error("write failed", zap.Error(err))
		return result{job: j, err: err}
	}

	log.Debug("wrote png",
		zap.Int("width", out.Width()),
		zap.Int("height", out.Height()),
		zap.Duration("elapsed", time.Since(start)))
	return result{job: j, duration: time.Since(start)}
}

// outputPath derives the output file name from the input, either next to
// it or inside dir.
func outputPath(input, dir string, text bool) string {
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	ext := ".ascii.png"
	if text {
		ext = ".txt"
	}
	if dir == "" {
		dir = filepath.Dir(input)
	}
	return filepath.Join(dir, base+ext)
}
