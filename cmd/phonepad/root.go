package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/dshills/phonepad/internal/batch"
	"github.com/dshills/phonepad/internal/config"
	"github.com/dshills/phonepad/internal/input/key"
	"github.com/dshills/phonepad/internal/keypad"
	"github.com/dshills/phonepad/internal/logging"
	"github.com/dshills/phonepad/internal/output"
)

// errItemsFailed is returned when at least one input could not be decoded.
var errItemsFailed = errors.New("inputs failed to decode")

type options struct {
	configPath  string
	format      string
	color       string
	inputFormat string
	field       string
	files       []string
	events      bool
	workers     int
	trace       bool
	metrics     bool
	logLevel    string
	logFormat   string
}

type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &options{}
	ios := streams{in: stdin, out: stdout, err: stderr}

	cmd := &cobra.Command{
		Use:   "phonepad [flags] [KEYS...]",
		Short: "Decode multi-tap phone keypad input",
		Long: `phonepad decodes key presses from a multi-tap phone keypad into text.

Digits 2-9 select letters by repeated presses, 0 is a space and 1 gives
punctuation. A space or any other non-digit separates presses on the same
key, '*' deletes the last character and '#' ends the input.

Each KEYS argument is decoded on its own. Without arguments inputs are read
one per line from --file paths or standard input.`,
		Example: `  phonepad "4433555 555666#"
  phonepad --format pretty 33# 227*#
  phonepad --input-format jsonl --field msg.keys --file events.jsonl
  phonepad --events "<KP4><KP4><KP3><KP3>#"`,
		Version:       versionString(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDecode(cmd, opts, args, ios)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("phonepad {{.Version}}\n")
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err: err}
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a TOML or YAML config file")
	flags.StringVarP(&opts.format, "format", "f", "text", "output format: text, pretty or json")
	flags.StringVar(&opts.color, "color", "auto", "colorize pretty output: auto, always or never")
	flags.StringVar(&opts.inputFormat, "input-format", "line", "input format for files and stdin: line or jsonl")
	flags.StringVar(&opts.field, "field", "keys", "gjson path of the key string in JSON Lines records")
	flags.StringArrayVar(&opts.files, "file", nil, "read inputs from `path` (repeatable, - for stdin)")
	flags.BoolVar(&opts.events, "events", false, "treat inputs as key sequences such as <KP4><KP4>#")
	flags.IntVarP(&opts.workers, "workers", "w", 0, "concurrent decoders (0 uses every CPU)")
	flags.BoolVar(&opts.trace, "trace", false, "log every decoding step at debug level")
	flags.BoolVar(&opts.metrics, "metrics", false, "write Prometheus metrics to stderr on exit")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}

// loadConfig layers explicitly set flags over the file and environment.
func loadConfig(cmd *cobra.Command, opts *options) (*config.Config, error) {
	cfg := config.New(config.WithFile(opts.configPath))
	if err := cfg.Load(cmd.Context()); err != nil {
		return nil, err
	}

	settings := []struct {
		flag  string
		path  string
		value any
	}{
		{"format", "output.format", opts.format},
		{"color", "output.color", opts.color},
		{"input-format", "input.format", opts.inputFormat},
		{"field", "input.field", opts.field},
		{"workers", "batch.workers", int64(opts.workers)},
		{"log-level", "logging.level", opts.logLevel},
		{"log-format", "logging.format", opts.logFormat},
	}
	for _, s := range settings {
		if !cmd.Flags().Changed(s.flag) {
			continue
		}
		if err := cfg.Set(s.path, s.value); err != nil {
			return nil, fmt.Errorf("flag --%s: %w", s.flag, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runDecode(cmd *cobra.Command, opts *options, args []string, ios streams) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return usageError{err: err}
	}

	logCfg := cfg.Logging()
	if opts.trace {
		logCfg.Level = "debug"
	}
	logger := logging.New(logging.Config{
		Level:  logCfg.Level,
		Format: logCfg.Format,
		Output: ios.err,
	})

	items, err := collectItems(args, opts.files, cfg.Input(), ios.in)
	if err != nil {
		return err
	}
	logger.Debug("inputs collected", slog.Int("items", len(items)))

	outCfg := cfg.Output()
	w, err := output.New(outCfg.Format, ios.out, output.ColorEnabled(outCfg.Color, ios.out))
	if err != nil {
		return usageError{err: err}
	}

	runner := &batch.Runner{
		Workers: cfg.Batch().Workers,
		Logger:  logger,
		Trace:   opts.trace,
	}
	if opts.events {
		runner.Decode = decodeSequence
	}
	var reg *prometheus.Registry
	if opts.metrics {
		reg = prometheus.NewRegistry()
		runner.Metrics = batch.MustNewMetrics(reg)
	}

	results, err := runner.Run(cmd.Context(), items)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
		if err := w.Write(res); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	if reg != nil {
		if err := batch.WriteText(ios.err, reg); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d %w", failed, len(results), errItemsFailed)
	}
	return nil
}

// decodeSequence decodes a key sequence spec such as "<KP4><KP4>#".
func decodeSequence(spec string) (string, error) {
	seq, err := key.ParseSequence(spec)
	if err != nil {
		return "", err
	}
	return keypad.DecodeSequence(seq), nil
}

// collectItems gathers inputs from args, else from files, else from stdin.
func collectItems(args, files []string, in config.InputConfig, stdin io.Reader) ([]batch.Item, error) {
	if len(args) > 0 {
		items := make([]batch.Item, len(args))
		for i, arg := range args {
			items[i] = batch.Item{Source: "args", Line: i + 1, Input: arg}
		}
		return items, nil
	}

	if len(files) == 0 {
		files = []string{"-"}
	}

	var items []batch.Item
	for _, path := range files {
		got, err := readSource(path, in, stdin)
		if err != nil {
			return nil, err
		}
		items = append(items, got...)
	}
	return items, nil
}

func readSource(path string, in config.InputConfig, stdin io.Reader) ([]batch.Item, error) {
	source, r := "stdin", stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		source, r = path, f
	}

	var reader batch.Reader
	if in.Format == "jsonl" {
		reader = batch.NewJSONLReader(source, r, in.Field)
	} else {
		reader = batch.NewLineReader(source, r)
	}
	return batch.ReadAll(reader)
}
