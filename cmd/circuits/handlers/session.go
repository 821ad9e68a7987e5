// Package handlers implements the business logic behind CLI commands.
//
// Each handler loads its input, builds a spanning.Controller with the
// configured logger, workers and metrics observer, runs one or more walks and
// renders the answer to the supplied writer.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/circuits/config"
	"github.com/katalvlaran/circuits/metrics"
	"github.com/katalvlaran/circuits/point"
	"github.com/katalvlaran/circuits/spanning"
)

// StdinName selects standard input as the input source.
const StdinName = "-"

// IO bundles the streams a handler reads from and writes to.
type IO struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// session carries the per-invocation logger, metrics and parsed points.
type session struct {
	cfg      config.Config
	logger   *zap.Logger
	registry *prometheus.Registry
	observer spanning.Observer
	points   []point.Point
	out      io.Writer
}

// newLogger builds a console logger at cfg.LogLevel writing to w.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	enc := zap.NewDevelopmentEncoderConfig()
	enc.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl)

	return zap.New(core), nil
}

// openSession prepares a session: logger, optional metrics, and parsed input.
func openSession(cfg config.Config, input string, streams IO) (*session, error) {
	errOut := streams.Err
	if errOut == nil {
		errOut = os.Stderr
	}
	logger, err := newLogger(cfg.LogLevel, errOut)
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:      cfg,
		logger:   logger,
		observer: spanning.NopObserver{},
		out:      streams.Out,
	}
	if cfg.MetricsFile != "" {
		s.registry = prometheus.NewRegistry()
		col, err := metrics.NewCollector(s.registry)
		if err != nil {
			return nil, err
		}
		s.observer = col
	}

	s.points, err = readPoints(input, streams.In)
	if err != nil {
		return nil, err
	}
	logger.Debug("input loaded", zap.String("source", sourceName(input)), zap.Int("points", len(s.points)))

	return s, nil
}

// controller builds a spanning.Controller over the session's points.
func (s *session) controller(ctx context.Context) (*spanning.Controller, error) {
	return spanning.New(s.points,
		spanning.WithContext(ctx),
		spanning.WithWorkers(s.cfg.Workers),
		spanning.WithLogger(s.logger),
		spanning.WithObserver(s.observer),
	)
}

// close flushes metrics and the logger. It returns err joined with any
// failure to write the metrics file.
func (s *session) close(err error) error {
	if s.registry != nil {
		if werr := metrics.WriteTextfile(s.cfg.MetricsFile, s.registry); werr != nil {
			err = errors.Join(err, werr)
		}
	}
	_ = s.logger.Sync()

	return err
}

// emit writes v as indented JSON when configured, or text otherwise.
func (s *session) emit(v any, text string) error {
	if s.cfg.JSON {
		enc := json.NewEncoder(s.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(s.out, text)

	return err
}

func readPoints(input string, stdin io.Reader) ([]point.Point, error) {
	if input == "" || input == StdinName {
		if stdin == nil {
			stdin = os.Stdin
		}
		return point.Read(stdin)
	}

	f, err := os.Open(input)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	return point.Read(f)
}

func sourceName(input string) string {
	if input == "" || input == StdinName {
		return "stdin"
	}

	return input
}
