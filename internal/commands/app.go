package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/minibook-dev/minibook/internal/book"
	"github.com/minibook-dev/minibook/internal/config"
	"github.com/minibook-dev/minibook/internal/errs"
	"github.com/minibook-dev/minibook/internal/importer"
	"github.com/minibook-dev/minibook/internal/logger"
	"github.com/minibook-dev/minibook/internal/model"
)

// defaultInput is read when no --input is given and it exists.
const defaultInput = "transactions.csv"

// app carries the persistent flags shared by every subcommand.
type app struct {
	configPath string
	inputPath  string
	useSample  bool
	logLevel   string
}

// session is one loaded config plus logger.
type session struct {
	cfg *config.Config
	log zerolog.Logger
}

func (a *app) open(cmd *cobra.Command) (*session, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.Load(a.configPath)
	} else {
		cfg, err = config.LoadOrDefault(a.configPath)
	}
	if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	log, err := logger.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return &session{cfg: cfg, log: log}, nil
}

// transactions resolves the input: --sample, then --input, then
// transactions.csv in the working directory, then the sample set.
func (a *app) transactions(log zerolog.Logger) ([]model.RawTransaction, string, error) {
	if a.useSample {
		return book.SampleRaw(), "sample", nil
	}
	path := a.inputPath
	if path == "" {
		if _, err := os.Stat(defaultInput); errors.Is(err, fs.ErrNotExist) {
			log.Info().Msg("no input file; using sample transactions")
			return book.SampleRaw(), "sample", nil
		}
		path = defaultInput
	}
	raw, err := importer.Open(path)
	if err != nil {
		return nil, path, err
	}
	return raw, path, nil
}

// derive loads config and input and derives a book, logging the outcome
// under a fresh run_id.
func (a *app) derive(cmd *cobra.Command) (*book.Book, *session, error) {
	s, err := a.open(cmd)
	if err != nil {
		return nil, nil, err
	}
	raw, source, err := a.transactions(s.log)
	if err != nil {
		return nil, nil, err
	}
	classifier, err := s.cfg.Classifier()
	if err != nil {
		return nil, nil, err
	}

	log := s.log.With().Str("run_id", uuid.NewString()).Str("source", source).Logger()
	start := time.Now()
	b, err := book.DeriveRaw(raw,
		book.WithClassifier(classifier),
		book.WithTolerance(s.cfg.ToleranceValue()),
	)
	if err != nil {
		ev := log.Error().Err(err).Str("kind", errs.Kind(err))
		var me *errs.MalformedError
		if errors.As(err, &me) {
			ev = ev.Int("row", me.Row).Str("field", me.Field)
		}
		ev.Msg("derivation failed")
		return nil, nil, fmt.Errorf("%s: %w", source, err)
	}
	log.Debug().
		Int("transactions", b.Transactions()).
		Int("accounts", len(b.Accounts())).
		Dur("elapsed", time.Since(start)).
		Msg("derivation complete")
	s.log = log
	return b, s, nil
}
