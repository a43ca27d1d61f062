package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sarchlab/pagesim/paging"
	"github.com/sarchlab/pagesim/trace"
	"github.com/sirupsen/logrus"
)

// Environment variables that provide defaults for the flags. They can also
// be set in a .env file in the working directory.
const (
	envSeed      = "PAGESIM_SEED"
	envPageShift = "PAGESIM_PAGE_SHIFT"
	envLogLevel  = "PAGESIM_LOG_LEVEL"
	envRecord    = "PAGESIM_RECORD"
)

type config struct {
	seed      int64
	pageShift uint
	logLevel  string
	record    string

	// err holds a bad environment value. It is reported when a command
	// runs, so that --help still works.
	err error
}

func loadConfig() *config {
	cfg := &config{
		seed:      paging.DefaultRandomSeed,
		pageShift: trace.DefaultPageShift,
		logLevel:  logrus.WarnLevel.String(),
	}

	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		cfg.err = fmt.Errorf("load .env: %w", err)
		return cfg
	}

	if v, ok := os.LookupEnv(envSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			cfg.err = fmt.Errorf("%s: %w", envSeed, err)
		}

		cfg.seed = seed
	}

	if v, ok := os.LookupEnv(envPageShift); ok {
		shift, err := strconv.ParseUint(v, 10, 6)
		if err != nil {
			cfg.err = fmt.Errorf("%s: %w", envPageShift, err)
		}

		cfg.pageShift = uint(shift)
	}

	if v, ok := os.LookupEnv(envLogLevel); ok {
		cfg.logLevel = v
	}

	cfg.record = os.Getenv(envRecord)

	return cfg
}

func (c *config) newLogger(out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.logLevel)
	if err != nil {
		return nil, err
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)

	return logger, nil
}

func (c *config) traceReader() *trace.Reader {
	return &trace.Reader{PageShift: c.pageShift}
}

func parseFrames(arg string) (int, error) {
	frames, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", paging.ErrInvalidCapacity, arg)
	}

	if frames < 1 {
		return 0, fmt.Errorf("%w: got %d", paging.ErrInvalidCapacity, frames)
	}

	return frames, nil
}
