package mealplan

import (
	"compress/gzip"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"storefront/internal/model"

	"github.com/rs/zerolog"
)

// Loader reads a fixture plan by name, e.g. "daily.json" or "weekly.json.gz".
type Loader interface {
	Load(ctx context.Context, name string) (*model.MealPlan, error)
}

// FixtureName is the conventional fixture file for a time frame.
func FixtureName(tf model.TimeFrame) string {
	return string(tf) + ".json"
}

// decodePlan reads a JSON plan from r, transparently gunzipping names that
// end in .gz.
func decodePlan(r io.Reader, name string) (*model.MealPlan, error) {
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	}

	var plan model.MealPlan
	if err := json.NewDecoder(r).Decode(&plan); err != nil {
		return nil, fmt.Errorf("failed to decode plan %s: %w", name, err)
	}
	if len(plan.Meals) == 0 && !plan.IsWeekly() {
		return nil, fmt.Errorf("plan %s has no meals", name)
	}
	return &plan, nil
}

// fileLoader reads fixtures from a local directory.
type fileLoader struct {
	dir    string
	logger zerolog.Logger
}

// NewFileLoader creates a loader rooted at dir.
func NewFileLoader(dir string, logger zerolog.Logger) Loader {
	return &fileLoader{
		dir:    dir,
		logger: logger.With().Str("component", "plan-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context, name string) (*model.MealPlan, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := filepath.Join(l.dir, filepath.Clean("/"+name))
	l.logger.Debug().Str("file", path).Msg("loading plan fixture")

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open plan fixture %s: %w", path, err)
	}
	defer file.Close()

	plan, err := decodePlan(file, name)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read plan fixture")
		return nil, err
	}
	return plan, nil
}

//go:embed fixtures/*.json
var builtin embed.FS

// embeddedLoader serves the plans compiled into the binary.
type embeddedLoader struct{}

// NewEmbeddedLoader returns a loader over the built-in fixtures. Only the
// daily plan ships built in.
func NewEmbeddedLoader() Loader {
	return embeddedLoader{}
}

func (embeddedLoader) Load(ctx context.Context, name string) (*model.MealPlan, error) {
	f, err := builtin.Open("fixtures/" + name)
	if err != nil {
		return nil, fmt.Errorf("no built-in plan %s: %w", name, err)
	}
	defer f.Close()
	return decodePlan(f, name)
}
