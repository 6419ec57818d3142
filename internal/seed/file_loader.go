package seed

import (
	"context"
	"fmt"
	"os"

	"shopkart/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for reading seed files from disk.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based seed loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

// Load reads a JSON seed file from the local file system.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading seed file")

	data, err := os.ReadFile(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to read seed file")
		return nil, fmt.Errorf("failed to read seed file %s: %w", filePath, err)
	}

	products, err := parseProducts(data)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to parse seed file")
		return nil, fmt.Errorf("failed to parse seed file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("products_loaded", len(products)).
		Msg("seed file loaded successfully")

	return products, nil
}
