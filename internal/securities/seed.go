package securities

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/osse101/StockDesk_Go/internal/domain"
	"github.com/osse101/StockDesk_Go/internal/logger"
	"github.com/osse101/StockDesk_Go/internal/validation"
)

// SeedFile is the on-disk layout of a securities seed catalog
type SeedFile struct {
	Version    string      `json:"version"`
	Securities []SeedEntry `json:"securities"`
}

// SeedEntry is one security in a seed catalog
type SeedEntry struct {
	Code  string `json:"code"`
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// SeedResult reports what a seed run changed
type SeedResult struct {
	Created int
	Skipped int
}

// Seed validates a seed catalog and creates every security whose code is not
// already present. Existing securities are left untouched.
func Seed(ctx context.Context, svc Service, sv validation.SchemaValidator, data []byte) (SeedResult, error) {
	var result SeedResult

	if err := sv.ValidateBytes(data, validation.SecuritiesSeedSchema); err != nil {
		return result, fmt.Errorf("invalid seed catalog: %w", err)
	}

	var file SeedFile
	if err := json.Unmarshal(data, &file); err != nil {
		return result, fmt.Errorf("failed to decode seed catalog: %w", err)
	}

	log := logger.FromContext(ctx)
	for _, entry := range file.Securities {
		_, err := svc.Create(ctx, entry.Code, entry.Name, entry.Price)
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, domain.ErrSecurityExists):
			result.Skipped++
			log.Debug("Seed security already exists", "code", entry.Code)
		default:
			return result, fmt.Errorf("failed to seed %s: %w", entry.Code, err)
		}
	}

	log.Info("Securities seeded", "created", result.Created, "skipped", result.Skipped)
	return result, nil
}
