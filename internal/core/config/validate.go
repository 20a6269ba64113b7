package config

import (
	"fmt"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/appraise/internal/core/styles"
)

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("tui.page_size", c.TUI.PageSize, pageSizeOffered),
		criterio.Run("review.add_latency", c.Review.AddLatency, latencyNonNegative),
		validateSeedFile(c.SeedFile),
	)
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func pageSizeOffered(size int) error {
	if !slices.Contains(PageSizes, size) {
		return fmt.Errorf("page size %d not offered (choices: %v)", size, PageSizes)
	}
	return nil
}

func latencyNonNegative(d Duration) error {
	if d < 0 {
		return fmt.Errorf("latency cannot be negative")
	}
	return nil
}

func validateSeedFile(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return criterio.NewFieldErrors("seed_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("seed_file", fmt.Errorf("%s is a directory, not a file", path))
	}
	return nil
}
