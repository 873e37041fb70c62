package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/storefront/internal/adapters/outbound/config"
	"github.com/abdidvp/storefront/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *rootOptions) *cobra.Command {
	var (
		force   bool
		minimal bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a " + config.FileName + " catalog file",
		Long:  "Create a " + config.FileName + " with a starter catalog covering every product and promotion kind.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := opts.path
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := starterCatalog()
			if minimal {
				cfg = domain.DefaultCatalogConfig()
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing "+config.FileName)
	cmd.Flags().BoolVar(&minimal, "minimal", false, "Write only the built-in default products")

	return cmd
}

func generateConfig(cfg domain.CatalogConfig) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("starter catalog: %w", err)
	}
	body, err := config.Marshal(cfg)
	if err != nil {
		return nil, err
	}

	header := `# Storefront catalog
#
# Product kinds: stocked (default), unlimited (no quantity), capped (needs maximum).
# Promotion kinds: percent_discount (needs percent), second_half_price, third_one_free.

`
	return append([]byte(header), body...), nil
}

func starterCatalog() domain.CatalogConfig {
	return domain.CatalogConfig{
		StoreName: domain.DefaultStoreName,
		Promotions: []domain.PromotionConfig{
			{ID: "second_half", Kind: domain.PromotionSecondHalfPrice, Name: "Second Half price!"},
			{ID: "third_free", Kind: domain.PromotionThirdOneFree, Name: "Third One Free!"},
			{ID: "thirty_off", Kind: domain.PromotionPercentDiscount, Name: "30% off!", Percent: 30},
		},
		Products: []domain.ProductConfig{
			{Name: "MacBook Air M2", Price: 1450, Quantity: 100, Promotion: "second_half"},
			{Name: "Bose QuietComfort Earbuds", Price: 250, Quantity: 500, Promotion: "third_free"},
			{Name: "Google Pixel 7", Price: 500, Quantity: 250},
			{Name: "Windows License", Price: 125, Kind: domain.ProductKindUnlimited, Promotion: "thirty_off"},
			{Name: "Shipping", Price: 10, Quantity: 250, Kind: domain.ProductKindCapped, Maximum: 1},
		},
	}
}
