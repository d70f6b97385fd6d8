package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/flower-finder/internal/config"
	"github.com/donaldgifford/flower-finder/internal/store"
	"github.com/donaldgifford/flower-finder/pkg/logger"
	domain "github.com/donaldgifford/flower-finder/pkg/types"
)

// flowersFile is the layout of an import file.
type flowersFile struct {
	Flowers []domain.Flower `yaml:"flowers"`
}

func importCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load flower documents from a YAML file",
		Example: `  flower-finder import --file flowers.yaml
  cat flowers.yaml | flower-finder import --file -`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runImport(cmd.Context(), cmd.InOrStdin(), file)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file of flowers (- for stdin)")
	cobra.CheckErr(cmd.MarkFlagRequired("file"))

	return cmd
}

func runImport(ctx context.Context, stdin io.Reader, file string) error {
	in := stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		in = f
	}

	flowers, err := decodeFlowers(in)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	st, err := store.NewPostgresStore(ctx, cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connecting to flower store: %w", err)
	}
	defer st.Close()

	n, err := importFlowers(ctx, st, flowers)
	log.Info("import finished", "imported", n, "total", len(flowers))
	return err
}

// decodeFlowers parses an import file. Every flower needs a name in at least
// one language.
func decodeFlowers(r io.Reader) ([]domain.Flower, error) {
	var doc flowersFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("import file is empty")
		}
		return nil, fmt.Errorf("parsing import file: %w", err)
	}

	var errs []error
	for i := range doc.Flowers {
		f := &doc.Flowers[i]
		if f.FlowerName == "" && f.FlowerNameLocalized == "" {
			errs = append(errs, fmt.Errorf("flowers[%d]: flowername or flowername_kr is required", i))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return doc.Flowers, nil
}

// importFlowers inserts flowers in file order and stops at the first
// failure, returning how many were stored.
func importFlowers(ctx context.Context, st store.Store, flowers []domain.Flower) (int, error) {
	for i := range flowers {
		if err := st.InsertFlower(ctx, &flowers[i]); err != nil {
			return i, fmt.Errorf("importing flowers[%d]: %w", i, err)
		}
	}
	return len(flowers), nil
}
