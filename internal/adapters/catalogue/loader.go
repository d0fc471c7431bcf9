// internal/adapters/catalogue/loader.go
package catalogue

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/servitech/parts-portal/internal/core/domain"
)

// The catalogue export comes out of the ERP as Windows-1252. Column order is
// not guaranteed, so the header row is mapped by name.
var requiredColumns = []string{"Product Code", "Description", "Category"}

// Loader reads the part catalogue from a CSV export.
type Loader struct {
	logger *slog.Logger
}

// NewLoader creates a catalogue loader.
func NewLoader(logger *slog.Logger) *Loader {
	return &Loader{logger: logger.With(slog.String("component", "catalogue_loader"))}
}

// LoadFile reads a CSV file and builds the catalogue.
func (l *Loader) LoadFile(path string, hiddenPartNumbers []string) (*domain.Catalogue, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalogue file: %w", err)
	}
	defer f.Close()

	c, err := l.Load(f, hiddenPartNumbers)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalogue from %s: %w", path, err)
	}

	l.logger.Info("catalogue loaded",
		slog.String("path", path),
		slog.Int("parts", c.Len()))

	return c, nil
}

// Load parses Windows-1252 CSV into a catalogue.
func (l *Loader) Load(r io.Reader, hiddenPartNumbers []string) (*domain.Catalogue, error) {
	reader := csv.NewReader(charmap.Windows1252.NewDecoder().Reader(r))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header row: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("catalogue header missing column %q", name)
		}
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var parts []domain.PartRecord
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read catalogue row: %w", err)
		}

		partNumber := CleanPartNumber(field(record, "Product Code"))
		if partNumber == "" {
			continue
		}

		parts = append(parts, domain.PartRecord{
			PartNumber:   partNumber,
			Description:  field(record, "Description"),
			Category:     field(record, "Category"),
			Make:         field(record, "Make"),
			Manufacturer: field(record, "Manufacturer"),
			Image:        ImageKey(partNumber),
		})
	}

	return domain.NewCatalogue(parts, hiddenPartNumbers), nil
}

// CleanPartNumber strips the artifacts the ERP export leaves in product
// codes: non-breaking spaces, stray CR/LF and surrounding whitespace.
func CleanPartNumber(raw string) string {
	cleaned := strings.NewReplacer(" ", "", "\r", "", "\n", "").Replace(raw)
	return strings.TrimSpace(cleaned)
}

// ImageKey derives the image object key for a part: the part number with
// slashes removed plus ".png".
func ImageKey(partNumber string) string {
	return strings.ReplaceAll(partNumber, "/", "") + ".png"
}
