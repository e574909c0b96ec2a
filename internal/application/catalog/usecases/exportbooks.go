package usecases

import (
	"context"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"studium/internal/application/catalog/dto"
	"studium/internal/domain/book"
	"studium/internal/shared/errors"
	"studium/internal/shared/logger"
)

const (
	ExportFormatYAML = "yaml"
	ExportFormatCSV  = "csv"
)

// CatalogFormatter renders a catalog snapshot into an export format.
type CatalogFormatter interface {
	Format(books []*dto.BookDTO) (string, error)
	ContentType() string
}

type YAMLCatalogFormatter struct{}

func NewYAMLCatalogFormatter() *YAMLCatalogFormatter {
	return &YAMLCatalogFormatter{}
}

type catalogEntry struct {
	ID          uint   `yaml:"id"`
	Title       string `yaml:"title"`
	Author      string `yaml:"author"`
	ISBN        string `yaml:"isbn,omitempty"`
	TotalCopies int    `yaml:"total_copies"`
}

type catalogDocument struct {
	GeneratedAt time.Time      `yaml:"generated_at"`
	Count       int            `yaml:"count"`
	Books       []catalogEntry `yaml:"books"`
}

func (f *YAMLCatalogFormatter) Format(books []*dto.BookDTO) (string, error) {
	doc := catalogDocument{
		GeneratedAt: time.Now().UTC(),
		Count:       len(books),
		Books:       make([]catalogEntry, 0, len(books)),
	}
	for _, b := range books {
		doc.Books = append(doc.Books, catalogEntry{
			ID:          b.ID,
			Title:       b.Title,
			Author:      b.Author,
			ISBN:        b.ISBN,
			TotalCopies: b.TotalCopies,
		})
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *YAMLCatalogFormatter) ContentType() string {
	return "application/yaml; charset=utf-8"
}

type CSVCatalogFormatter struct{}

func NewCSVCatalogFormatter() *CSVCatalogFormatter {
	return &CSVCatalogFormatter{}
}

func (f *CSVCatalogFormatter) Format(books []*dto.BookDTO) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write([]string{"id", "title", "author", "isbn", "total_copies"}); err != nil {
		return "", err
	}
	for _, b := range books {
		record := []string{
			strconv.FormatUint(uint64(b.ID), 10),
			b.Title,
			b.Author,
			b.ISBN,
			strconv.Itoa(b.TotalCopies),
		}
		if err := w.Write(record); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (f *CSVCatalogFormatter) ContentType() string {
	return "text/csv; charset=utf-8"
}

type ExportBooksQuery struct {
	Format string
}

type ExportBooksResult struct {
	Content     string
	ContentType string
}

// ExportBooksUseCase renders the whole catalog into a downloadable
// snapshot for staff.
type ExportBooksUseCase struct {
	bookRepo   book.Repository
	formatters map[string]CatalogFormatter
	logger     logger.Interface
}

func NewExportBooksUseCase(bookRepo book.Repository, logger logger.Interface) *ExportBooksUseCase {
	return &ExportBooksUseCase{
		bookRepo: bookRepo,
		formatters: map[string]CatalogFormatter{
			ExportFormatYAML: NewYAMLCatalogFormatter(),
			ExportFormatCSV:  NewCSVCatalogFormatter(),
		},
		logger: logger,
	}
}

func (uc *ExportBooksUseCase) Execute(ctx context.Context, query ExportBooksQuery) (*ExportBooksResult, error) {
	format := query.Format
	if format == "" {
		format = ExportFormatYAML
	}

	formatter, ok := uc.formatters[format]
	if !ok {
		return nil, errors.NewValidationError("unsupported export format: " + format)
	}

	books, err := uc.bookRepo.ListAll(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load catalog for export", "error", err)
		return nil, err
	}

	content, err := formatter.Format(dto.BooksToDTOs(books))
	if err != nil {
		uc.logger.Errorw("failed to format catalog export", "format", format, "error", err)
		return nil, errors.NewInternalError("failed to format catalog export")
	}

	return &ExportBooksResult{
		Content:     content,
		ContentType: formatter.ContentType(),
	}, nil
}
