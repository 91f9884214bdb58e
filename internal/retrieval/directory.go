package retrieval

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"path"
	"strings"

	"github.com/SAP-F-2025/question-delivery-service/internal/models"
	"github.com/xuri/excelize/v2"
)

// PhotoPathPrefix is prepended to a directory image name to form its photo URL
const PhotoPathPrefix = "/images/known-users/"

const directoryCacheKeyPrefix = "known-users:"

// Directory resolves known users from a static CSV or XLSX resource. The
// resource is loaded once per process and never invalidated.
type Directory struct {
	sourceURL string
	fetcher   *Fetcher
	cache     *Cache
	retry     RetryOptions
	logger    *slog.Logger
}

func NewDirectory(sourceURL string, fetcher *Fetcher, cache *Cache, retry RetryOptions, logger *slog.Logger) *Directory {
	return &Directory{
		sourceURL: sourceURL,
		fetcher:   fetcher,
		cache:     cache,
		retry:     retry,
		logger:    logger,
	}
}

// FindKnownUser looks email up case-insensitively. A missing entry is not an
// error: it returns nil, nil.
func (d *Directory) FindKnownUser(ctx context.Context, email string) (*models.KnownUserRecord, error) {
	users, err := GetCached(ctx, d.cache, directoryCacheKeyPrefix+d.sourceURL, NoExpiration, d.load)
	if err != nil {
		return nil, fmt.Errorf("failed to load known-user directory: %w", err)
	}

	record, ok := users[normalizeEmail(email)]
	if !ok {
		return nil, nil
	}
	found := *record
	return &found, nil
}

func (d *Directory) load(ctx context.Context) (map[string]*models.KnownUserRecord, error) {
	resp, err := d.fetcher.FetchWithRetry(ctx, d.sourceURL, d.retry)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var rows [][]string
	if isSpreadsheet(d.sourceURL) {
		rows, err = readSpreadsheetRows(data)
	} else {
		rows, err = readCSVRows(data)
	}
	if err != nil {
		return nil, err
	}

	users, err := ParseDirectoryRows(rows)
	if err != nil {
		return nil, err
	}

	d.logger.Info("Loaded known-user directory",
		"source", d.sourceURL,
		"users", len(users))

	return users, nil
}

// ParseDirectoryRows maps rows with an email,displayName,role,organization,image
// header into records keyed by lower-cased email. Rows without an email are
// skipped and the first row for a duplicated email wins.
func ParseDirectoryRows(rows [][]string) (map[string]*models.KnownUserRecord, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("directory is empty")
	}

	headerMap := make(map[string]int)
	for i, header := range rows[0] {
		headerMap[strings.ToLower(strings.TrimSpace(header))] = i
	}
	if _, ok := headerMap["email"]; !ok {
		return nil, fmt.Errorf("directory is missing required column: email")
	}

	cell := func(row []string, column string) string {
		i, ok := headerMap[column]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	users := make(map[string]*models.KnownUserRecord, len(rows)-1)
	for _, row := range rows[1:] {
		email := normalizeEmail(cell(row, "email"))
		if email == "" {
			continue
		}
		if _, exists := users[email]; exists {
			continue
		}

		image := cell(row, "image")
		users[email] = &models.KnownUserRecord{
			Email:        email,
			DisplayName:  cell(row, "displayname"),
			Role:         models.UserRole(strings.ToLower(cell(row, "role"))),
			Organization: cell(row, "organization"),
			Image:        image,
			PhotoURL:     photoURL(image),
		}
	}

	return users, nil
}

func photoURL(image string) string {
	if image == "" {
		return ""
	}
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return image
	}
	return PhotoPathPrefix + strings.TrimPrefix(image, "/")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isSpreadsheet(source string) bool {
	p := source
	if u, err := url.Parse(source); err == nil {
		p = u.Path
	}
	return strings.EqualFold(path.Ext(p), ".xlsx")
}

func readCSVRows(data []byte) ([][]string, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV directory: %w", err)
	}
	return rows, nil
}

func readSpreadsheetRows(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open directory spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("directory spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read directory spreadsheet rows: %w", err)
	}
	return rows, nil
}
