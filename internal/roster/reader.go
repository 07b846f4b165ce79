package roster

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"matchpoint/internal/logging"
)

var (
	// ErrNoHeader indicates an empty file or a file without a header row.
	ErrNoHeader = errors.New("no header row")
	// ErrMissingColumns indicates the header lacks required columns.
	ErrMissingColumns = errors.New("missing required columns")
)

var bomUTF16LE = []byte{0xFF, 0xFE}

// Column names expected in the header row, after whitespace normalization.
var requiredColumns = []string{
	"Extern ID",
	"Last Name",
	"First Name",
	"Sex",
	"Association",
	"DoB",
	"MoB",
	"YoB",
}

// ReadPlayers reads player records from a tab-separated CSV file.
//
// UTF-16LE files (FF FE BOM) and UTF-8 files with or without a BOM are
// handled automatically. Cell values are trimmed and any run of Unicode
// whitespace is collapsed to a single space. Rows whose date fields fail to
// parse are skipped with a warning; a missing header or missing required
// columns abort with an error.
func ReadPlayers(path string, logger *slog.Logger) ([]Player, error) {
	log := logging.NewComponentLogger(logger, "roster")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", path, err)
	}

	decoded, err := decodeRoster(data)
	if err != nil {
		return nil, fmt.Errorf("decode roster %s: %w", path, err)
	}

	reader := csv.NewReader(bytes.NewReader(decoded))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w in %s", ErrNoHeader, path)
		}
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	columns := make(map[string]int, len(header))
	for i, cell := range header {
		columns[NormalizeWhitespace(cell)] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", ErrMissingColumns, path, strings.Join(missing, ", "))
	}

	var players []Player
	rowNum := 1 // header is row 1
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		rowNum++
		if err != nil {
			log.Warn("skipping unparsable row",
				logging.String("file", path),
				logging.Int(logging.FieldRow, rowNum),
				logging.Error(err))
			continue
		}

		player, err := parseRow(row, columns)
		if err != nil {
			log.Warn("skipping row with invalid fields",
				logging.String("file", path),
				logging.Int(logging.FieldRow, rowNum),
				logging.Error(err))
			continue
		}
		players = append(players, player)
	}

	log.Info("roster read",
		logging.String("file", path),
		logging.Int("players", len(players)))
	return players, nil
}

func parseRow(row []string, columns map[string]int) (Player, error) {
	cell := func(name string) string {
		idx := columns[name]
		if idx >= len(row) {
			return ""
		}
		return NormalizeWhitespace(row[idx])
	}

	dob, err := parseDateField(cell("DoB"))
	if err != nil {
		return Player{}, fmt.Errorf("DoB: %w", err)
	}
	mob, err := parseDateField(cell("MoB"))
	if err != nil {
		return Player{}, fmt.Errorf("MoB: %w", err)
	}
	yob, err := parseDateField(cell("YoB"))
	if err != nil {
		return Player{}, fmt.Errorf("YoB: %w", err)
	}

	return Player{
		ExternID:     cell("Extern ID"),
		LastName:     cell("Last Name"),
		FirstName:    cell("First Name"),
		Sex:          cell("Sex"),
		Association:  cell("Association"),
		DayOfBirth:   dob,
		MonthOfBirth: mob,
		YearOfBirth:  yob,
	}, nil
}

// parseDateField converts a date component to an int. Empty cells mean
// "unknown" and map to zero.
func parseDateField(value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// NormalizeWhitespace collapses any run of Unicode whitespace (including
// exotic spaces such as U+2006) into a single space and trims the result.
func NormalizeWhitespace(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

func decodeRoster(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, bomUTF16LE) {
		decoder := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		decoded, err := decoder.Bytes(data)
		if err != nil {
			return nil, fmt.Errorf("utf-16le: %w", err)
		}
		return decoded, nil
	}
	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("utf-8: %w", err)
	}
	return decoded, nil
}
