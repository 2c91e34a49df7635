package storage

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"fightstats/models"
	"fightstats/utils"

	"github.com/cockroachdb/errors"
)

// Header is the column layout of checkpoint and master CSV files
var Header = []string{
	"Name", "Nickname", "Height_cm", "Reach_cm", "Stance", "DOB", "Weight_lbs", "URL",
	"Wins", "Losses", "Draws",
	"SApM", "SLpM", "Str_Acc", "Str_Def", "TD_Avg", "TD_Acc", "TD_Def", "Sub_Avg",
}

// CSVWriter overwrites one fighter CSV file with a full snapshot each call
type CSVWriter struct {
	filePath string
	logger   *utils.Logger
}

// NewCSVWriter creates a new CSVWriter
func NewCSVWriter(filePath string, logger *utils.Logger) *CSVWriter {
	return &CSVWriter{filePath: filePath, logger: logger}
}

// Path is the file this writer replaces
func (w *CSVWriter) Path() string {
	return w.filePath
}

// WriteFighters writes the records to a temp file next to the target and
// renames it into place, so readers never observe a half-written file.
func (w *CSVWriter) WriteFighters(fighters []*models.FighterRecord) (err error) {
	dir := filepath.Dir(w.filePath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(err, "failed to create output directory")
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.filePath)+".tmp-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp CSV file")
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	writer := csv.NewWriter(tmp)
	if err = writer.Write(Header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}
	for _, f := range fighters {
		if err = writer.Write(encodeRow(f)); err != nil {
			return errors.Wrapf(err, "failed to write CSV row for '%s'", f.Name)
		}
	}
	writer.Flush()
	if err = writer.Error(); err != nil {
		return errors.Wrap(err, "failed to flush CSV")
	}
	if err = tmp.Close(); err != nil {
		return errors.Wrap(err, "failed to close temp CSV file")
	}
	if err = os.Rename(tmp.Name(), w.filePath); err != nil {
		return errors.Wrap(err, "failed to move CSV into place")
	}

	w.logger.Debug("Fighters written to: %s (%d rows)", w.filePath, len(fighters))
	return nil
}

func encodeRow(f *models.FighterRecord) []string {
	return []string{
		f.Name,
		f.Nickname,
		formatFloat(f.HeightCm),
		formatFloat(f.ReachCm),
		f.Stance.OrElse(""),
		f.DOB.OrElse(""),
		formatInt(f.WeightLbs),
		f.SourceURL,
		formatInt(f.Wins),
		formatInt(f.Losses),
		formatInt(f.Draws),
		formatFloat(f.SApM),
		formatFloat(f.SLpM),
		formatFloat(f.StrAcc),
		formatFloat(f.StrDef),
		formatFloat(f.TDAvg),
		formatFloat(f.TDAcc),
		formatFloat(f.TDDef),
		formatFloat(f.SubAvg),
	}
}

func formatFloat(v models.Opt[float64]) string {
	f, ok := v.Get()
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(v models.Opt[int]) string {
	i, ok := v.Get()
	if !ok {
		return ""
	}
	return strconv.Itoa(i)
}

// ReadFighters loads a fighter CSV by header name. Columns the file lacks and
// cells that do not parse come back absent.
func ReadFighters(path string) ([]*models.FighterRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read header of %s", path)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}

	var fighters []*models.FighterRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "read %s", path)
		}
		fighters = append(fighters, decodeRow(row, cols))
	}
	return fighters, nil
}

func decodeRow(row []string, cols map[string]int) *models.FighterRecord {
	cell := func(name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	text := func(name string) models.Opt[string] {
		if s := cell(name); s != "" {
			return models.Some(s)
		}
		return models.None[string]()
	}

	return &models.FighterRecord{
		Name:      cell("Name"),
		Nickname:  cell("Nickname"),
		SourceURL: cell("URL"),
		HeightCm:  parseFloatCell(cell("Height_cm")),
		ReachCm:   parseFloatCell(cell("Reach_cm")),
		Stance:    text("Stance"),
		DOB:       text("DOB"),
		WeightLbs: parseIntCell(cell("Weight_lbs")),
		Wins:      parseIntCell(cell("Wins")),
		Losses:    parseIntCell(cell("Losses")),
		Draws:     parseIntCell(cell("Draws")),
		SApM:      parseFloatCell(cell("SApM")),
		SLpM:      parseFloatCell(cell("SLpM")),
		StrAcc:    parseFloatCell(cell("Str_Acc")),
		StrDef:    parseFloatCell(cell("Str_Def")),
		TDAvg:     parseFloatCell(cell("TD_Avg")),
		TDAcc:     parseFloatCell(cell("TD_Acc")),
		TDDef:     parseFloatCell(cell("TD_Def")),
		SubAvg:    parseFloatCell(cell("Sub_Avg")),
	}
}

func parseFloatCell(s string) models.Opt[float64] {
	if s == "" {
		return models.None[float64]()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return models.None[float64]()
	}
	return models.Some(v)
}

// parseIntCell also accepts integral floats such as "24.0"
func parseIntCell(s string) models.Opt[int] {
	if s == "" {
		return models.None[int]()
	}
	if v, err := strconv.Atoi(s); err == nil {
		return models.Some(v)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return models.None[int]()
	}
	return models.Some(int(f))
}
