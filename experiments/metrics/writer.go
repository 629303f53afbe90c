package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

const OddsFile = "battle_odds.csv"

type Writer struct {
	baseDir string
}

// NewWriter creates baseDir/name/<UTC timestamp> to hold one run's files.
func NewWriter(baseDir, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	dir := filepath.Join(baseDir, name, timestamp)
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: dir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteOddsRecords(records []OddsRecord) error {
	path := filepath.Join(w.baseDir, OddsFile)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create odds file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	// Loss columns are as wide as the largest loss seen in any record
	width := 0
	for _, record := range records {
		width = max(width, len(record.AttackerLosses), len(record.DefenderLosses))
	}

	header := []string{"attacker_troops", "defender_armies", "trials", "conquests", "conquest_rate"}
	for k := 0; k < width; k++ {
		header = append(header, "attacker_lost_"+strconv.Itoa(k))
	}
	for k := 0; k < width; k++ {
		header = append(header, "defender_lost_"+strconv.Itoa(k))
	}
	header = append(header, "duration")
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write odds header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.AttackerTroops),
			strconv.Itoa(record.DefenderArmies),
			strconv.Itoa(record.Trials),
			strconv.Itoa(record.Conquests),
			strconv.FormatFloat(record.ConquestRate(), 'f', 4, 64),
		}
		row = append(row, padded(record.AttackerLosses, width)...)
		row = append(row, padded(record.DefenderLosses, width)...)
		row = append(row, record.Duration.String())
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write odds row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func padded(counts []int, width int) []string {
	fields := make([]string, width)
	for k := range fields {
		n := 0
		if k < len(counts) {
			n = counts[k]
		}
		fields[k] = strconv.Itoa(n)
	}
	return fields
}
