package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer dumps experiment records as CSV files under a timestamped
// directory, one directory per experiment run.
type Writer struct {
	baseDir string
}

func NewWriter(root, experiment string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(root, experiment, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{baseDir: baseDir}, nil
}

// Dir returns the directory this writer writes into.
func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, c := range configs {
		rows = append(rows, []string{
			strconv.Itoa(c.ID),
			c.Kind,
			strconv.Itoa(c.Depth),
			strconv.FormatFloat(c.CenterBias, 'f', -1, 64),
			strconv.FormatBool(!c.NoPruning),
			strconv.FormatUint(c.Seed, 10),
		})
	}
	header := []string{"id", "kind", "depth", "center_bias", "pruning", "seed"}
	return w.writeFile("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			strconv.Itoa(r.Agent1),
			strconv.Itoa(r.Agent2),
			r.Winner,
			strconv.Itoa(r.Moves),
			strconv.FormatInt(r.Duration.Milliseconds(), 10),
		})
	}
	header := []string{"id", "agent1", "agent2", "winner", "moves", "duration_ms"}
	return w.writeFile("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.Game),
			strconv.Itoa(r.Step),
			strconv.Itoa(r.Agent),
			strconv.Itoa(r.Column),
			strconv.FormatFloat(r.Score, 'g', -1, 64),
			strconv.FormatInt(r.Nodes, 10),
			strconv.FormatInt(r.Leaves, 10),
			strconv.FormatInt(r.Pruned, 10),
			strconv.FormatInt(r.SearchMetrics.Duration.Microseconds(), 10),
		})
	}
	header := []string{"game", "step", "agent", "column", "score",
		"nodes", "leaves", "pruned", "duration_us"}
	return w.writeFile("move_records.csv", header, rows)
}

func (w *Writer) writeFile(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write %s row: %w", name, err)
		}
	}
	return writer.Error()
}
