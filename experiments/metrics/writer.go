package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// AgentConfig describes one agent taking part in an experiment.
type AgentConfig struct {
	ID       int
	Kind     string // search or random
	Mode     string
	Strategy string
	Cutoff   int
	Pruning  bool
	Seed     uint64
}

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID of the primary agent
	Agent2 int // AgentConfig.ID of the secondary agent
	Reason string
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	runID   string
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp>-<run id> to hold the
// experiment files.
func NewWriter(root, name string) (*Writer, error) {
	// Create a subfolder named by current timestamp
	runID := uuid.NewString()
	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(root, name, timestamp+"-"+runID[:8])
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		runID:   runID,
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

// RunID identifies the experiment run. Every game record carries it.
func (w *Writer) RunID() string {
	return w.runID
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	header := []string{"id", "kind", "mode", "strategy", "cutoff", "pruning", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			config.Mode,
			config.Strategy,
			strconv.Itoa(config.Cutoff),
			strconv.FormatBool(config.Pruning),
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.write("agent_configs.csv", "agent config", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "agent1", "agent2", "starting_player", "reason", "saved1", "saved2", "total_saved",
		"elapsed", "start_time", "end_time", "duration", "total_moves", "run_id"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			strconv.Itoa(record.StartingPlayer),
			record.Reason,
			strconv.Itoa(record.Saved[0]),
			strconv.Itoa(record.Saved[1]),
			strconv.Itoa(record.TotalSaved),
			strconv.FormatFloat(record.Elapsed, 'g', -1, 64),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			w.runID,
		})
	}
	return w.write("game_records.csv", "game record", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "player", "action", "value", "mode", "strategy", "cutoff", "duration",
		"expanded", "evaluated", "pruned", "is_tree_reset"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			strconv.Itoa(record.Player),
			record.Action,
			strconv.FormatFloat(record.Value, 'g', -1, 64),
			record.Mode,
			record.Strategy,
			strconv.Itoa(record.Cutoff),
			record.Duration.String(),
			strconv.Itoa(record.Expanded),
			strconv.Itoa(record.Evaluated),
			strconv.Itoa(record.Pruned),
			strconv.FormatBool(record.IsTreeReset),
		})
	}
	return w.write("move_records.csv", "move record", header, rows)
}

func (w *Writer) write(file, what string, header []string, rows [][]string) error {
	path := filepath.Join(w.baseDir, file)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s file: %w", what, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", what, err)
	}
	for _, row := range rows {
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write %s row: %w", what, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush %s file: %w", what, err)
	}
	return nil
}
