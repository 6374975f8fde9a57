package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

type GameRecord struct {
	ID     int
	Agent1 int // AgentConfig.ID, plays Black
	Agent2 int // AgentConfig.ID, plays White
	GameMetric
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
}

// NewWriter creates a fresh timestamped directory for one experiment run
// under root/name. Runs started within the same timestamp get a numeric suffix.
func NewWriter(root, name string) (*Writer, error) {
	parent := filepath.Join(root, name)
	err := os.MkdirAll(parent, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create directory")
	}

	timestamp := time.Now().UTC().Format("20060102T150405.000Z")
	baseDir := filepath.Join(parent, timestamp)
	for i := 1; ; i++ {
		err = os.Mkdir(baseDir, 0755)
		if err == nil {
			break
		}
		if !os.IsExist(err) {
			return nil, errors.Wrap(err, "failed to create directory")
		}
		baseDir = filepath.Join(parent, fmt.Sprintf("%s-%d", timestamp, i))
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteAgentConfigs(configs []AgentConfig) error {
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			strconv.Itoa(config.Depth),
			strconv.FormatFloat(config.TieBreak, 'f', -1, 64),
			strconv.FormatBool(config.Local),
			strconv.FormatBool(config.Area),
			strconv.FormatBool(config.NoPruning),
		})
	}
	return w.write("agent_configs.csv", []string{"id", "depth", "tie_break", "local", "area", "no_pruning"}, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Agent1),
			strconv.Itoa(record.Agent2),
			record.Result.String(),
			strconv.FormatFloat(record.Score, 'f', -1, 64),
			strconv.FormatFloat(record.AreaScore, 'f', -1, 64),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
		})
	}
	header := []string{"id", "agent1", "agent2", "result", "score", "area_score", "start_time", "end_time", "duration", "total_moves"}
	return w.write("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step),
			record.Player.String(),
			strconv.Itoa(int(record.Move)),
			strconv.Itoa(record.Depth),
			record.Duration.String(),
			strconv.Itoa(record.Nodes),
			strconv.Itoa(record.Cutoffs),
			strconv.FormatFloat(record.Value, 'f', -1, 64),
		})
	}
	header := []string{"game", "step", "player", "move", "depth", "duration", "nodes", "cutoffs", "value"}
	return w.write("move_records.csv", header, rows)
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", name)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrapf(closeErr, "failed to close %s", name)
		}
	}()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s header", name)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return errors.Wrapf(err, "failed to write %s rows", name)
	}
	return nil
}
