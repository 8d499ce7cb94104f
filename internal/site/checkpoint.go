package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// checkpointFile is the resume marker written into the output root.
const checkpointFile = "generator_checkpoint.json"

// Checkpoint records how far a run got. LastIndex is the highest article id
// fully emitted in every language; resuming starts at LastIndex+1.
type Checkpoint struct {
	RunID     string `json:"run_id"`
	LastIndex int    `json:"last_index"`
}

// NewCheckpoint starts a fresh checkpoint with a unique run id.
func NewCheckpoint() *Checkpoint {
	return &Checkpoint{RunID: uuid.NewString()}
}

// LoadCheckpoint reads the checkpoint from the output root. A missing file
// yields a fresh checkpoint, not an error.
func LoadCheckpoint(root string) (*Checkpoint, error) {
	data, err := os.ReadFile(filepath.Join(root, checkpointFile))
	if os.IsNotExist(err) {
		return NewCheckpoint(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read checkpoint: %w", err)
	}
	var cp Checkpoint
	if err := json.Unmarshal(data, &cp); err != nil {
		return nil, fmt.Errorf("parse checkpoint: %w", err)
	}
	if cp.RunID == "" {
		cp.RunID = uuid.NewString()
	}
	return &cp, nil
}

// Save writes the checkpoint into the output root.
func (cp *Checkpoint) Save(root string) error {
	data, err := json.Marshal(cp)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(root, checkpointFile), data, 0644)
}
