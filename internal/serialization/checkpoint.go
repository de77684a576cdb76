package serialization

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// optimizerPrefix namespaces optimizer state inside the combined state
// dictionary of a checkpoint file.
const optimizerPrefix = "optimizer."

// Checkpoint is a complete training state snapshot: model parameters,
// optimizer state and training metadata.
//
// Checkpoints let interrupted training resume from a known point:
//
//	ckpt := &serialization.Checkpoint{
//	    Model:     model.StateDict(),
//	    Optimizer: optimizer.StateDict(),
//	    Epoch:     10,
//	    Loss:      0.123,
//	}
//	err := ckpt.Save("checkpoint_epoch_10.dlpd")
//
// and later:
//
//	ckpt, err := serialization.LoadCheckpoint("checkpoint_epoch_10.dlpd")
//	startEpoch := ckpt.Epoch + 1
type Checkpoint struct {
	Model         StateDict
	Optimizer     StateDict
	OptimizerType string         // optimizer identifier ("SGD", "Adam", ...)
	Epoch         int            // training epoch number
	Step          int64          // training step number
	Loss          float64        // loss value at this checkpoint
	Metadata      map[string]any // additional training metadata
	ID            string         // unique checkpoint ID, assigned on save if empty
	CreatedAt     time.Time      // when the checkpoint was created
}

// Save writes the checkpoint to a .dlpd file. Model and optimizer
// state are combined into one state dictionary, with optimizer keys
// prefixed.
func (c *Checkpoint) Save(path string) error {
	combined := make(StateDict, len(c.Model)+len(c.Optimizer))
	for name, a := range c.Model {
		if strings.HasPrefix(name, optimizerPrefix) {
			return fmt.Errorf("model parameter %q collides with the optimizer namespace", name)
		}
		combined[name] = a
	}
	for name, a := range c.Optimizer {
		combined[optimizerPrefix+name] = a
	}

	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	header := Header{
		Kind:      "Checkpoint",
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		CheckpointMeta: &CheckpointMeta{
			IsCheckpoint:  true,
			Epoch:         c.Epoch,
			Step:          c.Step,
			Loss:          c.Loss,
			OptimizerType: c.OptimizerType,
			TrainingMeta:  c.Metadata,
		},
	}

	if err := NewWriter(path).WriteStateDict(combined, header); err != nil {
		return fmt.Errorf("failed to write checkpoint: %w", err)
	}
	return nil
}

// LoadCheckpoint reads a checkpoint from a .dlpd file, splitting the
// prefixed optimizer state back out of the combined state dictionary.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint: %w", err)
	}
	defer r.Close()

	header := r.Header()
	if header.CheckpointMeta == nil || !header.CheckpointMeta.IsCheckpoint {
		return nil, ErrNotCheckpoint
	}

	combined, err := r.ReadStateDict()
	if err != nil {
		return nil, fmt.Errorf("failed to read state dict: %w", err)
	}

	ckpt := &Checkpoint{
		Model:         make(StateDict),
		Optimizer:     make(StateDict),
		OptimizerType: header.CheckpointMeta.OptimizerType,
		Epoch:         header.CheckpointMeta.Epoch,
		Step:          header.CheckpointMeta.Step,
		Loss:          header.CheckpointMeta.Loss,
		Metadata:      header.CheckpointMeta.TrainingMeta,
		ID:            header.ID,
		CreatedAt:     header.CreatedAt,
	}

	for name, a := range combined {
		if rest, ok := strings.CutPrefix(name, optimizerPrefix); ok {
			ckpt.Optimizer[rest] = a
		} else {
			ckpt.Model[name] = a
		}
	}
	return ckpt, nil
}

// SaveStateDict is a convenience wrapper for writing a bare state
// dictionary (no optimizer state, no training metadata).
func SaveStateDict(path string, sd StateDict, metadata map[string]string) error {
	header := Header{Kind: "StateDict", Metadata: metadata}
	return NewWriter(path).WriteStateDict(sd, header)
}

// LoadStateDict is a convenience wrapper for reading every array of a
// .dlpd file.
func LoadStateDict(path string) (StateDict, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return r.ReadStateDict()
}
