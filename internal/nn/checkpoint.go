package nn

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"
)

// CheckpointFormatVersion is the current checkpoint file version.
const CheckpointFormatVersion = 1

// Checkpoint errors.
var (
	ErrChecksumMismatch   = errors.New("checksum mismatch: checkpoint may be corrupted")
	ErrUnsupportedVersion = errors.New("unsupported checkpoint format version")
	ErrMissingParameter   = errors.New("parameter missing from checkpoint")
	ErrUnknownParameter   = errors.New("checkpoint has parameter not present in model")
)

// Checkpoint is a snapshot of a model's parameters plus training metadata.
//
// Example:
//
//	ckpt := nn.NewCheckpoint(model, epoch, loss)
//	err := ckpt.Save("xor.json")
//
//	loaded, err := nn.LoadCheckpoint("xor.json", model)
type Checkpoint struct {
	FormatVersion int                `json:"format_version"`
	Epoch         int                `json:"epoch"`
	Loss          float64            `json:"loss"`
	CreatedAt     time.Time          `json:"created_at"`
	Params        map[string]float64 `json:"params"`
	Checksum      string             `json:"checksum"`
}

// NewCheckpoint captures the current parameter values of model.
func NewCheckpoint(model Module, epoch int, loss float64) *Checkpoint {
	params := make(map[string]float64)
	for _, p := range model.Parameters() {
		params[p.Name()] = p.Data()
	}

	return &Checkpoint{
		FormatVersion: CheckpointFormatVersion,
		Epoch:         epoch,
		Loss:          loss,
		CreatedAt:     time.Now().UTC(),
		Params:        params,
		Checksum:      paramsChecksum(params),
	}
}

// Write encodes the checkpoint as indented JSON.
func (c *Checkpoint) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to encode checkpoint: %w", err)
	}
	return nil
}

// Save writes the checkpoint to path, replacing any existing file.
func (c *Checkpoint) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create checkpoint: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	return c.Write(f)
}

// ReadCheckpoint decodes and verifies a checkpoint.
func ReadCheckpoint(r io.Reader) (*Checkpoint, error) {
	var c Checkpoint
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	if c.FormatVersion != CheckpointFormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.FormatVersion)
	}
	if paramsChecksum(c.Params) != c.Checksum {
		return nil, ErrChecksumMismatch
	}
	return &c, nil
}

// Apply copies the checkpoint's values into model.
//
// Every model parameter must be present and every checkpoint entry must
// name a model parameter. On error the model is left unchanged.
func (c *Checkpoint) Apply(model Module) error {
	params := model.Parameters()
	seen := make(map[string]bool, len(params))
	for _, p := range params {
		if _, ok := c.Params[p.Name()]; !ok {
			return fmt.Errorf("%w: %s", ErrMissingParameter, p.Name())
		}
		seen[p.Name()] = true
	}
	for name := range c.Params {
		if !seen[name] {
			return fmt.Errorf("%w: %s", ErrUnknownParameter, name)
		}
	}

	for _, p := range params {
		p.SetData(c.Params[p.Name()])
	}
	return nil
}

// LoadCheckpoint reads the checkpoint at path and applies it to model.
func LoadCheckpoint(path string, model Module) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open checkpoint: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := ReadCheckpoint(f)
	if err != nil {
		return nil, err
	}
	if err := c.Apply(model); err != nil {
		return nil, err
	}
	return c, nil
}

// paramsChecksum hashes parameters in name order using exact bit patterns.
func paramsChecksum(params map[string]float64) string {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	h := sha256.New()
	for _, name := range names {
		fmt.Fprintf(h, "%s=%016x\n", name, math.Float64bits(params[name]))
	}
	return hex.EncodeToString(h.Sum(nil))
}
