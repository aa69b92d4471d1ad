package invoice

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Spooler sends rendered invoices to a local printer through the system
// print spooler.
type Spooler struct {
	// Command is the spooler binary, "lp" unless overridden.
	Command string
}

func NewSpooler() *Spooler {
	return &Spooler{Command: "lp"}
}

// Print writes the pdf to a temporary file and hands it to the spooler.
func (s *Spooler) Print(ctx context.Context, inv Invoice, pdf []byte) error {
	dir, err := os.MkdirTemp("", "outvoice")
	if err != nil {
		return fmt.Errorf("cannot create temporary print directory: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, inv.FileName())
	if err := os.WriteFile(path, pdf, 0o600); err != nil {
		return fmt.Errorf("cannot write invoice for printing: %w", err)
	}

	cmd := exec.CommandContext(ctx, s.Command, path)
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("cannot spool invoice to printer: %w: %s", err, output)
	}
	return nil
}
