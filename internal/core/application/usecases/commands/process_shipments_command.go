package commands

import (
	"errors"

	"shipconfirm/internal/core/domain/model/kernel"
	"shipconfirm/internal/pkg/guard"
)

var (
	ErrProcessShipmentsCommandIsNotConstructed = errors.New(
		"ProcessShipmentsCommand must be created via NewProcessShipmentsCommand constructor",
	)
)

// ProcessShipmentsCommand requests one shipment confirmation run.
//
// Example:
//
//	cmd, err := NewProcessShipmentsCommand(kernel.NewRunID())
//	if err != nil {
//	    return fmt.Errorf("invalid run: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("run %s aborted: %w", cmd.RunID().Short(), err)
//	}
//	fmt.Printf("%d of %d orders confirmed\n", result.Statistics.Succeeded(), result.Statistics.Processed())
type ProcessShipmentsCommand struct { //nolint:recvcheck //using for validation
	runID kernel.RunID

	guard guard.ConstructorGuard
}

// NewProcessShipmentsCommand creates a run command identified by runID.
func NewProcessShipmentsCommand(runID kernel.RunID) (ProcessShipmentsCommand, error) {
	cmd := ProcessShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRunID(runID); err != nil {
		return ProcessShipmentsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessShipmentsCommandIsNotConstructed if validation fails.
func (c ProcessShipmentsCommand) Validate() error {
	return c.guard.Validate(ErrProcessShipmentsCommandIsNotConstructed)
}

// RunID returns the correlation id of the run.
func (c ProcessShipmentsCommand) RunID() kernel.RunID {
	return c.runID
}

func (c *ProcessShipmentsCommand) setRunID(runID kernel.RunID) error {
	if err := runID.Validate(); err != nil {
		return err
	}

	c.runID = runID
	return nil
}
