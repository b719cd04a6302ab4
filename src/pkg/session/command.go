package session

import (
	"context"
	"errors"
	"fmt"

	"mindflow/src/pkg/log"
	"mindflow/src/pkg/model"
)

// Command wraps a model.Command and adds validation.
type Command struct {
	command model.Command
	logger  *log.Logger
}

// NewCommand creates a new Command from a model.Command
func NewCommand(cmd model.Command, logger *log.Logger) Command {
	return Command{command: cmd, logger: logger}
}

// Validate checks if the command is valid
func (c *Command) Validate() error {
	ctx := context.Background()

	if c.command.Scope == "" {
		c.logger.Error(ctx, "Command scope is empty", nil)
		return errors.New("command scope is required")
	}
	if c.command.Operation == "" {
		c.logger.Error(ctx, "Command operation is empty", nil)
		return errors.New("command operation is required")
	}
	return c.validateScopeAndOperation()
}

// validateScopeAndOperation checks if the scope and operation are valid
func (c *Command) validateScopeAndOperation() error {
	ctx := context.Background()

	switch c.command.Scope {
	case "node":
		return c.validateNodeCommand()
	case "nav":
		return c.validateNavCommand()
	case "map":
		return c.validateMapCommand()
	case "system":
		return c.validateSystemCommand()
	default:
		c.logger.Error(ctx, "Invalid command scope", log.Fields{"scope": c.command.Scope})
		return fmt.Errorf("invalid command scope: %s", c.command.Scope)
	}
}

func (c *Command) validateNodeCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "child", "sibling", "delete", "up", "down":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for node command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("node %s command does not accept any arguments", c.command.Operation)
		}
	case "text":
		if len(c.command.Args) < 1 {
			c.logger.Error(ctx, "Invalid number of arguments for node text command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("node text command requires at least 1 argument: [--id <node_id>] <text>...")
		}
	default:
		c.logger.Error(ctx, "Invalid node operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid node operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateNavCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "parent", "first", "next", "prev":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for nav command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("nav %s command does not accept any arguments", c.command.Operation)
		}
	default:
		c.logger.Error(ctx, "Invalid nav operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid nav operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateMapCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "show":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for map show command", log.Fields{"argCount": len(c.command.Args)})
			return errors.New("map show command does not accept any arguments")
		}
	default:
		c.logger.Error(ctx, "Invalid map operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid map operation: %s", c.command.Operation)
	}
	return nil
}

func (c *Command) validateSystemCommand() error {
	ctx := context.Background()

	switch c.command.Operation {
	case "exit", "quit":
		if len(c.command.Args) != 0 {
			c.logger.Error(ctx, "Invalid number of arguments for system command", log.Fields{"operation": c.command.Operation, "argCount": len(c.command.Args)})
			return fmt.Errorf("system %s command does not accept any arguments", c.command.Operation)
		}
	default:
		c.logger.Error(ctx, "Invalid system operation", log.Fields{"operation": c.command.Operation})
		return fmt.Errorf("invalid system operation: %s", c.command.Operation)
	}
	return nil
}
