// Package cli implements the terminal interaction surface: a readline
// loop that turns typed input into commands for the session and prints
// the resulting scene as a colored tree, with the active node in blue.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"mindflow/src/pkg/model"
	"mindflow/src/pkg/session"
)

// CLI represents the command-line interface
type CLI struct {
	session   *session.Session
	rl        *readline.Instance
	stopCh    chan struct{}
	closeOnce sync.Once
}

// NewCLI creates a new CLI instance over the given session.
func NewCLI(sess *session.Session) (*CLI, error) {
	rl, err := readline.New("> ")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &CLI{
		session: sess,
		rl:      rl,
		stopCh:  make(chan struct{}),
	}, nil
}

// Stop requests the Run loop to terminate. Closing readline unblocks a
// pending Readline call, so the loop exits on its next iteration. Safe
// to call from another goroutine and more than once.
func (c *CLI) Stop() {
	c.closeOnce.Do(func() {
		close(c.stopCh)
		if c.rl != nil {
			c.rl.Close()
		}
	})
}

// Run starts the CLI and handles user input until exit or EOF.
func (c *CLI) Run() error {
	fmt.Println("Welcome to Mindflow!")
	fmt.Println("Type 'help' for a list of commands or 'exit' to quit.")
	c.printScene()

	for {
		line, err := c.rl.Readline()
		select {
		case <-c.stopCh:
			fmt.Println("Goodbye!")
			return nil
		default:
		}
		if err == readline.ErrInterrupt {
			break
		} else if err == io.EOF {
			break
		} else if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		args := ParseArgs(line)
		if args[0] == "help" {
			c.printHelp()
			continue
		}

		cmd, err := c.parseCommand(args)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		result, err := c.session.CommandRun(cmd)
		if errors.Is(err, session.ErrExit) {
			break
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			continue
		}

		if scene, ok := result.([]model.SceneNode); ok {
			c.printSceneNodes(scene)
			continue
		}
		c.printScene()
	}

	var closeErr error
	c.closeOnce.Do(func() {
		close(c.stopCh)
		closeErr = c.rl.Close()
	})
	if closeErr != nil {
		return fmt.Errorf("failed to close readline: %w", closeErr)
	}
	fmt.Println("Goodbye!")
	return nil
}

// ParseArgs splits input into arguments, honoring double quotes.
func ParseArgs(input string) []string {
	var args []string
	var currentArg strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if currentArg.Len() > 0 {
					args = append(args, currentArg.String())
					currentArg.Reset()
				}
			} else {
				currentArg.WriteRune(char)
			}
		default:
			currentArg.WriteRune(char)
		}
	}

	if currentArg.Len() > 0 {
		args = append(args, currentArg.String())
	}

	return args
}

// aliases maps single-word shortcuts to their scoped commands.
var aliases = map[string][2]string{
	"child":   {"node", "child"},
	"sibling": {"node", "sibling"},
	"del":     {"node", "delete"},
	"text":    {"node", "text"},
	"up":      {"node", "up"},
	"down":    {"node", "down"},
	"parent":  {"nav", "parent"},
	"first":   {"nav", "first"},
	"next":    {"nav", "next"},
	"prev":    {"nav", "prev"},
	"show":    {"map", "show"},
	"exit":    {"system", "exit"},
	"quit":    {"system", "quit"},
}

// parseCommand converts tokenized input into a model.Command. A leading
// alias expands to its scope and operation; otherwise the first two
// tokens are scope and operation.
func (c *CLI) parseCommand(args []string) (model.Command, error) {
	if alias, ok := aliases[args[0]]; ok {
		return model.Command{Scope: alias[0], Operation: alias[1], Args: args[1:]}, nil
	}
	if len(args) < 2 {
		return model.Command{}, fmt.Errorf("unknown command: %s", args[0])
	}
	return model.Command{Scope: args[0], Operation: args[1], Args: args[2:]}, nil
}

// printScene renders the current scene.
func (c *CLI) printScene() {
	c.printSceneNodes(c.session.Controller.RenderScene())
}

// printSceneNodes prints the scene as an indented tree. The active node
// is shown in bold blue; positions are appended for every node.
func (c *CLI) printSceneNodes(scene []model.SceneNode) {
	depths := make(map[int]int, len(scene))
	activeLabel := color.New(color.FgBlue, color.Bold)
	posLabel := color.New(color.Faint)

	for _, node := range scene {
		depth := 0
		if node.ParentID != 0 {
			depth = depths[node.ParentID] + 1
		}
		depths[node.ID] = depth

		indent := strings.Repeat("  ", depth)
		fmt.Print(indent)
		if node.Active {
			activeLabel.Printf("[%s]", node.Text)
		} else {
			fmt.Printf(" %s ", node.Text)
		}
		posLabel.Printf("  (%.0f, %.0f)\n", node.Pos.X, node.Pos.Y)
	}
}

// printHelp lists the available commands.
func (c *CLI) printHelp() {
	fmt.Println("Commands:")
	fmt.Println("  child                       add a child to the active node")
	fmt.Println("  sibling                     add a sibling after the active node")
	fmt.Println("  del                         delete the active node and its subtree")
	fmt.Println("  text [--id <node>] <text>   set node text")
	fmt.Println("  up | down                   reorder the active node among its siblings")
	fmt.Println("  parent | first | next | prev  move the active marker")
	fmt.Println("  show                        print the current scene")
	fmt.Println("  exit | quit                 leave the editor")
}
