package cli

import (
	"reflect"
	"testing"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"simple", "node child", []string{"node", "child"}},
		{"extra spaces", "node   child", []string{"node", "child"}},
		{"quoted", `text "hello world"`, []string{"text", "hello world"}},
		{"quoted mid-token", `text he"llo wor"ld`, []string{"text", "hello world"}},
		{"single word", "show", []string{"show"}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseArgs(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseArgs(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := &CLI{stopCh: make(chan struct{})}

	c.Stop()
	select {
	case <-c.stopCh:
	default:
		t.Fatal("Stop must close the stop channel")
	}

	// A concurrent interrupt and a normal loop exit may both stop.
	c.Stop()
}

func TestParseCommand(t *testing.T) {
	c := &CLI{}

	tests := []struct {
		name    string
		args    []string
		want    [3]string // scope, operation, first arg (or "")
		wantErr bool
	}{
		{"alias child", []string{"child"}, [3]string{"node", "child", ""}, false},
		{"alias del", []string{"del"}, [3]string{"node", "delete", ""}, false},
		{"alias text with args", []string{"text", "hello"}, [3]string{"node", "text", "hello"}, false},
		{"alias parent", []string{"parent"}, [3]string{"nav", "parent", ""}, false},
		{"alias show", []string{"show"}, [3]string{"map", "show", ""}, false},
		{"explicit scope", []string{"nav", "next"}, [3]string{"nav", "next", ""}, false},
		{"unknown single word", []string{"frobnicate"}, [3]string{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := c.parseCommand(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseCommand(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if cmd.Scope != tt.want[0] || cmd.Operation != tt.want[1] {
				t.Errorf("parseCommand(%v) = %s/%s, want %s/%s", tt.args, cmd.Scope, cmd.Operation, tt.want[0], tt.want[1])
			}
			if tt.want[2] != "" && (len(cmd.Args) == 0 || cmd.Args[0] != tt.want[2]) {
				t.Errorf("parseCommand(%v) args = %v, want first arg %q", tt.args, cmd.Args, tt.want[2])
			}
		})
	}
}
