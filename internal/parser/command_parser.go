package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Kind identifies which tracker operation a command line maps to
type Kind int

const (
	KindStart Kind = iota + 1
	KindStop
	KindAdd
	KindDelete
	KindDeleteAll
	KindExport
)

// String returns the command keyword for the kind
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindStop:
		return "stop"
	case KindAdd:
		return "add"
	case KindDelete:
		return "delete"
	case KindDeleteAll:
		return "delete all"
	case KindExport:
		return "export"
	default:
		return "unknown"
	}
}

var (
	// ErrUnknownCommand is returned for lines that start with no known keyword
	ErrUnknownCommand = errors.New("unknown command")
	// ErrMalformed is wrapped by every SyntaxError
	ErrMalformed = errors.New("malformed command")
)

// SyntaxError describes a recognized command with unusable arguments
type SyntaxError struct {
	Keyword string
	Reason  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Keyword, e.Reason)
}

func (e *SyntaxError) Unwrap() error {
	return ErrMalformed
}

// Command is a parsed command line
type Command struct {
	Kind   Kind
	Name   string
	Sector string

	// Unix milliseconds, set for KindAdd
	Begin int64
	End   int64

	// Set for KindDelete
	IDs []string
}

// ParseCommand turns one line of free text into a Command
// Grammar:
//
//	start <name>[, <sector>]
//	stop
//	add <name>, <sector>, <begin>, <end>
//	delete all
//	delete <id>[, <id>...]
//	export
func ParseCommand(input string) (Command, error) {
	keyword, rest := splitKeyword(strings.TrimSpace(input))

	switch strings.ToLower(keyword) {
	case "start":
		return parseStart(rest)
	case "stop":
		return Command{Kind: KindStop}, nil
	case "add":
		return parseAdd(rest)
	case "delete":
		return parseDelete(rest)
	case "export":
		return Command{Kind: KindExport}, nil
	case "":
		return Command{}, ErrUnknownCommand
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, keyword)
	}
}

// splitKeyword separates the first word from the remainder of the line
func splitKeyword(input string) (string, string) {
	idx := strings.IndexFunc(input, unicode.IsSpace)
	if idx < 0 {
		return input, ""
	}
	return input[:idx], strings.TrimSpace(input[idx:])
}

// splitFields splits comma-separated arguments and trims each one
func splitFields(rest string) []string {
	if rest == "" {
		return nil
	}
	fields := strings.Split(rest, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields
}

func parseStart(rest string) (Command, error) {
	fields := splitFields(rest)
	if len(fields) == 0 || fields[0] == "" {
		return Command{}, &SyntaxError{Keyword: "start", Reason: "missing task name"}
	}
	if len(fields) > 2 {
		return Command{}, &SyntaxError{Keyword: "start", Reason: "expected <name>, <sector>"}
	}

	cmd := Command{Kind: KindStart, Name: fields[0]}
	if len(fields) == 2 {
		cmd.Sector = fields[1]
	}
	return cmd, nil
}

func parseAdd(rest string) (Command, error) {
	fields := splitFields(rest)
	if len(fields) != 4 {
		return Command{}, &SyntaxError{Keyword: "add", Reason: "expected <name>, <sector>, <begin>, <end>"}
	}
	if fields[0] == "" {
		return Command{}, &SyntaxError{Keyword: "add", Reason: "missing task name"}
	}

	begin, err := ParseTimestamp(fields[2])
	if err != nil {
		return Command{}, &SyntaxError{Keyword: "add", Reason: "begin: " + err.Error()}
	}
	end, err := ParseTimestamp(fields[3])
	if err != nil {
		return Command{}, &SyntaxError{Keyword: "add", Reason: "end: " + err.Error()}
	}
	if end < begin {
		return Command{}, &SyntaxError{Keyword: "add", Reason: "end is before begin"}
	}

	return Command{
		Kind:   KindAdd,
		Name:   fields[0],
		Sector: fields[1],
		Begin:  begin,
		End:    end,
	}, nil
}

// parseDelete checks for "delete all" before treating the rest as an id list
func parseDelete(rest string) (Command, error) {
	if strings.EqualFold(rest, "all") {
		return Command{Kind: KindDeleteAll}, nil
	}

	var ids []string
	for _, id := range splitFields(rest) {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return Command{}, &SyntaxError{Keyword: "delete", Reason: "missing record id"}
	}

	return Command{Kind: KindDelete, IDs: ids}, nil
}
