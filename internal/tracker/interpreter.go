package tracker

import (
	"github.com/balkashynov/quant/internal/export"
	"github.com/balkashynov/quant/internal/models"
	"github.com/balkashynov/quant/internal/parser"
)

// Result reports what a command line did
type Result struct {
	Kind     parser.Kind
	Record   models.Record   // start, stop, add
	Removed  int             // delete, delete all
	Artifact export.Artifact // export
	Location string          // where the export was delivered
}

// Listen parses one line of input and applies it to the log.
// Unknown or malformed lines change nothing and return the parse error.
func (t *Tracker) Listen(line string) (Result, error) {
	cmd, err := parser.ParseCommand(line)
	if err != nil {
		t.logger.Debug("command rejected", "input", line, "error", err)
		return Result{}, err
	}
	return t.Apply(cmd)
}

// Apply runs an already parsed command
func (t *Tracker) Apply(cmd parser.Command) (Result, error) {
	res := Result{Kind: cmd.Kind}

	var err error
	switch cmd.Kind {
	case parser.KindStart:
		res.Record, err = t.Start(cmd.Name, cmd.Sector)
	case parser.KindStop:
		res.Record, err = t.Stop()
	case parser.KindAdd:
		res.Record, err = t.AddTask(cmd.Name, cmd.Sector, cmd.Begin, cmd.End)
	case parser.KindDelete:
		res.Removed, err = t.Delete(cmd.IDs...)
	case parser.KindDeleteAll:
		res.Removed, err = t.DeleteAll()
	case parser.KindExport:
		res.Artifact, err = t.Export()
		if err == nil {
			res.Location, err = t.deliver(res.Artifact)
		}
	default:
		err = parser.ErrUnknownCommand
	}

	return res, err
}

// deliver hands an export artifact to the configured sink
func (t *Tracker) deliver(a export.Artifact) (string, error) {
	if t.sink == nil {
		return "", ErrNoSink
	}

	location, err := t.sink.Deliver(a)
	if err != nil {
		return "", err
	}

	t.logger.Info("log exported", "file", a.Filename, "location", location, "bytes", len(a.Data))
	return location, nil
}
