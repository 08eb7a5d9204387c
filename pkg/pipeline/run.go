package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aiseeq/cmdsh/pkg/bind"
	"github.com/aiseeq/cmdsh/pkg/cmderr"
	"github.com/aiseeq/cmdsh/pkg/stdio"
)

// Run dispatches each of stages' stages in sequence, piping one stage's
// stdout into the next stage's stdin through an in-memory buffer, and
// applying the endpoint file redirections. Because every stage receives
// its own explicit stdio.StdIO rather than a swapped-in global, there is
// nothing to revert on any exit path — a panic escaping a stage is still
// recovered here as a backstop and reported as KindUnhandled.
func Run(ctx context.Context, interp bind.Interpreter, streams stdio.StdIO, stages Stages) (code int) {
	in := streams.In
	out := streams.Out

	if stages.StdinPath != "" {
		f, err := os.Open(stages.StdinPath)
		if err != nil {
			fmt.Fprintln(streams.Err, err.Error())
			return cmderr.KindApplicationError.ExitCode()
		}
		defer f.Close()
		in = f
	}

	var outFile *os.File
	if stages.StdoutPath != "" {
		f, err := os.Create(stages.StdoutPath)
		if err != nil {
			fmt.Fprintln(streams.Err, err.Error())
			return cmderr.KindApplicationError.ExitCode()
		}
		defer f.Close()
		outFile = f
	}

	defer func() {
		if r := recover(); r != nil {
			code = cmderr.KindUnhandled.ExitCode()
			fmt.Fprintf(streams.Err, "%v\n", r)
		}
	}()

	stageIn := in
	for i, stage := range stages.Tokens {
		last := i == len(stages.Tokens)-1

		var stageOut = out
		var buf *bytes.Buffer
		switch {
		case last && outFile != nil:
			stageOut = outFile
		case !last:
			buf = &bytes.Buffer{}
			stageOut = buf
		}

		stageIO := stdio.StdIO{In: stageIn, Out: stageOut, Err: streams.Err}
		code = interp.Dispatch(ctx, stageIO, stage)
		if code != 0 {
			return code
		}

		if buf != nil {
			stageIn = buf
		}
	}

	return 0
}
