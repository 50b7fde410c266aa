// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"io"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/walteh/infrep/cmd/infrep/opts"
	"github.com/walteh/infrep/pkg/log"
	"github.com/walteh/infrep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// 🚦 exit codes
const (
	exitOK         = 0
	exitFailure    = 1
	exitValidation = 2
	exitMissing    = 3
	exitMove       = 4
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the cli and maps the outcome to an exit code
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	ro := &opts.RootOpts{
		In:     in,
		Out:    out,
		ErrOut: errOut,
	}

	rootCmd := newRootCmd(ro)
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	user := ro.UserLogger
	if user == nil {
		// flag parsing failed before the loggers were built
		user = log.NewUserLogger(zerolog.Nop().WithContext(ctx), errOut)
	}

	switch {
	case errors.Is(err, operation.ErrUserAbort):
		user.LogAbort(err.Error())
	default:
		user.LogValidation(false, "Command failed", err)
	}

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, operation.ErrUserAbort):
		return exitFailure
	case errors.Is(err, operation.ErrValidation):
		return exitValidation
	case errors.Is(err, operation.ErrMissingFile):
		return exitMissing
	case errors.Is(err, operation.ErrMoveCollision), errors.Is(err, operation.ErrMoveTargetInvalid):
		return exitMove
	default:
		return exitFailure
	}
}
