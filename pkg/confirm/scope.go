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

package confirm

import (
	"context"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// FileDecision is the sticky decision for one file within one change
type FileDecision int

const (
	Undecided FileDecision = iota
	AcceptAll
	RejectAll
)

func (f FileDecision) String() string {
	switch f {
	case AcceptAll:
		return "accept-all"
	case RejectAll:
		return "reject-all"
	default:
		return "undecided"
	}
}

// Scope is the decision state in effect for one match
type Scope struct {
	// AcceptAllRemaining lasts for the rest of the run
	AcceptAllRemaining bool
	// File lasts for the current (file, change) pair
	File FileDecision
}

// ForFile returns the scope to start a new (file, change) pair with
func (s Scope) ForFile() Scope {
	return Scope{AcceptAllRemaining: s.AcceptAllRemaining}
}

// Outcome is what the machine concluded for one match
type Outcome struct {
	Accept   bool
	Prompted bool
	Abort    bool
}

var errUnknownDecision = errors.Base("unknown decision")

// Machine walks matches one at a time and asks only when the scope leaves the answer open
type Machine struct {
	confirmer Confirmer
	scope     Scope
	accepted  int
	shown     map[string]bool
}

func NewMachine(c Confirmer) *Machine {
	return &Machine{confirmer: c, shown: map[string]bool{}}
}

// Scope returns the scope currently in effect
func (m *Machine) Scope() Scope {
	return m.scope
}

// BeginFile resets the file scope for a new (file, change) pair
func (m *Machine) BeginFile() {
	m.scope = m.scope.ForFile()
}

// Accepted counts accepted matches across the run
func (m *Machine) Accepted() int {
	return m.accepted
}

// Decide resolves one non-trivial match. The prompt is built lazily so that auto-decided
// matches never pay for a diff.
func (m *Machine) Decide(ctx context.Context, build func() Prompt) (Outcome, error) {
	switch {
	case m.scope.AcceptAllRemaining, m.scope.File == AcceptAll:
		m.accepted++
		return Outcome{Accept: true}, nil
	case m.scope.File == RejectAll:
		return Outcome{}, nil
	}

	p := build()
	p.FirstInFile = !m.shown[p.Filename]
	m.shown[p.Filename] = true

	d, err := m.confirmer.PromptMatch(ctx, p)
	if err != nil {
		return Outcome{}, errors.Errorf("prompting for %s: %w", p.Filename, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("file", p.Filename).
		Int("line", p.Line).
		Stringer("decision", d).
		Msg("match decided")

	out := Outcome{Prompted: true}
	switch d {
	case Yes:
		out.Accept = true
	case No:
	case YesFileRest:
		m.scope.File = AcceptAll
		out.Accept = true
	case NoFileRest:
		m.scope.File = RejectAll
	case YesAllRest:
		m.scope.AcceptAllRemaining = true
		out.Accept = true
	case Quit:
		out.Abort = true
		return out, nil
	default:
		return Outcome{}, errors.Errorf("%w: %d", errUnknownDecision, d)
	}

	if out.Accept {
		m.accepted++
	}
	return out, nil
}

// Final runs the run-level gate. It is skipped when nothing was accepted unless always is set.
func (m *Machine) Final(ctx context.Context, always bool) (bool, error) {
	if m.accepted == 0 && !always {
		return true, nil
	}
	ok, err := m.confirmer.PromptFinal(ctx)
	if err != nil {
		return false, errors.Errorf("final confirmation: %w", err)
	}
	return ok, nil
}
