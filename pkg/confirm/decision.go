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
)

// 🎯 Decision is one answer to a match prompt
type Decision int

const (
	Yes         Decision = iota // accept this match
	No                          // reject this match
	YesFileRest                 // accept the rest of this file
	NoFileRest                  // reject the rest of this file
	YesAllRest                  // accept everything remaining in the run
	Quit                        // abort without writing anything
)

func (d Decision) String() string {
	switch d {
	case Yes:
		return "yes"
	case No:
		return "no"
	case YesFileRest:
		return "yes-file"
	case NoFileRest:
		return "no-file"
	case YesAllRest:
		return "yes-all"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// keys maps single keystrokes to decisions
var keys = map[byte]Decision{
	'y': Yes,
	'n': No,
	'Y': YesFileRest,
	'N': NoFileRest,
	'A': YesAllRest,
	'Q': Quit,
}

// ParseKey maps a keystroke to a decision
func ParseKey(b byte) (Decision, bool) {
	d, ok := keys[b]
	return d, ok
}

const Usage = "y: yes, n: no, Y: yes to rest of file, N: no to rest of file, A: yes to all remaining, Q: quit"

// Prompt is everything shown for one match
type Prompt struct {
	Filename string
	// FirstInFile is set the first time a match in Filename is shown in the run
	FirstInFile bool
	Line        int
	EndLine     int
	Before      string
	After       string
	// Diff is the rendered difference between Before and After
	Diff string
}

// Confirmer asks a human for decisions
type Confirmer interface {
	// PromptMatch blocks until a recognised decision is made
	PromptMatch(ctx context.Context, p Prompt) (Decision, error)
	// PromptFinal is the run-level gate before anything is written
	PromptFinal(ctx context.Context) (bool, error)
}
