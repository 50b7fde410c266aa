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

package operation

import (
	"gitlab.com/tozd/go/errors"
)

var (
	// ErrValidation is raised before any file is read
	ErrValidation = errors.Base("validation failed")
	// ErrMissingFile is raised when a listed file does not exist
	ErrMissingFile = errors.Base("missing file")
	// ErrUserAbort means the run was stopped on purpose and nothing was written
	ErrUserAbort = errors.Base("aborted by user")
	// ErrMoveCollision means a move would overwrite an existing path
	ErrMoveCollision = errors.Base("move collision")
	// ErrMoveTargetInvalid means the move arguments do not describe a valid move
	ErrMoveTargetInvalid = errors.Base("invalid move target")
)
