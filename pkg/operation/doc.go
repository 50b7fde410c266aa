/*
Package operation implements the interactive find and replace engine and the reference-updating move.

	+-----------------+
	| ReplaceOperation|
	|   (validate)    |
	+--------+--------+
	         |
	+--------+--------+
	|      Stage      |
	| (match, decide) |
	+--------+--------+
	         |
	+--------+--------+
	|  Final gate +   |
	|     Commit      |
	+-----------------+

🎯 Purpose:
- Applies an ordered list of text.ChangeSpec values to their files
- Asks a confirm.Confirmer about every match the current decision scope leaves open
- Writes nothing until every change is staged and the final gate passes

🔄 Flow:
1. Every change is validated and resolved (patterns, replacers, duplicate files)
2. Every listed file is checked; all missing files are reported together
3. Each (change, file) pair walks its staging.Buffer from the leftmost live match
4. No-op matches are neutralized without a prompt
5. The final gate runs when something was accepted or when asked for
6. Files whose rendered content differs from the original are written atomically

🚚 Move:
MoveOperation resolves its arguments against the logical working directory, rejects
collisions and invalid targets, rewrites references with a literal change per pair (plus
a home-relative one) and moves paths only after the replace run committed.

⚠️ Errors:
Every failure wraps one of ErrValidation, ErrMissingFile, ErrUserAbort, ErrMoveCollision
or ErrMoveTargetInvalid. A cancelled context is reported as ErrUserAbort.

🔍 Example:

	op, err := operation.NewReplaceOperation(operation.Options{
		Files:     status.New(nil),
		Confirmer: confirm.NewTerminalConfirmer(os.Stdin, os.Stdout),
	}, text.ChangeSpec{Input: "old", Output: "new", Files: files})

	err = operation.NewRunner(&logger).Run(ctx, op)
*/
package operation
