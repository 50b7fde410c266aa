/*
Package status manages file storage and status tracking for infrep.

	            +-------------+
	            |   Status    |
	            |  (Storage)  |
	            +------+------+
	                   |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +----+----+
	|   Files   |           | Summary |
	| (Storage) |           | (UI/UX) |
	+-----------+           +---------+

🎯 Purpose:
- Reads and writes files byte for byte
- Replaces files atomically through a temp file in the same directory
- Moves files, falling back to copy + remove across devices
- Tracks what happened to each touched file for the run summary

🔄 Flow:
1. The engine reads every listed file before any prompt is shown
2. Commit hands rendered content to WriteFileAtomic
3. Each touched file is tracked with its FileStatus
4. The CLI prints the tracked files with FormatLine

🤝 Interfaces:
- FileManager: file operations
- StatusReporter: status tracking
- FileFormatter: status messages

🔍 Example:

	mgr := status.New(nil)

	content, err := mgr.ReadFile(ctx, path)

	err = mgr.WriteFileAtomic(ctx, path, updated)

	mgr.TrackFile(ctx, status.FileInfo{Path: path, Status: status.StatusModified, Replacements: 2})

	for _, info := range mgr.ListFiles(ctx) {
		fmt.Println(status.FormatLine(info))
	}
*/
package status
