package candidate

import "strings"

// BackupMarker is the suffix editors append to backup copies.
const BackupMarker = "~"

// Matcher decides from a bare file name whether the file is to be removed.
type Matcher func(name string) bool

// HasBackupSuffix matches names ending with BackupMarker.
func HasBackupSuffix(name string) bool {
	return strings.HasSuffix(name, BackupMarker)
}
