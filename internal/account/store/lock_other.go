//go:build !unix

package store

import "os"

// lockFile is a no-op on platforms without flock. Writes stay atomic through
// writeFileAtomic, only the read-modify-write window is unguarded.
func lockFile(_ *os.File) error { return nil }

func unlockFile(_ *os.File) error { return nil }
