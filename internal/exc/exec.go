// Package exc locates and runs helper executables from fixed system
// directories only, never from $PATH.
package exc

import (
	"context"
	"os"
	"os/exec"
	"sync"

	"github.com/srlehn/fbstat/internal/errors"
)

var systemDirs = []string{
	`/usr/bin/`,
	`/bin/`,
	// raspberry pi firmware tools
	`/opt/vc/bin/`,
	`/usr/local/bin/`,
	`/usr/sbin/`,
	`/sbin/`,
}

var (
	// key: rel. path, value: abs. path
	exePaths   = make(map[string]string)
	exePathsMu sync.Mutex
)

func LookSystemDirs(exe string) (string, error) {
	if len(exe) == 0 {
		return ``, errors.New(`empty executable name`)
	}
	exePathsMu.Lock()
	defer exePathsMu.Unlock()
	if exeAbs, ok := exePaths[exe]; ok && len(exeAbs) > 0 && exeAbs[0] == '/' {
		return exeAbs, nil
	}
	for _, systemDir := range systemDirs {
		exeAbs := systemDir + exe
		fi, err := os.Stat(exeAbs)
		if err != nil || fi == nil || fi.IsDir() {
			continue
		}
		// check if executable for others
		if fi.Mode()&0b001 == 0b001 {
			exePaths[exe] = exeAbs
			return exeAbs, nil
		}
	}
	return ``, errors.Errorf(`executable %q not found in system directories`, exe)
}

// Output runs exe found by LookSystemDirs and returns its stdout.
func Output(ctx context.Context, exe string, args ...string) (string, error) {
	exeAbs, err := LookSystemDirs(exe)
	if err != nil {
		return ``, err
	}
	out, err := exec.CommandContext(ctx, exeAbs, args...).Output()
	if err != nil {
		return ``, errors.WrapPrefix(err, exe, 0)
	}
	return string(out), nil
}
