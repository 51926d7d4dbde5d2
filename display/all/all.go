// Package all registers every display implementation.
package all

import (
	_ "github.com/srlehn/fbstat/display/framebuffer"
	_ "github.com/srlehn/fbstat/display/snapshot"
	_ "github.com/srlehn/fbstat/display/tcellview"
)
