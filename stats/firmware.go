package stats

import (
	"context"
	"regexp"
	"strconv"

	"github.com/srlehn/fbstat/internal/exc"
)

const NoMemorySplit = ` / `

// vcgencmd queries the video core firmware.
var vcgencmd = func(ctx context.Context, args ...string) (string, error) {
	return exc.Output(ctx, `vcgencmd`, args...)
}

var (
	vcArmRE = regexp.MustCompile(`arm=(\d+)M`)
	vcGPURE = regexp.MustCompile(`gpu=(\d+)M`)
)

// MemorySplit returns the gpu/arm memory split in MB as reported by the
// firmware, NoMemorySplit if unknown.
func (System) MemorySplit(ctx context.Context) string {
	arm := vcMem(ctx, `arm`, vcArmRE)
	gpu := vcMem(ctx, `gpu`, vcGPURE)
	return formatSplit(gpu, arm)
}

func vcMem(ctx context.Context, which string, re *regexp.Regexp) int {
	out, err := vcgencmd(ctx, `get_mem`, which)
	if err != nil {
		return 0
	}
	return parseVCMem(out, re)
}

func parseVCMem(out string, re *regexp.Regexp) int {
	m := re.FindStringSubmatch(out)
	if len(m) != 2 {
		return 0
	}
	v, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return v
}

func formatSplit(gpu, arm int) string {
	if gpu == 0 || arm == 0 {
		return NoMemorySplit
	}
	return strconv.Itoa(gpu) + `/` + strconv.Itoa(arm)
}
