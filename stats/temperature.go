package stats

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/srlehn/fbstat/internal/errors"
)

// preferred sensor keys, soc sensors of common single board computers
var thermalSensors = []string{`cpu_thermal`, `cpu-thermal`, `soc_thermal`, `coretemp_package_id_0`}

// Temperature returns the SoC temperature in °C.
func (System) Temperature(ctx context.Context) (float64, error) {
	// gopsutil returns partial results together with warnings
	temps, errSensors := host.SensorsTemperaturesWithContext(ctx)
	if t, ok := pickTemperature(temps); ok {
		return t, nil
	}
	out, errVC := vcgencmd(ctx, `measure_temp`)
	if errVC == nil {
		t, err := parseVCTemp(out)
		if err == nil {
			return t, nil
		}
		errVC = err
	}
	return 0, errors.Join(errSensors, errVC)
}

func pickTemperature(temps []host.TemperatureStat) (float64, bool) {
	for _, key := range thermalSensors {
		for _, t := range temps {
			if strings.HasPrefix(t.SensorKey, key) && t.Temperature > 0 {
				return t.Temperature, true
			}
		}
	}
	for _, t := range temps {
		if t.Temperature > 0 {
			return t.Temperature, true
		}
	}
	return 0, false
}

var vcTempRE = regexp.MustCompile(`temp=([0-9.]+)'C`)

func parseVCTemp(out string) (float64, error) {
	m := vcTempRE.FindStringSubmatch(out)
	if len(m) != 2 {
		return 0, errors.Errorf(`unexpected vcgencmd reply %q`, strings.TrimSpace(out))
	}
	t, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, errors.New(err)
	}
	return t, nil
}
