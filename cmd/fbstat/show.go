package main

import (
	"context"
	"image"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/srlehn/fbstat"
	"github.com/srlehn/fbstat/display"
	_ "github.com/srlehn/fbstat/display/all"
	"github.com/srlehn/fbstat/glyph"
)

var (
	displayFlag     string
	deviceFlag      string
	intervalFlag    time.Duration
	traceHeightFlag int
	gridHeightFlag  int
	widthFlag       int
	heightFlag      int
	fontFlag        string
	fontSizeFlag    float64
	outputFlag      string
	scaleFlag       int
	onceFlag        bool
	panelsFlag      []string
	fsPathFlag      string
)

func init() {
	fl := rootCmd.PersistentFlags()
	fl.StringVarP(&displayFlag, `display`, `D`, fbstat.DefaultDisplay, `display to draw on, see "list-displays"`)
	fl.StringVar(&deviceFlag, `device`, ``, `framebuffer device (default $FRAMEBUFFER or /dev/fb0)`)
	fl.DurationVarP(&intervalFlag, `interval`, `i`, fbstat.DefaultInterval, `refresh interval`)
	fl.IntVar(&traceHeightFlag, `trace-height`, fbstat.DefaultTraceHeight, `height of the traces in pixels`)
	fl.IntVar(&gridHeightFlag, `grid-height`, fbstat.DefaultGridHeight, `distance of the grid lines in pixels`)
	fl.IntVar(&widthFlag, `width`, 0, `panel width in pixels (default display width)`)
	fl.IntVar(&heightFlag, `height`, 0, `display height for displays without a native size`)
	fl.StringVar(&fontFlag, `font`, glyph.FaceBasic, `font: `+glyph.FaceBasic+` or `+glyph.FaceGoRegular)
	fl.Float64Var(&fontSizeFlag, `font-size`, 10, `font size in points for scalable fonts`)
	fl.StringVarP(&outputFlag, `output`, `o`, ``, `snapshot png file, "-" for stdout`)
	fl.IntVar(&scaleFlag, `scale`, 1, `snapshot magnification`)
	fl.BoolVar(&onceFlag, `once`, false, `render a single frame and exit`)
	fl.StringSliceVar(&panelsFlag, `panels`, fbstat.DefaultPanels, `panels from top to bottom`)
	fl.StringVar(&fsPathFlag, `fs-path`, `/tmp`, `mount point for the disk usage`)
}

func showFunc(cmd *cobra.Command, args []string) func() error {
	return func() error {
		face, err := glyph.ByName(fontFlag, fontSizeFlag)
		if err != nil {
			return err
		}
		h, closeLog, err := logHandler()
		if err != nil {
			return err
		}
		defer closeLog()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app, err := fbstat.New(ctx,
			fbstat.SetSLogger(h, h != nil),
			fbstat.SetDisplay(displayFlag, display.Config{
				Device: deviceFlag,
				Output: outputFlag,
				Size:   image.Point{X: widthFlag, Y: heightFlag},
				Scale:  scaleFlag,
			}),
			fbstat.SetInterval(intervalFlag),
			fbstat.SetTraceHeight(traceHeightFlag),
			fbstat.SetGridHeight(gridHeightFlag),
			fbstat.SetWidth(widthFlag),
			fbstat.SetFace(face),
			fbstat.SetPanels(panelsFlag...),
			fbstat.SetFileSystemPath(fsPathFlag),
		)
		if err != nil {
			return err
		}
		defer app.Close()

		if onceFlag {
			return app.Tick(ctx, time.Now())
		}
		return app.Run(ctx)
	}
}
