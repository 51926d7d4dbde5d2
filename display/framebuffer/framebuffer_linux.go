// Copyright 2013 Konstantin Kulikov. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux

package framebuffer

import (
	"image"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/fbstat/display"
	"github.com/srlehn/fbstat/internal/errors"
	"github.com/srlehn/fbstat/internal/logx"
	"github.com/srlehn/fbstat/rgb565"
)

func init() {
	display.Register(Name, func(cfg display.Config) (display.Display, error) {
		return Open(cfg.Device, cfg.Logger)
	})
}

const defaultDevice = `/dev/fb0`

// Framebuffer contains information about framebuffer.
type Framebuffer struct {
	dev   *os.File
	finfo fixedScreenInfo
	vinfo variableScreenInfo
	data  []byte
	log   logx.LoggerProvider
}

var _ display.Display = (*Framebuffer)(nil)

// Open opens the framebuffer device and maps it to memory.
// An empty dev falls back to $FRAMEBUFFER, then /dev/fb0.
func Open(dev string, log logx.LoggerProvider) (*Framebuffer, error) {
	if len(dev) == 0 {
		dev = os.Getenv(`FRAMEBUFFER`)
	}
	if len(dev) == 0 {
		dev = defaultDevice
	}
	var (
		fb  = &Framebuffer{log: log}
		err error
	)
	fb.dev, err = os.OpenFile(dev, os.O_RDWR, os.ModeDevice)
	if err != nil {
		return nil, errors.New(err)
	}
	if err := ioctl(fb.dev.Fd(), getFixedScreenInfo, unsafe.Pointer(&fb.finfo)); err != nil {
		fb.dev.Close()
		return nil, err
	}
	if err := ioctl(fb.dev.Fd(), getVariableScreenInfo, unsafe.Pointer(&fb.vinfo)); err != nil {
		fb.dev.Close()
		return nil, err
	}
	fb.data, err = unix.Mmap(int(fb.dev.Fd()), 0, int(fb.finfo.SmemLen), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		fb.dev.Close()
		return nil, errors.New(err)
	}
	logx.Info(`framebuffer opened`, log,
		`device`, dev,
		`resolution`, fb.Size(),
		`bits_per_pixel`, fb.vinfo.BitsPerPixel,
		`line_length`, fb.finfo.LineLength)
	return fb, nil
}

func (fb *Framebuffer) Name() string { return Name }

// Size returns the visible resolution.
func (fb *Framebuffer) Size() image.Point {
	if fb == nil {
		return image.Point{}
	}
	return image.Point{X: int(fb.vinfo.XRes), Y: int(fb.vinfo.YRes)}
}

func (fb *Framebuffer) native565() bool {
	v := &fb.vinfo
	return v.BitsPerPixel == 16 &&
		v.Red.Offset == 11 && v.Red.Length == 5 &&
		v.Green.Offset == 5 && v.Green.Length == 6 &&
		v.Blue.Offset == 0 && v.Blue.Length == 5
}

func channel(v uint8, f bitfield) uint32 {
	if f.Length == 0 {
		return 0
	}
	if f.Length < 8 {
		v >>= 8 - f.Length
	}
	return uint32(v) << f.Offset
}

// pixelValue converts c to the device pixel layout, for devices that are
// not native565.
func (fb *Framebuffer) pixelValue(c rgb565.Color) uint32 {
	v := &fb.vinfo
	p := channel(c.Red(), v.Red) | channel(c.Green(), v.Green) | channel(c.Blue(), v.Blue)
	if v.Transp.Length > 0 {
		p |= channel(0xff, v.Transp)
	}
	return p
}

// PutImage copies img to the screen, centered horizontally and offset.Y
// rows from the top. Pixels off screen are dropped.
func (fb *Framebuffer) PutImage(offset image.Point, img *rgb565.Image) error {
	if fb == nil || fb.data == nil {
		return errors.NilReceiver()
	}
	if img == nil {
		return errors.NilParam()
	}
	size := fb.Size()
	bytesPerPixel := int(fb.vinfo.BitsPerPixel) / 8
	if bytesPerPixel < 2 || bytesPerPixel > 4 {
		return errors.Errorf(`unsupported pixel depth %d`, fb.vinfo.BitsPerPixel)
	}
	native := fb.native565()
	xStart := offset.X + (size.X-img.Width())/2
	x0 := max(xStart, 0)
	x1 := min(xStart+img.Width(), size.X)
	if x0 >= x1 {
		return nil
	}
	for y := 0; y < img.Height(); y++ {
		fy := offset.Y + y
		if fy < 0 || fy >= size.Y {
			continue
		}
		row, _ := img.Row(y)
		row = row[x0-xStart : x1-xStart]
		start := (int(fb.vinfo.YOffset)+fy)*int(fb.finfo.LineLength) + (int(fb.vinfo.XOffset)+x0)*bytesPerPixel
		end := start + len(row)*bytesPerPixel
		if start < 0 || end > len(fb.data) {
			continue
		}
		line := fb.data[start:end]
		if native {
			// same layout and byte order as the mapped memory
			copy(line, unsafe.Slice((*byte)(unsafe.Pointer(&row[0])), len(line)))
			continue
		}
		for x, c := range row {
			p := fb.pixelValue(c)
			for k := 0; k < bytesPerPixel; k++ {
				line[x*bytesPerPixel+k] = byte(p >> (8 * k))
			}
		}
	}
	return nil
}

// Flush is a no-op, the memory is shared with the device.
func (fb *Framebuffer) Flush() error { return nil }

// Clear fills the visible screen with c.
func (fb *Framebuffer) Clear(c rgb565.Color) error {
	size := fb.Size()
	row := rgb565.NewImage(size.X, 1)
	row.Clear(c)
	for y := 0; y < size.Y; y++ {
		if err := fb.PutImage(image.Point{Y: y}, row); err != nil {
			return err
		}
	}
	return nil
}

// Close unmaps the memory and closes the device.
func (fb *Framebuffer) Close() error {
	if fb == nil || fb.dev == nil {
		return nil
	}
	err := errors.Join(unix.Munmap(fb.data), fb.dev.Close())
	fb.data = nil
	fb.dev = nil
	return err
}

func ioctl(fd uintptr, cmd uintptr, data unsafe.Pointer) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, cmd, uintptr(data))
	if errno != 0 {
		return errors.New(os.NewSyscallError(`IOCTL`, errno))
	}
	return nil
}
