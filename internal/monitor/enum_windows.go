//go:build windows

package monitor

import (
	"unsafe"

	"codeberg.org/orvend/gammactl/internal/errors"
	"golang.org/x/sys/windows"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
)

const monitorinfofPrimary = 0x1

type winRect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

type monitorInfoEx struct {
	CbSize    uint32
	RcMonitor winRect
	RcWork    winRect
	DwFlags   uint32
	SzDevice  [32]uint16
}

type winEnumerator struct{}

// NewPlatformEnumerator returns the native display enumerator.
func NewPlatformEnumerator() Enumerator {
	return &winEnumerator{}
}

func (*winEnumerator) Enumerate() ([]Descriptor, error) {
	errFactory := errors.New()

	var monitors []Descriptor
	callback := windows.NewCallback(func(hMonitor, _, _, _ uintptr) uintptr {
		info := monitorInfoEx{}
		info.CbSize = uint32(unsafe.Sizeof(info))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&info)))
		if ret == 0 {
			return 1 // skip this monitor, continue enumeration
		}

		monitors = append(monitors, Descriptor{
			Name:    windows.UTF16ToString(info.SzDevice[:]),
			Width:   int(info.RcMonitor.Right - info.RcMonitor.Left),
			Height:  int(info.RcMonitor.Bottom - info.RcMonitor.Top),
			X:       int(info.RcMonitor.Left),
			Y:       int(info.RcMonitor.Top),
			Primary: info.DwFlags&monitorinfofPrimary != 0,
		})

		return 1
	})

	ret, _, _ := procEnumDisplayMonitors.Call(0, 0, callback, 0)
	if ret == 0 {
		return nil, errFactory.New(errors.ErrMonitorList)
	}

	return monitors, nil
}
