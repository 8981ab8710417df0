//go:build windows

package gamma

import (
	"unsafe"

	"codeberg.org/orvend/gammactl/internal/errors"
	"golang.org/x/sys/windows"
)

var (
	gdi32                  = windows.NewLazySystemDLL("gdi32.dll")
	procCreateDCW          = gdi32.NewProc("CreateDCW")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procSetDeviceGammaRamp = gdi32.NewProc("SetDeviceGammaRamp")
)

// applyRamp opens a device context for the named display and writes the
// ramp through SetDeviceGammaRamp.
func applyRamp(deviceName string, ramp *Ramp) error {
	errFactory := errors.New()

	namePtr, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return errFactory.Wrap(ErrDeviceContext, err)
	}

	dc, _, _ := procCreateDCW.Call(0, uintptr(unsafe.Pointer(namePtr)), 0, 0)
	if dc == 0 {
		return errFactory.WithData(ErrDeviceContext, deviceName)
	}
	defer procDeleteDC.Call(dc)

	ret, _, _ := procSetDeviceGammaRamp.Call(dc, uintptr(unsafe.Pointer(ramp)))
	if ret == 0 {
		// Drivers may refuse ramps they consider out of range.
		return errFactory.WithData(ErrSetRamp, deviceName)
	}

	return nil
}
