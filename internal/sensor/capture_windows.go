//go:build windows

package sensor

import (
	"unsafe"

	"codeberg.org/orvend/gammactl/internal/errors"
	"golang.org/x/sys/windows"
)

var (
	user32        = windows.NewLazySystemDLL("user32.dll")
	gdi32         = windows.NewLazySystemDLL("gdi32.dll")
	procGetDC     = user32.NewProc("GetDC")
	procReleaseDC = user32.NewProc("ReleaseDC")

	procCreateCompatibleDC     = gdi32.NewProc("CreateCompatibleDC")
	procCreateCompatibleBitmap = gdi32.NewProc("CreateCompatibleBitmap")
	procSelectObject           = gdi32.NewProc("SelectObject")
	procBitBlt                 = gdi32.NewProc("BitBlt")
	procGetDIBits              = gdi32.NewProc("GetDIBits")
	procDeleteObject           = gdi32.NewProc("DeleteObject")
	procDeleteDC               = gdi32.NewProc("DeleteDC")
)

const (
	srccopy      = 0x00CC0020
	biRGB        = 0
	dibRGBColors = 0
	bitsPerPixel = 32
)

type bitmapInfoHeader struct {
	Size          uint32
	Width         int32
	Height        int32
	Planes        uint16
	BitCount      uint16
	Compression   uint32
	SizeImage     uint32
	XPelsPerMeter int32
	YPelsPerMeter int32
	ClrUsed       uint32
	ClrImportant  uint32
}

type bitmapInfo struct {
	Header bitmapInfoHeader
	Colors [1][4]byte
}

type screenCapturer struct{}

// NewPlatformSource returns the native screen-brightness source.
func NewPlatformSource() Source {
	return &screenCapturer{}
}

func (*screenCapturer) Sample(region Region) (float64, error) {
	errFactory := errors.New()

	if region.Width < patchSize || region.Height < patchSize {
		return 0, errFactory.WithData(ErrRegionTooSmall, region)
	}

	screenDC, _, _ := procGetDC.Call(0)
	if screenDC == 0 {
		return 0, errFactory.WithMessage(ErrCaptureFailed, "failed to get screen DC")
	}
	defer procReleaseDC.Call(0, screenDC)

	memDC, _, _ := procCreateCompatibleDC.Call(screenDC)
	if memDC == 0 {
		return 0, errFactory.WithMessage(ErrCaptureFailed, "failed to create compatible DC")
	}
	defer procDeleteDC.Call(memDC)

	bitmap, _, _ := procCreateCompatibleBitmap.Call(screenDC, patchSize, patchSize)
	if bitmap == 0 {
		return 0, errFactory.WithMessage(ErrCaptureFailed, "failed to create capture bitmap")
	}
	defer procDeleteObject.Call(bitmap)

	prev, _, _ := procSelectObject.Call(memDC, bitmap)
	defer procSelectObject.Call(memDC, prev)

	left, top := patchOrigin(region)
	ret, _, _ := procBitBlt.Call(
		memDC, 0, 0, patchSize, patchSize,
		screenDC, uintptr(left), uintptr(top), srccopy,
	)
	if ret == 0 {
		return 0, errFactory.WithMessage(ErrCaptureFailed, "BitBlt failed")
	}

	info := bitmapInfo{
		Header: bitmapInfoHeader{
			Width:       patchSize,
			Height:      -patchSize, // top-down rows
			Planes:      1,
			BitCount:    bitsPerPixel,
			Compression: biRGB,
		},
	}
	info.Header.Size = uint32(unsafe.Sizeof(info.Header))

	pixels := make([]byte, patchSize*patchSize*bytesPerPixel)
	ret, _, _ = procGetDIBits.Call(
		memDC, bitmap, 0, patchSize,
		uintptr(unsafe.Pointer(&pixels[0])),
		uintptr(unsafe.Pointer(&info)),
		dibRGBColors,
	)
	if ret == 0 {
		return 0, errFactory.WithMessage(ErrCaptureFailed, "GetDIBits failed")
	}

	return brightnessFromBGRA(pixels)
}
