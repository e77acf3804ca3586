//go:build tinygo && baremetal

package hal

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"machine"
	"os"

	"tinygo.org/x/drivers/sdcard"
	"tinygo.org/x/tinyfs"
	"tinygo.org/x/tinyfs/fatfs"
)

type sdStorage struct {
	sd  *sdcard.Device
	fat *fatfs.FATFS
}

func newSDStorage() (*sdStorage, error) {
	sd := sdcard.New(machine.SPI1, machine.GP10, machine.GP11, machine.GP12, machine.GP13)
	if err := sd.Configure(); err != nil {
		return nil, fmt.Errorf("configure: %w", err)
	}

	fat := fatfs.New(&sd).Configure(&fatfs.Config{SectorSize: fatfs.SectorSize})
	if err := fat.Mount(); err != nil {
		// Do not auto-format removable media.
		return nil, fmt.Errorf("mount: %w", err)
	}
	return &sdStorage{sd: &sd, fat: fat}, nil
}

func (s *sdStorage) Open(name string) (File, error) {
	f, err := s.fat.OpenFile(name, os.O_RDONLY)
	if err != nil {
		return nil, mapFatErr(name, err)
	}
	return sdFile{File: f}, nil
}

type sdFile struct {
	tinyfs.File
}

func (f sdFile) Seek(offset int64, whence int) (int64, error) {
	if s, ok := f.File.(io.Seeker); ok {
		return s.Seek(offset, whence)
	}
	return 0, ErrNotImplemented
}

type noStorage struct{}

func (noStorage) Open(name string) (File, error) {
	return nil, fmt.Errorf("sd open %s: %w", name, fs.ErrNotExist)
}

func mapFatErr(name string, err error) error {
	var fr fatfs.FileResult
	if errors.As(err, &fr) {
		switch fr {
		case fatfs.FileResultNoFile, fatfs.FileResultNoPath:
			return fmt.Errorf("sd open %s: %w", name, fs.ErrNotExist)
		case fatfs.FileResultDenied, fatfs.FileResultLocked:
			return fmt.Errorf("sd open %s: %w", name, fs.ErrPermission)
		}
	}
	return fmt.Errorf("sd open %s: %v", name, err)
}
