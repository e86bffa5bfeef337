package dmg

import (
	"io/ioutil"

	"github.com/pkg/errors"
)

// LoadCartridge reads the ROM image at path and returns its raw bytes. There
// is no header to parse and no mapper to configure: the image is copied
// verbatim into the bus's address space by Bus.LoadROM.
func LoadCartridge(path string) ([]byte, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open rom %q", path)
	}

	if len(data) == 0 {
		return nil, errors.Errorf("rom %q is empty", path)
	}

	return data, nil
}
