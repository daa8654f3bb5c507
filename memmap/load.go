package memmap

import (
	"io"

	"github.com/BurntSushi/toml"
)

// Load parses a TOML memory map:
//
//	chip = "custom"
//
//	[[region]]
//	name = "dram"
//	start = 0x3ffae000
//	end = 0x40000000
func Load(r io.Reader) (m *Map, err error) {
	m = &Map{}

	md, err := toml.NewDecoder(r).Decode(m)
	if err != nil {
		m = nil
		return
	}

	if undecoded := md.Undecoded(); len(undecoded) != 0 {
		m = nil
		err = ErrKeyUnknown(undecoded[0].String())
		return
	}

	if len(m.Regions) == 0 {
		m = nil
		err = ErrMapEmpty
		return
	}

	err = m.Validate()
	if err != nil {
		m = nil
		return
	}

	return
}
