// Package memmap describes the RAM of Xtensa targets, and provides the
// plausibility predicates used by the backtrace walker.
package memmap

import (
	"iter"
	"maps"
	"slices"
	"strings"

	"github.com/ezrec/xbacktrace/internal"
)

// Region is a half-open [Start, End) range of RAM.
type Region struct {
	Name  string `toml:"name"`
	Start uint32 `toml:"start"`
	End   uint32 `toml:"end"`
}

// Contains returns true if the address is in the region.
func (r Region) Contains(addr uint32) bool {
	return addr >= r.Start && addr < r.End
}

// Size of the region in bytes.
func (r Region) Size() uint32 {
	if r.End <= r.Start {
		return 0
	}
	return r.End - r.Start
}

// Map is a set of RAM regions.
type Map struct {
	Chip    string   `toml:"chip"`
	Regions []Region `toml:"region"`
}

// Contains returns true if the address falls in any region of the map.
// A method value of Contains is a backtrace.Predicate.
func (m *Map) Contains(addr uint32) bool {
	for _, r := range m.Regions {
		if r.Contains(addr) {
			return true
		}
	}
	return false
}

// All iterates over the regions of the map.
func (m *Map) All() iter.Seq[Region] {
	return slices.Values(m.Regions)
}

// Validate checks that every region is non-empty.
func (m *Map) Validate() (err error) {
	for n, r := range m.Regions {
		if r.Size() == 0 {
			err = &ErrRegion{Index: n, Err: ErrRegionInvalid}
			return
		}
	}
	return
}

// Union concatenates the regions of several maps.
func Union(ms ...*Map) (union *Map) {
	seqs := make([]iter.Seq[Region], 0, len(ms))
	chips := make([]string, 0, len(ms))
	for _, m := range ms {
		seqs = append(seqs, m.All())
		chips = append(chips, m.Chip)
	}

	union = &Map{
		Chip:    strings.Join(chips, "+"),
		Regions: slices.Collect(internal.IterSeqConcat(seqs...)),
	}

	return
}

var (
	// ESP32 internal data RAM.
	ESP32 = Map{
		Chip: "esp32",
		Regions: []Region{
			{Name: "dram", Start: 0x3ffa_e000, End: 0x4000_0000},
		},
	}

	// ESP32S2 internal data RAM.
	ESP32S2 = Map{
		Chip: "esp32s2",
		Regions: []Region{
			{Name: "dram", Start: 0x3ffb_0000, End: 0x4000_0000},
		},
	}

	// ESP32S3 internal data RAM.
	ESP32S3 = Map{
		Chip: "esp32s3",
		Regions: []Region{
			{Name: "dram", Start: 0x3fc8_8000, End: 0x3fd0_0000},
		},
	}
)

var chips = map[string]*Map{
	ESP32.Chip:   &ESP32,
	ESP32S2.Chip: &ESP32S2,
	ESP32S3.Chip: &ESP32S3,
}

// Chip returns the built-in map for a chip name.
func Chip(name string) (m *Map, err error) {
	m, ok := chips[strings.ToLower(name)]
	if !ok {
		err = ErrChipUnknown(name)
		return
	}
	return
}

// Chips returns the names of the built-in maps, sorted.
func Chips() []string {
	return slices.Sorted(maps.Keys(chips))
}
