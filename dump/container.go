package dump

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/sigurn/crc8"

	"github.com/ezrec/xbacktrace/regs"
)

const (
	CONTAINER_MAGIC  = "XBT1"
	CONTAINER_HEADER = len(CONTAINER_MAGIC) + regs.CONTEXT_SIZE + 4 // Magic, context and segment count.
)

var captureCRC8 = crc8.MakeTable(crc8.CRC8_MAXIM)

// checksum of a capture container body.
func checksum(data []byte) uint8 {
	csum := crc8.Init(captureCRC8)
	csum = crc8.Update(csum, data, captureCRC8)
	return crc8.Complete(csum, captureCRC8)
}

// Unmarshal loads an image from a capture container, replacing any
// existing context and segments.
func (img *Image) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	if len(data) < len(CONTAINER_MAGIC) || string(data[:len(CONTAINER_MAGIC)]) != CONTAINER_MAGIC {
		err = ErrMagic
		return
	}

	if len(data) < CONTAINER_HEADER+1 {
		err = fmt.Errorf("%w: %w", ErrTruncated, io.ErrUnexpectedEOF)
		return
	}

	body, csum := data[:len(data)-1], data[len(data)-1]
	if checksum(body) != csum {
		err = ErrChecksum
		return
	}

	var ctx regs.Context
	err = ctx.UnmarshalBinary(body[len(CONTAINER_MAGIC) : len(CONTAINER_MAGIC)+regs.CONTEXT_SIZE])
	if err != nil {
		return
	}

	count := binary.LittleEndian.Uint32(body[CONTAINER_HEADER-4:])
	body = body[CONTAINER_HEADER:]

	out := Image{Verbose: img.Verbose, Context: ctx}
	for n := range count {
		if len(body) < 8 {
			err = &ErrSegment{Index: int(n), Err: io.ErrUnexpectedEOF}
			return
		}
		base := binary.LittleEndian.Uint32(body[0:])
		length := binary.LittleEndian.Uint32(body[4:])
		body = body[8:]
		if uint64(len(body)) < uint64(length) {
			err = &ErrSegment{Index: int(n), Err: io.ErrUnexpectedEOF}
			return
		}

		err = out.AddSegment(base, bytes.Clone(body[:length]))
		if err != nil {
			err = &ErrSegment{Index: int(n), Err: err}
			return
		}
		body = body[length:]
	}

	if len(body) != 0 {
		err = ErrTrailing
		return
	}

	*img = out

	return
}

// Marshal writes the image as a capture container.
func (img *Image) Marshal(file io.Writer) (err error) {
	data := []byte(CONTAINER_MAGIC)

	ctx, err := img.Context.MarshalBinary()
	if err != nil {
		return
	}
	data = append(data, ctx...)

	data = binary.LittleEndian.AppendUint32(data, uint32(len(img.segments)))
	for _, seg := range img.segments {
		data = binary.LittleEndian.AppendUint32(data, seg.Base)
		data = binary.LittleEndian.AppendUint32(data, uint32(len(seg.Data)))
		data = append(data, seg.Data...)
	}

	data = append(data, checksum(data))

	_, err = file.Write(data)

	return
}

// Read a capture container.
func Read(file io.Reader) (img *Image, err error) {
	img = &Image{}
	err = img.Unmarshal(file)
	if err != nil {
		img = nil
	}
	return
}
