package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/xbacktrace/backtrace"
	"github.com/ezrec/xbacktrace/cause"
	"github.com/ezrec/xbacktrace/dump"
	"github.com/ezrec/xbacktrace/memmap"
)

const testStack = uint32(0x3ffb0100)

// testImage builds a capture with three frames above the stack pointer.
func testImage(t *testing.T) (img *dump.Image) {
	assert := assert.New(t)

	img = &dump.Image{}
	img.Context.PC = 0x400d1234
	img.Context.A1 = testStack
	img.Context.EXCCAUSE = uint32(cause.LOAD_PROHIBITED)
	img.Context.EXCVADDR = 0xdeadbeef

	assert.NoError(img.AddSegment(0x3ffb0000, make([]byte, 0x400)))

	fp := testStack
	for _, ra := range []uint32{0x800d1000, 0x800d2000, 0xc00d3000} {
		assert.NoError(img.WriteWord(fp-16, ra))
		assert.NoError(img.WriteWord(fp-12, fp+0x40))
		fp += 0x40
	}

	return
}

func testWalker(img *dump.Image) *backtrace.Walker {
	return backtrace.NewWalker(img, memmap.ESP32S2.Contains)
}

func TestException(t *testing.T) {
	assert := assert.New(t)

	img := testImage(t)
	rpt := Exception(&img.Context, testWalker(img))

	assert.Equal(KIND_EXCEPTION, rpt.Kind)
	assert.Equal(cause.LOAD_PROHIBITED, rpt.Cause)
	assert.Equal(&img.Context, rpt.Context)
	assert.Equal([]uint32{0x400d1000, 0x400d2000, 0x400d3000}, rpt.Backtrace.Addresses())
	assert.Equal(backtrace.STOP_ZERO, rpt.Backtrace.Stop)
}

func TestPanic(t *testing.T) {
	assert := assert.New(t)

	img := testImage(t)
	rpt := Panic("index out of range", testStack, testWalker(img))

	assert.Equal(KIND_PANIC, rpt.Kind)
	assert.Equal(cause.NONE, rpt.Cause)
	assert.Nil(rpt.Context)
	assert.Equal([]uint32{0x400d2000, 0x400d3000}, rpt.Backtrace.Addresses())
}

func TestReport_WriteText(t *testing.T) {
	assert := assert.New(t)

	img := testImage(t)
	rpt := Exception(&img.Context, testWalker(img))

	buff := &bytes.Buffer{}
	assert.NoError(rpt.Write(buff, FORMAT_TEXT))

	expected := "Exception 'LoadProhibited' (Cache Attribute Does Not Allow Load) pc=0x400d1234, excvaddr=0xdeadbeef\n" +
		img.Context.String() +
		"\n" +
		"Backtrace:\n" +
		"0x400d1000\n" +
		"0x400d2000\n" +
		"0x400d3000\n" +
		"(end: zero)\n"
	assert.Equal(expected, buff.String())
}

func TestReport_WriteText_Panic(t *testing.T) {
	assert := assert.New(t)

	img := testImage(t)
	rpt := Panic("boom", testStack, testWalker(img))

	buff := &bytes.Buffer{}
	assert.NoError(rpt.WriteText(buff))
	assert.Equal("Panic: boom\n\nBacktrace:\n0x400d2000\n0x400d3000\n(end: zero)\n", buff.String())

	rpt = Panic("", 0x20000000, testWalker(img))
	buff.Reset()
	assert.NoError(rpt.WriteText(buff))
	assert.Equal("Panic\n\nBacktrace:\n(end: zero)\n", buff.String())
}

func TestReport_JSON(t *testing.T) {
	assert := assert.New(t)

	img := testImage(t)
	rpt := Exception(&img.Context, testWalker(img))

	buff := &bytes.Buffer{}
	assert.NoError(rpt.Write(buff, FORMAT_JSON))

	var doc document
	assert.NoError(json.Unmarshal(buff.Bytes(), &doc))
	assert.Equal("exception", doc.Kind)
	assert.Equal("LoadProhibited", doc.Cause)
	assert.Equal([]string{"0x400d1000", "0x400d2000", "0x400d3000"}, doc.Backtrace)
	assert.Equal("zero", doc.Stop)
	assert.Equal(54, len(doc.Registers))
	assert.Equal(register{Name: "PC", Value: "0x400d1234"}, doc.Registers[0])
	assert.Equal(register{Name: "EXCVADDR", Value: "0xdeadbeef"}, doc.Registers[20])
}

func TestReport_YAML(t *testing.T) {
	assert := assert.New(t)

	img := testImage(t)
	rpt := Panic("boom", testStack, testWalker(img))

	buff := &bytes.Buffer{}
	assert.NoError(rpt.Write(buff, FORMAT_YAML))

	var doc document
	assert.NoError(yaml.Unmarshal(buff.Bytes(), &doc))
	assert.Equal("panic", doc.Kind)
	assert.Equal("boom", doc.Message)
	assert.Equal("None", doc.Cause)
	assert.Empty(doc.Registers)
	assert.Equal([]string{"0x400d2000", "0x400d3000"}, doc.Backtrace)
}

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"text", "json", "yaml", "JSON"} {
		format, err := ParseFormat(name)
		assert.NoError(err)
		assert.True(format.String() == name || format == FORMAT_JSON)
	}

	_, err := ParseFormat("xml")
	assert.ErrorIs(err, ErrFormat("xml"))

	rpt := Report{}
	err = rpt.Write(&bytes.Buffer{}, Format(7))
	assert.ErrorIs(err, ErrFormat("Format(7)"))
}
