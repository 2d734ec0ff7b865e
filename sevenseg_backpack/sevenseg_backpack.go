package sevenseg_backpack

import (
	"fmt"
	"log"

	"dscheirer.com/rtcalarm/i2c"
	"github.com/pkg/errors"
)

// commands we support
// OSC on/off 0/1
const i2c_OSC_ON = 0x21
const i2c_OSC_OFF = 0x20

// display on/off and 2 "blink" bits in position 2+1
const i2cDISPLAY_ON = 0x81
const i2cDISPLAY_OFF = 0x80

// 0x0 -> 0xF brightness levels
const i2cBRIGHTNESS_CMD = 0xE0
const i2cBRIGHTNESS_MAX = 0xEF

// colon is just one bit at position 5 (+1 for address, position 2 * 2 for nil bytes)
const i2c_COLON_POS = 1 + 2*2

// export blink positions
const BLINK_OFF = 0
const BLINK_2HZ = 1
const BLINK_1HZ = 2
const BLINK_HALFHZ = 3

// positions of segments
const LED_TOP = 0
const LED_MID = 6
const LED_BOT = 3
const LED_TOPL = 5
const LED_TOPR = 1
const LED_BOTL = 4
const LED_BOTR = 2
const LED_DECIMAL = 7
const LED_DECIMAL_MASK = 0x80

const Digits = 4

// translate characters to bitmasks
var digitValues = map[byte]byte{
	' ': 0x00,
	'-': 0x40,
	'_': 0x08,
	'0': 0x3F,
	'1': 0x06,
	'2': 0x5B,
	'3': 0x4F,
	'4': 0x66,
	'5': 0x6D,
	'6': 0x7D,
	'7': 0x07,
	'8': 0x7F,
	'9': 0x6F,
	'A': 0x77,
	'B': 0x7C,
	'C': 0x39,
	'c': 0x58,
	'D': 0x5E,
	'E': 0x79,
	'F': 0x71,
	'R': 0x50,
	'H': 0x76,
	'h': 0x74,
	'l': 0x06,
	'L': 0x38,
	'M': 0x37,
	'n': 0x54,
	'o': 0x5C,
	'O': 0x3F,
	'S': 0x6D,
	'I': 0x06,
	'P': 0x73,
	'u': 0x1C,
	'i': 0x04,
	'U': 0x3E,
	't': 0x78,
	'Y': 0x6E,
}

// one address byte, plus 7-seg skips bytes for each display element
const displaySize = 1 + 5*2

type Sevenseg struct {
	display        [displaySize]uint8
	i2cDev         *i2c.I2C
	dump           bool
	blink          byte
	sim            bool
	currentDisplay [displaySize]uint8
	flushed        bool
}

func (this *Sevenseg) simLog(v string, args ...interface{}) {
	if !this.sim {
		return
	}
	log.Printf(v, args...)
}

func Open(address uint8, bus int, simulated bool) (*Sevenseg, error) {
	i2cDev, err := i2c.Open(address, bus, simulated)
	if err != nil {
		return nil, err
	}
	this := &Sevenseg{
		i2cDev: i2cDev,
		blink:  BLINK_OFF,
		sim:    simulated,
	}
	// turn on the oscillator, set default brightness
	if err := this.i2cDev.WriteByte(i2c_OSC_ON); err != nil {
		return nil, errors.Wrap(err, "oscillator on")
	}
	if err := this.i2cDev.WriteByte(i2cBRIGHTNESS_MAX); err != nil {
		return nil, errors.Wrap(err, "brightness")
	}
	// you still need to call DisplayOn(true) to turn on the display
	return this, nil
}

func (this *Sevenseg) Close() error {
	this.i2cDev.WriteByte(i2cDISPLAY_OFF)
	this.i2cDev.WriteByte(i2c_OSC_OFF)
	return this.i2cDev.Close()
}

func (this *Sevenseg) DebugDump(on bool) {
	this.dump = on
}

func (this *Sevenseg) DisplayOn(on bool) error {
	this.simLog("Display: %t", on)
	// blink rate is bits 2 and 1 of the display command
	var val byte = i2cDISPLAY_ON | (this.blink << 1)
	if !on {
		val = i2cDISPLAY_OFF
	}
	return this.i2cDev.WriteByte(val)
}

func (this *Sevenseg) SetBlinkRate(rate uint8) error {
	if rate > BLINK_HALFHZ {
		return errors.Errorf("bad blink rate: %d", rate)
	}
	this.simLog("Blink rate %d", rate)
	this.blink = rate
	// one assumes you want the display on now?
	return this.DisplayOn(true)
}

func (this *Sevenseg) SetBrightness(level uint8) error {
	if level > 15 {
		return errors.Errorf("bad brightness level: %d", level)
	}
	this.simLog("Brightness %d", level)
	return this.i2cDev.WriteByte(i2cBRIGHTNESS_CMD | level)
}

// ClearDisplay blanks the buffer, Flush puts it on the device
func (this *Sevenseg) ClearDisplay() {
	this.display = [displaySize]uint8{}
}

// SetRaw puts a segment code on digit 0..3, left to right
func (this *Sevenseg) SetRaw(digit byte, code byte) error {
	if digit >= Digits {
		return errors.Errorf("bad digit: %d", digit)
	}
	this.display[getDisplayPos(digit)] = code
	return nil
}

func (this *Sevenseg) Raw(digit byte) byte {
	return this.display[getDisplayPos(digit%Digits)]
}

func (this *Sevenseg) ColonOn(on bool) {
	if on {
		this.display[i2c_COLON_POS] = 0xff
	} else {
		this.display[i2c_COLON_POS] = 0
	}
}

// Flush writes the buffer when it changed since the last write
func (this *Sevenseg) Flush() error {
	if this.flushed && this.currentDisplay == this.display {
		return nil
	}
	if this.dump {
		this.dumpDisplay()
	}
	// display has the address 0 embedded in it
	if _, err := this.i2cDev.Write(this.display[:]); err != nil {
		return errors.Wrap(err, "display write")
	}
	this.currentDisplay = this.display
	this.flushed = true
	return nil
}

func getDisplayPos(digit byte) byte {
	// add one for the colon at position '2'
	if digit > 1 {
		digit++
	}
	return 1 + digit*2
}

func altCase(char uint8) uint8 {
	if char >= 'A' && char <= 'Z' {
		return char + 'a' - 'A'
	} else if char >= 'a' && char <= 'z' {
		return char + 'A' - 'a'
	}
	return char
}

// Glyph is the segment code for a character, trying the other case when
// the exact one has no entry
func Glyph(char uint8) (byte, error) {
	if val, ok := digitValues[char]; ok {
		return val, nil
	}
	if val, ok := digitValues[altCase(char)]; ok {
		return val, nil
	}
	return 0, errors.New(fmt.Sprintf("bad value: %s", string(char)))
}

func (this *Sevenseg) dumpDisplay() {
	//  -     -      -     -
	// | |   | |  . | |   | |
	//  -     -      -     -
	// | |   | |  . | |   | |
	//  -  .  -  .   -  .  -  .
	log.Println("\n" + this.render())
}

func (this *Sevenseg) segment(digit byte, seg uint) bool {
	return this.display[getDisplayPos(digit)]&(1<<seg) != 0
}

func (this *Sevenseg) render() string {
	pick := func(on bool, yes, no string) string {
		if on {
			return yes
		}
		return no
	}
	colon := pick(this.display[i2c_COLON_POS] != 0, ".", " ")

	var rows [5]string
	var i byte
	for i = 0; i < Digits; i++ {
		if i == 2 {
			rows[0] += " "
			rows[1] += colon
			rows[2] += " "
			rows[3] += colon
			rows[4] += " "
		}
		rows[0] += pick(this.segment(i, LED_TOP), "  -   ", "      ")
		rows[1] += pick(this.segment(i, LED_TOPL), " |", "  ") + pick(this.segment(i, LED_TOPR), " |  ", "    ")
		rows[2] += pick(this.segment(i, LED_MID), "  -   ", "      ")
		rows[3] += pick(this.segment(i, LED_BOTL), " |", "  ") + pick(this.segment(i, LED_BOTR), " |  ", "    ")
		rows[4] += pick(this.segment(i, LED_BOT), "  -  ", "     ") + pick(this.segment(i, LED_DECIMAL), ".", " ")
	}
	return rows[0] + "\n" + rows[1] + "\n" + rows[2] + "\n" + rows[3] + "\n" + rows[4] + "\n"
}

// Device is the underlying bus connection
func (this *Sevenseg) Device() *i2c.I2C {
	return this.i2cDev
}
