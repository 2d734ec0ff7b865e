package i2c

import (
	"fmt"
	"log"
	"sync"

	devi2c "github.com/davecheney/i2c"
	"github.com/pkg/errors"
)

// I2C is one slave device on a bus, or a logging stand-in for it
type I2C struct {
	mu      sync.Mutex
	dev     *devi2c.I2C
	address uint8
	sim     bool
	last    []byte
	writes  int
}

func logWrite(address uint8, buf []byte) {
	line := fmt.Sprintf("i2c 0x%02x write:", address)
	for _, b := range buf {
		line += fmt.Sprintf(" %02x", b)
	}
	log.Println(line)
}

// Open a connection to the device at address on /dev/i2c-<bus>
func Open(address uint8, bus int, simulated bool) (*I2C, error) {
	if simulated {
		return &I2C{address: address, sim: true}, nil
	}
	dev, err := devi2c.New(address, bus)
	if err != nil {
		return nil, errors.Wrapf(err, "i2c open 0x%02x on bus %d", address, bus)
	}
	return &I2C{dev: dev, address: address}, nil
}

func (d *I2C) Close() error {
	if d.sim {
		log.Printf("i2c 0x%02x closed", d.address)
		return nil
	}
	return d.dev.Close()
}

// WriteByte sends a command-style byte
func (d *I2C) WriteByte(single byte) error {
	_, err := d.Write([]byte{single})
	return err
}

func (d *I2C) Write(buf []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.last = append(d.last[:0], buf...)
	d.writes++
	if d.sim {
		logWrite(d.address, buf)
		return len(buf), nil
	}
	return d.dev.Write(buf)
}

// LastWrite is a copy of the most recent buffer sent to the device
func (d *I2C) LastWrite() []byte {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]byte(nil), d.last...)
}

func (d *I2C) Writes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.writes
}
