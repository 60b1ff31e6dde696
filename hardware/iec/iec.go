// Package iec models the C64's serial IEC bus: three wired-AND signal
// lines (CLK, DATA, ATN) shared between the computer and every attached
// peripheral. Any device pulling a line low pulls it low for everyone;
// a line reads high only when every device driving it lets it float
// high, which is why the bus is modelled as a composite recomputed from
// every driver rather than a value any one device can just set.
package iec

// Driver is one device connected to the bus: the computer's CIA2 port A,
// or a drive's VIA1. Each reports the level it wants to drive each line
// to (true = driving low).
type Driver interface {
	DriveCLK() bool
	DriveDATA() bool
	DriveATN() bool
}

// Bus is the shared wired-AND composite of every attached Driver.
type Bus struct {
	drivers []Driver

	clk, data, atn bool
}

// NewBus constructs an empty bus; Attach wires up drivers afterwards.
func NewBus() *Bus {
	return &Bus{}
}

// Attach adds d as a driver of the bus. The computer and every drive on
// the daisy chain attach once, at power-on.
func (b *Bus) Attach(d Driver) {
	b.drivers = append(b.drivers, d)
}

// Recompute re-derives the composite line levels from every attached
// driver. It must be called whenever any driver's output might have
// changed (a CIA2 port write, a drive VIA port write) before any driver
// reads the bus back.
func (b *Bus) Recompute() {
	clkLow, dataLow, atnLow := false, false, false
	for _, d := range b.drivers {
		clkLow = clkLow || d.DriveCLK()
		dataLow = dataLow || d.DriveDATA()
		atnLow = atnLow || d.DriveATN()
	}
	b.clk = !clkLow
	b.data = !dataLow
	b.atn = !atnLow
}

// CLK, DATA and ATN report the bus's current composite level: true means
// the line is high (released by every driver).
func (b *Bus) CLK() bool  { return b.clk }
func (b *Bus) DATA() bool { return b.data }
func (b *Bus) ATN() bool  { return b.atn }
