package iec_test

import (
	"testing"

	"github.com/blar/virtualc64/hardware/iec"
	"github.com/blar/virtualc64/test"
)

type fixedDriver struct {
	clk, data, atn bool
}

func (f fixedDriver) DriveCLK() bool  { return f.clk }
func (f fixedDriver) DriveDATA() bool { return f.data }
func (f fixedDriver) DriveATN() bool  { return f.atn }

func TestBusHighWhenNoDriverPullsLow(t *testing.T) {
	b := iec.NewBus()
	b.Attach(fixedDriver{})
	b.Attach(fixedDriver{})
	b.Recompute()
	test.ExpectEquality(t, b.CLK(), true)
	test.ExpectEquality(t, b.DATA(), true)
	test.ExpectEquality(t, b.ATN(), true)
}

func TestAnyDriverPullingLowWins(t *testing.T) {
	b := iec.NewBus()
	b.Attach(fixedDriver{clk: true})
	b.Attach(fixedDriver{})
	b.Recompute()
	test.ExpectEquality(t, b.CLK(), false)
	test.ExpectEquality(t, b.DATA(), true)
}
