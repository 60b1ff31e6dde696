package emulator_test

import (
	"testing"
	"time"

	"github.com/blar/virtualc64/emulator"
	"github.com/blar/virtualc64/messagequeue"
	"github.com/blar/virtualc64/test"
)

// fakeMachine completes a frame every cyclesPerFrame calls and jams
// once frameCount reaches framesBeforeJam (0 disables jamming).
type fakeMachine struct {
	cyclesPerFrame  int
	framesBeforeJam int
	cycles          int
	frameCount      int
}

func (m *fakeMachine) ExecuteCycle() bool {
	m.cycles++
	if m.cycles%m.cyclesPerFrame == 0 {
		m.frameCount++
		return true
	}
	return false
}

func (m *fakeMachine) Jammed() bool {
	return m.framesBeforeJam > 0 && m.frameCount >= m.framesBeforeJam
}

func TestPowerStateTransitionTable(t *testing.T) {
	e := emulator.NewEmulator(&fakeMachine{cyclesPerFrame: 1000000}, nil, 50)
	test.ExpectEquality(t, e.State(), emulator.StateOff)

	e.Pause() // no-op from OFF
	test.ExpectEquality(t, e.State(), emulator.StateOff)

	e.PowerOn()
	test.ExpectEquality(t, e.State(), emulator.StatePaused)

	e.PowerOn() // no-op from PAUSED
	test.ExpectEquality(t, e.State(), emulator.StatePaused)

	e.Run()
	test.ExpectEquality(t, e.State(), emulator.StateRunning)

	e.Pause()
	test.ExpectEquality(t, e.State(), emulator.StatePaused)

	e.PowerOff()
	test.ExpectEquality(t, e.State(), emulator.StateOff)
}

func TestRunFromOffPowersOnFirst(t *testing.T) {
	e := emulator.NewEmulator(&fakeMachine{cyclesPerFrame: 1000000}, nil, 50)
	e.Run()
	test.ExpectEquality(t, e.State(), emulator.StateRunning)
	e.PowerOff()
	test.ExpectEquality(t, e.State(), emulator.StateOff)
}

func TestSuspendResumeNesting(t *testing.T) {
	e := emulator.NewEmulator(&fakeMachine{cyclesPerFrame: 1000000}, nil, 50)
	e.PowerOn()
	e.Run()

	e.Suspend()
	test.ExpectEquality(t, e.State(), emulator.StatePaused)
	e.Suspend()
	test.ExpectEquality(t, e.State(), emulator.StatePaused)

	e.Resume()
	test.ExpectEquality(t, e.State(), emulator.StatePaused) // still nested once

	e.Resume()
	test.ExpectEquality(t, e.State(), emulator.StateRunning) // fully unwound
}

func TestSuspendFromPausedStaysPausedOnResume(t *testing.T) {
	e := emulator.NewEmulator(&fakeMachine{cyclesPerFrame: 1000000}, nil, 50)
	e.PowerOn()

	e.Suspend()
	e.Resume()
	test.ExpectEquality(t, e.State(), emulator.StatePaused)
}

func TestCPUJamAutoPausesAndNotifies(t *testing.T) {
	m := &fakeMachine{cyclesPerFrame: 10, framesBeforeJam: 2}
	mq := messagequeue.NewQueue(8)
	e := emulator.NewEmulator(m, mq, 50)
	e.SetWarp(true)
	e.PowerOn()
	e.Run()

	time.Sleep(20 * time.Millisecond)

	test.ExpectEquality(t, e.State(), emulator.StatePaused)

	found := false
	for _, msg := range mq.Drain() {
		if msg.Kind == messagequeue.CPUJammed {
			found = true
		}
	}
	test.ExpectEquality(t, found, true)
}

// fakeStepper models a multi-cycle instruction: InstructionBoundary is
// true only once every cyclesPerInstr calls, when the instruction
// retires and pc advances.
type fakeStepper struct {
	fakeMachine
	pc             uint16
	instrLen       int
	cyclesPerInstr int
	sub            int
}

func (s *fakeStepper) ExecuteCycle() bool {
	s.fakeMachine.cycles++
	s.sub++
	if s.sub >= s.cyclesPerInstr {
		s.sub = 0
		s.pc += uint16(s.instrLen)
		return true
	}
	return false
}

func (s *fakeStepper) PC() uint16                { return s.pc }
func (s *fakeStepper) InstructionBoundary() bool { return s.sub == 0 }
func (s *fakeStepper) LastInstructionBytes() int { return s.instrLen }

func TestStepIntoAdvancesOneInstruction(t *testing.T) {
	s := &fakeStepper{instrLen: 3, cyclesPerInstr: 3, pc: 0x1000}
	e := emulator.NewEmulator(s, nil, 50)
	e.PowerOn()

	e.StepInto()
	test.ExpectEquality(t, s.PC(), uint16(0x1003))
}

func TestStepOverArmsBreakpointAndStops(t *testing.T) {
	s := &fakeStepper{instrLen: 3, cyclesPerInstr: 3, pc: 0x1000}
	mq := messagequeue.NewQueue(8)
	e := emulator.NewEmulator(s, mq, 50)
	e.PowerOn()
	e.SetWarp(true)

	e.StepOver()
	time.Sleep(20 * time.Millisecond)

	test.ExpectEquality(t, e.State(), emulator.StatePaused)
	test.ExpectEquality(t, s.PC(), uint16(0x1003))
}

func TestStepIntoNoopWithoutStepperSupport(t *testing.T) {
	m := &fakeMachine{cyclesPerFrame: 1000000}
	e := emulator.NewEmulator(m, nil, 50)
	e.PowerOn()
	e.StepInto() // must not panic against a plain Machine
	e.StepOver()
}
