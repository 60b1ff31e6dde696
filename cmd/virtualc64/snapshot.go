package main

import (
	"github.com/blar/virtualc64/hardware/cia"
	"github.com/blar/virtualc64/hardware/cpu"
	"github.com/blar/virtualc64/hardware/memory/cartridge"
	"github.com/blar/virtualc64/hardware/sid"
	"github.com/blar/virtualc64/hardware/vic"
	"github.com/blar/virtualc64/serialization"
)

// WritePersistent writes everything that should survive a plain file
// load: RAM contents, colour RAM, the attached cartridge's flash/RAM
// state and bank selection. ROM and the drives' disk images are not
// included, since those are reloaded from their source files rather
// than carried in a snapshot.
func (m *c64) WritePersistent(s *serialization.Sink) {
	ram := m.ram.Snapshot()
	s.WriteBytes(ram[:])

	cram := m.colorRAM.Snapshot()
	s.WriteBytes(cram[:])

	s.WriteUint8(uint8(m.cart.Variant()))
	s.WriteUint8(uint8(m.cart.GetBank()))
}

// ReadPersistent restores the fields WritePersistent wrote, in the same
// order.
func (m *c64) ReadPersistent(src *serialization.Source) error {
	ramBytes, err := src.ReadBytes()
	if err != nil {
		return err
	}
	var ram [0x10000]uint8
	copy(ram[:], ramBytes)
	m.ram.Restore(ram)

	cramBytes, err := src.ReadBytes()
	if err != nil {
		return err
	}
	var cram [1024]uint8
	copy(cram[:], cramBytes)
	m.colorRAM.Restore(cram)

	variant, err := src.ReadUint8()
	if err != nil {
		return err
	}
	bank, err := src.ReadUint8()
	if err != nil {
		return err
	}
	if cartridge.Variant(variant) == m.cart.Variant() {
		m.cart.SetBank(int(bank))
	}

	return nil
}

// WriteReset writes everything that a hardware reset would otherwise
// discard: CPU registers and halt state, the processor port latches,
// and the full internal state of VIC, both CIAs and SID, so a restored
// machine resumes mid-raster and mid-timer exactly where it left off
// rather than only at an instruction boundary.
func (m *c64) WriteReset(s *serialization.Sink) {
	reg := m.cpu.Registers()
	s.WriteUint8(reg.A)
	s.WriteUint8(reg.X)
	s.WriteUint8(reg.Y)
	s.WriteUint8(reg.SP)
	s.WriteUint16(reg.PC)
	s.WriteUint8(reg.P.Byte(false))
	s.WriteBool(m.cpu.Jammed)

	s.WriteUint8(m.portDDR)
	s.WriteUint8(m.portData)
	s.WriteUint8(m.lastBus)

	writeVICState(s, m.vic.Snapshot())
	writeCIAState(s, m.cia1.Snapshot())
	writeCIAState(s, m.cia2.Snapshot())
	writeSIDState(s, m.sid.Snapshot(m.sidRevision, m.sidFilterEnabled))

	s.WriteUint32(uint32(m.prevRasterLine))
}

// ReadReset restores everything WriteReset wrote.
func (m *c64) ReadReset(src *serialization.Source) error {
	a, err := src.ReadUint8()
	if err != nil {
		return err
	}
	x, err := src.ReadUint8()
	if err != nil {
		return err
	}
	y, err := src.ReadUint8()
	if err != nil {
		return err
	}
	sp, err := src.ReadUint8()
	if err != nil {
		return err
	}
	pc, err := src.ReadUint16()
	if err != nil {
		return err
	}
	pByte, err := src.ReadUint8()
	if err != nil {
		return err
	}
	jammed, err := src.ReadBool()
	if err != nil {
		return err
	}

	var reg cpu.Registers
	reg.A, reg.X, reg.Y, reg.SP, reg.PC = a, x, y, sp, pc
	reg.P.SetByte(pByte)
	m.cpu.SetRegisters(reg)
	m.cpu.Jammed = jammed

	portDDR, err := src.ReadUint8()
	if err != nil {
		return err
	}
	portData, err := src.ReadUint8()
	if err != nil {
		return err
	}
	lastBus, err := src.ReadUint8()
	if err != nil {
		return err
	}
	m.portDDR, m.portData, m.lastBus = portDDR, portData, lastBus
	m.pla.UpdatePLA(m.plaConfig())

	vicState, err := readVICState(src)
	if err != nil {
		return err
	}
	m.vic.Restore(vicState)

	cia1State, err := readCIAState(src)
	if err != nil {
		return err
	}
	m.cia1.Restore(cia1State)

	cia2State, err := readCIAState(src)
	if err != nil {
		return err
	}
	m.cia2.Restore(cia2State)

	sidState, err := readSIDState(src)
	if err != nil {
		return err
	}
	m.sid.Restore(sidState)
	m.sidRevision = sidState.Revision
	m.sidFilterEnabled = sidState.FilterEnabled

	prevRasterLine, err := src.ReadUint32()
	if err != nil {
		return err
	}
	m.prevRasterLine = int(prevRasterLine)

	return nil
}

func writeVICState(s *serialization.Sink, st vic.State) {
	s.WriteUint8(uint8(st.Model))
	s.WriteUint8(uint8(st.Bank))
	s.WriteBytes(st.Regs[:])
	s.WriteUint32(uint32(st.RasterLine))
	s.WriteUint32(uint32(st.RasterCycle))
	s.WriteUint32(uint32(st.VC))
	s.WriteUint32(uint32(st.VCBase))
	s.WriteUint32(uint32(st.RC))
	s.WriteBool(st.BadLine)
	s.WriteBool(st.DenLatched)
	s.WriteBool(st.BALine)
	s.WriteBool(st.RasterMatched)
	s.WriteBytes(st.VideoMatrixRow[:])
	s.WriteBytes(st.ColorRow[:])
	for _, sp := range st.Sprites {
		s.WriteBool(sp.Active)
		s.WriteUint32(sp.ShiftReg)
	}
}

func readVICState(src *serialization.Source) (vic.State, error) {
	var st vic.State

	model, err := src.ReadUint8()
	if err != nil {
		return st, err
	}
	st.Model = vic.Model(model)

	bank, err := src.ReadUint8()
	if err != nil {
		return st, err
	}
	st.Bank = int(bank)

	regs, err := src.ReadBytes()
	if err != nil {
		return st, err
	}
	copy(st.Regs[:], regs)

	if st.RasterLine, err = readInt32(src); err != nil {
		return st, err
	}
	if st.RasterCycle, err = readInt32(src); err != nil {
		return st, err
	}
	if st.VC, err = readInt32(src); err != nil {
		return st, err
	}
	if st.VCBase, err = readInt32(src); err != nil {
		return st, err
	}
	if st.RC, err = readInt32(src); err != nil {
		return st, err
	}

	if st.BadLine, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.DenLatched, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.BALine, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.RasterMatched, err = src.ReadBool(); err != nil {
		return st, err
	}

	videoMatrixRow, err := src.ReadBytes()
	if err != nil {
		return st, err
	}
	copy(st.VideoMatrixRow[:], videoMatrixRow)

	colorRow, err := src.ReadBytes()
	if err != nil {
		return st, err
	}
	copy(st.ColorRow[:], colorRow)

	for i := range st.Sprites {
		active, err := src.ReadBool()
		if err != nil {
			return st, err
		}
		shiftReg, err := src.ReadUint32()
		if err != nil {
			return st, err
		}
		st.Sprites[i].Active = active
		st.Sprites[i].ShiftReg = shiftReg
	}

	return st, nil
}

func writeCIAState(s *serialization.Sink, st cia.State) {
	s.WriteUint8(st.PortA)
	s.WriteUint8(st.PortB)
	s.WriteUint8(st.DDRA)
	s.WriteUint8(st.DDRB)

	s.WriteUint16(st.TimerALatch)
	s.WriteUint16(st.TimerACounter)
	s.WriteBool(st.TimerARunning)
	s.WriteBool(st.TimerAOneShot)
	s.WriteUint8(uint8(st.TimerAInput))
	s.WriteBool(st.TimerAUnderflowed)
	s.WriteUint16(st.TimerBLatch)
	s.WriteUint16(st.TimerBCounter)
	s.WriteBool(st.TimerBRunning)
	s.WriteBool(st.TimerBOneShot)
	s.WriteUint8(uint8(st.TimerBInput))
	s.WriteBool(st.TimerBUnderflowed)

	s.WriteUint8(st.Tenths)
	s.WriteUint8(st.Seconds)
	s.WriteUint8(st.Minutes)
	s.WriteUint8(st.Hours)
	s.WriteBytes(st.Latched[:])
	s.WriteBool(st.LatchHeld)
	s.WriteBool(st.WriteHoldTenths)
	s.WriteBool(st.Stopped)
	s.WriteBytes(st.Alarm[:])
	s.WriteBool(st.Matched)
	s.WriteBool(st.SixtyHz)

	s.WriteUint8(st.SDR)
	s.WriteUint8(st.ICRData)
	s.WriteUint8(st.ICRMask)
	s.WriteUint8(st.CRBShadow)
	s.WriteUint32(uint32(st.TODPrescaler))
}

func readCIAState(src *serialization.Source) (cia.State, error) {
	var st cia.State
	var err error

	if st.PortA, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.PortB, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.DDRA, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.DDRB, err = src.ReadUint8(); err != nil {
		return st, err
	}

	if st.TimerALatch, err = src.ReadUint16(); err != nil {
		return st, err
	}
	if st.TimerACounter, err = src.ReadUint16(); err != nil {
		return st, err
	}
	if st.TimerARunning, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.TimerAOneShot, err = src.ReadBool(); err != nil {
		return st, err
	}
	input, err := src.ReadUint8()
	if err != nil {
		return st, err
	}
	st.TimerAInput = cia.TimerInputFromByte(input)
	if st.TimerAUnderflowed, err = src.ReadBool(); err != nil {
		return st, err
	}

	if st.TimerBLatch, err = src.ReadUint16(); err != nil {
		return st, err
	}
	if st.TimerBCounter, err = src.ReadUint16(); err != nil {
		return st, err
	}
	if st.TimerBRunning, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.TimerBOneShot, err = src.ReadBool(); err != nil {
		return st, err
	}
	input, err = src.ReadUint8()
	if err != nil {
		return st, err
	}
	st.TimerBInput = cia.TimerInputFromByte(input)
	if st.TimerBUnderflowed, err = src.ReadBool(); err != nil {
		return st, err
	}

	if st.Tenths, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.Seconds, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.Minutes, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.Hours, err = src.ReadUint8(); err != nil {
		return st, err
	}
	latched, err := src.ReadBytes()
	if err != nil {
		return st, err
	}
	copy(st.Latched[:], latched)
	if st.LatchHeld, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.WriteHoldTenths, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.Stopped, err = src.ReadBool(); err != nil {
		return st, err
	}
	alarm, err := src.ReadBytes()
	if err != nil {
		return st, err
	}
	copy(st.Alarm[:], alarm)
	if st.Matched, err = src.ReadBool(); err != nil {
		return st, err
	}
	if st.SixtyHz, err = src.ReadBool(); err != nil {
		return st, err
	}

	if st.SDR, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.ICRData, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.ICRMask, err = src.ReadUint8(); err != nil {
		return st, err
	}
	if st.CRBShadow, err = src.ReadUint8(); err != nil {
		return st, err
	}
	prescaler, err := src.ReadUint32()
	if err != nil {
		return st, err
	}
	st.TODPrescaler = int(prescaler)

	return st, nil
}

func writeSIDState(s *serialization.Sink, st sid.State) {
	s.WriteUint8(uint8(st.Revision))
	s.WriteBool(st.FilterEnabled)
	s.WriteBytes(st.Regs[:])
	s.WriteUint32(st.ClockRate)
	s.WriteUint32(st.SampleRate)
	s.WriteUint32(st.Accum)
}

func readSIDState(src *serialization.Source) (sid.State, error) {
	var st sid.State

	revision, err := src.ReadUint8()
	if err != nil {
		return st, err
	}
	st.Revision = sid.Revision(revision)

	if st.FilterEnabled, err = src.ReadBool(); err != nil {
		return st, err
	}

	regs, err := src.ReadBytes()
	if err != nil {
		return st, err
	}
	copy(st.Regs[:], regs)

	if st.ClockRate, err = src.ReadUint32(); err != nil {
		return st, err
	}
	if st.SampleRate, err = src.ReadUint32(); err != nil {
		return st, err
	}
	if st.Accum, err = src.ReadUint32(); err != nil {
		return st, err
	}

	return st, nil
}

func readInt32(src *serialization.Source) (int, error) {
	v, err := src.ReadUint32()
	return int(v), err
}
