package main

import (
	"github.com/blar/virtualc64/hardware/memory/addresses"
	"github.com/blar/virtualc64/hardware/memory/memorymap"
)

// Read implements bus.CPUBus for the 6510: the processor port at
// $0000/$0001, then whatever the memory map's PLA decodes the rest of
// the address to.
func (m *c64) Read(addr uint16) uint8 {
	switch addr {
	case addresses.CPUPortDDR:
		m.lastBus = m.portDDR
		return m.lastBus
	case addresses.CPUPortData:
		m.lastBus = m.portData | ^m.portDDR
		return m.lastBus
	}

	switch m.pla.ReadSource(addr) {
	case memorymap.SourceRAM:
		m.lastBus = m.ram.Read(addr)
	case memorymap.SourceBasicROM:
		m.lastBus = m.basic.Read(addr - addresses.BasicROMBase)
	case memorymap.SourceKernalROM:
		m.lastBus = m.kernal.Read(addr - addresses.KernalROMBase)
	case memorymap.SourceCharROM:
		m.lastBus = m.char.Read(addr - addresses.CharROMBase)
	case memorymap.SourceCartLo:
		m.lastBus = m.cart.ReadLo(addr - 0x8000)
	case memorymap.SourceCartHi:
		if addr >= 0xE000 {
			m.lastBus = m.cart.ReadHi(addr - 0xE000)
		} else {
			m.lastBus = m.cart.ReadHi(addr - 0xA000)
		}
	case memorymap.SourceIO:
		m.lastBus = m.readIO(addr)
	default: // SourceUnmapped: an open bus reads back whatever was last
		// driven onto it, so nothing new is latched here.
	}
	return m.lastBus
}

// Write implements bus.CPUBus. Writes never target ROM (the memory
// map's WriteSource already resolves to the RAM underneath it); a
// cartridge still sees ROM-window writes via WriteLo/WriteHi, for flash
// and bank registers mapped into that window.
func (m *c64) Write(addr uint16, data uint8) {
	switch addr {
	case addresses.CPUPortDDR:
		m.portDDR = data
		m.pla.UpdatePLA(m.plaConfig())
		return
	case addresses.CPUPortData:
		m.portData = data
		m.pla.UpdatePLA(m.plaConfig())
		return
	}

	switch m.pla.WriteSource(addr) {
	case memorymap.SourceRAM:
		m.ram.Write(addr, data)
		switch {
		case addr >= 0x8000 && addr < 0xA000:
			m.cart.WriteLo(addr-0x8000, data)
		case addr >= 0xA000 && addr < 0xC000:
			m.cart.WriteHi(addr-0xA000, data)
		case addr >= 0xE000:
			m.cart.WriteHi(addr-0xE000, data)
		}
	case memorymap.SourceCartLo:
		m.cart.WriteLo(addr-0x8000, data)
	case memorymap.SourceCartHi:
		if addr >= 0xE000 {
			m.cart.WriteHi(addr-0xE000, data)
		} else {
			m.cart.WriteHi(addr-0xA000, data)
		}
	case memorymap.SourceIO:
		m.writeIO(addr, data)
	}
}

// readIO dispatches the $D000-$DFFF window to whichever chip's mirrored
// register block addr falls in.
func (m *c64) readIO(addr uint16) uint8 {
	switch {
	case addr >= addresses.VICBase && addr < addresses.VICBase+addresses.VICMirrorLen:
		return m.vic.Peek(addr)
	case addr >= addresses.SIDBase && addr < addresses.SIDBase+addresses.SIDMirrorLen:
		return m.sid.Peek(addr)
	case addr >= addresses.ColorRAMBase && addr < addresses.ColorRAMBase+addresses.ColorRAMLen:
		return m.colorRAM.Read(addr-addresses.ColorRAMBase, m.lastBus)
	case addr >= addresses.CIA1Base && addr < addresses.CIA1Base+addresses.CIA1MirrorLen:
		return m.cia1.Read(uint8(addr))
	case addr >= addresses.CIA2Base && addr < addresses.CIA2Base+addresses.CIA2MirrorLen:
		return m.cia2.Read(uint8(addr))
	default: // IO1/IO2: the cartridge expansion registers have no read side.
		return m.lastBus
	}
}

func (m *c64) writeIO(addr uint16, data uint8) {
	switch {
	case addr >= addresses.VICBase && addr < addresses.VICBase+addresses.VICMirrorLen:
		m.vic.Poke(addr, data)
	case addr >= addresses.SIDBase && addr < addresses.SIDBase+addresses.SIDMirrorLen:
		m.sid.Poke(addr, data)
	case addr >= addresses.ColorRAMBase && addr < addresses.ColorRAMBase+addresses.ColorRAMLen:
		m.colorRAM.Write(addr-addresses.ColorRAMBase, data)
	case addr >= addresses.CIA1Base && addr < addresses.CIA1Base+addresses.CIA1MirrorLen:
		m.cia1.Write(uint8(addr), data)
	case addr >= addresses.CIA2Base && addr < addresses.CIA2Base+addresses.CIA2MirrorLen:
		m.cia2.Write(uint8(addr), data)
		m.vicBankFromCIA2()
		m.iecBus.Recompute()
	case addr >= addresses.IO1Base && addr < addresses.IO1Base+addresses.IO1Len:
		m.cart.Poke(addr-addresses.IO1Base, data)
	case addr >= addresses.IO2Base && addr < addresses.IO2Base+addresses.IO2Len:
		m.cart.Poke(addr-addresses.IO1Base, data)
	}
}

// Peek implements bus.DebuggerBus: a side-effect-free read for the
// monitor and snapshot diffing. It resolves through the same PLA
// decode as Read for RAM/ROM/cartridge windows, but never touches a
// chip register (CIA's ICR clear-on-read, VIC's collision-latch
// clear-on-read), so watching an I/O address always reads back
// whatever was last driven onto the bus rather than disturbing it.
func (m *c64) Peek(addr uint16) uint8 {
	switch addr {
	case addresses.CPUPortDDR:
		return m.portDDR
	case addresses.CPUPortData:
		return m.portData | ^m.portDDR
	}

	switch m.pla.ReadSource(addr) {
	case memorymap.SourceRAM:
		return m.ram.Read(addr)
	case memorymap.SourceBasicROM:
		return m.basic.Read(addr - addresses.BasicROMBase)
	case memorymap.SourceKernalROM:
		return m.kernal.Read(addr - addresses.KernalROMBase)
	case memorymap.SourceCharROM:
		return m.char.Read(addr - addresses.CharROMBase)
	case memorymap.SourceCartLo:
		return m.cart.ReadLo(addr - 0x8000)
	case memorymap.SourceCartHi:
		if addr >= 0xE000 {
			return m.cart.ReadHi(addr - 0xE000)
		}
		return m.cart.ReadHi(addr - 0xA000)
	default:
		return m.lastBus
	}
}

// Poke implements bus.DebuggerBus by writing straight into the
// underlying RAM array, bypassing the PLA's write decode and any
// chip's register side effects — the same "write behind the banking"
// convenience a hardware monitor's memory editor relies on.
func (m *c64) Poke(addr uint16, data uint8) {
	m.ram.Write(addr, data)
}

// vicBankFromCIA2 re-derives VIC's bank selection from CIA2 port A bits
// 0-1, inverted (the real 74LS257 multiplexer these bits feed treats 0
// as "selected").
func (m *c64) vicBankFromCIA2() {
	m.vic.SetBank(int(^m.cia2.OutputA()) & 0x03)
}
