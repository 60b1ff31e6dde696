package vic

// spriteState is the per-sprite sequencer state sprite itself holds;
// everything else about a sprite (position, colour, expand flags) lives
// in the shared register file and needs no separate capture.
type spriteState struct {
	Active   bool
	ShiftReg uint32
}

// State is every field needed to resume a VIC-II mid-raster: the
// register file alone isn't enough, since the raster beam's own
// position and the badline/sequencer latches it has accumulated since
// the last register write aren't visible through Peek.
type State struct {
	Model Model
	Bank  int

	Regs [0x2F]uint8

	RasterLine  int
	RasterCycle int

	VC, VCBase int
	RC         int

	BadLine       bool
	DenLatched    bool
	BALine        bool
	RasterMatched bool

	VideoMatrixRow [40]uint8
	ColorRow       [40]uint8

	Sprites [8]spriteState
}

// Snapshot captures the VIC's complete internal state.
func (v *VIC) Snapshot() State {
	s := State{
		Model: v.model,
		Bank:  v.bank,

		Regs: v.regs,

		RasterLine:  v.rasterLine,
		RasterCycle: v.rasterCycle,

		VC: v.vc, VCBase: v.vcbase,
		RC: v.rc,

		BadLine:       v.badLine,
		DenLatched:    v.denLatched,
		BALine:        v.baLine,
		RasterMatched: v.rasterMatched,

		VideoMatrixRow: v.videoMatrixRow,
		ColorRow:       v.colorRow,
	}
	for i, sp := range v.sprites {
		s.Sprites[i] = spriteState{Active: sp.active, ShiftReg: sp.shiftReg}
	}
	return s
}

// Restore replaces the VIC's internal state with a previously captured
// State, rebuilding the per-cycle dispatch table for the restored
// model.
func (v *VIC) Restore(s State) {
	v.Configure(s.Model)
	v.bank = s.Bank

	v.regs = s.Regs

	v.rasterLine = s.RasterLine
	v.rasterCycle = s.RasterCycle

	v.vc, v.vcbase = s.VC, s.VCBase
	v.rc = s.RC

	v.badLine = s.BadLine
	v.denLatched = s.DenLatched
	v.baLine = s.BALine
	v.rasterMatched = s.RasterMatched

	v.videoMatrixRow = s.VideoMatrixRow
	v.colorRow = s.ColorRow

	for i, sp := range s.Sprites {
		v.sprites[i].active = sp.Active
		v.sprites[i].shiftReg = sp.ShiftReg
	}
}
