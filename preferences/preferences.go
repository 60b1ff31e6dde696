package preferences

import "github.com/blar/virtualc64/curated"

// Preferences aggregates every configuration option named in spec.md
// section 6's configure(option, value) surface.
type Preferences struct {
	disk *Disk

	VICModel           *Value[string]
	GlueLogic          *Value[string]
	CIARevision        *Value[string]
	SIDRevision        *Value[string]
	SIDFilter          *Value[bool]
	SIDEngine          *Value[string]
	SIDSampling        *Value[string]
	RAMPattern         *Value[string]
	DriveConnect       *Value[bool]
	DriveType          *Value[string]
	DrivePowerSave     *Value[bool]
	WarpLoad           *Value[bool]
	EmulateDriveSound  *Value[bool]
	AutoSnapshots      *Value[bool]
	AutoSnapshotInterval *Value[int]
}

// NewPreferences constructs a Preferences with every option set to its
// hardware-accurate default and, if path is non-empty, registers them
// against a Disk at that path (call Load/Save explicitly).
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{
		VICModel:             NewEnum("PAL_6569", "PAL_6569", "NTSC_6567", "PAL_8565", "NTSC_8562"),
		GlueLogic:            NewEnum("DISCRETE", "DISCRETE", "CUSTOM_IC"),
		CIARevision:          NewEnum("6526", "6526", "6526A"),
		SIDRevision:          NewEnum("6581", "6581", "8580"),
		SIDFilter:            NewBool(true),
		SIDEngine:            NewEnum("RESID", "FAST", "RESID"),
		SIDSampling:          NewEnum("INTERPOLATE", "FAST", "INTERPOLATE", "RESAMPLE"),
		RAMPattern:           NewEnum("C64", "C64", "INIT_C64C"),
		DriveConnect:         NewBool(true),
		DriveType:            NewEnum("VC1541_II", "VC1541_II"),
		DrivePowerSave:       NewBool(false),
		WarpLoad:             NewBool(false),
		EmulateDriveSound:    NewBool(false),
		AutoSnapshots:        NewBool(false),
		AutoSnapshotInterval: NewInt(180),
	}

	if path != "" {
		d, err := NewDisk(path)
		if err != nil {
			return nil, err
		}
		p.disk = d
		_ = p.disk.Add("VIC_MODEL", p.VICModel)
		_ = p.disk.Add("GLUE_LOGIC", p.GlueLogic)
		_ = p.disk.Add("CIA_REVISION", p.CIARevision)
		_ = p.disk.Add("SID_REVISION", p.SIDRevision)
		_ = p.disk.Add("SID_FILTER", p.SIDFilter)
		_ = p.disk.Add("SID_ENGINE", p.SIDEngine)
		_ = p.disk.Add("SID_SAMPLING", p.SIDSampling)
		_ = p.disk.Add("RAM_PATTERN", p.RAMPattern)
		_ = p.disk.Add("DRIVE_CONNECT", p.DriveConnect)
		_ = p.disk.Add("DRIVE_TYPE", p.DriveType)
		_ = p.disk.Add("DRIVE_POWER_SAVE", p.DrivePowerSave)
		_ = p.disk.Add("WARP_LOAD", p.WarpLoad)
		_ = p.disk.Add("EMULATE_DRIVE_SOUND", p.EmulateDriveSound)
		_ = p.disk.Add("AUTO_SNAPSHOTS", p.AutoSnapshots)
		_ = p.disk.Add("AUTO_SNAPSHOT_INTERVAL", p.AutoSnapshotInterval)
	}

	return p, nil
}

// SetDefaults resets every option to its default value.
func (p *Preferences) SetDefaults() {
	p.VICModel.SetDefaults()
	p.GlueLogic.SetDefaults()
	p.CIARevision.SetDefaults()
	p.SIDRevision.SetDefaults()
	p.SIDFilter.SetDefaults()
	p.SIDEngine.SetDefaults()
	p.SIDSampling.SetDefaults()
	p.RAMPattern.SetDefaults()
	p.DriveConnect.SetDefaults()
	p.DriveType.SetDefaults()
	p.DrivePowerSave.SetDefaults()
	p.WarpLoad.SetDefaults()
	p.EmulateDriveSound.SetDefaults()
	p.AutoSnapshots.SetDefaults()
	p.AutoSnapshotInterval.SetDefaults()
}

// Save persists every option, if this Preferences was constructed with a
// non-empty path.
func (p *Preferences) Save() error {
	if p.disk == nil {
		return nil
	}
	return p.disk.Save()
}

// Load reads every option from disk, if this Preferences was constructed
// with a non-empty path.
func (p *Preferences) Load() error {
	if p.disk == nil {
		return nil
	}
	return p.disk.Load()
}

// Configure implements the configure(option, value) surface described in
// spec.md section 6. It returns a curated error (recoverable-config
// category: no state change on failure) for an unknown option or an
// invalid value.
func (p *Preferences) Configure(option, value string) error {
	var v interface {
		Set(string) error
	}

	switch option {
	case "VIC_MODEL":
		v = p.VICModel
	case "GLUE_LOGIC":
		v = p.GlueLogic
	case "CIA_REVISION":
		v = p.CIARevision
	case "SID_REVISION":
		v = p.SIDRevision
	case "SID_FILTER":
		v = p.SIDFilter
	case "SID_ENGINE":
		v = p.SIDEngine
	case "SID_SAMPLING":
		v = p.SIDSampling
	case "RAM_PATTERN":
		v = p.RAMPattern
	case "DRIVE_CONNECT":
		v = p.DriveConnect
	case "DRIVE_TYPE":
		v = p.DriveType
	case "DRIVE_POWER_SAVE":
		v = p.DrivePowerSave
	case "WARP_LOAD":
		v = p.WarpLoad
	case "EMULATE_DRIVE_SOUND":
		v = p.EmulateDriveSound
	case "AUTO_SNAPSHOTS":
		v = p.AutoSnapshots
	case "AUTO_SNAPSHOT_INTERVAL":
		v = p.AutoSnapshotInterval
	default:
		return curated.Errorf(curated.ErrInvalidConfigOption, option)
	}

	if err := v.Set(value); err != nil {
		return curated.Errorf(curated.ErrInvalidConfigValue, value, option)
	}
	return nil
}
