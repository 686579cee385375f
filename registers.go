// registers.go - centralized I/O register address map
//
// This file is documentation, not code: the 6507's 13-bit address bus (A13-
// A15 unbonded, so the CPU only ever drives 0x0000-0x1FFF) decodes into three
// windows. Individual chips define their own register constants in
// *_constants.go / the register blocks at the top of riot.go.
//
//	Address range      Size    Device                Constants
//	-------------------------------------------------------------------
//	0x0000-0x007F      128B    VAC registers         vac_constants.go
//	0x0080-0x00FF      128B    RIOT RAM              riot.go
//	0x0180-0x01FF      128B    RIOT RAM mirror       memorymap.go
//	0x0280-0x0297      24B     RIOT peripheral/timer riot.go
//	0x0380-0x0397      24B     RIOT peripheral mirror memorymap.go
//	0x1000-0x1FFF      4KB     Cartridge ROM window  cartridge.go
//
// Everything else in the 13-bit space is unmapped and reads as zero.
// memorymap.go owns the actual decode logic; this comment exists so a
// reader can find a register's owning file without grepping five others.

package main
