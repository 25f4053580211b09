package types

// HardwareAddress represents the address of a hardware
// register of the Game Boy. The hardware IO are mapped
// to memory addresses 0xFF00 - 0xFF7F & 0xFFFF.
type HardwareAddress = uint16

const (
	// LCDC is the address of the LCDC hardware register. The LCDC
	// hardware register selects the tile data and tile map areas
	// consumed by the compositor.
	//
	//  Bit 7: LCD Display Enable             (0=Off, 1=On)
	//  Bit 4: BG & Window Tile Data Select   (0=8800-97FF, 1=8000-8FFF)
	//  Bit 3: BG Tile Map Display Select     (0=9800-9BFF, 1=9C00-9FFF)
	//  Bit 0: BG Display                     (0=Off, 1=On)
	LCDC HardwareAddress = 0xFF40
	// SCY is the address of the SCY hardware register, the Y position
	// of the background within the 256x256 background map.
	SCY HardwareAddress = 0xFF42
	// SCX is the address of the SCX hardware register, the X position
	// of the background within the 256x256 background map.
	SCX HardwareAddress = 0xFF43
	// LY is the address of the LY hardware register. LY indicates
	// the vertical line currently being drawn, taking values 0-153.
	// Writing to LY from the CPU resets it to 0; the frame driver
	// advances it with a direct write.
	LY HardwareAddress = 0xFF44
	// BGP is the address of the BGP hardware register, which maps
	// the 4 background colour numbers to shades.
	BGP HardwareAddress = 0xFF47
	// IE is the address of the interrupt enable register.
	IE HardwareAddress = 0xFFFF
)

// Memory map boundaries.
const (
	// ROMBank0End is the first address past the fixed ROM bank.
	ROMBank0End uint16 = 0x4000
	// ROMEnd is the first address past the cartridge ROM window.
	ROMEnd uint16 = 0x8000
	// BankSelectStart is the first address of the ROM bank select register.
	BankSelectStart uint16 = 0x2000
	// WRAMStart is the first address of work RAM.
	WRAMStart uint16 = 0xC000
	// EchoStart is the first address of the echo of work RAM.
	EchoStart uint16 = 0xE000
	// EchoEnd is the last address of the echo of work RAM.
	EchoEnd uint16 = 0xFDFF
)

// Video memory.
const (
	// TileData0 is the tile data area addressed by unsigned indices.
	TileData0 uint16 = 0x8000
	// TileData1 is the base of the tile data area addressed by signed
	// indices, covering 0x8800 - 0x97FF.
	TileData1 uint16 = 0x9000
	// TileMap0 and TileMap1 are the two 32x32 background tile maps.
	TileMap0 uint16 = 0x9800
	TileMap1 uint16 = 0x9C00
)

// ROMBankSize is the size of a single switchable ROM bank.
const ROMBankSize = 0x4000
