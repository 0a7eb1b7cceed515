// core/pngfile/types.go
package pngfile

// Critical chunk types.
const (
	TypeIHDR = "IHDR"
	TypePLTE = "PLTE"
	TypeIDAT = "IDAT"
	TypeIEND = "IEND"
)

// Text-bearing ancillary chunk types.
const (
	TypeTEXt = "tEXt"
	TypeZTXt = "zTXt"
	TypeITXt = "iTXt"
)

// knownTypes lists the chunk types registered by the PNG spec plus the
// common vendor ones seen in the wild (eXIf, Apple's iDOT, sTER).
var knownTypes = map[string]bool{
	TypeIHDR: true, TypePLTE: true, TypeIDAT: true, TypeIEND: true,
	"bKGD": true, "cHRM": true, "dSIG": true, "eXIf": true,
	"gAMA": true, "hIST": true, "iCCP": true, "iDOT": true,
	TypeITXt: true, "pHYs": true, "sBIT": true, "sPLT": true,
	"sRGB": true, "sTER": true, TypeTEXt: true, "tIME": true,
	"tRNS": true, TypeZTXt: true,
}

// Known reports whether typ is a registered chunk type. Unknown types are
// still scanned and skipped; they are never a format error.
func Known(typ string) bool { return knownTypes[typ] }

// Ancillary reports whether typ is an ancillary chunk (lowercase first
// letter per the PNG property-bit convention).
func Ancillary(typ string) bool {
	return len(typ) == 4 && typ[0] >= 'a' && typ[0] <= 'z'
}
