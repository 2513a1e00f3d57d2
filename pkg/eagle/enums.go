package eagle

import "github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/codec"

// Unit is a measurement unit used by grids and dimensions
type Unit int

const (
	UnitMic Unit = iota
	UnitMM
	UnitMil
	UnitInch
)

var unitNames = codec.NewEnum(map[Unit]string{
	UnitMic:  "mic",
	UnitMM:   "mm",
	UnitMil:  "mil",
	UnitInch: "inch",
})

func (u Unit) String() string { return unitNames.Name(u) }

// ParseUnit converts a token to a Unit
func ParseUnit(s string) (Unit, bool) { return unitNames.Lookup(s) }

// GridStyle is how the grid is displayed
type GridStyle int

const (
	GridStyleLines GridStyle = iota
	GridStyleDots
)

var gridStyleNames = codec.NewEnum(map[GridStyle]string{
	GridStyleLines: "lines",
	GridStyleDots:  "dots",
})

func (s GridStyle) String() string { return gridStyleNames.Name(s) }

// VerticalText is the reading direction of vertical text
type VerticalText int

const (
	VerticalTextUp VerticalText = iota
	VerticalTextDown
)

var verticalTextNames = codec.NewEnum(map[VerticalText]string{
	VerticalTextUp:   "up",
	VerticalTextDown: "down",
})

func (v VerticalText) String() string { return verticalTextNames.Name(v) }

// WireStyle is the dash pattern of a wire
type WireStyle int

const (
	WireStyleContinuous WireStyle = iota
	WireStyleLongDash
	WireStyleShortDash
	WireStyleDashDot
)

var wireStyleNames = codec.NewEnum(map[WireStyle]string{
	WireStyleContinuous: "continuous",
	WireStyleLongDash:   "longdash",
	WireStyleShortDash:  "shortdash",
	WireStyleDashDot:    "dashdot",
})

func (s WireStyle) String() string { return wireStyleNames.Name(s) }

// ParseWireStyle converts a token to a WireStyle
func ParseWireStyle(s string) (WireStyle, bool) { return wireStyleNames.Lookup(s) }

// WireCap is the end cap of an arc
type WireCap int

const (
	WireCapFlat WireCap = iota
	WireCapRound
)

var wireCapNames = codec.NewEnum(map[WireCap]string{
	WireCapFlat:  "flat",
	WireCapRound: "round",
})

func (c WireCap) String() string { return wireCapNames.Name(c) }

// DimensionType selects what a dimension measures
type DimensionType int

const (
	DimensionParallel DimensionType = iota
	DimensionHorizontal
	DimensionVertical
	DimensionRadius
	DimensionDiameter
	DimensionLeader
)

var dimensionTypeNames = codec.NewEnum(map[DimensionType]string{
	DimensionParallel:   "parallel",
	DimensionHorizontal: "horizontal",
	DimensionVertical:   "vertical",
	DimensionRadius:     "radius",
	DimensionDiameter:   "diameter",
	DimensionLeader:     "leader",
})

func (d DimensionType) String() string { return dimensionTypeNames.Name(d) }

// Font is a text font
type Font int

const (
	FontVector Font = iota
	FontProportional
	FontFixed
)

var fontNames = codec.NewEnum(map[Font]string{
	FontVector:       "vector",
	FontProportional: "proportional",
	FontFixed:        "fixed",
})

func (f Font) String() string { return fontNames.Name(f) }

// Align is the anchor point of a text
type Align int

const (
	AlignBottomLeft Align = iota
	AlignBottomCenter
	AlignBottomRight
	AlignCenterLeft
	AlignCenter
	AlignCenterRight
	AlignTopLeft
	AlignTopCenter
	AlignTopRight
)

var alignNames = codec.NewEnum(map[Align]string{
	AlignBottomLeft:   "bottom-left",
	AlignBottomCenter: "bottom-center",
	AlignBottomRight:  "bottom-right",
	AlignCenterLeft:   "center-left",
	AlignCenter:       "center",
	AlignCenterRight:  "center-right",
	AlignTopLeft:      "top-left",
	AlignTopCenter:    "top-center",
	AlignTopRight:     "top-right",
})

func (a Align) String() string { return alignNames.Name(a) }

// PadShape is the copper shape of a through-hole pad
type PadShape int

const (
	PadShapeSquare PadShape = iota
	PadShapeRound
	PadShapeOctagon
	PadShapeLong
	PadShapeOffset
)

var padShapeNames = codec.NewEnum(map[PadShape]string{
	PadShapeSquare:  "square",
	PadShapeRound:   "round",
	PadShapeOctagon: "octagon",
	PadShapeLong:    "long",
	PadShapeOffset:  "offset",
})

func (s PadShape) String() string { return padShapeNames.Name(s) }

// ParsePadShape converts a token to a PadShape
func ParsePadShape(s string) (PadShape, bool) { return padShapeNames.Lookup(s) }

// ViaShape is the copper shape of a via
type ViaShape int

const (
	ViaShapeSquare ViaShape = iota
	ViaShapeRound
	ViaShapeOctagon
)

var viaShapeNames = codec.NewEnum(map[ViaShape]string{
	ViaShapeSquare:  "square",
	ViaShapeRound:   "round",
	ViaShapeOctagon: "octagon",
})

func (s ViaShape) String() string { return viaShapeNames.Name(s) }

// PinVisible selects which pin labels are shown
type PinVisible int

const (
	PinVisibleOff PinVisible = iota
	PinVisiblePad
	PinVisiblePin
	PinVisibleBoth
)

var pinVisibleNames = codec.NewEnum(map[PinVisible]string{
	PinVisibleOff:  "off",
	PinVisiblePad:  "pad",
	PinVisiblePin:  "pin",
	PinVisibleBoth: "both",
})

func (v PinVisible) String() string { return pinVisibleNames.Name(v) }

// PinLength is the drawn length of a pin
type PinLength int

const (
	PinLengthPoint PinLength = iota
	PinLengthShort
	PinLengthMiddle
	PinLengthLong
)

var pinLengthNames = codec.NewEnum(map[PinLength]string{
	PinLengthPoint:  "point",
	PinLengthShort:  "short",
	PinLengthMiddle: "middle",
	PinLengthLong:   "long",
})

func (l PinLength) String() string { return pinLengthNames.Name(l) }

// PinDirection is the electrical direction of a pin
type PinDirection int

const (
	PinDirectionNC PinDirection = iota
	PinDirectionIn
	PinDirectionOut
	PinDirectionIO
	PinDirectionOC
	PinDirectionPower
	PinDirectionPassive
	PinDirectionHiZ
	PinDirectionSupply
)

var pinDirectionNames = codec.NewEnum(map[PinDirection]string{
	PinDirectionNC:      "nc",
	PinDirectionIn:      "in",
	PinDirectionOut:     "out",
	PinDirectionIO:      "io",
	PinDirectionOC:      "oc",
	PinDirectionPower:   "pwr",
	PinDirectionPassive: "pas",
	PinDirectionHiZ:     "hiz",
	PinDirectionSupply:  "sup",
})

func (d PinDirection) String() string { return pinDirectionNames.Name(d) }

// PinFunction is the graphical decoration of a pin
type PinFunction int

const (
	PinFunctionNone PinFunction = iota
	PinFunctionDot
	PinFunctionClk
	PinFunctionDotClk
)

var pinFunctionNames = codec.NewEnum(map[PinFunction]string{
	PinFunctionNone:   "none",
	PinFunctionDot:    "dot",
	PinFunctionClk:    "clk",
	PinFunctionDotClk: "dotclk",
})

func (f PinFunction) String() string { return pinFunctionNames.Name(f) }

// AddLevel controls when a gate is placed
type AddLevel int

const (
	AddLevelMust AddLevel = iota
	AddLevelCan
	AddLevelNext
	AddLevelRequest
	AddLevelAlways
)

var addLevelNames = codec.NewEnum(map[AddLevel]string{
	AddLevelMust:    "must",
	AddLevelCan:     "can",
	AddLevelNext:    "next",
	AddLevelRequest: "request",
	AddLevelAlways:  "always",
})

func (a AddLevel) String() string { return addLevelNames.Name(a) }

// Route selects whether all or any of several pads must be connected
type Route int

const (
	RouteAll Route = iota
	RouteAny
)

var routeNames = codec.NewEnum(map[Route]string{
	RouteAll: "all",
	RouteAny: "any",
})

func (r Route) String() string { return routeNames.Name(r) }

// AttributeDisplay selects which parts of an attribute are drawn
type AttributeDisplay int

const (
	DisplayOff AttributeDisplay = iota
	DisplayValue
	DisplayName
	DisplayBoth
)

var attributeDisplayNames = codec.NewEnum(map[AttributeDisplay]string{
	DisplayOff:   "off",
	DisplayValue: "value",
	DisplayName:  "name",
	DisplayBoth:  "both",
})

func (d AttributeDisplay) String() string { return attributeDisplayNames.Name(d) }

// Pour is the fill mode of a polygon
type Pour int

const (
	PourSolid Pour = iota
	PourHatch
	PourCutout
)

var pourNames = codec.NewEnum(map[Pour]string{
	PourSolid:  "solid",
	PourHatch:  "hatch",
	PourCutout: "cutout",
})

func (p Pour) String() string { return pourNames.Name(p) }

// Severity is the level of a compatibility note
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

var severityNames = codec.NewEnum(map[Severity]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
})

func (s Severity) String() string { return severityNames.Name(s) }

// Mode tells which of the library, schematic and board subtrees a
// drawing carries
type Mode int

const (
	ModeLibrary Mode = iota
	ModeSchematic
	ModeBoard
	ModeMixed
)

var modeNames = codec.NewEnum(map[Mode]string{
	ModeLibrary:   "library",
	ModeSchematic: "schematic",
	ModeBoard:     "board",
	ModeMixed:     "mixed",
})

func (m Mode) String() string { return modeNames.Name(m) }
