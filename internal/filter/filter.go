// Package filter names the photo filters referenced by media filter_type ids.
package filter

import "strconv"

// Type is a media filter id.
type Type int16

const (
	OES            Type = -2
	YUV            Type = -1
	Normal         Type = 0
	XProII         Type = 1
	LoFi           Type = 2
	Earlybird      Type = 3
	Inkwell        Type = 10
	S1977          Type = 14
	Nashville      Type = 15
	Kelvin         Type = 16
	Mayfair        Type = 17
	Sutro          Type = 18
	Toaster        Type = 19
	Walden         Type = 20
	Hefe           Type = 21
	Brannan        Type = 22
	Rise           Type = 23
	Amaro          Type = 24
	Valencia       Type = 25
	Hudson         Type = 26
	Sierra         Type = 27
	Willow         Type = 28
	Dogpatch       Type = 105
	Vesper         Type = 106
	Ginza          Type = 107
	Charmes        Type = 108
	Stinson        Type = 109
	Moon           Type = 111
	Clarendon      Type = 112
	Skyline        Type = 113
	Gingham        Type = 114
	Brooklyn       Type = 115
	Ashby          Type = 116
	Helena         Type = 117
	Maven          Type = 118
	Ludwig         Type = 603
	Slumber        Type = 605
	Perpetua       Type = 608
	Aden           Type = 612
	Juno           Type = 613
	Reyes          Type = 614
	Lark           Type = 615
	Crema          Type = 616
	BrightContrast Type = 640
	CrazyColor     Type = 642
	SubtleColor    Type = 643
)

var names = map[Type]string{
	OES:            "OES",
	YUV:            "YUV",
	Normal:         "Normal",
	XProII:         "X-Pro II",
	LoFi:           "Lo-Fi",
	Earlybird:      "Earlybird",
	Inkwell:        "Inkwell",
	S1977:          "1977",
	Nashville:      "Nashville",
	Kelvin:         "Kelvin",
	Mayfair:        "Mayfair",
	Sutro:          "Sutro",
	Toaster:        "Toaster",
	Walden:         "Walden",
	Hefe:           "Hefe",
	Brannan:        "Brannan",
	Rise:           "Rise",
	Amaro:          "Amaro",
	Valencia:       "Valencia",
	Hudson:         "Hudson",
	Sierra:         "Sierra",
	Willow:         "Willow",
	Dogpatch:       "Dogpatch",
	Vesper:         "Vesper",
	Ginza:          "Ginza",
	Charmes:        "Charmes",
	Stinson:        "Stinson",
	Moon:           "Moon",
	Clarendon:      "Clarendon",
	Skyline:        "Skyline",
	Gingham:        "Gingham",
	Brooklyn:       "Brooklyn",
	Ashby:          "Ashby",
	Helena:         "Helena",
	Maven:          "Maven",
	Ludwig:         "Ludwig",
	Slumber:        "Slumber",
	Perpetua:       "Perpetua",
	Aden:           "Aden",
	Juno:           "Juno",
	Reyes:          "Reyes",
	Lark:           "Lark",
	Crema:          "Crema",
	BrightContrast: "BrightContrast",
	CrazyColor:     "CrazyColor",
	SubtleColor:    "SubtleColor",
}

// Lookup returns the filter for a raw filter_type id.
func Lookup(code int) (Type, bool) {
	t := Type(code)
	if int(t) != code {
		return 0, false
	}
	_, ok := names[t]
	return t, ok
}

func (t Type) String() string {
	if name, ok := names[t]; ok {
		return name
	}
	return "Type(" + strconv.Itoa(int(t)) + ")"
}
