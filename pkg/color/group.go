package color

// Group identifies the set of colors a multi color routine draws from.
// GroupCustom is the user-settable array, GroupAll is generated randomly
// on every selection, everything in between is an immutable preset.
type Group int

const (
	GroupCustom Group = iota
	GroupWater
	GroupFrozen
	GroupSnow
	GroupCool
	GroupWarm
	GroupFire
	GroupEvil
	GroupCorrosive
	GroupPoison
	GroupRose
	GroupPinkGreen
	GroupRedWhiteBlue
	GroupRGB
	GroupCMY
	GroupSixColor
	GroupSevenColor
	GroupAll

	groupMax
)

// ClampGroup forces an out-of-range group identifier to the nearest
// valid value instead of failing.
func ClampGroup(g Group) Group {
	if g < GroupCustom {
		return GroupCustom
	}
	if g >= groupMax {
		return groupMax - 1
	}
	return g
}

// GroupCount returns the number of known color groups.
func GroupCount() int {
	return int(groupMax)
}

// ParseGroup maps a group name back to its identifier.
func ParseGroup(s string) (Group, bool) {
	for g := GroupCustom; g < groupMax; g++ {
		if g.String() == s {
			return g, true
		}
	}
	return GroupCustom, false
}

func (g Group) String() string {
	names := [...]string{
		"custom", "water", "frozen", "snow", "cool", "warm", "fire",
		"evil", "corrosive", "poison", "rose", "pink_green",
		"red_white_blue", "rgb", "cmy", "six_color", "seven_color", "all",
	}
	if g < 0 || int(g) >= len(names) {
		return "unknown"
	}
	return names[g]
}
