package chess

type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}
	return ""
}

type JointID struct {
	Row int
	Col int
}

// Joint is a corner of the grid. Its flags are only used to pick a sprite.
type Joint struct {
	North bool
	East  bool
	South bool
	West  bool
}

func (j *Joint) SetWallClicked(d Direction) {
	switch d {
	case North:
		j.North = true
	case East:
		j.East = true
	case South:
		j.South = true
	case West:
		j.West = true
	}
}

// Mask packs the flags as N=8, E=4, S=2, W=1.
func (j Joint) Mask() (mask int) {
	for _, clicked := range [...]bool{j.North, j.East, j.South, j.West} {
		mask <<= 1
		if clicked {
			mask |= 1
		}
	}
	return
}
