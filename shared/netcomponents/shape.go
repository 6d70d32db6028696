package netcomponents

import (
	"github.com/automoto/foxfield/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Shape is the unrotated footprint of an entity. It is set once at spawn.
var Shape = donburi.NewComponentType[gamemath.Shape]()
