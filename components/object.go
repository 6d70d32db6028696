package components

import "github.com/yohamta/donburi"

// ObjectData marks a static world object.
type ObjectData struct {
	Kind string
}

var Object = donburi.NewComponentType[ObjectData]()
