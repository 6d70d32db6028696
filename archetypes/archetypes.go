package archetypes

import (
	"github.com/automoto/foxfield/components"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/automoto/foxfield/tags"
	"github.com/yohamta/donburi"
)

var (
	LocalPlayer = newArchetype(
		tags.LocalPlayer,
		components.LocalPlayer,
		netcomponents.Pose,
		netcomponents.Intent,
		netcomponents.Shape,
	)
	RemotePlayer = newArchetype(
		tags.RemotePlayer,
		components.Remote,
		components.NetInterp,
		netcomponents.Pose,
		netcomponents.Shape,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		netcomponents.Pose,
		netcomponents.Shape,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(world donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return world.Entry(world.Create(all...))
}
