package factory

import (
	"github.com/automoto/foxfield/archetypes"
	"github.com/automoto/foxfield/components"
	cfg "github.com/automoto/foxfield/config"
	"github.com/automoto/foxfield/shared/collision"
	"github.com/automoto/foxfield/shared/netcomponents"
	"github.com/yohamta/donburi"
)

// CreateObstacle spawns a static world object. Obstacles are never moved or
// removed during a session.
func CreateObstacle(world donburi.World, o collision.Obstacle) *donburi.Entry {
	obj := archetypes.Obstacle.Spawn(world)

	netcomponents.Pose.SetValue(obj, netcomponents.PoseData{
		X:       o.Position.X,
		Y:       cfg.Movement.GroundY,
		Z:       o.Position.Z,
		Heading: o.Heading,
	})
	netcomponents.Shape.SetValue(obj, o.Shape)
	components.Object.SetValue(obj, components.ObjectData{Kind: o.Kind})

	return obj
}

// CreateObstacles spawns every obstacle in list.
func CreateObstacles(world donburi.World, list []collision.Obstacle) {
	for _, o := range list {
		CreateObstacle(world, o)
	}
}
