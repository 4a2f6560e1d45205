package config

type AnimationDef struct {
	First int
	Last  int
	Step  int
	Speed float32
}

// CharacterAnimations maps a sprite key to its flipbooks.
var CharacterAnimations = map[string]map[StateID]AnimationDef{
	"flint": {
		Idle:    {First: 0, Last: 3, Step: 1, Speed: 8},
		Running: {First: 0, Last: 5, Step: 1, Speed: 4},
	},
}
