package components

import (
	"github.com/flintgame/flint/shared/ability"
	"github.com/flintgame/flint/shared/charsim"
	"github.com/yohamta/donburi"
)

// CharacterData binds the ability rules to the body they drive.
type CharacterData struct {
	Name    string
	Ability *ability.State
	Body    *charsim.Body
	Intent  charsim.Intent // movement requested for the next step
	Local   int            // local player slot, -1 for none
}

var Character = donburi.NewComponentType[CharacterData]()
