package config

import "github.com/flintgame/flint/shared/netconfig"

// Type aliases so client code can keep using config.StateID.
type StateID = netconfig.StateID

const (
	StateNone = netconfig.StateNone
	Idle      = netconfig.Idle
	Running   = netconfig.Running
)

var StateToFileName = netconfig.StateToFileName
