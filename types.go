package goBcrypt

import (
	"github.com/MrEthical07/goBcrypt/password"
)

const (
	// MinCost is the lowest work factor accepted by [Engine.SubmitHash].
	MinCost = password.MinCost
	// MaxCost is the highest work factor accepted by [Engine.SubmitHash].
	MaxCost = password.MaxCost
)

// Receiver is a caller context registered through [Engine.Attach]. A
// receiver that also implements [HashReceiver] gets hash results; one
// that also implements [CheckReceiver] gets check results. Results for
// an interface the receiver does not implement are skipped silently.
//
// Delivery is broadcast: every attached receiver is offered every result
// regardless of which context submitted the job. Receivers filter by
// comparing the contextIdx and correlationID they chose at submission.
type Receiver interface{}

// HashReceiver receives completed hash jobs during [Engine.Tick].
type HashReceiver interface {
	OnBcryptHashed(contextIdx, correlationID int, hash string)
}

// CheckReceiver receives completed check jobs during [Engine.Tick].
type CheckReceiver interface {
	OnBcryptChecked(contextIdx, correlationID int, match bool)
}
