package runner

import (
	"sync"

	"github.com/acrankyturtle/keypad-test/internal/constants"
	"github.com/acrankyturtle/keypad-test/profile"
)

// channelSetPool recycles the transient channel-cut scratch slice built
// on every Engine.PressKey call: a pointer-to-slice sync.Pool to dodge
// the interface-boxing overhead of pooling a bare slice value.
var channelSetPool = sync.Pool{
	New: func() any {
		s := make([]profile.Channel, 0, constants.DefaultCutSetCapacity)
		return &s
	},
}

func getChannelSet() []profile.Channel {
	return (*channelSetPool.Get().(*[]profile.Channel))[:0]
}

func putChannelSet(s []profile.Channel) {
	s = s[:0]
	channelSetPool.Put(&s)
}
