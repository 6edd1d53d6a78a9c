package gateway

import (
	"github.com/reelboard/reelboard/internal/pkg/nsq"
)

// BoardGW publishes board lifecycle events over NSQ. A nil producer turns
// publishing into a no-op so the service runs without a broker configured.
type BoardGW struct {
	producer *nsq.Producer
}

// NewBoardGW creates a new board gateway instance
func NewBoardGW(producer *nsq.Producer) *BoardGW {
	return &BoardGW{producer: producer}
}
