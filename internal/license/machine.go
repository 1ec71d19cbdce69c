package license

import (
	"strconv"

	"github.com/google/uuid"

	"github.com/ytget/png-sorter/internal/model"
)

// MachineID returns the 48-bit hardware node id as a decimal string. The node
// id comes from the first usable network interface, or is random when none
// exists.
func MachineID() string {
	return nodeToDecimal(uuid.NodeID())
}

func nodeToDecimal(node []byte) string {
	var n uint64
	for _, b := range node {
		n = n<<8 | uint64(b)
	}
	return strconv.FormatUint(n, 10)
}

// NewSession creates a license session for key on this machine
func NewSession(key, version string) *model.Session {
	return &model.Session{
		Key:       key,
		MachineID: MachineID(),
		Version:   version,
	}
}
