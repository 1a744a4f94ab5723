package identity

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/google/uuid"
)

const machineIdBytes = 32

type Triple struct {
	MachineId    string `json:"machineId"`
	MacMachineId string `json:"macMachineId"`
	DevDeviceId  string `json:"devDeviceId"`
}

// Generate returns a fresh set of identifiers. Every call reads new entropy
// from crypto/rand; nothing is shared between calls.
func Generate() Triple {
	return Triple{
		MachineId:    randomHex(machineIdBytes),
		MacMachineId: randomHex(machineIdBytes),
		DevDeviceId:  uuid.NewString(),
	}
}

func randomHex(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("identity: failed to read random bytes: %v", err))
	}
	return hex.EncodeToString(buf)
}
