package storage

import "github.com/cursor-reset/cursor-reset/internal/identity"

const (
	KeyMachineId    = "telemetry.machineId"
	KeyMacMachineId = "telemetry.macMachineId"
	KeyDevDeviceId  = "telemetry.devDeviceId"
)

// OwnedKeys are the only keys a reset is allowed to change.
var OwnedKeys = []string{KeyMachineId, KeyMacMachineId, KeyDevDeviceId}

// Record is the decoded identity document. Numbers are kept as json.Number.
type Record map[string]any

func (r Record) Apply(triple identity.Triple) {
	r[KeyMachineId] = triple.MachineId
	r[KeyMacMachineId] = triple.MacMachineId
	r[KeyDevDeviceId] = triple.DevDeviceId
}
