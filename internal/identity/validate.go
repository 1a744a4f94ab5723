package identity

import (
	"fmt"
	"regexp"
)

var (
	machineIdRegex = regexp.MustCompile(`^[0-9a-f]{64}$`)
	deviceIdRegex  = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)
)

func IsValidMachineId(id string) bool {
	return machineIdRegex.MatchString(id)
}

func IsValidDeviceId(id string) bool {
	return deviceIdRegex.MatchString(id)
}

func (t Triple) Validate() error {
	if !IsValidMachineId(t.MachineId) {
		return fmt.Errorf("invalid machine id %q", t.MachineId)
	}
	if !IsValidMachineId(t.MacMachineId) {
		return fmt.Errorf("invalid mac machine id %q", t.MacMachineId)
	}
	if !IsValidDeviceId(t.DevDeviceId) {
		return fmt.Errorf("invalid device id %q", t.DevDeviceId)
	}
	return nil
}
