package constants

const (
	MQDeviceAlert = "device.alert"
)
