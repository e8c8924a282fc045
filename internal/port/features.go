package port

// Feature names understood by the feature registry.
const (
	FeatureActionDeviceKey          = "ActionDeviceKey"
	FeatureActionGroupKey           = "ActionGroupKey"
	FeatureActionGroupMask          = "ActionGroupMask"
	FeatureActionDestinationAddress = "GevActionDestinationIPAddress"
	FeatureActionCommand            = "ActionCommand"
)
