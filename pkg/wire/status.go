package wire

// Status is a Config status code reported in status messages.
type Status uint8

const (
	// StatusSuccess indicates the operation completed successfully.
	StatusSuccess Status = 0x00

	// StatusInvalidAddress indicates the address is not valid for the operation.
	StatusInvalidAddress Status = 0x01

	// StatusInvalidModel indicates the model does not exist on the element.
	StatusInvalidModel Status = 0x02

	// StatusInvalidAppKeyIndex indicates the application key index is unknown.
	StatusInvalidAppKeyIndex Status = 0x03

	// StatusInvalidNetKeyIndex indicates the network key index is unknown.
	StatusInvalidNetKeyIndex Status = 0x04

	// StatusInsufficientResources indicates the node is out of storage.
	StatusInsufficientResources Status = 0x05

	// StatusKeyIndexAlreadyStored indicates the index holds a different key.
	StatusKeyIndexAlreadyStored Status = 0x06

	// StatusInvalidPublishParameters indicates unusable publish parameters.
	StatusInvalidPublishParameters Status = 0x07

	// StatusNotSubscribeModel indicates the model does not support subscriptions.
	StatusNotSubscribeModel Status = 0x08

	// StatusStorageFailure indicates persistent storage failed.
	StatusStorageFailure Status = 0x09

	// StatusFeatureNotSupported indicates the feature is absent on the node.
	StatusFeatureNotSupported Status = 0x0A

	// StatusCannotUpdate indicates the key cannot be updated.
	StatusCannotUpdate Status = 0x0B

	// StatusCannotRemove indicates the key cannot be removed.
	StatusCannotRemove Status = 0x0C

	// StatusCannotBind indicates the key cannot be bound to the model.
	StatusCannotBind Status = 0x0D

	// StatusTemporarilyUnable indicates a transient inability to change state.
	StatusTemporarilyUnable Status = 0x0E

	// StatusCannotSet indicates the value cannot be set.
	StatusCannotSet Status = 0x0F

	// StatusUnspecifiedError indicates an unclassified local failure.
	StatusUnspecifiedError Status = 0x10

	// StatusInvalidBinding indicates the key binding is invalid.
	StatusInvalidBinding Status = 0x11
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "SUCCESS"
	case StatusInvalidAddress:
		return "INVALID_ADDRESS"
	case StatusInvalidModel:
		return "INVALID_MODEL"
	case StatusInvalidAppKeyIndex:
		return "INVALID_APPKEY_INDEX"
	case StatusInvalidNetKeyIndex:
		return "INVALID_NETKEY_INDEX"
	case StatusInsufficientResources:
		return "INSUFFICIENT_RESOURCES"
	case StatusKeyIndexAlreadyStored:
		return "KEY_INDEX_ALREADY_STORED"
	case StatusInvalidPublishParameters:
		return "INVALID_PUBLISH_PARAMETERS"
	case StatusNotSubscribeModel:
		return "NOT_A_SUBSCRIBE_MODEL"
	case StatusStorageFailure:
		return "STORAGE_FAILURE"
	case StatusFeatureNotSupported:
		return "FEATURE_NOT_SUPPORTED"
	case StatusCannotUpdate:
		return "CANNOT_UPDATE"
	case StatusCannotRemove:
		return "CANNOT_REMOVE"
	case StatusCannotBind:
		return "CANNOT_BIND"
	case StatusTemporarilyUnable:
		return "TEMPORARILY_UNABLE"
	case StatusCannotSet:
		return "CANNOT_SET"
	case StatusUnspecifiedError:
		return "UNSPECIFIED_ERROR"
	case StatusInvalidBinding:
		return "INVALID_BINDING"
	default:
		return "UNKNOWN"
	}
}

// IsSuccess returns true if the status indicates success.
func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

// IsError returns true if the status indicates an error.
func (s Status) IsError() bool {
	return s != StatusSuccess
}
